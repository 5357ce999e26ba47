package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"esupport-inventory/internal/model"
)

//go:generate mockgen -destination=mocks/report_mock.go -package=mocks esupport-inventory/internal/repository ReportRepository

// ReportRepository reads the data behind the computer report.
type ReportRepository interface {
	GetCompany(ctx context.Context, id uint) (*model.Company, error)
	ListCompanies(ctx context.Context) ([]model.Company, error)
	ListCompanyComputers(ctx context.Context, companyID uint) ([]model.Computer, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// GetCompany retrieves a company by id.
func (r *reportRepository) GetCompany(ctx context.Context, id uint) (*model.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var company model.Company
	if err := r.db.WithContext(ctx).First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrCompanyNotFound, id)
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &company, nil
}

// ListCompanies returns every company ordered by name.
func (r *reportRepository) ListCompanies(ctx context.Context) ([]model.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	companies := []model.Company{}
	if err := r.db.WithContext(ctx).Order("name, id").Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

// ListCompanyComputers returns the company's computers ordered by name with the
// assigned employee and the full service history. The relations are loaded with
// one batched query each, so the query count does not grow with the result.
func (r *reportRepository) ListCompanyComputers(ctx context.Context, companyID uint) ([]model.Computer, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	computers := []model.Computer{}
	err := r.db.WithContext(ctx).
		Preload("AssignedTo").
		Preload("ServiceActions", func(db *gorm.DB) *gorm.DB {
			return db.Order(model.ServiceActionOrder)
		}).
		Where("company_id = ?", companyID).
		Order("name, id").
		Find(&computers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list company computers: %w", err)
	}
	return computers, nil
}
