package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"esupport-inventory/internal/model"
	"esupport-inventory/internal/repository"
	"esupport-inventory/pkg/validation"
)

// CompanyService handles business logic for company operations
type CompanyService struct {
	repo   repository.CompanyRepository
	logger *zap.Logger
}

// NewCompanyService creates a new company service
func NewCompanyService(repo repository.CompanyRepository, logger *zap.Logger) *CompanyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CompanyService{repo: repo, logger: logger.Named("company")}
}

// CreateCompany validates and stores a new company
func (s *CompanyService) CreateCompany(ctx context.Context, company model.Company) (*model.Company, error) {
	normalizeCompany(&company)
	if err := validationError(validation.ValidateCompany(&company)); err != nil {
		return nil, err
	}

	company.ID = 0
	if err := s.repo.Create(ctx, &company); err != nil {
		return nil, translateError(err, "company", "create")
	}

	s.logger.Info("company created", zap.Uint("id", company.ID), zap.String("name", company.Name))
	return &company, nil
}

// GetCompany retrieves a company by its ID
func (s *CompanyService) GetCompany(ctx context.Context, id uint) (*model.Company, error) {
	company, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateError(err, "company", "retrieve")
	}
	return company, nil
}

// UpdateCompany replaces the editable fields of a company
func (s *CompanyService) UpdateCompany(ctx context.Context, id uint, updates model.Company) (*model.Company, error) {
	normalizeCompany(&updates)
	if err := validationError(validation.ValidateCompany(&updates)); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, &updates); err != nil {
		return nil, translateError(err, "company", "update")
	}

	s.logger.Info("company updated", zap.Uint("id", id))
	return s.GetCompany(ctx, id)
}

// DeleteCompany deletes a company together with its employees and computers
func (s *CompanyService) DeleteCompany(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translateError(err, "company", "delete")
	}
	s.logger.Info("company deleted", zap.Uint("id", id))
	return nil
}

// ListCompanies returns one page of companies
func (s *CompanyService) ListCompanies(ctx context.Context, q repository.ListQuery) (*repository.Page[model.Company], error) {
	page, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, translateError(err, "companies", "list")
	}
	return page, nil
}

// CompanyChoices returns id/name pairs of every company ordered by name
func (s *CompanyService) CompanyChoices(ctx context.Context) ([]model.CompanyChoice, error) {
	choices, err := s.repo.ListChoices(ctx)
	if err != nil {
		return nil, translateError(err, "company choices", "list")
	}
	return choices, nil
}

func normalizeCompany(c *model.Company) {
	c.Name = strings.TrimSpace(c.Name)
	c.VATID = strings.TrimSpace(c.VATID)
	c.City = strings.TrimSpace(c.City)
	c.Address = strings.TrimSpace(c.Address)
	c.Employees = nil
	c.Computers = nil
}
