package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"esupport-inventory/internal/model"
)

// CompanyRepository is an interface for interacting with company data.
type CompanyRepository interface {
	Create(ctx context.Context, company *model.Company) error
	GetByID(ctx context.Context, id uint) (*model.Company, error)
	Update(ctx context.Context, id uint, company *model.Company) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, q ListQuery) (*Page[model.Company], error)
	ListChoices(ctx context.Context) ([]model.CompanyChoice, error)
}

var companyList = listSpec{
	search: []string{"companies.name", "companies.vat_id", "companies.city"},
	filters: []Filter{
		equalsFilter("city", "companies.city"),
	},
	order: "companies.name, companies.id",
}

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new CompanyRepository.
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

// CompanyFilterKeys lists the filters accepted by List.
func CompanyFilterKeys() []string {
	return companyList.FilterKeys()
}

// Create inserts a company and fills in its id and timestamps.
func (r *companyRepository) Create(ctx context.Context, company *model.Company) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(company).Error; err != nil {
		return companyWriteError("create", company.Name, err)
	}
	return nil
}

// GetByID retrieves a company by id.
func (r *companyRepository) GetByID(ctx context.Context, id uint) (*model.Company, error) {
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

// Update overwrites every editable column of the company.
func (r *companyRepository) Update(ctx context.Context, id uint, company *model.Company) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	company.ID = id
	res := r.db.WithContext(ctx).Model(company).
		Select("name", "vat_id", "city", "address").
		Updates(company)
	if res.Error != nil {
		return companyWriteError("update", company.Name, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %d", ErrCompanyNotFound, id)
	}
	return nil
}

// Delete removes a company. Its employees, computers and their service
// actions go with it through the foreign keys.
func (r *companyRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&model.Company{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete company: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %d", ErrCompanyNotFound, id)
	}
	return nil
}

// Exists checks whether a company with the given id exists
func (r *companyRepository) Exists(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return exists(r.db.WithContext(ctx), &model.Company{}, id)
}

// List returns one page of companies matching the search and filters.
func (r *companyRepository) List(ctx context.Context, q ListQuery) (*Page[model.Company], error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	base, err := companyList.scope(r.db.WithContext(ctx).Model(&model.Company{}), q)
	if err != nil {
		return nil, err
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count companies: %w", err)
	}

	companies := []model.Company{}
	if err := paginate(base.Order(companyList.order), q).Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}

	return &Page[model.Company]{Items: companies, TotalCount: total}, nil
}

// ListChoices returns every company's id and name ordered by name.
func (r *companyRepository) ListChoices(ctx context.Context) ([]model.CompanyChoice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return listCompanyChoices(r.db.WithContext(ctx))
}

func listCompanyChoices(db *gorm.DB) ([]model.CompanyChoice, error) {
	choices := []model.CompanyChoice{}
	err := db.Model(&model.Company{}).
		Select("id", "name").
		Order("name, id").
		Scan(&choices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list company choices: %w", err)
	}
	return choices, nil
}

// exists reports whether a row of model's table has the given primary key
func exists(db *gorm.DB, m interface{}, id uint) (bool, error) {
	var count int64
	if err := db.Model(m).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return count > 0, nil
}

func companyWriteError(op, name string, err error) error {
	if isDuplicateKey(err) {
		return fmt.Errorf("%w: %s", ErrDuplicateCompanyName, name)
	}
	return fmt.Errorf("failed to %s company: %w", op, err)
}
