package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"esupport-inventory/internal/model"
	"esupport-inventory/internal/repository"
	"esupport-inventory/pkg/validation"
)

// ComputerService handles business logic for computer operations
type ComputerService struct {
	repo      repository.ComputerRepository
	companies repository.CompanyRepository
	employees repository.EmployeeRepository
	logger    *zap.Logger
}

// NewComputerService creates a new computer service
func NewComputerService(
	repo repository.ComputerRepository,
	companies repository.CompanyRepository,
	employees repository.EmployeeRepository,
	logger *zap.Logger,
) *ComputerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ComputerService{
		repo:      repo,
		companies: companies,
		employees: employees,
		logger:    logger.Named("computer"),
	}
}

// CreateComputer validates and stores a new computer. The brand defaults to Other.
func (s *ComputerService) CreateComputer(ctx context.Context, computer model.Computer) (*model.Computer, error) {
	if err := s.validate(ctx, &computer); err != nil {
		return nil, err
	}

	computer.ID = 0
	if err := s.repo.Create(ctx, &computer); err != nil {
		return nil, translateError(err, "computer", "create")
	}

	s.logger.Info("computer created",
		zap.Uint("id", computer.ID),
		zap.String("service_tag", computer.ServiceTag),
	)
	return s.GetComputer(ctx, computer.ID)
}

// GetComputer retrieves a computer with its company, assignee and service history
func (s *ComputerService) GetComputer(ctx context.Context, id uint) (*model.Computer, error) {
	computer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateError(err, "computer", "retrieve")
	}
	return computer, nil
}

// UpdateComputer replaces the editable fields of a computer
func (s *ComputerService) UpdateComputer(ctx context.Context, id uint, updates model.Computer) (*model.Computer, error) {
	if err := s.validate(ctx, &updates); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, &updates); err != nil {
		return nil, translateError(err, "computer", "update")
	}

	s.logger.Info("computer updated", zap.Uint("id", id))
	return s.GetComputer(ctx, id)
}

// DeleteComputer deletes a computer and its service history
func (s *ComputerService) DeleteComputer(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translateError(err, "computer", "delete")
	}
	s.logger.Info("computer deleted", zap.Uint("id", id))
	return nil
}

// ListComputers returns one page of computers
func (s *ComputerService) ListComputers(ctx context.Context, q repository.ListQuery) (*repository.Page[repository.ComputerListItem], error) {
	page, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, translateError(err, "computers", "list")
	}
	return page, nil
}

// ComputerModels returns the distinct computer models for the model filter
func (s *ComputerService) ComputerModels(ctx context.Context) ([]string, error) {
	models, err := s.repo.DistinctModels(ctx)
	if err != nil {
		return nil, translateError(err, "computer models", "list")
	}
	return models, nil
}

func (s *ComputerService) validate(ctx context.Context, c *model.Computer) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Model = strings.TrimSpace(c.Model)
	c.ServiceTag = strings.TrimSpace(c.ServiceTag)
	if c.Brand == "" {
		c.Brand = model.BrandOther
	}
	c.PurchaseDate = dateOnlyPtr(c.PurchaseDate)
	c.WarrantyEnd = dateOnlyPtr(c.WarrantyEnd)
	c.Company = nil
	c.AssignedTo = nil
	c.ServiceActions = nil

	if err := validationError(validation.ValidateComputer(c)); err != nil {
		return err
	}

	if c.CompanyID != nil {
		if err := referenceCheck(ctx, s.companies.Exists, *c.CompanyID, "company"); err != nil {
			return err
		}
	}
	if c.AssignedToID != nil {
		if err := referenceCheck(ctx, s.employees.Exists, *c.AssignedToID, "employee"); err != nil {
			return err
		}
	}
	return nil
}
