package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"esupport-inventory/internal/model"
	"esupport-inventory/internal/repository"
	"esupport-inventory/pkg/validation"
)

// EmployeeService handles business logic for employee operations
type EmployeeService struct {
	repo      repository.EmployeeRepository
	companies repository.CompanyRepository
	logger    *zap.Logger
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo repository.EmployeeRepository, companies repository.CompanyRepository, logger *zap.Logger) *EmployeeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmployeeService{repo: repo, companies: companies, logger: logger.Named("employee")}
}

// CreateEmployee validates and stores a new employee
func (s *EmployeeService) CreateEmployee(ctx context.Context, employee model.Employee) (*model.Employee, error) {
	if err := s.validate(ctx, &employee); err != nil {
		return nil, err
	}

	employee.ID = 0
	if err := s.repo.Create(ctx, &employee); err != nil {
		return nil, translateError(err, "employee", "create")
	}

	s.logger.Info("employee created",
		zap.Uint("id", employee.ID),
		zap.Uint("company_id", employee.CompanyID),
	)
	return s.GetEmployee(ctx, employee.ID)
}

// GetEmployee retrieves an employee with the company and the assigned computers
func (s *EmployeeService) GetEmployee(ctx context.Context, id uint) (*model.Employee, error) {
	employee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateError(err, "employee", "retrieve")
	}
	return employee, nil
}

// UpdateEmployee replaces the editable fields of an employee
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id uint, updates model.Employee) (*model.Employee, error) {
	if err := s.validate(ctx, &updates); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, &updates); err != nil {
		return nil, translateError(err, "employee", "update")
	}

	s.logger.Info("employee updated", zap.Uint("id", id))
	return s.GetEmployee(ctx, id)
}

// DeleteEmployee deletes an employee; their computers become unassigned
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translateError(err, "employee", "delete")
	}
	s.logger.Info("employee deleted", zap.Uint("id", id))
	return nil
}

// ListEmployees returns one page of employees with their computers count
func (s *EmployeeService) ListEmployees(ctx context.Context, q repository.ListQuery) (*repository.Page[repository.EmployeeListItem], error) {
	page, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, translateError(err, "employees", "list")
	}
	return page, nil
}

func (s *EmployeeService) validate(ctx context.Context, e *model.Employee) error {
	e.FirstName = strings.TrimSpace(e.FirstName)
	e.LastName = strings.TrimSpace(e.LastName)
	e.Email = strings.TrimSpace(e.Email)
	e.Position = strings.TrimSpace(e.Position)
	e.PhoneNumber = strings.TrimSpace(e.PhoneNumber)
	e.Company = nil
	e.Computers = nil

	if err := validationError(validation.ValidateEmployee(e)); err != nil {
		return err
	}
	return referenceCheck(ctx, s.companies.Exists, e.CompanyID, "company")
}
