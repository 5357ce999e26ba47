package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"esupport-inventory/internal/model"
)

// EmployeeListItem is an employee row of the back-office list.
type EmployeeListItem struct {
	model.Employee
	ComputersCount int64 `json:"computers_count"`
}

// EmployeeRepository is an interface for interacting with employee data.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	GetByID(ctx context.Context, id uint) (*model.Employee, error)
	Update(ctx context.Context, id uint, employee *model.Employee) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, q ListQuery) (*Page[EmployeeListItem], error)
}

var employeeList = listSpec{
	joins: []string{
		"LEFT JOIN companies AS employer ON employer.id = employees.company_id",
	},
	search: []string{
		"employees.first_name", "employees.last_name", "employees.email", "employer.name",
	},
	filters: []Filter{
		idFilter("company", "employees.company_id"),
	},
	order: "employees.last_name, employees.first_name, employees.id",
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new EmployeeRepository.
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// EmployeeFilterKeys lists the filters accepted by List.
func EmployeeFilterKeys() []string {
	return employeeList.FilterKeys()
}

// Create inserts an employee.
func (r *employeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(employee).Error; err != nil {
		return employeeWriteError("create", employee.Email, err)
	}
	return nil
}

// GetByID retrieves an employee with the company and the assigned computers.
func (r *employeeRepository) GetByID(ctx context.Context, id uint) (*model.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var employee model.Employee
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Computers", func(db *gorm.DB) *gorm.DB {
			return db.Order("name, id")
		}).
		First(&employee, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrEmployeeNotFound, id)
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	if employee.Computers == nil {
		employee.Computers = []model.Computer{}
	}
	return &employee, nil
}

// Update overwrites every editable column of the employee.
func (r *employeeRepository) Update(ctx context.Context, id uint, employee *model.Employee) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	employee.ID = id
	res := r.db.WithContext(ctx).Model(employee).
		Select("company_id", "first_name", "last_name", "email", "position", "phone_number").
		Updates(employee)
	if res.Error != nil {
		return employeeWriteError("update", employee.Email, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %d", ErrEmployeeNotFound, id)
	}
	return nil
}

// Delete removes an employee. Computers assigned to them become unassigned.
func (r *employeeRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&model.Employee{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete employee: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %d", ErrEmployeeNotFound, id)
	}
	return nil
}

// Exists checks whether an employee with the given id exists
func (r *employeeRepository) Exists(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return exists(r.db.WithContext(ctx), &model.Employee{}, id)
}

// List returns one page of employees with their company and computers count.
func (r *employeeRepository) List(ctx context.Context, q ListQuery) (*Page[EmployeeListItem], error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	db := r.db.WithContext(ctx)
	base, err := employeeList.scope(db.Model(&model.Employee{}), q)
	if err != nil {
		return nil, err
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}

	var employees []model.Employee
	if err := paginate(base.Preload("Company").Order(employeeList.order), q).Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}

	counts, err := r.computerCounts(db, employees)
	if err != nil {
		return nil, err
	}

	items := make([]EmployeeListItem, 0, len(employees))
	for _, e := range employees {
		items = append(items, EmployeeListItem{Employee: e, ComputersCount: counts[e.ID]})
	}

	return &Page[EmployeeListItem]{Items: items, TotalCount: total}, nil
}

// computerCounts counts assigned computers for a page of employees in one grouped query
func (r *employeeRepository) computerCounts(db *gorm.DB, employees []model.Employee) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(employees))
	if len(employees) == 0 {
		return counts, nil
	}

	ids := make([]uint, 0, len(employees))
	for _, e := range employees {
		ids = append(ids, e.ID)
	}

	var rows []struct {
		AssignedToID uint
		Total        int64
	}
	err := db.Model(&model.Computer{}).
		Select("assigned_to_id, count(*) AS total").
		Where("assigned_to_id IN ?", ids).
		Group("assigned_to_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count employee computers: %w", err)
	}

	for _, row := range rows {
		counts[row.AssignedToID] = row.Total
	}
	return counts, nil
}

func employeeWriteError(op, email string, err error) error {
	switch {
	case isDuplicateKey(err):
		return fmt.Errorf("%w: %s", ErrDuplicateEmployeeEmail, email)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: company", ErrInvalidReference)
	}
	return fmt.Errorf("failed to %s employee: %w", op, err)
}
