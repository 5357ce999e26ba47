package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"esupport-inventory/internal/model"
)

// ComputerListItem is a computer row of the back-office list.
type ComputerListItem struct {
	model.Computer
	CompanyName string `json:"company_name"`
}

// ComputerRepository is an interface for interacting with computer data.
type ComputerRepository interface {
	Create(ctx context.Context, computer *model.Computer) error
	GetByID(ctx context.Context, id uint) (*model.Computer, error)
	Update(ctx context.Context, id uint, computer *model.Computer) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, q ListQuery) (*Page[ComputerListItem], error)
	DistinctModels(ctx context.Context) ([]string, error)
}

// assignee joins give computer lists access to the assigned employee and their company
var assigneeJoins = []string{
	"LEFT JOIN employees AS assignee ON assignee.id = computers.assigned_to_id",
	"LEFT JOIN companies AS assignee_company ON assignee_company.id = assignee.company_id",
}

var computerList = listSpec{
	joins: assigneeJoins,
	search: []string{
		"computers.name", "computers.model", "computers.service_tag",
		"assignee.first_name", "assignee.last_name", "assignee_company.name",
	},
	filters: []Filter{
		equalsFilter("brand", "computers.brand"),
		equalsFilter("model", "computers.model"),
		idFilter("assigned_to", "computers.assigned_to_id"),
		idFilter("assigned_to_company", "assignee.company_id"),
		idFilter("company", "computers.company_id"),
	},
	order: "computers.name, computers.id",
}

type computerRepository struct {
	db *gorm.DB
}

// NewComputerRepository creates a new ComputerRepository.
func NewComputerRepository(db *gorm.DB) ComputerRepository {
	return &computerRepository{db: db}
}

// ComputerFilterKeys lists the filters accepted by List.
func ComputerFilterKeys() []string {
	return computerList.FilterKeys()
}

// Create adds a new computer to the database.
func (r *computerRepository) Create(ctx context.Context, computer *model.Computer) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(computer).Error; err != nil {
		return computerWriteError("create", computer.ServiceTag, err)
	}
	return nil
}

// GetByID retrieves a computer with its company, assigned employee and service history.
func (r *computerRepository) GetByID(ctx context.Context, id uint) (*model.Computer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var computer model.Computer
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("AssignedTo.Company").
		Preload("ServiceActions", func(db *gorm.DB) *gorm.DB {
			return db.Order(model.ServiceActionOrder)
		}).
		First(&computer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrComputerNotFound, id)
		}
		return nil, fmt.Errorf("failed to get computer: %w", err)
	}
	if computer.ServiceActions == nil {
		computer.ServiceActions = []model.ServiceAction{}
	}
	return &computer, nil
}

// Update overwrites every editable column of the computer.
func (r *computerRepository) Update(ctx context.Context, id uint, computer *model.Computer) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	computer.ID = id
	res := r.db.WithContext(ctx).Model(computer).
		Select("name", "model", "brand", "service_tag", "purchase_date", "warranty_end", "company_id", "assigned_to_id").
		Updates(computer)
	if res.Error != nil {
		return computerWriteError("update", computer.ServiceTag, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %d", ErrComputerNotFound, id)
	}
	return nil
}

// Delete removes a computer and its service actions.
func (r *computerRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&model.Computer{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete computer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %d", ErrComputerNotFound, id)
	}
	return nil
}

// Exists checks whether a computer with the given id exists
func (r *computerRepository) Exists(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return exists(r.db.WithContext(ctx), &model.Computer{}, id)
}

// List returns one page of computers with the assigned employee and their company.
func (r *computerRepository) List(ctx context.Context, q ListQuery) (*Page[ComputerListItem], error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	base, err := computerList.scope(r.db.WithContext(ctx).Model(&model.Computer{}), q)
	if err != nil {
		return nil, err
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count computers: %w", err)
	}

	var computers []model.Computer
	if err := paginate(base.Preload("AssignedTo.Company").Order(computerList.order), q).Find(&computers).Error; err != nil {
		return nil, fmt.Errorf("failed to query computers: %w", err)
	}

	items := make([]ComputerListItem, 0, len(computers))
	for _, c := range computers {
		items = append(items, ComputerListItem{Computer: c, CompanyName: c.CompanyName()})
	}

	return &Page[ComputerListItem]{Items: items, TotalCount: total}, nil
}

// DistinctModels returns the distinct non-empty computer models in alphabetical order.
func (r *computerRepository) DistinctModels(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	models := []string{}
	err := r.db.WithContext(ctx).Model(&model.Computer{}).
		Distinct().
		Where("model <> ''").
		Order("model").
		Pluck("model", &models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list computer models: %w", err)
	}
	return models, nil
}

func computerWriteError(op, serviceTag string, err error) error {
	switch {
	case isDuplicateKey(err):
		return fmt.Errorf("%w: %s", ErrDuplicateServiceTag, serviceTag)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: company or employee", ErrInvalidReference)
	}
	return fmt.Errorf("failed to %s computer: %w", op, err)
}
