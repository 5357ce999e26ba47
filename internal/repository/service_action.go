package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"esupport-inventory/internal/model"
)

// ServiceActionRepository is an interface for interacting with service action data.
type ServiceActionRepository interface {
	Create(ctx context.Context, action *model.ServiceAction) error
	GetByID(ctx context.Context, id uint) (*model.ServiceAction, error)
	Update(ctx context.Context, id uint, action *model.ServiceAction) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, q ListQuery) (*Page[model.ServiceAction], error)
}

var serviceActionList = listSpec{
	joins: append([]string{
		"JOIN computers ON computers.id = service_actions.computer_id",
	}, assigneeJoins...),
	search: []string{
		"service_actions.title",
		"computers.name", "computers.service_tag", "computers.model",
		"assignee.first_name", "assignee.last_name", "assignee_company.name",
	},
	filters: []Filter{
		equalsFilter("status", "service_actions.status"),
		dateFilter("action_date", "service_actions.action_date"),
		yearFilter("year", "month", "service_actions.action_date"),
		monthFilter("month", "year"),
		idFilter("computer", "service_actions.computer_id"),
		idFilter("company", "assignee.company_id"),
	},
	order: "service_actions.action_date DESC, service_actions.id DESC",
}

type serviceActionRepository struct {
	db *gorm.DB
}

// NewServiceActionRepository creates a new ServiceActionRepository.
func NewServiceActionRepository(db *gorm.DB) ServiceActionRepository {
	return &serviceActionRepository{db: db}
}

// ServiceActionFilterKeys lists the filters accepted by List.
func ServiceActionFilterKeys() []string {
	return serviceActionList.FilterKeys()
}

// Create records a service action.
func (r *serviceActionRepository) Create(ctx context.Context, action *model.ServiceAction) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(action).Error; err != nil {
		return serviceActionWriteError("create", err)
	}
	return nil
}

// GetByID retrieves a service action with its computer, the assigned employee and their company.
func (r *serviceActionRepository) GetByID(ctx context.Context, id uint) (*model.ServiceAction, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var action model.ServiceAction
	if err := r.db.WithContext(ctx).Preload("Computer.AssignedTo.Company").First(&action, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrServiceActionNotFound, id)
		}
		return nil, fmt.Errorf("failed to get service action: %w", err)
	}
	return &action, nil
}

// Update overwrites every editable column of the service action.
func (r *serviceActionRepository) Update(ctx context.Context, id uint, action *model.ServiceAction) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	action.ID = id
	res := r.db.WithContext(ctx).Model(action).
		Select("computer_id", "title", "description", "action_date", "cost", "status").
		Updates(action)
	if res.Error != nil {
		return serviceActionWriteError("update", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %d", ErrServiceActionNotFound, id)
	}
	return nil
}

// Delete removes a service action.
func (r *serviceActionRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&model.ServiceAction{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete service action: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %d", ErrServiceActionNotFound, id)
	}
	return nil
}

// List returns one page of service actions, newest first.
func (r *serviceActionRepository) List(ctx context.Context, q ListQuery) (*Page[model.ServiceAction], error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	base, err := serviceActionList.scope(r.db.WithContext(ctx).Model(&model.ServiceAction{}), q)
	if err != nil {
		return nil, err
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count service actions: %w", err)
	}

	actions := []model.ServiceAction{}
	err = paginate(base.Preload("Computer.AssignedTo.Company").Order(serviceActionList.order), q).Find(&actions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query service actions: %w", err)
	}

	return &Page[model.ServiceAction]{Items: actions, TotalCount: total}, nil
}

func serviceActionWriteError(op string, err error) error {
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: computer", ErrInvalidReference)
	}
	return fmt.Errorf("failed to %s service action: %w", op, err)
}
