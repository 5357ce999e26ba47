package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"esupport-inventory/internal/model"
	"esupport-inventory/internal/repository"
	"esupport-inventory/pkg/validation"
)

// ServiceActionService handles business logic for service actions and
// announces openings and status changes through the notifier.
type ServiceActionService struct {
	repo      repository.ServiceActionRepository
	computers repository.ComputerRepository
	notifier  NotificationService
	logger    *zap.Logger
}

// NewServiceActionService creates a new service action service. notifier may be nil.
func NewServiceActionService(
	repo repository.ServiceActionRepository,
	computers repository.ComputerRepository,
	notifier NotificationService,
	logger *zap.Logger,
) *ServiceActionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ServiceActionService{
		repo:      repo,
		computers: computers,
		notifier:  notifier,
		logger:    logger.Named("service_action"),
	}
}

// CreateServiceAction validates and stores a service action. Status defaults to
// open and cost to zero.
func (s *ServiceActionService) CreateServiceAction(ctx context.Context, action model.ServiceAction) (*model.ServiceAction, error) {
	if err := s.validate(ctx, &action); err != nil {
		return nil, err
	}

	action.ID = 0
	if err := s.repo.Create(ctx, &action); err != nil {
		return nil, translateError(err, "service action", "create")
	}

	created, err := s.GetServiceAction(ctx, action.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("service action created",
		zap.Uint("id", created.ID),
		zap.Uint("computer_id", created.ComputerID),
		zap.String("status", string(created.Status)),
	)

	go s.notify(NotificationTypeServiceActionCreated, *created, "")

	return created, nil
}

// GetServiceAction retrieves a service action with its computer
func (s *ServiceActionService) GetServiceAction(ctx context.Context, id uint) (*model.ServiceAction, error) {
	action, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateError(err, "service action", "retrieve")
	}
	return action, nil
}

// UpdateServiceAction replaces the editable fields of a service action
func (s *ServiceActionService) UpdateServiceAction(ctx context.Context, id uint, updates model.ServiceAction) (*model.ServiceAction, error) {
	existing, err := s.GetServiceAction(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validate(ctx, &updates); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, &updates); err != nil {
		return nil, translateError(err, "service action", "update")
	}

	updated, err := s.GetServiceAction(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing.Status != updated.Status {
		go s.notify(NotificationTypeServiceActionStatusChanged, *updated, existing.Status)
	}

	s.logger.Info("service action updated", zap.Uint("id", id))
	return updated, nil
}

// DeleteServiceAction deletes a service action
func (s *ServiceActionService) DeleteServiceAction(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translateError(err, "service action", "delete")
	}
	s.logger.Info("service action deleted", zap.Uint("id", id))
	return nil
}

// ListServiceActions returns one page of service actions, newest first
func (s *ServiceActionService) ListServiceActions(ctx context.Context, q repository.ListQuery) (*repository.Page[model.ServiceAction], error) {
	page, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, translateError(err, "service actions", "list")
	}
	return page, nil
}

func (s *ServiceActionService) validate(ctx context.Context, a *model.ServiceAction) error {
	a.Title = strings.TrimSpace(a.Title)
	a.Description = strings.TrimSpace(a.Description)
	if a.Status == "" {
		a.Status = model.StatusOpen
	}
	if !a.ActionDate.IsZero() {
		a.ActionDate = dateOnly(a.ActionDate)
	}
	a.Computer = nil

	if err := validationError(validation.ValidateServiceAction(a)); err != nil {
		return err
	}
	return referenceCheck(ctx, s.computers.Exists, a.ComputerID, "computer")
}

// notify runs detached from the request; failures are only logged
func (s *ServiceActionService) notify(kind NotificationType, action model.ServiceAction, previous model.ServiceStatus) {
	if s.notifier == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
	defer cancel()

	n := ServiceActionNotification{
		Type:           kind,
		Title:          action.Title,
		Status:         action.Status,
		PreviousStatus: previous,
		ActionDate:     action.ActionDate,
		Metadata: map[string]string{
			"service_action_id": fmt.Sprint(action.ID),
			"computer_id":       fmt.Sprint(action.ComputerID),
			"cost":              action.Cost.StringFixed(2),
		},
	}
	if c := action.Computer; c != nil {
		n.ComputerName = c.Name
		n.ServiceTag = c.ServiceTag
		if company := c.CompanyName(); company != "-" {
			n.Company = company
		}
	}

	switch kind {
	case NotificationTypeServiceActionStatusChanged:
		n.Message = fmt.Sprintf("Service action %q on %s changed from %s to %s", action.Title, n.ServiceTag, previous, action.Status)
	default:
		n.Message = fmt.Sprintf("Service action %q opened on %s", action.Title, n.ServiceTag)
	}

	if err := s.notifier.SendServiceActionNotification(ctx, n); err != nil {
		s.logger.Warn("failed to send service action notification",
			zap.String("type", string(kind)),
			zap.Uint("service_action_id", action.ID),
			zap.Error(err),
		)
	}
}
