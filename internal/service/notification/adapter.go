package notification

import (
	"context"
	"time"

	"esupport-inventory/internal/model"
	"esupport-inventory/internal/notification"
	"esupport-inventory/internal/service"
)

// ServiceAdapter adapts the notification client to the service layer interface
type ServiceAdapter struct {
	client notification.Notifier
}

// NewServiceAdapter creates a new notification service adapter
func NewServiceAdapter(client notification.Notifier) *ServiceAdapter {
	return &ServiceAdapter{
		client: client,
	}
}

// SendServiceActionNotification sends a service action notification
func (a *ServiceAdapter) SendServiceActionNotification(ctx context.Context, n service.ServiceActionNotification) error {
	metadata := make(map[string]string, len(n.Metadata)+5)
	for k, v := range n.Metadata {
		metadata[k] = v
	}
	metadata["notification_type"] = string(n.Type)
	metadata["status"] = string(n.Status)
	if n.Title != "" {
		metadata["title"] = n.Title
	}
	if n.PreviousStatus != "" {
		metadata["previous_status"] = string(n.PreviousStatus)
	}
	if !n.ActionDate.IsZero() {
		metadata["action_date"] = n.ActionDate.Format(time.DateOnly)
	}

	return a.client.SendNotificationWithContext(ctx, notification.Notification{
		Level:      mapNotificationLevel(n),
		Company:    n.Company,
		Computer:   n.ComputerName,
		ServiceTag: n.ServiceTag,
		Message:    n.Message,
		Metadata:   metadata,
	})
}

// mapNotificationLevel maps service notification types to client notification levels.
// A reopened action is worth a warning.
func mapNotificationLevel(n service.ServiceActionNotification) notification.NotificationLevel {
	switch n.Type {
	case service.NotificationTypeServiceActionStatusChanged:
		if n.PreviousStatus == model.StatusDone && n.Status == model.StatusOpen {
			return notification.LevelWarning
		}
		return notification.LevelInfo
	default:
		return notification.LevelInfo
	}
}
