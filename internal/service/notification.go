package service

import (
	"context"
	"time"

	"esupport-inventory/internal/model"
)

// NotificationService interface for sending notifications
type NotificationService interface {
	SendServiceActionNotification(ctx context.Context, notification ServiceActionNotification) error
}

// NotificationType represents the type of notification
type NotificationType string

const (
	NotificationTypeServiceActionCreated       NotificationType = "service_action_created"
	NotificationTypeServiceActionStatusChanged NotificationType = "service_action_status_changed"
)

// ServiceActionNotification describes a service action event on a computer
type ServiceActionNotification struct {
	Type           NotificationType
	Company        string
	ComputerName   string
	ServiceTag     string
	Title          string
	Status         model.ServiceStatus
	PreviousStatus model.ServiceStatus
	ActionDate     time.Time
	Message        string
	Metadata       map[string]string
}

// notificationTimeout bounds a single asynchronous notification, retries included
const notificationTimeout = 30 * time.Second
