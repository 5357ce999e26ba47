package notification

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"esupport-inventory/internal/config"
)

// Source identifies this service in outgoing notifications
const Source = "esupport-inventory"

// NotificationLevel represents the severity level of a notification
type NotificationLevel string

const (
	LevelInfo     NotificationLevel = "info"
	LevelWarning  NotificationLevel = "warning"
	LevelError    NotificationLevel = "error"
	LevelCritical NotificationLevel = "critical"
)

// Notifier is an interface for sending notifications with context support
type Notifier interface {
	SendNotification(notification Notification) error
	SendNotificationWithContext(ctx context.Context, notification Notification) error
	IsHealthy(ctx context.Context) bool
}

// errPermanent marks failures that a retry cannot fix
var errPermanent = stderrors.New("permanent notification failure")

// notificationClient is the concrete implementation of the Notifier interface
type notificationClient struct {
	config config.NotificationConfig
	client *http.Client
	logger *zap.Logger
}

// DefaultConfig returns a default configuration for the notification client
func DefaultConfig(url string) config.NotificationConfig {
	return config.NotificationConfig{
		URL:            url,
		Timeout:        10 * time.Second,
		RetryAttempts:  3,
		RetryDelay:     time.Second,
		MaxPayloadSize: 1024 * 1024, // 1MB
	}
}

// NewNotifier returns the webhook notifier for cfg, or a no-op notifier when no URL is configured.
func NewNotifier(cfg config.NotificationConfig, logger *zap.Logger) Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !cfg.Enabled() {
		logger.Info("notifications disabled: NOTIFIER_URL is empty")
		return NopNotifier{}
	}

	return &notificationClient{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger.Named("notifier"),
	}
}

// Notification represents the payload for the notification service
type Notification struct {
	Level      NotificationLevel `json:"level"`
	Company    string            `json:"company,omitempty"`
	Computer   string            `json:"computer,omitempty"`
	ServiceTag string            `json:"service_tag,omitempty"`
	Message    string            `json:"message"`
	Timestamp  time.Time         `json:"timestamp,omitempty"`
	Source     string            `json:"source,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// Validate checks if the notification is valid
func (n *Notification) Validate() error {
	if n.Level == "" {
		return fmt.Errorf("notification level is required")
	}
	if n.Message == "" {
		return fmt.Errorf("notification message is required")
	}
	if len(n.Message) > 1000 {
		return fmt.Errorf("notification message too long (max 1000 characters)")
	}

	switch n.Level {
	case LevelInfo, LevelWarning, LevelError, LevelCritical:
		return nil
	default:
		return fmt.Errorf("invalid notification level: %s", n.Level)
	}
}

// SendNotification sends a notification to the notification service
func (c *notificationClient) SendNotification(notification Notification) error {
	ctx, cancel := context.WithTimeout(context.Background(), c.config.Timeout)
	defer cancel()
	return c.SendNotificationWithContext(ctx, notification)
}

// SendNotificationWithContext sends a notification with context support, retrying
// transient failures with a linear backoff.
func (c *notificationClient) SendNotificationWithContext(ctx context.Context, notification Notification) error {
	if err := notification.Validate(); err != nil {
		return fmt.Errorf("invalid notification: %w", err)
	}

	if notification.Timestamp.IsZero() {
		notification.Timestamp = time.Now().UTC()
	}
	if notification.Source == "" {
		notification.Source = Source
	}

	var lastErr error
	for attempt := 0; attempt <= c.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.config.RetryDelay * time.Duration(attempt)):
			}
			c.logger.Debug("retrying notification",
				zap.Int("attempt", attempt+1),
				zap.Int("max_attempts", c.config.RetryAttempts+1),
			)
		}

		err := c.sendNotificationAttempt(ctx, notification)
		if err == nil {
			return nil
		}

		lastErr = err
		c.logger.Warn("notification attempt failed", zap.Int("attempt", attempt+1), zap.Error(err))
		if stderrors.Is(err, errPermanent) {
			return err
		}
	}

	return fmt.Errorf("failed to send notification after %d attempts: %w", c.config.RetryAttempts+1, lastErr)
}

// sendNotificationAttempt performs a single notification send attempt
func (c *notificationClient) sendNotificationAttempt(ctx context.Context, notification Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal notification: %v", errPermanent, err)
	}

	if int64(len(payload)) > c.config.MaxPayloadSize {
		return fmt.Errorf("%w: payload too large: %d bytes (max %d)", errPermanent, len(payload), c.config.MaxPayloadSize)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", errPermanent, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", Source+"/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	switch {
	case resp.StatusCode >= 500:
		return fmt.Errorf("notification service returned error status %d: %s", resp.StatusCode, string(body))
	case resp.StatusCode >= 400:
		// client errors will not go away on retry
		return fmt.Errorf("%w: notification service returned status %d: %s", errPermanent, resp.StatusCode, string(body))
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusAccepted {
		c.logger.Warn("unexpected status code from notification service", zap.Int("status", resp.StatusCode))
	}

	return nil
}

// IsHealthy checks if the notification service is healthy
func (c *notificationClient) IsHealthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.config.URL, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", Source+"/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode < 500
}

// NopNotifier discards every notification. It is used when no webhook is configured.
type NopNotifier struct{}

func (NopNotifier) SendNotification(Notification) error { return nil }

func (NopNotifier) SendNotificationWithContext(context.Context, Notification) error { return nil }

func (NopNotifier) IsHealthy(context.Context) bool { return true }
