// File: services/notification/notification.go
package notification

import (
	"context"

	"inkstudio/utils"

	"go.uber.org/zap"
)

// NotificationService delivers client-facing messages. Delivery transport is
// pluggable; the engine only decides what to send and when.
type NotificationService interface {
	SendClientReminder(ctx context.Context, clientID, kind string, data map[string]string) error
	SendBookingConfirmation(ctx context.Context, clientID, bookingID string) error
}

// logNotifier writes notifications to the log instead of an external channel.
// It stands in until a push or SMS transport is configured.
type logNotifier struct{}

// NewLogNotifier returns the logging NotificationService.
func NewLogNotifier() NotificationService {
	return &logNotifier{}
}

func (n *logNotifier) SendClientReminder(_ context.Context, clientID, kind string, data map[string]string) error {
	utils.GetLogger().Info("client reminder",
		zap.String("clientId", clientID),
		zap.String("kind", kind),
		zap.Any("data", data))
	return nil
}

func (n *logNotifier) SendBookingConfirmation(_ context.Context, clientID, bookingID string) error {
	utils.GetLogger().Info("booking confirmation",
		zap.String("clientId", clientID),
		zap.String("bookingId", bookingID))
	return nil
}
