package contracts

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"context"
)

// Notifier hands booking events to delivery without blocking the caller.
type Notifier interface {
	Notify(ctx context.Context, kind constvars.NotificationKind, booking models.Booking)
}

// NotificationPublisher writes one message to the notification queue.
type NotificationPublisher interface {
	Publish(ctx context.Context, message *models.NotificationMessage) error
}
