package models

import (
	"clinic-booking-service/internal/pkg/constvars"
	"time"
)

// NotificationMessage is the body published on the notification queue.
type NotificationMessage struct {
	Kind       constvars.NotificationKind `json:"kind"`
	Booking    Booking                    `json:"booking"`
	RequestID  string                     `json:"request_id,omitempty"`
	OccurredAt time.Time                  `json:"occurred_at"`
}
