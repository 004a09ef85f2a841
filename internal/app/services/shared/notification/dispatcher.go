package notification

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/metrics"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Dispatcher implements contracts.Notifier. Every Notify call publishes in its
// own goroutine so the ledger never waits on the broker.
type Dispatcher struct {
	publisher contracts.NotificationPublisher
	log       *zap.Logger
	metrics   *metrics.BookingMetrics
	timeout   time.Duration

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func NewDispatcher(publisher contracts.NotificationPublisher, logger *zap.Logger, bookingMetrics *metrics.BookingMetrics, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Dispatcher{
		publisher: publisher,
		log:       logger,
		metrics:   bookingMetrics,
		timeout:   timeout,
	}
}

func (d *Dispatcher) Notify(ctx context.Context, kind constvars.NotificationKind, booking models.Booking) {
	requestID := utils.GetRequestID(ctx)

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.log.Warn("Dispatcher.Notify called after Close, event dropped",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingNotificationKind, string(kind)),
			zap.String(constvars.LoggingBookingIDKey, booking.ID.Hex()),
		)
		d.metrics.ObserveNotification(string(kind), constvars.NotificationStatusDropped)
		return
	}
	d.wg.Add(1)
	d.mu.Unlock()

	message := &models.NotificationMessage{
		Kind:       kind,
		Booking:    booking,
		RequestID:  requestID,
		OccurredAt: time.Now().UTC(),
	}

	go d.publish(context.WithoutCancel(ctx), message)
}

func (d *Dispatcher) publish(parent context.Context, message *models.NotificationMessage) {
	defer d.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("Dispatcher.publish recovered from panic",
				zap.String(constvars.LoggingRequestIDKey, message.RequestID),
				zap.Error(fmt.Errorf("%v", r)),
			)
			d.metrics.ObserveNotification(string(message.Kind), constvars.NotificationStatusFailed)
		}
	}()

	ctx, cancel := context.WithTimeout(parent, d.timeout)
	defer cancel()

	err := d.publisher.Publish(ctx, message)
	if err != nil {
		d.log.Error("Dispatcher.publish error publishing notification",
			zap.String(constvars.LoggingRequestIDKey, message.RequestID),
			zap.String(constvars.LoggingNotificationKind, string(message.Kind)),
			zap.String(constvars.LoggingBookingIDKey, message.Booking.ID.Hex()),
			zap.Error(err),
		)
		d.metrics.ObserveNotification(string(message.Kind), constvars.NotificationStatusFailed)
		return
	}

	d.log.Info("Dispatcher.publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, message.RequestID),
		zap.String(constvars.LoggingNotificationKind, string(message.Kind)),
		zap.String(constvars.LoggingBookingIDKey, message.Booking.ID.Hex()),
	)
	d.metrics.ObserveNotification(string(message.Kind), constvars.NotificationStatusPublished)
}

// Close stops accepting events and waits for in-flight publishes.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	d.wg.Wait()
}
