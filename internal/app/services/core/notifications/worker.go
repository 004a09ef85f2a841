package notifications

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

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// MessageConsumer is the part of *amqp091.Channel the worker needs.
type MessageConsumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp091.Table) (<-chan amqp091.Delivery, error)
}

type WorkerOptions struct {
	Queue           string
	FromEmail       string
	FromName        string
	ReceiptBucket   string
	ArchiveReceipts bool
	SendTimeout     time.Duration
}

// Worker turns queued booking events into patient emails. Deliveries are
// acknowledged manually: malformed payloads are dropped and a failed send is
// requeued once.
type Worker struct {
	log      *zap.Logger
	consumer MessageConsumer
	sender   contracts.EmailSender
	storage  contracts.Storage
	metrics  *metrics.BookingMetrics
	opts     WorkerOptions

	stop    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

func NewWorker(
	log *zap.Logger,
	consumer MessageConsumer,
	sender contracts.EmailSender,
	storage contracts.Storage,
	bookingMetrics *metrics.BookingMetrics,
	opts WorkerOptions,
) *Worker {
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = 15 * time.Second
	}
	return &Worker{
		log:      log,
		consumer: consumer,
		sender:   sender,
		storage:  storage,
		metrics:  bookingMetrics,
		opts:     opts,
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// Start subscribes to the queue and returns a stop function that blocks until
// the delivery in progress has been handled.
func (w *Worker) Start(ctx context.Context) (stop func(), err error) {
	deliveries, err := w.consumer.Consume(w.opts.Queue, "", false, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	w.log.Info("notifications.Worker started",
		zap.String(constvars.LoggingQueueKey, w.opts.Queue),
	)

	go func() {
		defer close(w.stopped)
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			case delivery, ok := <-deliveries:
				if !ok {
					w.log.Warn("notifications.Worker delivery channel closed",
						zap.String(constvars.LoggingQueueKey, w.opts.Queue),
					)
					return
				}
				w.handleDelivery(ctx, delivery)
			}
		}
	}()

	return func() {
		w.once.Do(func() { close(w.stop) })
		<-w.stopped
	}, nil
}

func (w *Worker) handleDelivery(ctx context.Context, delivery amqp091.Delivery) {
	var message models.NotificationMessage
	err := json.Unmarshal(delivery.Body, &message)
	if err != nil {
		w.log.Error("notifications.Worker error unmarshaling message, dropping",
			zap.String(constvars.LoggingQueueKey, w.opts.Queue),
			zap.Error(err),
		)
		w.metrics.ObserveNotification("unknown", constvars.NotificationStatusDropped)
		w.reject(delivery, false)
		return
	}

	kind := string(message.Kind)
	payload, err := utils.BuildNotificationEmailPayload(w.opts.FromEmail, w.opts.FromName, message.Kind, message.Booking)
	if err == nil && message.Booking.Patient == "" {
		err = fmt.Errorf("booking %s has no patient address", message.Booking.ID.Hex())
	}
	if err != nil {
		w.log.Error("notifications.Worker error rendering email, dropping",
			zap.String(constvars.LoggingRequestIDKey, message.RequestID),
			zap.String(constvars.LoggingNotificationKind, kind),
			zap.Error(err),
		)
		w.metrics.ObserveNotification(kind, constvars.NotificationStatusDropped)
		w.reject(delivery, false)
		return
	}

	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, message.RequestID)
	sendCtx, cancel := context.WithTimeout(ctx, w.opts.SendTimeout)
	defer cancel()

	err = w.sender.SendEmail(sendCtx, payload)
	if err != nil {
		requeue := !delivery.Redelivered
		w.log.Error("notifications.Worker error sending email",
			zap.String(constvars.LoggingRequestIDKey, message.RequestID),
			zap.String(constvars.LoggingNotificationKind, kind),
			zap.String(constvars.LoggingBookingIDKey, message.Booking.ID.Hex()),
			zap.Bool(constvars.LoggingRequeueKey, requeue),
			zap.Error(err),
		)
		w.metrics.ObserveNotification(kind, constvars.NotificationStatusFailed)
		w.reject(delivery, requeue)
		return
	}

	if message.Kind == constvars.NotificationKindPaymentConfirmed && w.opts.ArchiveReceipts {
		w.archiveReceipt(sendCtx, &message)
	}

	w.metrics.ObserveNotification(kind, constvars.NotificationStatusDelivered)
	w.log.Info("notifications.Worker email delivered",
		zap.String(constvars.LoggingRequestIDKey, message.RequestID),
		zap.String(constvars.LoggingNotificationKind, kind),
		zap.String(constvars.LoggingBookingIDKey, message.Booking.ID.Hex()),
	)
	if err := delivery.Ack(false); err != nil {
		w.log.Error("notifications.Worker error acknowledging delivery", zap.Error(err))
	}
}

// archiveReceipt is best-effort, a storage failure never blocks the email.
func (w *Worker) archiveReceipt(ctx context.Context, message *models.NotificationMessage) {
	if w.storage == nil {
		return
	}
	objectKey := utils.BuildReceiptObjectKey(message.Booking.ID.Hex(), message.Booking.TransactionID)
	receipt := utils.BuildReceiptHTML(message.Booking)

	_, err := w.storage.PutObject(ctx, w.opts.ReceiptBucket, objectKey, []byte(receipt), constvars.MIMETextHTML)
	if err != nil {
		w.log.Warn("notifications.Worker error archiving receipt",
			zap.String(constvars.LoggingRequestIDKey, message.RequestID),
			zap.String(constvars.LoggingObjectKey, objectKey),
			zap.Error(err),
		)
		return
	}
	w.log.Info("notifications.Worker receipt archived",
		zap.String(constvars.LoggingRequestIDKey, message.RequestID),
		zap.String(constvars.LoggingObjectKey, objectKey),
	)
}

func (w *Worker) reject(delivery amqp091.Delivery, requeue bool) {
	if err := delivery.Nack(false, requeue); err != nil {
		w.log.Error("notifications.Worker error rejecting delivery", zap.Error(err))
	}
}
