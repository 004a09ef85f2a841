package payments

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/dto/responses"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/metrics"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type paymentUsecase struct {
	BookingRepository contracts.BookingRepository
	PaymentRepository contracts.PaymentRepository
	LockerService     contracts.LockerService
	PaymentGateway    contracts.PaymentGatewayService
	Notifier          contracts.Notifier
	Metrics           *metrics.BookingMetrics
	LockExpiration    time.Duration
	Log               *zap.Logger
	now               func() time.Time
}

func NewPaymentUsecase(
	bookingRepository contracts.BookingRepository,
	paymentRepository contracts.PaymentRepository,
	lockerService contracts.LockerService,
	paymentGateway contracts.PaymentGatewayService,
	notifier contracts.Notifier,
	bookingMetrics *metrics.BookingMetrics,
	lockExpiration time.Duration,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	return &paymentUsecase{
		BookingRepository: bookingRepository,
		PaymentRepository: paymentRepository,
		LockerService:     lockerService,
		PaymentGateway:    paymentGateway,
		Notifier:          notifier,
		Metrics:           bookingMetrics,
		LockExpiration:    lockExpiration,
		Log:               logger,
		now:               time.Now,
	}
}

// ConfirmPayment records transactionId against the booking and marks it paid.
// Replaying the transaction that already paid the booking returns the booking
// unchanged.
func (uc *paymentUsecase) ConfirmPayment(ctx context.Context, bookingID string, request *requests.ConfirmPayment) (*responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.ConfirmPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
		zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
	)

	lockKey := fmt.Sprintf(constvars.RedisKeyPaymentLockFormat, bookingID)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, uc.LockExpiration)
	if err != nil {
		uc.Log.Warn("paymentUsecase.ConfirmPayment error acquiring lock, continuing on storage constraints",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, lockKey),
			zap.Error(err),
		)
	} else if !acquired {
		uc.Metrics.ObservePayment(constvars.PaymentOutcomeFailed)
		uc.Log.Info("paymentUsecase.ConfirmPayment lock held by another confirmation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, lockKey),
		)
		return nil, exceptions.ErrPaymentLockNotAcquired(bookingID)
	} else {
		defer func() {
			unlockErr := uc.LockerService.Unlock(context.WithoutCancel(ctx), lockKey, lockValue)
			if unlockErr != nil {
				uc.Log.Warn("paymentUsecase.ConfirmPayment error releasing lock",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingRedisKey, lockKey),
					zap.Error(unlockErr),
				)
			}
		}()
	}

	response, err := uc.confirm(ctx, bookingID, request)
	if err != nil {
		uc.Metrics.ObservePayment(constvars.PaymentOutcomeFailed)
		uc.Log.Error("paymentUsecase.ConfirmPayment error confirming payment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, bookingID),
			zap.Error(err),
		)
		return nil, err
	}
	return response, nil
}

func (uc *paymentUsecase) confirm(ctx context.Context, bookingID string, request *requests.ConfirmPayment) (*responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	booking, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotFound(nil, bookingID)
	}
	if booking.Paid {
		return uc.resolvePaidBooking(ctx, booking, request.TransactionID)
	}

	err = uc.recordPayment(ctx, booking, request)
	if err != nil {
		return nil, err
	}

	paidAt := uc.now().UTC()
	updated, err := uc.BookingRepository.MarkPaid(ctx, bookingID, request.TransactionID, paidAt)
	if err != nil {
		return nil, err
	}
	if !updated {
		current, err := uc.BookingRepository.FindByID(ctx, bookingID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, exceptions.ErrBookingNotFound(nil, bookingID)
		}
		return uc.resolvePaidBooking(ctx, current, request.TransactionID)
	}

	booking.Paid = true
	booking.TransactionID = request.TransactionID
	booking.PaidAt = &paidAt

	uc.Notifier.Notify(ctx, constvars.NotificationKindPaymentConfirmed, *booking)
	uc.Metrics.ObservePayment(constvars.PaymentOutcomeConfirmed)

	uc.Log.Info("paymentUsecase.ConfirmPayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
		zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
	)
	response := booking.ConvertIntoResponse()
	return &response, nil
}

// recordPayment stores the single payment record of a booking. A record
// left by an interrupted attempt is reused or pointed at the new transaction.
func (uc *paymentUsecase) recordPayment(ctx context.Context, booking *models.Booking, request *requests.ConfirmPayment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	existing, err := uc.PaymentRepository.FindByTransactionID(ctx, request.TransactionID)
	if err != nil {
		return err
	}
	if existing != nil {
		return uc.checkPaymentOwner(existing, booking, request.TransactionID)
	}

	recordedAt := uc.now().UTC()
	leftover, err := uc.PaymentRepository.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return err
	}
	if leftover != nil {
		err = uc.PaymentRepository.ReplaceTransaction(ctx, leftover.ID, request.TransactionID, request.Amount, recordedAt)
	} else {
		_, err = uc.PaymentRepository.Create(ctx, &models.Payment{
			BookingID:     booking.ID,
			TransactionID: request.TransactionID,
			Amount:        request.Amount,
			CreatedAt:     recordedAt,
		})
	}
	if err != nil {
		return uc.resolveDuplicatePayment(ctx, booking, request.TransactionID, err)
	}

	uc.Log.Info("paymentUsecase.recordPayment payment recorded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
		zap.Int64(constvars.LoggingAmountKey, request.Amount),
		zap.Bool("replaced", leftover != nil),
	)
	return nil
}

func (uc *paymentUsecase) resolveDuplicatePayment(ctx context.Context, booking *models.Booking, transactionID string, err error) error {
	var duplicateErr *exceptions.DuplicateKeyError
	if !errors.As(err, &duplicateErr) {
		return err
	}
	if duplicateErr.Index == constvars.MongoIndexPaymentBooking {
		return exceptions.ErrPaymentLockNotAcquired(booking.ID.Hex())
	}

	existing, err := uc.PaymentRepository.FindByTransactionID(ctx, transactionID)
	if err != nil {
		return err
	}
	if existing == nil {
		return exceptions.ErrMongoDBInsertDocument(duplicateErr)
	}
	return uc.checkPaymentOwner(existing, booking, transactionID)
}

func (uc *paymentUsecase) checkPaymentOwner(payment *models.Payment, booking *models.Booking, transactionID string) error {
	if payment.BookingID != booking.ID {
		return exceptions.ErrTransactionAlreadyUsed(transactionID, payment.BookingID.Hex())
	}
	return nil
}

func (uc *paymentUsecase) resolvePaidBooking(ctx context.Context, booking *models.Booking, transactionID string) (*responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if booking.TransactionID != transactionID {
		return nil, exceptions.ErrBookingAlreadyPaid(booking.ID.Hex(), booking.TransactionID)
	}

	uc.Metrics.ObservePayment(constvars.PaymentOutcomeReplayed)
	uc.Log.Info("paymentUsecase.ConfirmPayment replayed transaction",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, booking.ID.Hex()),
		zap.String(constvars.LoggingTransactionIDKey, transactionID),
	)
	response := booking.ConvertIntoResponse()
	return &response, nil
}

// CreatePaymentIntent charges price, given in whole currency units.
func (uc *paymentUsecase) CreatePaymentIntent(ctx context.Context, request *requests.CreatePaymentIntent) (*responses.PaymentIntent, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CreatePaymentIntent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAmountKey, request.Price),
	)

	idempotencyKey := request.IdempotencyKey
	if idempotencyKey == "" {
		idempotencyKey = utils.GenerateIdempotencyKey(constvars.ResourcePayments)
	}

	clientSecret, err := uc.PaymentGateway.CreatePaymentIntent(ctx, request.Price*100, idempotencyKey)
	if err != nil {
		uc.Log.Error("paymentUsecase.CreatePaymentIntent error calling payment gateway",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("paymentUsecase.CreatePaymentIntent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.PaymentIntent{ClientSecret: clientSecret}, nil
}
