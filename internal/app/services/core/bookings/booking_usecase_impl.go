package bookings

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/dto/responses"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/metrics"
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	BookingRepository   contracts.BookingRepository
	TreatmentRepository contracts.TreatmentRepository
	Notifier            contracts.Notifier
	Metrics             *metrics.BookingMetrics
	Log                 *zap.Logger
	now                 func() time.Time
}

func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	treatmentRepository contracts.TreatmentRepository,
	notifier contracts.Notifier,
	bookingMetrics *metrics.BookingMetrics,
	logger *zap.Logger,
) contracts.BookingUsecase {
	return &bookingUsecase{
		BookingRepository:   bookingRepository,
		TreatmentRepository: treatmentRepository,
		Notifier:            notifier,
		Metrics:             bookingMetrics,
		Log:                 logger,
		now:                 time.Now,
	}
}

func (uc *bookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.CreateBooking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTreatmentKey, request.Treatment),
		zap.String(constvars.LoggingDateKey, request.Date),
		zap.String(constvars.LoggingSlotKey, request.Slot),
	)

	treatment, err := uc.TreatmentRepository.FindByName(ctx, request.Treatment)
	if err != nil {
		uc.Metrics.ObserveBooking(constvars.BookingOutcomeFailed)
		uc.Log.Error("bookingUsecase.CreateBooking error fetching treatment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if treatment == nil {
		uc.Log.Info("bookingUsecase.CreateBooking unknown treatment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTreatmentKey, request.Treatment),
		)
		return nil, exceptions.ErrTreatmentNotFound(nil, request.Treatment)
	}

	booking := &models.Booking{
		Treatment:   request.Treatment,
		Date:        request.Date,
		Slot:        request.Slot,
		Patient:     request.Patient,
		PatientName: request.PatientName,
		Phone:       request.Phone,
		Price:       request.Price,
		Paid:        false,
		CreatedAt:   uc.now().UTC(),
	}

	bookingID, err := uc.BookingRepository.Create(ctx, booking)
	if err != nil {
		var duplicateErr *exceptions.DuplicateKeyError
		if errors.As(err, &duplicateErr) {
			uc.Log.Info("bookingUsecase.CreateBooking rejected by unique index",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingErrorTypeKey, duplicateErr.Index),
			)
			return uc.rejectBooking(ctx, request)
		}

		uc.Metrics.ObserveBooking(constvars.BookingOutcomeFailed)
		uc.Log.Error("bookingUsecase.CreateBooking error creating booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Notifier.Notify(ctx, constvars.NotificationKindBookingCreated, *booking)
	uc.Metrics.ObserveBooking(constvars.BookingOutcomeAccepted)

	uc.Log.Info("bookingUsecase.CreateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)
	return &responses.CreateBooking{
		Accepted: true,
		Booking:  booking.ConvertIntoResponse(),
	}, nil
}

// rejectBooking builds the answer for a request that collided with an existing
// booking. The patient's own booking is returned in full, someone else's only
// by its slot coordinates.
func (uc *bookingUsecase) rejectBooking(ctx context.Context, request *requests.CreateBooking) (*responses.CreateBooking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	existing, err := uc.BookingRepository.FindByKey(ctx, request.Treatment, request.Date, request.Patient)
	if err != nil {
		uc.Metrics.ObserveBooking(constvars.BookingOutcomeFailed)
		uc.Log.Error("bookingUsecase.rejectBooking error fetching existing booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		uc.Metrics.ObserveBooking(constvars.BookingOutcomeDuplicate)
		uc.Log.Info("bookingUsecase.rejectBooking patient already booked this treatment on this date",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, existing.ID.Hex()),
			zap.String(constvars.LoggingRejectReasonKey, constvars.RejectReasonDuplicateBooking),
		)
		return &responses.CreateBooking{
			Accepted: false,
			Reason:   constvars.RejectReasonDuplicateBooking,
			Booking:  existing.ConvertIntoResponse(),
		}, nil
	}

	holder, err := uc.BookingRepository.FindBySlot(ctx, request.Treatment, request.Date, request.Slot)
	if err != nil {
		uc.Metrics.ObserveBooking(constvars.BookingOutcomeFailed)
		uc.Log.Error("bookingUsecase.rejectBooking error fetching slot holder",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	redacted := models.Booking{Treatment: request.Treatment, Date: request.Date, Slot: request.Slot}
	if holder != nil {
		redacted = holder.Redacted()
	}

	uc.Metrics.ObserveBooking(constvars.BookingOutcomeSlotTaken)
	uc.Log.Info("bookingUsecase.rejectBooking slot already held",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotKey, request.Slot),
		zap.String(constvars.LoggingRejectReasonKey, constvars.RejectReasonSlotTaken),
	)
	return &responses.CreateBooking{
		Accepted: false,
		Reason:   constvars.RejectReasonSlotTaken,
		Booking:  redacted.ConvertIntoResponse(),
	}, nil
}

func (uc *bookingUsecase) FindBookingsByPatient(ctx context.Context, requester, patient string) ([]responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.FindBookingsByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientKey, patient),
	)

	if requester != patient {
		uc.Log.Warn("bookingUsecase.FindBookingsByPatient requester does not own the bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, requester),
		)
		return nil, exceptions.ErrRequesterMismatch(requester, patient)
	}

	bookings, err := uc.BookingRepository.FindByPatient(ctx, patient)
	if err != nil {
		uc.Log.Error("bookingUsecase.FindBookingsByPatient error fetching bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Booking, len(bookings))
	for i, eachBooking := range bookings {
		response[i] = eachBooking.ConvertIntoResponse()
	}

	uc.Log.Info("bookingUsecase.FindBookingsByPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBookingCountKey, len(response)),
	)
	return response, nil
}

func (uc *bookingUsecase) FindBookingByID(ctx context.Context, bookingID string) (*responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.FindBookingByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	booking, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		uc.Log.Error("bookingUsecase.FindBookingByID error fetching booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if booking == nil {
		uc.Log.Info("bookingUsecase.FindBookingByID booking not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, bookingID),
		)
		return nil, exceptions.ErrBookingNotFound(nil, bookingID)
	}

	response := booking.ConvertIntoResponse()
	uc.Log.Info("bookingUsecase.FindBookingByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)
	return &response, nil
}
