package contracts

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.CreateBooking, error)
	FindBookingsByPatient(ctx context.Context, requester, patient string) ([]responses.Booking, error)
	FindBookingByID(ctx context.Context, bookingID string) (*responses.Booking, error)
}

// BookingRepository persists bookings. Create reports a uniqueness violation
// as *exceptions.DuplicateKeyError naming the index that collided.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) (string, error)
	FindByKey(ctx context.Context, treatment, date, patient string) (*models.Booking, error)
	FindBySlot(ctx context.Context, treatment, date, slot string) (*models.Booking, error)
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	FindByPatient(ctx context.Context, patient string) ([]models.Booking, error)
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
	MarkPaid(ctx context.Context, bookingID, transactionID string, paidAt time.Time) (bool, error)
	EnsureIndexes(ctx context.Context) error
}
