package contracts

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/dto/responses"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentUsecase interface {
	ConfirmPayment(ctx context.Context, bookingID string, request *requests.ConfirmPayment) (*responses.Booking, error)
	CreatePaymentIntent(ctx context.Context, request *requests.CreatePaymentIntent) (*responses.PaymentIntent, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) (string, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error)
	FindByBookingID(ctx context.Context, bookingID primitive.ObjectID) (*models.Payment, error)
	ReplaceTransaction(ctx context.Context, paymentID primitive.ObjectID, transactionID string, amount int64, createdAt time.Time) error
	EnsureIndexes(ctx context.Context) error
}

type PaymentGatewayService interface {
	CreatePaymentIntent(ctx context.Context, amount int64, idempotencyKey string) (string, error)
}
