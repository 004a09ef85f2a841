package contracts

import (
	"clinic-booking-service/internal/pkg/dto/requests"
	"context"
)

type EmailSender interface {
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
}
