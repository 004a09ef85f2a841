package contracts

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/dto/responses"
	"context"
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error)
	FindAll(ctx context.Context) ([]responses.Doctor, error)
	DeleteByEmail(ctx context.Context, email string) error
}

type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) (string, error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByEmail(ctx context.Context, email string) (*models.Doctor, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
	EnsureIndexes(ctx context.Context) error
}
