package contracts

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/dto/responses"
	"context"
)

type TreatmentUsecase interface {
	FindAllNames(ctx context.Context) ([]responses.TreatmentName, error)
	FindAvailable(ctx context.Context, date string) ([]responses.Availability, error)
	UpsertTreatment(ctx context.Context, request *requests.UpsertTreatment) (*responses.Treatment, error)
}

type TreatmentRepository interface {
	FindAll(ctx context.Context) ([]models.Treatment, error)
	FindByName(ctx context.Context, name string) (*models.Treatment, error)
	Upsert(ctx context.Context, treatment *models.Treatment) (*models.Treatment, error)
}
