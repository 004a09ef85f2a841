package contracts

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/dto/responses"
	"context"
)

type UserUsecase interface {
	UpsertUser(ctx context.Context, request *requests.UpsertUser) (*responses.UserToken, error)
	FindAll(ctx context.Context) ([]responses.User, error)
	IsAdmin(ctx context.Context, email string) (*responses.AdminStatus, error)
	MakeAdmin(ctx context.Context, email string) (*responses.User, error)
}

type UserRepository interface {
	Upsert(ctx context.Context, user *models.User) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	SetRole(ctx context.Context, email, role string) (*models.User, error)
	EnsureIndexes(ctx context.Context) error
}
