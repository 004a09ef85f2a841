package users

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/dto/responses"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	JWTSecret      string
	JWTExpiry      time.Duration
	Log            *zap.Logger
}

func NewUserUsecase(
	userRepository contracts.UserRepository,
	jwtSecret string,
	jwtExpiry time.Duration,
	logger *zap.Logger,
) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		JWTSecret:      jwtSecret,
		JWTExpiry:      jwtExpiry,
		Log:            logger,
	}
}

func (uc *userUsecase) UpsertUser(ctx context.Context, request *requests.UpsertUser) (*responses.UserToken, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpsertUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	user, err := uc.UserRepository.Upsert(ctx, &models.User{
		Email: request.Email,
		Name:  request.Name,
	})
	if err != nil {
		uc.Log.Error("userUsecase.UpsertUser error saving user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateJWT(user.Email, uc.JWTSecret, uc.JWTExpiry)
	if err != nil {
		uc.Log.Error("userUsecase.UpsertUser error generating token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("userUsecase.UpsertUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, user.Email),
	)
	return &responses.UserToken{
		User:  user.ConvertIntoResponse(),
		Token: token,
	}, nil
}

func (uc *userUsecase) FindAll(ctx context.Context) ([]responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	users, err := uc.UserRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("userUsecase.FindAll error fetching users",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.User, len(users))
	for i, eachUser := range users {
		response[i] = eachUser.ConvertIntoResponse()
	}

	uc.Log.Info("userUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, nil
}

// IsAdmin reports false for unknown users.
func (uc *userUsecase) IsAdmin(ctx context.Context, email string) (*responses.AdminStatus, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		uc.Log.Error("userUsecase.IsAdmin error fetching user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, email),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.AdminStatus{Admin: user != nil && user.IsAdmin()}, nil
}

func (uc *userUsecase) MakeAdmin(ctx context.Context, email string) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.MakeAdmin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	user, err := uc.UserRepository.SetRole(ctx, email, constvars.RoleAdmin)
	if err != nil {
		uc.Log.Error("userUsecase.MakeAdmin error updating role",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil, email)
	}

	response := user.ConvertIntoResponse()
	uc.Log.Info("userUsecase.MakeAdmin succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)
	return &response, nil
}
