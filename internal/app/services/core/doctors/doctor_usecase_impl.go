package doctors

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/dto/responses"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"errors"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	Log              *zap.Logger
}

func NewDoctorUsecase(doctorRepository contracts.DoctorRepository, logger *zap.Logger) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		Log:              logger,
	}
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	if request.Img != "" {
		err := utils.ValidateBase64Image(request.Img, constvars.DoctorImageAllowedFormats, constvars.DoctorImageMaxSizeInMegabytes)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
	}

	doctor := &models.Doctor{
		Name:      request.Name,
		Email:     request.Email,
		Specialty: request.Specialty,
		Img:       request.Img,
	}
	_, err := uc.DoctorRepository.Create(ctx, doctor)
	if err != nil {
		var duplicateErr *exceptions.DuplicateKeyError
		if errors.As(err, &duplicateErr) {
			return nil, exceptions.ErrDoctorAlreadyExist(err, request.Email)
		}
		uc.Log.Error("doctorUsecase.CreateDoctor error creating doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := doctor.ConvertIntoResponse()
	uc.Log.Info("doctorUsecase.CreateDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, response.Email),
	)
	return &response, nil
}

func (uc *doctorUsecase) FindAll(ctx context.Context) ([]responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("doctorUsecase.FindAll error fetching doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Doctor, len(doctors))
	for i, eachDoctor := range doctors {
		response[i] = eachDoctor.ConvertIntoResponse()
	}
	return response, nil
}

func (uc *doctorUsecase) DeleteByEmail(ctx context.Context, email string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.DeleteByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	deleted, err := uc.DoctorRepository.DeleteByEmail(ctx, email)
	if err != nil {
		uc.Log.Error("doctorUsecase.DeleteByEmail error deleting doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if deleted == 0 {
		return exceptions.ErrDoctorNotExist(nil, email)
	}
	return nil
}
