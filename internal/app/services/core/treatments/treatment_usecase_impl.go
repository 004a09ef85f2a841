package treatments

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/dto/responses"
	"context"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type treatmentUsecase struct {
	TreatmentRepository contracts.TreatmentRepository
	BookingRepository   contracts.BookingRepository
	RedisRepository     contracts.RedisRepository
	CacheTTL            time.Duration
	Log                 *zap.Logger
}

func NewTreatmentUsecase(
	treatmentRepository contracts.TreatmentRepository,
	bookingRepository contracts.BookingRepository,
	redisRepository contracts.RedisRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) contracts.TreatmentUsecase {
	return &treatmentUsecase{
		TreatmentRepository: treatmentRepository,
		BookingRepository:   bookingRepository,
		RedisRepository:     redisRepository,
		CacheTTL:            cacheTTL,
		Log:                 logger,
	}
}

func (uc *treatmentUsecase) FindAllNames(ctx context.Context) ([]responses.TreatmentName, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("treatmentUsecase.FindAllNames called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	catalog, err := uc.loadCatalog(ctx)
	if err != nil {
		uc.Log.Error("treatmentUsecase.FindAllNames error loading catalog",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.TreatmentName, len(catalog))
	for i, eachTreatment := range catalog {
		response[i] = eachTreatment.ConvertIntoNameResponse()
	}

	uc.Log.Info("treatmentUsecase.FindAllNames succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, nil
}

func (uc *treatmentUsecase) FindAvailable(ctx context.Context, date string) ([]responses.Availability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("treatmentUsecase.FindAvailable called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date),
	)

	catalog, err := uc.loadCatalog(ctx)
	if err != nil {
		uc.Log.Error("treatmentUsecase.FindAvailable error loading catalog",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	bookings, err := uc.BookingRepository.FindByDate(ctx, date)
	if err != nil {
		uc.Log.Error("treatmentUsecase.FindAvailable error fetching bookings for date",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDateKey, date),
			zap.Error(err),
		)
		return nil, err
	}

	response := ComputeAvailability(catalog, bookings, date)

	uc.Log.Info("treatmentUsecase.FindAvailable succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTreatmentCountKey, len(response)),
		zap.Int(constvars.LoggingBookingCountKey, len(bookings)),
	)
	return response, nil
}

func (uc *treatmentUsecase) UpsertTreatment(ctx context.Context, request *requests.UpsertTreatment) (*responses.Treatment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("treatmentUsecase.UpsertTreatment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTreatmentKey, request.Name),
	)

	saved, err := uc.TreatmentRepository.Upsert(ctx, &models.Treatment{
		Name:  request.Name,
		Slots: request.Slots,
		Price: request.Price,
	})
	if err != nil {
		uc.Log.Error("treatmentUsecase.UpsertTreatment error saving treatment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.RedisRepository.Delete(ctx, constvars.RedisKeyTreatmentCatalog)
	if err != nil {
		uc.Log.Warn("treatmentUsecase.UpsertTreatment error invalidating catalog cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, constvars.RedisKeyTreatmentCatalog),
			zap.Error(err),
		)
	}

	response := saved.ConvertIntoResponse()
	uc.Log.Info("treatmentUsecase.UpsertTreatment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTreatmentKey, response.Name),
	)
	return &response, nil
}

// loadCatalog reads through the Redis cache. Cache failures fall back to MongoDB.
func (uc *treatmentUsecase) loadCatalog(ctx context.Context) ([]models.Treatment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyTreatmentCatalog)
	if err != nil {
		uc.Log.Warn("treatmentUsecase.loadCatalog error retrieving catalog from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	if cached != "" {
		var catalog []models.Treatment
		err = json.Unmarshal([]byte(cached), &catalog)
		if err == nil {
			uc.Log.Info("treatmentUsecase.loadCatalog data found in Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingTreatmentCountKey, len(catalog)),
			)
			return catalog, nil
		}
		uc.Log.Warn("treatmentUsecase.loadCatalog error unmarshaling Redis data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	catalog, err := uc.TreatmentRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	err = uc.RedisRepository.Set(ctx, constvars.RedisKeyTreatmentCatalog, catalog, uc.CacheTTL)
	if err != nil {
		uc.Log.Warn("treatmentUsecase.loadCatalog error caching catalog in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return catalog, nil
}
