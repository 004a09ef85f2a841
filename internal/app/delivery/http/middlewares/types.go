package middlewares

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/pkg/metrics"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	UserUsecase    contracts.UserUsecase
	InternalConfig *config.InternalConfig
	RequestMetrics *metrics.BookingMetrics
}

func NewMiddlewares(logger *zap.Logger, userUsecase contracts.UserUsecase, internalConfig *config.InternalConfig, bookingMetrics *metrics.BookingMetrics) *Middlewares {
	return &Middlewares{
		Log:            logger,
		UserUsecase:    userUsecase,
		InternalConfig: internalConfig,
		RequestMetrics: bookingMetrics,
	}
}
