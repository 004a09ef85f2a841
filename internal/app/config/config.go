package config

import (
	"clinic-booking-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "doctors-portal"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
			URI:      utils.GetEnvString("MONGODB_URI", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "localhost"),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", ""),
		},
		SendGrid: SendGrid{
			ApiKey: utils.GetEnvString("EMAIL_SENDER_KEY", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "5000"),
			Version:                    utils.GetEnvString("APP_VERSION", ""),
			Address:                    utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", ""),
			AllowedOrigins:             splitAndTrim(utils.GetEnvString("APP_ALLOWED_ORIGINS", "*")),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			RequestTimeout:             utils.GetEnvDuration("APP_REQUEST_TIMEOUT", 10*time.Second),
		},
		JWT: JWT{
			Secret:  utils.GetEnvString("ACCESS_TOKEN_SECRET", "anyjwt"),
			ExpTime: utils.GetEnvDuration("JWT_EXP_TIME", 24*time.Hour),
		},
		Mailer: Mailer{
			EmailSender: utils.GetEnvString("APP_MAILER_EMAIL_SENDER", "noreply@doctors-portal.local"),
			SenderName:  utils.GetEnvString("APP_MAILER_SENDER_NAME", "Doctors Portal"),
		},
		Payment: Payment{
			StripeBaseUrl:       utils.GetEnvString("STRIPE_BASE_URL", "https://api.stripe.com"),
			StripeSecretKey:     utils.GetEnvString("STRIPE_SECRET_KEY", ""),
			Currency:            utils.GetEnvString("PAYMENT_CURRENCY", "usd"),
			LockExpiration:      utils.GetEnvDuration("PAYMENT_LOCK_EXPIRATION", 15*time.Second),
			RateLimitPerMinute:  utils.GetEnvInt("PAYMENT_RATE_LIMIT_PER_MINUTE", 30),
			RateLimitBurst:      utils.GetEnvInt("PAYMENT_RATE_LIMIT_BURST", 5),
			RateLimitBlockAfter: utils.GetEnvDuration("PAYMENT_RATE_LIMIT_BLOCK", time.Minute),
		},
		Notification: Notification{
			Queue:           utils.GetEnvString("APP_RABBITMQ_NOTIFICATION_QUEUE", "booking_notifications"),
			PublishTimeout:  utils.GetEnvDuration("APP_NOTIFICATION_PUBLISH_TIMEOUT", 5*time.Second),
			ReceiptBucket:   utils.GetEnvString("APP_MINIO_RECEIPT_BUCKET", "receipts"),
			ArchiveReceipts: utils.GetEnvBool("APP_ARCHIVE_RECEIPTS", true),
			Prefetch:        utils.GetEnvInt("APP_RABBITMQ_NOTIFICATION_PREFETCH", 10),
			SendTimeout:     utils.GetEnvDuration("APP_NOTIFICATION_SEND_TIMEOUT", 15*time.Second),
		},
		Catalog: Catalog{
			CacheTTL: utils.GetEnvDuration("APP_CATALOG_CACHE_TTL", 10*time.Minute),
		},
	}
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
