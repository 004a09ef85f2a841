package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"gt":           "must be greater than %s",
	"gte":          "must be greater than or equal to %s",
	"oneof":        "must be one of [%s]",
	"iso_date":     "must be a date in YYYY-MM-DD format",
	"unique_slots": "must not contain duplicate slots",
	"dive":         "is invalid",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientServiceUnavailable            = "service temporarily unavailable, please try again"
	ErrClientNotAuthorized                 = "UnAuthorized access"
	ErrClientForbidden                     = "Forbidden access"
	ErrClientBookingNotFound               = "booking not found"
	ErrClientTreatmentNotFound             = "service not found"
	ErrClientUserNotFound                  = "user not found"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientBookingAlreadyPaid            = "booking already paid with another transaction"
	ErrClientPaymentInProgress             = "payment for this booking is being processed, please retry"
	ErrClientPaymentGateway                = "failed to create payment, please try again"
	ErrClientTransactionAlreadyUsed        = "transaction already used for another booking"
	ErrClientDoctorAlreadyExists           = "doctor already registered"
	ErrClientTooManyRequests               = "too many requests, you are temporarily blocked"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevValidationFailed         = "validation failed"
	ErrDevURLParamValidationFailed = "parameter %s validation failed"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthPermissionDenied      = "permission denied"
	ErrDevAuthRequesterMismatch     = "requester %s is not allowed to read bookings of %s"
	ErrDevAuthNotAdmin              = "requester %s does not hold the admin role"

	// Domain messages
	ErrDevBookingNotFound      = "booking %s not found"
	ErrDevTreatmentNotFound    = "treatment %s not found"
	ErrDevUserNotExists        = "user %s not exists in our system"
	ErrDevDoctorNotExists      = "doctor %s not exists in our system"
	ErrDevDoctorAlreadyExists  = "doctor %s already exists"
	ErrDevBookingAlreadyPaid   = "booking %s already paid with transaction %s"
	ErrDevPaymentLockNotHeld   = "could not acquire payment lock for booking %s"
	ErrDevPaymentGatewayFailed = "payment gateway request failed"
	ErrDevTransactionReused    = "transaction %s already recorded for booking %s"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBFailedToCreateIndexes    = "failed to create indexes on collection %s"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"
	ErrDevDBUnavailable              = "database unreachable or timed out"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object into minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"
	ErrDevRedisUnlock     = "failed to release lock in redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into queue %s"

	// Mailer messages
	ErrDevSMTPSendEmail     = "failed to send email via SMTP client hostname %s"
	ErrDevSendGridSendEmail = "failed to send email via sendgrid"

	// Server messages
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevRateLimited            = "rate limit exceeded for %s"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
)
