package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingServiceKey        = "service"
	LoggingEnvKey            = "env"
	LoggingVersionKey        = "version"
	LoggingDataKey           = "data"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingResponseCountKey  = "response_count"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingErrorTypeKey      = "error_type"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"

	LoggingBookingIDKey      = "booking_id"
	LoggingBookingCountKey   = "booking_count"
	LoggingTreatmentKey      = "treatment"
	LoggingTreatmentCountKey = "treatment_count"
	LoggingDateKey           = "date"
	LoggingSlotKey           = "slot"
	LoggingPatientKey        = "patient"
	LoggingTransactionIDKey  = "transaction_id"
	LoggingAmountKey         = "amount"
	LoggingNotificationKind  = "notification_kind"
	LoggingQueueKey          = "queue"
	LoggingEmailKey          = "email"
	LoggingObjectKey         = "object_key"
	LoggingRejectReasonKey   = "reject_reason"
	LoggingRequeueKey        = "requeue"
)
