package constvars

const (
	MIMEApplicationJSON = "application/json"
	MIMEApplicationForm = "application/x-www-form-urlencoded"
	MIMETextHTML        = "text/html"
)

const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderIdempotentKey = "Idempotency-Key"
	HeaderRetryAfter    = "Retry-After"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	BearerPrefix = "Bearer "
)

const (
	URLParamBookingID = "id"
	URLParamEmail     = "email"
	QueryParamPatient = "patient"
	QueryParamDate    = "date"
)
