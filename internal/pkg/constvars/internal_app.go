package constvars

type ContextKey string

const (
	ResourceBookings   = "booking"
	ResourceTreatments = "services"
	ResourceUsers      = "user"
	ResourceDoctors    = "doctor"
	ResourcePayments   = "payments"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_REQUESTER_EMAIL_KEY      ContextKey = "requester_email"
)

const (
	REQUEST_ID_PREFIX = "CLNC_BKG_"
)

const AppServiceName = "clinic-booking-service"

const (
	RoleAdmin = "admin"
)

// BookingDateLayout is the canonical calendar date format stored on bookings.
const BookingDateLayout = "2006-01-02"

const (
	AppGreetingMessage = "Hello Doctor Uncle!!!"
)

const DoctorImageMaxSizeInMegabytes = 1

var DoctorImageAllowedFormats = []string{"image/jpeg", "image/png"}
