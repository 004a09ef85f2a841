package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Catalog
	GetTreatmentsSuccessMessage   = "successfully fetched services"
	GetAvailabilitySuccessMessage = "successfully fetched available slots"
	UpsertTreatmentSuccessMessage = "successfully saved service"

	// Booking
	CreateBookingSuccessMessage   = "booking created"
	CreateBookingRejectedMessage  = "booking already exists"
	CreateBookingSlotTakenMessage = "slot already booked"
	GetBookingsSuccessMessage     = "successfully fetched bookings"
	GetBookingSuccessMessage      = "successfully fetched booking"
	ConfirmPaymentSuccessMessage  = "payment confirmed"
	CreatePaymentIntentSuccessMsg = "payment intent created"

	// User
	UpsertUserSuccessMessage = "user saved"
	GetUsersSuccessMessage   = "successfully fetched users"
	GetAdminSuccessMessage   = "successfully checked admin role"
	MakeAdminSuccessMessage  = "user promoted to admin"

	// Doctor
	CreateDoctorSuccessMessage = "doctor created"
	GetDoctorsSuccessMessage   = "successfully fetched doctors"
	DeleteDoctorSuccessMessage = "doctor deleted"
)
