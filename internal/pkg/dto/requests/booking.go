package requests

type CreateBooking struct {
	Treatment   string `json:"treatment" validate:"required"`
	Date        string `json:"date" validate:"required,iso_date"`
	Slot        string `json:"slot" validate:"required"`
	Patient     string `json:"patient" validate:"required,email"`
	PatientName string `json:"patientName"`
	Phone       string `json:"phone"`
	Price       int64  `json:"price" validate:"gte=0"`
}

type ConfirmPayment struct {
	TransactionID string `json:"transactionId" validate:"required"`
	Amount        int64  `json:"amount" validate:"gte=0"`
}

type CreatePaymentIntent struct {
	Price          int64  `json:"price" validate:"required,gt=0"`
	IdempotencyKey string `json:"-"`
}

type FindBookingsByPatient struct {
	Patient string `json:"patient" validate:"required,email"`
}

type FindAvailability struct {
	Date string `json:"date" validate:"required"`
}
