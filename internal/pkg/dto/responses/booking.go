package responses

import "time"

type Booking struct {
	ID            string     `json:"_id,omitempty"`
	Treatment     string     `json:"treatment"`
	Date          string     `json:"date"`
	Slot          string     `json:"slot"`
	Patient       string     `json:"patient,omitempty"`
	PatientName   string     `json:"patientName,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Price         int64      `json:"price,omitempty"`
	Paid          bool       `json:"paid"`
	TransactionID string     `json:"transactionId,omitempty"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
}

// CreateBooking reports whether the ledger accepted the request.
type CreateBooking struct {
	Accepted bool    `json:"accepted"`
	Reason   string  `json:"reason,omitempty"`
	Booking  Booking `json:"booking"`
}
