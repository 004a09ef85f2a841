package models

import (
	"clinic-booking-service/internal/pkg/dto/responses"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Treatment     string             `bson:"treatment" json:"treatment"`
	Date          string             `bson:"date" json:"date"`
	Slot          string             `bson:"slot" json:"slot"`
	Patient       string             `bson:"patient" json:"patient,omitempty"`
	PatientName   string             `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Price         int64              `bson:"price,omitempty" json:"price,omitempty"`
	Paid          bool               `bson:"paid" json:"paid"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	PaidAt        *time.Time         `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
}

// Redacted keeps only the slot coordinates, for answers about bookings held by someone else.
func (b Booking) Redacted() Booking {
	return Booking{
		Treatment: b.Treatment,
		Date:      b.Date,
		Slot:      b.Slot,
	}
}

func (b Booking) ConvertIntoResponse() responses.Booking {
	response := responses.Booking{
		ID:            hexOrEmpty(b.ID),
		Treatment:     b.Treatment,
		Date:          b.Date,
		Slot:          b.Slot,
		Patient:       b.Patient,
		PatientName:   b.PatientName,
		Phone:         b.Phone,
		Price:         b.Price,
		Paid:          b.Paid,
		TransactionID: b.TransactionID,
		PaidAt:        b.PaidAt,
	}
	if !b.CreatedAt.IsZero() {
		createdAt := b.CreatedAt
		response.CreatedAt = &createdAt
	}
	return response
}
