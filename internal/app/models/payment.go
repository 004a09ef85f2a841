package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an append-only record of a confirmed transaction.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BookingID     primitive.ObjectID `bson:"booking" json:"booking"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Amount        int64              `bson:"amount,omitempty" json:"amount,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
