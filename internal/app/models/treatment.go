package models

import (
	"clinic-booking-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Treatment is a bookable service of the clinic catalog.
type Treatment struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots" json:"slots"`
	Price int64              `bson:"price,omitempty" json:"price,omitempty"`
}

func (t Treatment) ConvertIntoNameResponse() responses.TreatmentName {
	return responses.TreatmentName{
		ID:   hexOrEmpty(t.ID),
		Name: t.Name,
	}
}

func (t Treatment) ConvertIntoResponse() responses.Treatment {
	slots := make([]string, len(t.Slots))
	copy(slots, t.Slots)
	return responses.Treatment{
		ID:    hexOrEmpty(t.ID),
		Name:  t.Name,
		Slots: slots,
		Price: t.Price,
	}
}

func hexOrEmpty(id primitive.ObjectID) string {
	if id.IsZero() {
		return ""
	}
	return id.Hex()
}
