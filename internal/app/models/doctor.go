package models

import (
	"clinic-booking-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Doctor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Specialty string             `bson:"specialty" json:"specialty"`
	Img       string             `bson:"img,omitempty" json:"img,omitempty"`
}

func (d Doctor) ConvertIntoResponse() responses.Doctor {
	return responses.Doctor{
		ID:        hexOrEmpty(d.ID),
		Name:      d.Name,
		Email:     d.Email,
		Specialty: d.Specialty,
		Img:       d.Img,
	}
}
