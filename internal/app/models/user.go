package models

import (
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

func (u User) IsAdmin() bool {
	return u.Role == constvars.RoleAdmin
}

func (u User) ConvertIntoResponse() responses.User {
	return responses.User{
		ID:    hexOrEmpty(u.ID),
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}
