package utils

import (
	"clinic-booking-service/internal/pkg/constvars"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("iso_date", validateISODate)
	validate.RegisterValidation("unique_slots", validateUniqueSlots)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// IsISODate reports whether value is a calendar date in the booking layout.
func IsISODate(value string) bool {
	parsed, err := time.Parse(constvars.BookingDateLayout, value)
	if err != nil {
		return false
	}
	return parsed.Format(constvars.BookingDateLayout) == value
}

func validateISODate(fl validator.FieldLevel) bool {
	return IsISODate(fl.Field().String())
}

func validateUniqueSlots(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return false
	}

	seen := make(map[string]struct{}, field.Len())
	for i := 0; i < field.Len(); i++ {
		slot := field.Index(i).String()
		if _, exists := seen[slot]; exists {
			return false
		}
		seen[slot] = struct{}{}
	}
	return true
}
