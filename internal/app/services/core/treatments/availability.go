package treatments

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/dto/responses"
)

// ComputeAvailability returns, for every treatment in catalog order, the slots
// not held by a booking of that treatment on date. Dates compare verbatim.
// Inputs are never modified.
func ComputeAvailability(catalog []models.Treatment, bookings []models.Booking, date string) []responses.Availability {
	booked := make(map[string]map[string]struct{})
	for _, booking := range bookings {
		if booking.Date != date {
			continue
		}
		slots, ok := booked[booking.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			booked[booking.Treatment] = slots
		}
		slots[booking.Slot] = struct{}{}
	}

	result := make([]responses.Availability, 0, len(catalog))
	for _, treatment := range catalog {
		taken := booked[treatment.Name]
		remaining := make([]string, 0, len(treatment.Slots))
		for _, slot := range treatment.Slots {
			if _, isTaken := taken[slot]; isTaken {
				continue
			}
			remaining = append(remaining, slot)
		}

		availability := responses.Availability{
			Name:  treatment.Name,
			Slots: remaining,
			Price: treatment.Price,
		}
		if !treatment.ID.IsZero() {
			availability.ID = treatment.ID.Hex()
		}
		result = append(result, availability)
	}
	return result
}
