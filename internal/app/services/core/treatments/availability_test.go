package treatments

import (
	"clinic-booking-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testCatalog() []models.Treatment {
	return []models.Treatment{
		{Name: "Teeth Orthodontics", Slots: []string{"08:00 AM - 08:30 AM", "08:30 AM - 09:00 AM", "09:00 AM - 09:30 AM"}},
		{Name: "Cosmetic Dentistry", Slots: []string{"10:05 AM - 10:30 AM", "10:30 AM - 11:00 AM"}},
		{Name: "Cavity Protection", Slots: []string{}},
	}
}

func TestComputeAvailability(t *testing.T) {
	tests := []struct {
		name     string
		bookings []models.Booking
		date     string
		want     map[string][]string
	}{
		{
			name: "no bookings leaves every slot open",
			date: "2024-05-01",
			want: map[string][]string{
				"Teeth Orthodontics": {"08:00 AM - 08:30 AM", "08:30 AM - 09:00 AM", "09:00 AM - 09:30 AM"},
				"Cosmetic Dentistry": {"10:05 AM - 10:30 AM", "10:30 AM - 11:00 AM"},
				"Cavity Protection":  {},
			},
		},
		{
			name: "booked slot removed only from its treatment",
			date: "2024-05-01",
			bookings: []models.Booking{
				{Treatment: "Teeth Orthodontics", Date: "2024-05-01", Slot: "08:30 AM - 09:00 AM"},
			},
			want: map[string][]string{
				"Teeth Orthodontics": {"08:00 AM - 08:30 AM", "09:00 AM - 09:30 AM"},
				"Cosmetic Dentistry": {"10:05 AM - 10:30 AM", "10:30 AM - 11:00 AM"},
				"Cavity Protection":  {},
			},
		},
		{
			name: "bookings on other dates are ignored",
			date: "2024-05-01",
			bookings: []models.Booking{
				{Treatment: "Cosmetic Dentistry", Date: "2024-05-02", Slot: "10:05 AM - 10:30 AM"},
			},
			want: map[string][]string{
				"Teeth Orthodontics": {"08:00 AM - 08:30 AM", "08:30 AM - 09:00 AM", "09:00 AM - 09:30 AM"},
				"Cosmetic Dentistry": {"10:05 AM - 10:30 AM", "10:30 AM - 11:00 AM"},
				"Cavity Protection":  {},
			},
		},
		{
			name: "fully booked treatment keeps an empty list",
			date: "2024-05-01",
			bookings: []models.Booking{
				{Treatment: "Cosmetic Dentistry", Date: "2024-05-01", Slot: "10:05 AM - 10:30 AM"},
				{Treatment: "Cosmetic Dentistry", Date: "2024-05-01", Slot: "10:30 AM - 11:00 AM"},
			},
			want: map[string][]string{
				"Teeth Orthodontics": {"08:00 AM - 08:30 AM", "08:30 AM - 09:00 AM", "09:00 AM - 09:30 AM"},
				"Cosmetic Dentistry": {},
				"Cavity Protection":  {},
			},
		},
		{
			name: "slot label outside the catalog changes nothing",
			date: "2024-05-01",
			bookings: []models.Booking{
				{Treatment: "Teeth Orthodontics", Date: "2024-05-01", Slot: "11:00 PM - 11:30 PM"},
				{Treatment: "Unknown", Date: "2024-05-01", Slot: "08:00 AM - 08:30 AM"},
			},
			want: map[string][]string{
				"Teeth Orthodontics": {"08:00 AM - 08:30 AM", "08:30 AM - 09:00 AM", "09:00 AM - 09:30 AM"},
				"Cosmetic Dentistry": {"10:05 AM - 10:30 AM", "10:30 AM - 11:00 AM"},
				"Cavity Protection":  {},
			},
		},
		{
			name: "date strings compare verbatim",
			date: "May 1, 2024",
			bookings: []models.Booking{
				{Treatment: "Teeth Orthodontics", Date: "2024-05-01", Slot: "08:00 AM - 08:30 AM"},
			},
			want: map[string][]string{
				"Teeth Orthodontics": {"08:00 AM - 08:30 AM", "08:30 AM - 09:00 AM", "09:00 AM - 09:30 AM"},
				"Cosmetic Dentistry": {"10:05 AM - 10:30 AM", "10:30 AM - 11:00 AM"},
				"Cavity Protection":  {},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeAvailability(testCatalog(), tt.bookings, tt.date)

			assert.Len(t, result, len(tt.want))
			for _, availability := range result {
				assert.Equal(t, tt.want[availability.Name], availability.Slots, availability.Name)
			}
		})
	}
}

func TestComputeAvailabilityKeepsOrderAndInputs(t *testing.T) {
	catalog := testCatalog()
	bookings := []models.Booking{
		{Treatment: "Teeth Orthodontics", Date: "2024-05-01", Slot: "08:00 AM - 08:30 AM"},
	}

	result := ComputeAvailability(catalog, bookings, "2024-05-01")

	names := make([]string, len(result))
	for i, availability := range result {
		names[i] = availability.Name
	}
	assert.Equal(t, []string{"Teeth Orthodontics", "Cosmetic Dentistry", "Cavity Protection"}, names)
	assert.Equal(t, testCatalog(), catalog, "catalog must not be mutated")

	result[0].Slots[0] = "changed"
	assert.Equal(t, "08:00 AM - 08:30 AM", catalog[0].Slots[0])
}
