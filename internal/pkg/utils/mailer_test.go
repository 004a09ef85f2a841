package utils

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNotificationEmailPayload(t *testing.T) {
	booking := models.Booking{
		Treatment:     "Teeth Orthodontics",
		Date:          "2024-05-01",
		Slot:          "08:00 AM - 08:30 AM",
		Patient:       "ana@example.com",
		PatientName:   "Ana <Admin>",
		TransactionID: "pi_123",
	}

	t.Run("Booking created", func(t *testing.T) {
		payload, err := BuildNotificationEmailPayload("clinic@example.com", "Clinic", constvars.NotificationKindBookingCreated, booking)
		require.NoError(t, err)

		assert.Equal(t, "Your Appointment for Teeth Orthodontics is on 2024-05-01 at 08:00 AM - 08:30 AM is Confirmed", payload.Subject)
		assert.Equal(t, []string{"ana@example.com"}, payload.To)
		assert.Contains(t, payload.HTMLCode, "Ana &lt;Admin&gt;")
	})

	t.Run("Payment confirmed carries transaction", func(t *testing.T) {
		payload, err := BuildNotificationEmailPayload("clinic@example.com", "Clinic", constvars.NotificationKindPaymentConfirmed, booking)
		require.NoError(t, err)

		assert.Contains(t, payload.HTMLCode, "pi_123")
	})

	t.Run("Unknown kind", func(t *testing.T) {
		_, err := BuildNotificationEmailPayload("clinic@example.com", "Clinic", constvars.NotificationKind("Other"), booking)
		assert.Error(t, err)
	})
}
