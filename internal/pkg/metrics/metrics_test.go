package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestBookingMetrics(t *testing.T) {
	t.Run("Counts by label", func(t *testing.T) {
		m := NewBookingMetrics(prometheus.NewRegistry())

		m.ObserveBooking("accepted")
		m.ObserveBooking("accepted")
		m.ObserveBooking("duplicate")
		m.ObservePayment("replayed")
		m.ObserveNotification("BookingCreated", "published")

		assert.Equal(t, float64(2), testutil.ToFloat64(m.bookingsTotal.WithLabelValues("accepted")))
		assert.Equal(t, float64(1), testutil.ToFloat64(m.bookingsTotal.WithLabelValues("duplicate")))
		assert.Equal(t, float64(1), testutil.ToFloat64(m.paymentsTotal.WithLabelValues("replayed")))
		assert.Equal(t, float64(1), testutil.ToFloat64(m.notificationsTotal.WithLabelValues("BookingCreated", "published")))
	})

	t.Run("Nil receiver is a no-op", func(t *testing.T) {
		var m *BookingMetrics
		assert.NotPanics(t, func() {
			m.ObserveBooking("accepted")
			m.ObservePayment("confirmed")
			m.ObserveNotification("PaymentConfirmed", "failed")
			m.ObserveRequest("GET", "/", "200", 0.1)
		})
	})
}
