package routers

import (
	"clinic-booking-service/internal/app/delivery/http/controllers"
	"clinic-booking-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController, paymentController *controllers.PaymentController) {
	paymentLimiter := middlewares.PaymentRateLimiter()

	router.Post("/booking", bookingController.CreateBooking)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)

		r.Get("/booking", bookingController.FindBookingsByPatient)
		r.Get("/booking/{id}", bookingController.FindBookingByID)

		r.With(paymentLimiter.Limit).Patch("/booking/{id}", paymentController.ConfirmPayment)
		r.With(paymentLimiter.Limit).Post("/create-payment-intent", paymentController.CreatePaymentIntent)
	})
}
