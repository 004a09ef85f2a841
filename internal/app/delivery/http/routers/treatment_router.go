package routers

import (
	"clinic-booking-service/internal/app/delivery/http/controllers"
	"clinic-booking-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachTreatmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, treatmentController *controllers.TreatmentController) {
	router.Get("/services", treatmentController.FindAllNames)
	router.Get("/available", treatmentController.FindAvailable)

	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Put("/services", treatmentController.UpsertTreatment)
}
