package routers

import (
	"clinic-booking-service/internal/app/delivery/http/controllers"
	"clinic-booking-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate, middlewares.RequireAdmin)

		r.Post("/doctor", doctorController.CreateDoctor)
		r.Get("/doctors", doctorController.FindAll)
		r.Delete("/doctor/{email}", doctorController.DeleteByEmail)
	})
}
