package routers

import (
	"clinic-booking-service/internal/app/delivery/http/controllers"
	"clinic-booking-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.Put("/user/{email}", userController.UpsertUser)
	router.Get("/admin/{email}", userController.IsAdmin)

	router.With(middlewares.Authenticate).Get("/user", userController.FindAll)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Put("/user/admin/{email}", userController.MakeAdmin)
}
