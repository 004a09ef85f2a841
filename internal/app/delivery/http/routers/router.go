package routers

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/delivery/http/controllers"
	"clinic-booking-service/internal/app/delivery/http/middlewares"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type Controllers struct {
	Treatment *controllers.TreatmentController
	Booking   *controllers.BookingController
	Payment   *controllers.PaymentController
	User      *controllers.UserController
	Doctor    *controllers.DoctorController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	accessLogger *logrus.Logger,
	gatherer prometheus.Gatherer,
	ctrls Controllers,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Idempotency-Key", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.GlobalRateLimit())
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.RequestLogger(internalConfig.App, accessLogger))
	router.Use(middlewares.Metrics)
	router.Use(middleware.RequestSize(int64(internalConfig.App.RequestBodyLimitInMegabyte) << 20))

	router.Get("/", controllers.Greeting)
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	attachAll := func(r chi.Router) {
		attachTreatmentRoutes(r, middlewares, ctrls.Treatment)
		attachBookingRoutes(r, middlewares, ctrls.Booking, ctrls.Payment)
		attachUserRoutes(r, middlewares, ctrls.User)
		attachDoctorRoutes(r, middlewares, ctrls.Doctor)
	}

	if prefix := basePath(internalConfig.App); prefix != "" {
		router.Route(prefix, attachAll)
		return
	}
	attachAll(router)
}

// basePath joins the optional prefix and version. Empty means routes live at root.
func basePath(app config.App) string {
	path := ""
	if app.EndpointPrefix != "" {
		path += fmt.Sprintf("/%s", app.EndpointPrefix)
	}
	if app.Version != "" {
		path += fmt.Sprintf("/%s", app.Version)
	}
	return path
}
