package main

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/delivery/http/controllers"
	"clinic-booking-service/internal/app/delivery/http/middlewares"
	"clinic-booking-service/internal/app/delivery/http/routers"
	"clinic-booking-service/internal/app/drivers/database"
	"clinic-booking-service/internal/app/drivers/logger"
	mailerDriver "clinic-booking-service/internal/app/drivers/mailer"
	"clinic-booking-service/internal/app/drivers/messaging"
	storageDriver "clinic-booking-service/internal/app/drivers/storage"
	"clinic-booking-service/internal/app/services/core/bookings"
	"clinic-booking-service/internal/app/services/core/doctors"
	"clinic-booking-service/internal/app/services/core/notifications"
	"clinic-booking-service/internal/app/services/core/payments"
	"clinic-booking-service/internal/app/services/core/treatments"
	"clinic-booking-service/internal/app/services/core/users"
	"clinic-booking-service/internal/app/services/shared/locker"
	"clinic-booking-service/internal/app/services/shared/mailer"
	"clinic-booking-service/internal/app/services/shared/notification"
	"clinic-booking-service/internal/app/services/shared/payment_gateway"
	redisRepository "clinic-booking-service/internal/app/services/shared/redis"
	"clinic-booking-service/internal/app/services/shared/storage"
	"clinic-booking-service/internal/pkg/metrics"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	accessLogger := logger.NewLogrusLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redis := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minio := storageDriver.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redis,
		RabbitMQ:       rabbitMQ,
		Minio:          minio,
		Logger:         zapLogger,
		AccessLogger:   accessLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Failed to bootstrap the app: %v", err)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler:           chiRouter,
		ReadHeaderTimeout: internalConfig.App.RequestTimeout,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Failed to release resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbName := bootstrap.DriverConfig.MongoDB.DbName
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	bookingMetrics := metrics.NewBookingMetrics(registry)

	// Repositories
	treatmentMongoRepository := treatments.NewTreatmentMongoRepository(bootstrap.MongoDB, dbName)
	bookingMongoRepository := bookings.NewBookingMongoRepository(bootstrap.MongoDB, dbName)
	paymentMongoRepository := payments.NewPaymentMongoRepository(bootstrap.MongoDB, dbName)
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)

	indexed := []interface{ EnsureIndexes(context.Context) error }{
		bookingMongoRepository,
		paymentMongoRepository,
		userMongoRepository,
		doctorMongoRepository,
	}
	for _, repository := range indexed {
		if err := repository.EnsureIndexes(ctx); err != nil {
			return err
		}
	}

	// Redis
	redisRepo := redisRepository.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepo, log)

	// Notifications
	notificationConfig := internalConfig.Notification
	err := messaging.DeclareDurableQueue(bootstrap.RabbitMQ, notificationConfig.Queue)
	if err != nil {
		return err
	}
	publisher, err := notification.NewRabbitMQPublisher(bootstrap.RabbitMQ, notificationConfig.Queue)
	if err != nil {
		return err
	}
	dispatcher := notification.NewDispatcher(publisher, log, bookingMetrics, notificationConfig.PublishTimeout)
	bootstrap.NotifierClose = dispatcher.Close

	if notificationConfig.ArchiveReceipts {
		err = storageDriver.EnsureBucket(bootstrap.Minio, notificationConfig.ReceiptBucket)
		if err != nil {
			return err
		}
	}

	consumerChannel, err := bootstrap.RabbitMQ.Channel()
	if err != nil {
		return err
	}
	err = consumerChannel.Qos(notificationConfig.Prefetch, 0, false)
	if err != nil {
		return err
	}

	worker := notifications.NewWorker(
		log,
		consumerChannel,
		newEmailSender(bootstrap.DriverConfig, log),
		storage.NewMinioStorage(bootstrap.Minio),
		bookingMetrics,
		notifications.WorkerOptions{
			Queue:           notificationConfig.Queue,
			FromEmail:       internalConfig.Mailer.EmailSender,
			FromName:        internalConfig.Mailer.SenderName,
			ReceiptBucket:   notificationConfig.ReceiptBucket,
			ArchiveReceipts: notificationConfig.ArchiveReceipts,
			SendTimeout:     notificationConfig.SendTimeout,
		},
	)
	stopWorker, err := worker.Start(context.Background())
	if err != nil {
		return err
	}
	bootstrap.WorkerStop = stopWorker

	// Usecases
	treatmentUsecase := treatments.NewTreatmentUsecase(treatmentMongoRepository, bookingMongoRepository, redisRepo, internalConfig.Catalog.CacheTTL, log)
	bookingUsecase := bookings.NewBookingUsecase(bookingMongoRepository, treatmentMongoRepository, dispatcher, bookingMetrics, log)
	paymentUsecase := payments.NewPaymentUsecase(
		bookingMongoRepository,
		paymentMongoRepository,
		lockerService,
		payment_gateway.NewStripeService(internalConfig),
		dispatcher,
		bookingMetrics,
		internalConfig.Payment.LockExpiration,
		log,
	)
	userUsecase := users.NewUserUsecase(userMongoRepository, internalConfig.JWT.Secret, internalConfig.JWT.ExpTime, log)
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, log)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, userUsecase, internalConfig, bookingMetrics)

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, bootstrap.AccessLogger, registry, routers.Controllers{
		Treatment: controllers.NewTreatmentController(log, treatmentUsecase),
		Booking:   controllers.NewBookingController(log, bookingUsecase),
		Payment:   controllers.NewPaymentController(log, paymentUsecase),
		User:      controllers.NewUserController(log, userUsecase),
		Doctor:    controllers.NewDoctorController(log, doctorUsecase),
	})

	return nil
}

// newEmailSender prefers SendGrid when an API key is configured.
func newEmailSender(driverConfig *config.DriverConfig, log *zap.Logger) contracts.EmailSender {
	if driverConfig.SendGrid.ApiKey != "" {
		return mailer.NewSendGridSender(mailerDriver.NewSendGridClient(driverConfig), log)
	}
	return mailer.NewSMTPSender(mailerDriver.NewSMTPClient(driverConfig), log)
}
