package main

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/drivers/database"
	"clinic-booking-service/internal/app/drivers/logger"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/app/services/core/bookings"
	"clinic-booking-service/internal/app/services/core/doctors"
	"clinic-booking-service/internal/app/services/core/payments"
	"clinic-booking-service/internal/app/services/core/treatments"
	"clinic-booking-service/internal/app/services/core/users"
	"context"
	"log"
	"time"

	"go.uber.org/zap"
)

var defaultSlots = []string{
	"08:00 AM - 08:30 AM",
	"08:30 AM - 09:00 AM",
	"09:00 AM - 09:30 AM",
	"09:30 AM - 10:00 AM",
	"10:00 AM - 10:30 AM",
	"10:30 AM - 11:00 AM",
	"11:00 AM - 11:30 AM",
	"11:30 AM - 12:00 PM",
	"01:00 PM - 01:30 PM",
	"01:30 PM - 02:00 PM",
	"02:00 PM - 02:30 PM",
	"02:30 PM - 03:00 PM",
	"03:00 PM - 03:30 PM",
	"03:30 PM - 04:00 PM",
	"04:00 PM - 04:30 PM",
	"04:30 PM - 05:00 PM",
}

var defaultCatalog = []models.Treatment{
	{Name: "Teeth Orthodontics", Price: 45},
	{Name: "Cosmetic Dentistry", Price: 50},
	{Name: "Teeth Cleaning", Price: 35},
	{Name: "Cavity Protection", Price: 40},
	{Name: "Pediatric Dental", Price: 30},
	{Name: "Oral Surgery", Price: 60},
}

// Creates the unique indexes the booking ledger relies on and seeds the
// catalog with any treatment that is not stored yet.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	client := database.NewMongoDB(driverConfig)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	defer client.Disconnect(context.Background())

	dbName := driverConfig.MongoDB.DbName
	indexed := []interface{ EnsureIndexes(context.Context) error }{
		bookings.NewBookingMongoRepository(client, dbName),
		payments.NewPaymentMongoRepository(client, dbName),
		users.NewUserMongoRepository(client, dbName),
		doctors.NewDoctorMongoRepository(client, dbName),
	}
	for _, repository := range indexed {
		if err := repository.EnsureIndexes(ctx); err != nil {
			log.Fatalf("Error creating indexes: %v", err)
		}
	}

	treatmentRepository := treatments.NewTreatmentMongoRepository(client, dbName)
	seeded := 0
	for _, treatment := range defaultCatalog {
		existing, err := treatmentRepository.FindByName(ctx, treatment.Name)
		if err != nil {
			log.Fatalf("Error reading catalog: %v", err)
		}
		if existing != nil {
			continue
		}

		treatment.Slots = append([]string(nil), defaultSlots...)
		_, err = treatmentRepository.Upsert(ctx, &treatment)
		if err != nil {
			log.Fatalf("Error seeding treatment %s: %v", treatment.Name, err)
		}
		seeded++
	}

	zapLogger.Info("Catalog migration finished", zap.Int("seeded", seeded), zap.Int("catalog_size", len(defaultCatalog)))
}
