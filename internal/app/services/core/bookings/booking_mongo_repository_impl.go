package bookings

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/drivers/database"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingMongoRepository(db *mongo.Client, dbName string) contracts.BookingRepository {
	return &BookingMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBookings),
	}
}

func (repo *BookingMongoRepository) Create(ctx context.Context, booking *models.Booking) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, booking)
	if err != nil {
		if dup := database.AsDuplicateKeyError(err); dup != nil {
			return "", dup
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBInsertDocument(nil)
	}
	booking.ID = insertedID
	return insertedID.Hex(), nil
}

func (repo *BookingMongoRepository) FindByKey(ctx context.Context, treatment, date, patient string) (*models.Booking, error) {
	return repo.findOne(ctx, bson.M{"treatment": treatment, "date": date, "patient": patient})
}

func (repo *BookingMongoRepository) FindBySlot(ctx context.Context, treatment, date, slot string) (*models.Booking, error) {
	return repo.findOne(ctx, bson.M{"treatment": treatment, "date": date, "slot": slot})
}

// FindByID treats a malformed identifier as an unknown booking.
func (repo *BookingMongoRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	objectID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return nil, nil
	}
	return repo.findOne(ctx, bson.M{"_id": objectID})
}

func (repo *BookingMongoRepository) FindByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	return repo.findMany(ctx, bson.M{"patient": patient})
}

func (repo *BookingMongoRepository) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return repo.findMany(ctx, bson.M{"date": date})
}

// MarkPaid only updates unpaid bookings. It reports whether a document matched.
func (repo *BookingMongoRepository) MarkPaid(ctx context.Context, bookingID, transactionID string, paidAt time.Time) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err, bookingID)
	}

	filter := bson.M{"_id": objectID, "paid": false}
	update := bson.M{
		"$set": bson.M{
			"paid":          true,
			"transactionId": transactionID,
			"paidAt":        paidAt,
		},
	}
	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}

func (repo *BookingMongoRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "treatment", Value: 1}, {Key: "date", Value: 1}, {Key: "patient", Value: 1}},
			Options: options.Index().SetName(constvars.MongoIndexBookingPatientPerDay).SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "treatment", Value: 1}, {Key: "date", Value: 1}, {Key: "slot", Value: 1}},
			Options: options.Index().SetName(constvars.MongoIndexBookingSlotPerDay).SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "date", Value: 1}},
			Options: options.Index().SetName(constvars.MongoIndexBookingDate),
		},
		{
			Keys:    bson.D{{Key: "patient", Value: 1}},
			Options: options.Index().SetName(constvars.MongoIndexBookingPatient),
		},
	}
	_, err := repo.Collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return exceptions.ErrMongoDBCreateIndexes(err, constvars.MongoCollectionBookings)
	}
	return nil
}

func (repo *BookingMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Booking, error) {
	booking := new(models.Booking)
	err := repo.Collection.FindOne(ctx, filter).Decode(booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return booking, nil
}

func (repo *BookingMongoRepository) findMany(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	cursor, err := repo.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &bookings)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}
