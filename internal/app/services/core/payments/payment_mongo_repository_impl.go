package payments

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

type PaymentMongoRepository struct {
	Collection *mongo.Collection
}

func NewPaymentMongoRepository(db *mongo.Client, dbName string) contracts.PaymentRepository {
	return &PaymentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPayments),
	}
}

func (repo *PaymentMongoRepository) Create(ctx context.Context, payment *models.Payment) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, payment)
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
	payment.ID = insertedID
	return insertedID.Hex(), nil
}

func (repo *PaymentMongoRepository) FindByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	return repo.findOne(ctx, bson.M{"transactionId": transactionID})
}

func (repo *PaymentMongoRepository) FindByBookingID(ctx context.Context, bookingID primitive.ObjectID) (*models.Payment, error) {
	return repo.findOne(ctx, bson.M{"booking": bookingID})
}

// ReplaceTransaction points an existing record at a new transaction.
func (repo *PaymentMongoRepository) ReplaceTransaction(ctx context.Context, paymentID primitive.ObjectID, transactionID string, amount int64, createdAt time.Time) error {
	update := bson.M{"$set": bson.M{
		"transactionId": transactionID,
		"amount":        amount,
		"createdAt":     createdAt,
	}}
	result, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": paymentID}, update)
	if err != nil {
		if dup := database.AsDuplicateKeyError(err); dup != nil {
			return dup
		}
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrMongoDBUpdateDocument(mongo.ErrNoDocuments)
	}
	return nil
}

func (repo *PaymentMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "transactionId", Value: 1}},
			Options: options.Index().SetName(constvars.MongoIndexPaymentTransaction).SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "booking", Value: 1}},
			Options: options.Index().SetName(constvars.MongoIndexPaymentBooking).SetUnique(true),
		},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndexes(err, constvars.MongoCollectionPayments)
	}
	return nil
}

func (repo *PaymentMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Payment, error) {
	payment := new(models.Payment)
	err := repo.Collection.FindOne(ctx, filter).Decode(payment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return payment, nil
}
