package treatments

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TreatmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewTreatmentMongoRepository(db *mongo.Client, dbName string) contracts.TreatmentRepository {
	return &TreatmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTreatments),
	}
}

// FindAll returns the catalog in insertion order.
func (repo *TreatmentMongoRepository) FindAll(ctx context.Context) ([]models.Treatment, error) {
	treatments := make([]models.Treatment, 0)
	cursor, err := repo.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &treatments)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return treatments, nil
}

func (repo *TreatmentMongoRepository) FindByName(ctx context.Context, name string) (*models.Treatment, error) {
	treatment := new(models.Treatment)
	err := repo.Collection.FindOne(ctx, bson.M{"name": name}).Decode(treatment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return treatment, nil
}

// Upsert replaces the slots and price of the treatment named treatment.Name.
func (repo *TreatmentMongoRepository) Upsert(ctx context.Context, treatment *models.Treatment) (*models.Treatment, error) {
	update := bson.M{
		"$set": bson.M{
			"slots": treatment.Slots,
			"price": treatment.Price,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	saved := new(models.Treatment)
	err := repo.Collection.FindOneAndUpdate(ctx, bson.M{"name": treatment.Name}, update, opts).Decode(saved)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return saved, nil
}
