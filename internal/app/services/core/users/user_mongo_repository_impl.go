package users

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

type UserMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Client, dbName string) contracts.UserRepository {
	return &UserMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUsers),
	}
}

// Upsert creates the user on first sign-in. The stored role is left untouched.
func (repo *UserMongoRepository) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	set := bson.M{"email": user.Email}
	if user.Name != "" {
		set["name"] = user.Name
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	saved := new(models.User)
	err := repo.Collection.FindOneAndUpdate(ctx, bson.M{"email": user.Email}, bson.M{"$set": set}, opts).Decode(saved)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return saved, nil
}

func (repo *UserMongoRepository) FindAll(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &users)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return users, nil
}

func (repo *UserMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := repo.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

// SetRole returns nil when no user has the email.
func (repo *UserMongoRepository) SetRole(ctx context.Context, email, role string) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	updated := new(models.User)
	err := repo.Collection.FindOneAndUpdate(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"role": role}}, opts).Decode(updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return updated, nil
}

func (repo *UserMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName(constvars.MongoIndexUserEmail).SetUnique(true),
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndexes(err, constvars.MongoCollectionUsers)
	}
	return nil
}
