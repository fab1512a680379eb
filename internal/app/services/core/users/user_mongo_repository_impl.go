package users

import (
	"context"
	"docpoint-service/internal/app/contracts"
	"docpoint-service/internal/app/models"
	"docpoint-service/internal/pkg/constvars"
	"docpoint-service/internal/pkg/exceptions"
	"time"

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

// AppendRating upserts so first-time raters get a user document created on
// the spot. User IDs come from the client and are stored as-is.
func (r *UserMongoRepository) AppendRating(ctx context.Context, userID string, rating models.UserRating) error {
	update := bson.M{
		"$push": bson.M{"ratings": rating},
		"$set":  bson.M{"updatedAt": time.Now()},
		"$setOnInsert": bson.M{
			"createdAt": time.Now(),
		},
	}

	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": userID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
