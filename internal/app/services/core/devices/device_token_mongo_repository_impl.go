package devices

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

type DeviceTokenMongoRepository struct {
	Collection *mongo.Collection
}

func NewDeviceTokenMongoRepository(db *mongo.Client, dbName string) contracts.DeviceTokenRepository {
	return &DeviceTokenMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDeviceTokens),
	}
}

func (r *DeviceTokenMongoRepository) UpsertByToken(ctx context.Context, deviceToken *models.DeviceToken) error {
	update := bson.M{
		"$set": bson.M{
			"platform": deviceToken.Platform,
		},
		"$setOnInsert": bson.M{
			"token":     deviceToken.Token,
			"createdAt": time.Now(),
		},
	}

	_, err := r.Collection.UpdateOne(ctx, bson.M{"token": deviceToken.Token}, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DeviceTokenMongoRepository) FindAllTokens(ctx context.Context) ([]string, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var deviceTokens []models.DeviceToken
	if err := cursor.All(ctx, &deviceTokens); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	tokens := make([]string, 0, len(deviceTokens))
	for _, deviceToken := range deviceTokens {
		tokens = append(tokens, deviceToken.Token)
	}
	return tokens, nil
}
