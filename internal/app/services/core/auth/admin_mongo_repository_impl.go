package auth

import (
	"context"
	"docpoint-service/internal/app/contracts"
	"docpoint-service/internal/app/models"
	"docpoint-service/internal/pkg/constvars"
	"docpoint-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AdminMongoRepository struct {
	Collection *mongo.Collection
}

func NewAdminMongoRepository(db *mongo.Client, dbName string) contracts.AdminRepository {
	return &AdminMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAdmins),
	}
}

func (r *AdminMongoRepository) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	err := r.Collection.FindOne(ctx, bson.M{"username": username}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &admin, nil
}
