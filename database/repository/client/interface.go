// File: database/repository/client/interface.go
package clientRepo

import (
	"context"

	"inkstudio/database"
	"inkstudio/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ClientRepository persists studio clients and the visit counts the loyalty
// discount is computed from.
type ClientRepository interface {
	GetByID(ctx context.Context, id string) (*models.Client, error)
	GetByEmail(ctx context.Context, email string) (*models.Client, error)
	Create(ctx context.Context, client *models.Client) error
	RecordVisit(ctx context.Context, id string, amountSpent float64, points int) error
	UpdateTier(ctx context.Context, id string, tier models.LoyaltyTier) error
}

type mongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo constructs a new MongoDB ClientRepository.
func NewMongoClientRepo() ClientRepository {
	db := database.MongoClient.Database("inkstudio")
	return &mongoClientRepo{
		coll: db.Collection("clients"),
	}
}
