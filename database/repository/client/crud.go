// File: database/repository/client/crud.go
package clientRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"inkstudio/models"
)

func (r *mongoClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var client models.Client
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *mongoClientRepo) GetByEmail(ctx context.Context, email string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var client models.Client
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *mongoClientRepo) Create(ctx context.Context, client *models.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	if client.LoyaltyTier == "" {
		client.LoyaltyTier = models.TierStandard
	}
	now := time.Now()
	client.CreatedAt = now
	client.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, client)
	return err
}

func (r *mongoClientRepo) UpdateTier(ctx context.Context, id string, tier models.LoyaltyTier) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"loyaltyTier": tier, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoClientRepo) RecordVisit(ctx context.Context, id string, amountSpent float64, points int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{
			"visitCount":    1,
			"totalSpent":    amountSpent,
			"loyaltyPoints": points,
		},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
