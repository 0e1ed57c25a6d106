// File: database/repository/artist/crud.go
package artistRepo

import (
	"context"
	"time"

	"inkstudio/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (r *mongoArtistRepo) GetByID(ctx context.Context, id string) (*models.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var artist models.Artist
	if err := r.artists.FindOne(ctx, bson.M{"id": id}).Decode(&artist); err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *mongoArtistRepo) ListActive(ctx context.Context) ([]models.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.artists.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var artists []models.Artist
	if err := cursor.All(ctx, &artists); err != nil {
		return nil, err
	}
	return artists, nil
}

// GetOverride returns the override for (artistID, date), or
// mongo.ErrNoDocuments when none exists.
func (r *mongoArtistRepo) GetOverride(ctx context.Context, artistID, date string) (*models.ScheduleOverride, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"artistId": artistID, "date": date}
	var override models.ScheduleOverride
	if err := r.overrides.FindOne(ctx, filter).Decode(&override); err != nil {
		return nil, err
	}
	return &override, nil
}
