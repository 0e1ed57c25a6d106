// File: database/repository/artist/interface.go
package artistRepo

import (
	"context"

	"inkstudio/database"
	"inkstudio/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ArtistRepository reads artist schedule configuration. Schedules and
// overrides are managed elsewhere; this core only reads them.
type ArtistRepository interface {
	GetByID(ctx context.Context, id string) (*models.Artist, error)
	ListActive(ctx context.Context) ([]models.Artist, error)
	GetOverride(ctx context.Context, artistID, date string) (*models.ScheduleOverride, error)
}

type mongoArtistRepo struct {
	artists   *mongo.Collection
	overrides *mongo.Collection
}

// NewMongoArtistRepo constructs a new MongoDB ArtistRepository.
func NewMongoArtistRepo() ArtistRepository {
	db := database.MongoClient.Database("inkstudio")
	return &mongoArtistRepo{
		artists:   db.Collection("artists"),
		overrides: db.Collection("schedule_overrides"),
	}
}
