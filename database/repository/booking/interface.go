// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"inkstudio/database"
	"inkstudio/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists reservations and answers blocking-interval
// queries for the availability resolver.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// ListBlockingByArtistAndDate returns bookings occupying artist time on
	// the given date, excluding cancelled/no-show/rescheduled ones.
	ListBlockingByArtistAndDate(ctx context.Context, artistID, date string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error
	SetDepositPaid(ctx context.Context, id string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("inkstudio")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
