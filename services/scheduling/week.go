// File: services/scheduling/week.go
package scheduling

import (
	"context"
	"fmt"
	"time"

	"inkstudio/models"
)

// WeekAvailability is seven consecutive days of resolved availability.
type WeekAvailability struct {
	ArtistID string                      `json:"artist_id"`
	Start    string                      `json:"start"`
	Days     []models.AvailabilityResult `json:"days"`
}

// GetWeekAvailability resolves seven days of slots starting at weekStart
// ("2006-01-02"). Days the artist is closed come back with empty slot lists.
func (r *Resolver) GetWeekAvailability(ctx context.Context, artistID, weekStart string, sessionDuration int) (WeekAvailability, error) {
	start, err := time.Parse("2006-01-02", weekStart)
	if err != nil {
		return WeekAvailability{}, fmt.Errorf("%w: %s", ErrInvalidDate, weekStart)
	}

	week := WeekAvailability{
		ArtistID: artistID,
		Start:    weekStart,
		Days:     make([]models.AvailabilityResult, 0, 7),
	}
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		day, err := r.GetAvailability(ctx, artistID, date, sessionDuration)
		if err != nil {
			return WeekAvailability{}, err
		}
		week.Days = append(week.Days, day)
	}
	return week, nil
}
