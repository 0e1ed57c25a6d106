// File: services/scheduling/resolver.go
package scheduling

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	artistRepo "inkstudio/database/repository/artist"
	bookingRepo "inkstudio/database/repository/booking"
	"inkstudio/models"
	"inkstudio/services/pricing"
	"inkstudio/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	// ErrArtistNotFound is returned when the requested artist does not exist
	// or is no longer active.
	ErrArtistNotFound = errors.New("artist not found")
	// ErrInvalidDate is returned for dates not in "2006-01-02" form.
	ErrInvalidDate = errors.New("invalid date")
)

// DefaultSessionMinutes is assumed when the caller has no duration estimate yet.
const DefaultSessionMinutes = 60

// Resolver answers availability queries by combining the artist's weekly
// schedule, date overrides and existing bookings.
type Resolver struct {
	Artists  artistRepo.ArtistRepository
	Bookings bookingRepo.BookingRepository
	Interval int // slot step in minutes
}

// NewResolver constructs a Resolver stepping slots by the given interval.
func NewResolver(artists artistRepo.ArtistRepository, bookings bookingRepo.BookingRepository, interval int) *Resolver {
	if interval <= 0 {
		interval = DefaultSessionMinutes
	}
	return &Resolver{Artists: artists, Bookings: bookings, Interval: interval}
}

// GetAvailability resolves the bookable slots for one artist on one date,
// sized for a session of sessionDuration minutes.
func (r *Resolver) GetAvailability(ctx context.Context, artistID, date string, sessionDuration int) (models.AvailabilityResult, error) {
	logger := utils.GetLogger().With(zap.String("artistId", artistID), zap.String("date", date))

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return models.AvailabilityResult{}, fmt.Errorf("%w: %s", ErrInvalidDate, date)
	}
	if sessionDuration <= 0 {
		sessionDuration = DefaultSessionMinutes
	}

	artist, err := r.Artists.GetByID(ctx, artistID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.AvailabilityResult{}, ErrArtistNotFound
		}
		return models.AvailabilityResult{}, fmt.Errorf("fetch artist: %w", err)
	}
	if !artist.Active {
		return models.AvailabilityResult{}, ErrArtistNotFound
	}

	dateMod, err := pricing.DateModifier(date)
	if err != nil {
		return models.AvailabilityResult{}, fmt.Errorf("%w: %s", ErrInvalidDate, date)
	}

	result := models.AvailabilityResult{
		Date:          date,
		ArtistID:      artistID,
		Slots:         []models.TimeSlot{},
		IsWeekend:     pricing.IsWeekend(day),
		PriceModifier: dateMod.Factor,
	}

	window, open, err := r.resolveWindow(ctx, artist, date, day)
	if err != nil {
		return models.AvailabilityResult{}, err
	}
	if !open {
		logger.Debug("artist closed on date")
		// No bookable time means no surcharge to advertise.
		result.PriceModifier = 1.0
		return result, nil
	}

	openMin, err := ParseClock(window.Start)
	if err != nil {
		return models.AvailabilityResult{}, fmt.Errorf("artist %s schedule: %w", artistID, err)
	}
	closeMin, err := ParseClock(window.End)
	if err != nil {
		return models.AvailabilityResult{}, fmt.Errorf("artist %s schedule: %w", artistID, err)
	}

	busy, err := r.busyIntervals(ctx, artistID, date)
	if err != nil {
		return models.AvailabilityResult{}, err
	}

	for _, start := range GenerateStarts(openMin, closeMin, r.Interval, sessionDuration) {
		end := start + sessionDuration
		available := true
		for _, b := range busy {
			if Overlaps(start, end, b[0], b[1]) {
				available = false
				break
			}
		}
		clock := FormatClock(start)
		timeMod, err := pricing.TimeModifier(clock)
		if err != nil {
			return models.AvailabilityResult{}, err
		}
		result.Slots = append(result.Slots, models.TimeSlot{
			Time:          clock,
			Available:     available,
			PriceModifier: dateMod.Factor * timeMod.Factor,
		})
	}
	return result, nil
}

// resolveWindow picks the working window for the date. A matching override
// wins over the weekly schedule, with each empty override bound falling back
// to the weekly value.
func (r *Resolver) resolveWindow(ctx context.Context, artist *models.Artist, date string, day time.Time) (models.DayWindow, bool, error) {
	weekday := strings.ToLower(day.Weekday().String())
	weekly, weeklyOpen := artist.Weekly[weekday]

	override, err := r.Artists.GetOverride(ctx, artist.ID, date)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return weekly, weeklyOpen, nil
		}
		return models.DayWindow{}, false, fmt.Errorf("fetch override: %w", err)
	}

	if !override.IsAvailable {
		return models.DayWindow{}, false, nil
	}
	window := weekly
	if override.StartTime != "" {
		window.Start = override.StartTime
	}
	if override.EndTime != "" {
		window.End = override.EndTime
	}
	if window.Start == "" || window.End == "" {
		// Override opens a normally-closed day but gives no usable bounds.
		return models.DayWindow{}, false, nil
	}
	return window, true, nil
}

// busyIntervals loads the blocking bookings for the date as half-open
// [start, end) minute intervals.
func (r *Resolver) busyIntervals(ctx context.Context, artistID, date string) ([][2]int, error) {
	bookings, err := r.Bookings.ListBlockingByArtistAndDate(ctx, artistID, date)
	if err != nil {
		return nil, fmt.Errorf("fetch bookings: %w", err)
	}
	intervals := make([][2]int, 0, len(bookings))
	for _, b := range bookings {
		start, err := ParseClock(b.ScheduledTime)
		if err != nil {
			utils.GetLogger().Warn("skipping booking with bad time",
				zap.String("bookingId", b.ID), zap.String("time", b.ScheduledTime))
			continue
		}
		dur := b.EstimatedDuration
		if dur <= 0 {
			dur = DefaultSessionMinutes
		}
		intervals = append(intervals, [2]int{start, start + dur})
	}
	return intervals, nil
}
