package handlers

import (
	"errors"
	"net/http"
	"strconv"

	artistRepo "inkstudio/database/repository/artist"
	"inkstudio/models"
	"inkstudio/services/scheduling"
	"inkstudio/utils"

	"github.com/gin-gonic/gin"
)

var (
	AvailabilityResolver *scheduling.Resolver
	ArtistRepo           artistRepo.ArtistRepository
)

// GetAvailability resolves the bookable slots for an artist on one date.
// An optional duration query carries the draft's estimated session length so
// long sessions only see starts they actually fit in.
func GetAvailability(c *gin.Context) {
	artistID := c.Query("artist_id")
	date := c.Query("date")
	if artistID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing parameters", "artist_id and date are required")
		return
	}

	duration := scheduling.DefaultSessionMinutes
	if raw := c.Query("duration"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil || d <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid duration", "duration must be a positive number of minutes")
			return
		}
		duration = d
	}

	result, err := AvailabilityResolver.GetAvailability(c.Request.Context(), artistID, date, duration)
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrInvalidDate):
			utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
		case errors.Is(err, scheduling.ErrArtistNotFound):
			utils.JSONError(c, http.StatusNotFound, "artist not found", "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to resolve availability", "")
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetWeekAvailability returns seven days of slots starting at week_start.
func GetWeekAvailability(c *gin.Context) {
	artistID := c.Query("artist_id")
	weekStart := c.Query("week_start")
	if artistID == "" || weekStart == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing parameters", "artist_id and week_start are required")
		return
	}

	duration := scheduling.DefaultSessionMinutes
	if raw := c.Query("duration"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil || d <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid duration", "duration must be a positive number of minutes")
			return
		}
		duration = d
	}

	week, err := AvailabilityResolver.GetWeekAvailability(c.Request.Context(), artistID, weekStart, duration)
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrInvalidDate):
			utils.JSONError(c, http.StatusBadRequest, "invalid week_start", "expected YYYY-MM-DD")
		case errors.Is(err, scheduling.ErrArtistNotFound):
			utils.JSONError(c, http.StatusNotFound, "artist not found", "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to resolve availability", "")
		}
		return
	}
	c.JSON(http.StatusOK, week)
}

// ListArtists returns the active artists clients can book.
func ListArtists(c *gin.Context) {
	artists, err := ArtistRepo.ListActive(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list artists", "")
		return
	}
	out := make([]models.ArtistDTO, 0, len(artists))
	for _, a := range artists {
		out = append(out, models.ArtistDTO{
			ID:          a.ID,
			Name:        a.Name,
			Role:        a.Role,
			Specialties: a.Specialties,
		})
	}
	c.JSON(http.StatusOK, gin.H{"artists": out})
}
