package models

import "time"

// Artist is a tattoo artist whose schedule and pricing the engine computes.
type Artist struct {
	ID          string         `bson:"id" json:"id"`
	Name        string         `bson:"name" json:"name"`
	Role        string         `bson:"role,omitempty" json:"role,omitempty"`
	Specialties []string       `bson:"specialties,omitempty" json:"specialties,omitempty"`
	Instagram   string         `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Weekly      WeeklySchedule `bson:"weeklySchedule" json:"weeklySchedule"`
	Active      bool           `bson:"active" json:"active"`
	CreatedAt   time.Time      `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time      `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ArtistDTO is the minimal artist view returned to booking clients.
type ArtistDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Role        string   `json:"role,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
}
