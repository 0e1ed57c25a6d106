package models

// TimeSlot is a candidate bookable start time within an artist's working
// window. Unavailable slots are still returned so clients can render them
// with their surcharge, but they are never bookable.
type TimeSlot struct {
	Time          string  `json:"time"` // "15:04"
	Available     bool    `json:"available"`
	PriceModifier float64 `json:"price_modifier"`
}

// AvailabilityResult is the full slot picture for one artist and date.
type AvailabilityResult struct {
	Date          string     `json:"date"`
	ArtistID      string     `json:"artist_id"`
	Slots         []TimeSlot `json:"slots"`
	IsWeekend     bool       `json:"is_weekend"`
	PriceModifier float64    `json:"price_modifier"`
}
