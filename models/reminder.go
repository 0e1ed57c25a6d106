package models

// ReminderPayload is queued when a booking is created; the worker hands it
// off to the notification service at fire time.
type ReminderPayload struct {
	ReminderID string `json:"reminderId"`
	BookingID  string `json:"bookingId"`
	ClientID   string `json:"clientId"`
	ArtistID   string `json:"artistId"`
	Kind       string `json:"kind"` // care_instructions, check_in, review_request
	FireDate   string `json:"fireDate"`
}
