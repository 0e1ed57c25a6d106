package models

import "time"

// BookingStatus is the lifecycle state of a reservation.
type BookingStatus string

const (
	BookingPending     BookingStatus = "pending"
	BookingConfirmed   BookingStatus = "confirmed"
	BookingDepositPaid BookingStatus = "deposit_paid"
	BookingInProgress  BookingStatus = "in_progress"
	BookingCompleted   BookingStatus = "completed"
	BookingCancelled   BookingStatus = "cancelled"
	BookingNoShow      BookingStatus = "no_show"
	BookingRescheduled BookingStatus = "rescheduled"
)

// NonBlockingStatuses are the statuses excluded from availability blocking.
var NonBlockingStatuses = []BookingStatus{BookingCancelled, BookingNoShow, BookingRescheduled}

// Blocks reports whether a booking in this status occupies artist time.
func (s BookingStatus) Blocks() bool {
	for _, ns := range NonBlockingStatuses {
		if s == ns {
			return false
		}
	}
	return true
}

// Booking is a confirmed or pending appointment occupying artist time.
type Booking struct {
	ID                string        `bson:"id" json:"id"`
	ClientID          string        `bson:"clientId" json:"clientId"`
	ArtistID          string        `bson:"artistId" json:"artistId"`
	ServiceType       string        `bson:"serviceType" json:"serviceType"`
	Status            BookingStatus `bson:"status" json:"status"`
	ScheduledDate     string        `bson:"scheduledDate" json:"scheduledDate"`         // "2006-01-02"
	ScheduledTime     string        `bson:"scheduledTime" json:"scheduledTime"`         // "15:04"
	EstimatedDuration int           `bson:"estimatedDuration" json:"estimatedDuration"` // minutes
	Description       string        `bson:"description,omitempty" json:"description,omitempty"`
	Placement         string        `bson:"placement,omitempty" json:"placement,omitempty"`
	SizeCategory      SizeCategory  `bson:"sizeCategory" json:"sizeCategory"`
	Style             string        `bson:"style,omitempty" json:"style,omitempty"`
	IsCoverUp         bool          `bson:"isCoverUp" json:"isCoverUp"`
	IsTouchUp         bool          `bson:"isTouchUp" json:"isTouchUp"`
	EstimatedPriceMin float64       `bson:"estimatedPriceMin" json:"estimatedPriceMin"`
	EstimatedPriceMax float64       `bson:"estimatedPriceMax" json:"estimatedPriceMax"`
	DepositAmount     float64       `bson:"depositAmount" json:"depositAmount"`
	DepositPaid       bool          `bson:"depositPaid" json:"depositPaid"`
	PriceModifier     float64       `bson:"priceModifier" json:"priceModifier"`
	CreatedAt         time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time     `bson:"updatedAt" json:"updatedAt"`
}
