package models

import "time"

// WizardStep is one ordered step of the booking wizard.
type WizardStep int

const (
	StepArtistStyle WizardStep = iota
	StepDetails
	StepSchedule
	StepClientInfo
	StepReview
)

func (s WizardStep) String() string {
	switch s {
	case StepArtistStyle:
		return "artist_style"
	case StepDetails:
		return "details"
	case StepSchedule:
		return "schedule"
	case StepClientInfo:
		return "client_info"
	case StepReview:
		return "review"
	}
	return "unknown"
}

// BookingDraft is the in-progress, not-yet-submitted booking form state.
// It is persisted keyed by the client identifier and cleared only on
// successful submission or an explicit reset.
type BookingDraft struct {
	ClientID string     `json:"clientId"`
	Step     WizardStep `json:"step"`

	// Artist & style.
	ArtistID    string `json:"artistId"`
	ServiceType string `json:"serviceType"`
	Style       string `json:"style"`

	// Tattoo details.
	Description  string       `json:"description,omitempty"`
	Placement    string       `json:"placement,omitempty"`
	SizeCategory SizeCategory `json:"sizeCategory"`
	SizeInches   string       `json:"sizeInches,omitempty"`
	IsCoverUp    bool         `json:"isCoverUp"`
	IsTouchUp    bool         `json:"isTouchUp"`

	// Schedule.
	ScheduledDate     string `json:"scheduledDate,omitempty"` // "2006-01-02"
	ScheduledTime     string `json:"scheduledTime,omitempty"` // "15:04"
	EstimatedDuration int    `json:"estimatedDuration,omitempty"`

	// Client info.
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`

	// Payment.
	LoyaltyDiscount float64 `json:"loyaltyDiscount,omitempty"`
	DepositAmount   float64 `json:"depositAmount,omitempty"`
	PaymentMethod   string  `json:"paymentMethod,omitempty"`

	Estimate *PriceEstimate `json:"estimate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
