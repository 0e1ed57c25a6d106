// File: services/wizard/patch.go
package wizard

import "inkstudio/models"

// DraftPatch is a partial update to a booking draft. Nil fields are left
// untouched, so clients can submit only the fields the current step edits.
type DraftPatch struct {
	ArtistID    *string `json:"artistId,omitempty"`
	ServiceType *string `json:"serviceType,omitempty"`
	Style       *string `json:"style,omitempty"`

	Description  *string              `json:"description,omitempty"`
	Placement    *string              `json:"placement,omitempty"`
	SizeCategory *models.SizeCategory `json:"sizeCategory,omitempty"`
	SizeInches   *string              `json:"sizeInches,omitempty"`
	IsCoverUp    *bool                `json:"isCoverUp,omitempty"`
	IsTouchUp    *bool                `json:"isTouchUp,omitempty"`

	ScheduledDate *string `json:"scheduledDate,omitempty"`
	ScheduledTime *string `json:"scheduledTime,omitempty"`

	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`

	PaymentMethod *string `json:"paymentMethod,omitempty"`
}

// ApplyPatch copies the patch's set fields onto the draft and reports whether
// any field feeding the price estimate changed, which forces a recompute.
func ApplyPatch(draft *models.BookingDraft, patch DraftPatch) (priceRelevant bool) {
	if patch.ArtistID != nil {
		draft.ArtistID = *patch.ArtistID
	}
	if patch.ServiceType != nil {
		draft.ServiceType = *patch.ServiceType
	}
	if patch.Style != nil && draft.Style != *patch.Style {
		draft.Style = *patch.Style
		priceRelevant = true
	}
	if patch.Description != nil {
		draft.Description = *patch.Description
	}
	if patch.Placement != nil {
		draft.Placement = *patch.Placement
	}
	if patch.SizeCategory != nil && draft.SizeCategory != *patch.SizeCategory {
		draft.SizeCategory = *patch.SizeCategory
		priceRelevant = true
	}
	if patch.SizeInches != nil {
		draft.SizeInches = *patch.SizeInches
	}
	if patch.IsCoverUp != nil && draft.IsCoverUp != *patch.IsCoverUp {
		draft.IsCoverUp = *patch.IsCoverUp
		priceRelevant = true
	}
	if patch.IsTouchUp != nil && draft.IsTouchUp != *patch.IsTouchUp {
		draft.IsTouchUp = *patch.IsTouchUp
		priceRelevant = true
	}
	if patch.ScheduledDate != nil && draft.ScheduledDate != *patch.ScheduledDate {
		draft.ScheduledDate = *patch.ScheduledDate
		priceRelevant = true
	}
	if patch.ScheduledTime != nil && draft.ScheduledTime != *patch.ScheduledTime {
		draft.ScheduledTime = *patch.ScheduledTime
		priceRelevant = true
	}
	if patch.FirstName != nil {
		draft.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		draft.LastName = *patch.LastName
	}
	if patch.Email != nil {
		draft.Email = *patch.Email
	}
	if patch.Phone != nil {
		draft.Phone = *patch.Phone
	}
	if patch.DateOfBirth != nil {
		draft.DateOfBirth = *patch.DateOfBirth
	}
	if patch.PaymentMethod != nil {
		draft.PaymentMethod = *patch.PaymentMethod
	}
	return priceRelevant
}
