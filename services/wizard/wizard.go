// File: services/wizard/wizard.go
package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inkstudio/models"
	"inkstudio/services/pricing"
	"inkstudio/utils"

	"go.uber.org/zap"
)

// ErrStepIncomplete is returned by Next when the current step still misses
// required fields.
var ErrStepIncomplete = errors.New("step incomplete")

// Service drives the multi-step booking wizard: it owns draft persistence,
// step advancement and estimate recomputation.
type Service struct {
	Drafts DraftStore
}

// NewService builds a wizard Service over the given draft store.
func NewService(drafts DraftStore) *Service {
	return &Service{Drafts: drafts}
}

// Start creates a fresh draft for the client, replacing any existing one.
func (s *Service) Start(ctx context.Context, clientID string) (*models.BookingDraft, error) {
	now := time.Now().UTC()
	draft := &models.BookingDraft{
		ClientID:  clientID,
		Step:      models.StepArtistStyle,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("wizard started", zap.String("clientId", clientID))
	return draft, nil
}

// Get returns the client's current draft.
func (s *Service) Get(ctx context.Context, clientID string) (*models.BookingDraft, error) {
	return s.Drafts.Get(ctx, clientID)
}

// Update applies a partial edit to the draft. Edits to any field feeding the
// quote recompute the estimate immediately, on any step; other edits leave
// the existing estimate untouched.
func (s *Service) Update(ctx context.Context, clientID string, patch DraftPatch) (*models.BookingDraft, error) {
	draft, err := s.Drafts.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if ApplyPatch(draft, patch) {
		if err := Recompute(draft); err != nil {
			return nil, err
		}
	}
	draft.UpdatedAt = time.Now().UTC()

	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Next advances the wizard one step after verifying the current step is
// complete. Advancing past the schedule step refreshes the estimate so the
// review screen always reflects the chosen slot.
func (s *Service) Next(ctx context.Context, clientID string) (*models.BookingDraft, error) {
	draft, err := s.Drafts.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if missing := stepMissing(draft); len(missing) > 0 {
		return draft, fmt.Errorf("%w: %v", ErrStepIncomplete, missing)
	}
	if draft.Step >= models.StepReview {
		return draft, nil
	}

	draft.Step++
	if draft.Step == models.StepClientInfo {
		if err := Recompute(draft); err != nil {
			return nil, err
		}
	}
	draft.UpdatedAt = time.Now().UTC()

	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Back steps the wizard backwards without validation; entered data is kept.
func (s *Service) Back(ctx context.Context, clientID string) (*models.BookingDraft, error) {
	draft, err := s.Drafts.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if draft.Step > models.StepArtistStyle {
		draft.Step--
		draft.UpdatedAt = time.Now().UTC()
		if err := s.Drafts.Save(ctx, draft); err != nil {
			return nil, err
		}
	}
	return draft, nil
}

// Reset abandons the draft entirely.
func (s *Service) Reset(ctx context.Context, clientID string) error {
	return s.Drafts.Delete(ctx, clientID)
}

// Recompute rebuilds the draft's estimate, duration and deposit from its
// current fields. Drafts without a size yet carry no estimate.
func Recompute(draft *models.BookingDraft) error {
	if draft.SizeCategory == "" {
		draft.Estimate = nil
		draft.EstimatedDuration = 0
		draft.DepositAmount = 0
		return nil
	}
	est, err := pricing.BuildEstimate(pricing.EstimateInput{
		Size:            draft.SizeCategory,
		Style:           draft.Style,
		IsCoverUp:       draft.IsCoverUp,
		IsTouchUp:       draft.IsTouchUp,
		Date:            draft.ScheduledDate,
		Time:            draft.ScheduledTime,
		LoyaltyDiscount: draft.LoyaltyDiscount,
	})
	if err != nil {
		return err
	}
	dur, err := pricing.EstimateDuration(draft.SizeCategory, draft.Style, draft.IsCoverUp)
	if err != nil {
		return err
	}
	draft.Estimate = &est
	draft.EstimatedDuration = dur
	draft.DepositAmount = est.DepositRequired
	return nil
}

// stepMissing lists the required fields the current step still lacks.
func stepMissing(draft *models.BookingDraft) []string {
	var missing []string
	switch draft.Step {
	case models.StepArtistStyle:
		if draft.ArtistID == "" {
			missing = append(missing, "artistId")
		}
		if draft.Style == "" {
			missing = append(missing, "style")
		}
	case models.StepDetails:
		if draft.SizeCategory == "" {
			missing = append(missing, "sizeCategory")
		}
		if draft.Placement == "" {
			missing = append(missing, "placement")
		}
	case models.StepSchedule:
		if draft.ScheduledDate == "" {
			missing = append(missing, "scheduledDate")
		}
		if draft.ScheduledTime == "" {
			missing = append(missing, "scheduledTime")
		}
	case models.StepClientInfo:
		if draft.FirstName == "" {
			missing = append(missing, "firstName")
		}
		if draft.LastName == "" {
			missing = append(missing, "lastName")
		}
		if draft.Email == "" {
			missing = append(missing, "email")
		}
		if draft.Phone == "" {
			missing = append(missing, "phone")
		}
	}
	return missing
}

// ReadyForSubmit reports whether every step's required fields are present, as
// booking submission re-validates the whole draft regardless of step.
func ReadyForSubmit(draft *models.BookingDraft) []string {
	var missing []string
	scratch := *draft
	for step := models.StepArtistStyle; step <= models.StepClientInfo; step++ {
		scratch.Step = step
		missing = append(missing, stepMissing(&scratch)...)
	}
	return missing
}
