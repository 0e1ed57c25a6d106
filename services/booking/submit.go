// File: services/booking/submit.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "inkstudio/database/repository/booking"
	clientRepo "inkstudio/database/repository/client"
	"inkstudio/models"
	"inkstudio/services/pricing"
	"inkstudio/services/scheduling"
	"inkstudio/services/wizard"
	"inkstudio/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	// ErrSlotConflict is returned when the requested slot was taken between
	// the wizard's availability check and submission.
	ErrSlotConflict = errors.New("slot no longer available")
	// ErrDraftIncomplete is returned when required draft fields are missing.
	ErrDraftIncomplete = errors.New("draft incomplete")
)

// ReminderScheduler queues aftercare and appointment reminders for a booking.
type ReminderScheduler interface {
	ScheduleBookingReminders(ctx context.Context, booking *models.Booking) error
}

// DepositIntenter creates a payment intent for the booking deposit and
// returns its client secret.
type DepositIntenter interface {
	CreateDepositIntent(ctx context.Context, booking *models.Booking) (string, error)
}

// Service turns a completed wizard draft into a persisted booking. The
// submission path re-resolves availability under a per-artist-day lock so two
// clients can never confirm overlapping sessions.
type Service struct {
	Resolver  *scheduling.Resolver
	Bookings  bookingRepo.BookingRepository
	Clients   clientRepo.ClientRepository
	Drafts    wizard.DraftStore
	Lock      Locker
	Reminders ReminderScheduler
	Payments  DepositIntenter
}

// SubmitResult is the successful outcome of a booking submission.
type SubmitResult struct {
	Booking             *models.Booking `json:"booking"`
	DepositIntentSecret string          `json:"deposit_intent_secret,omitempty"`
}

// Submit validates the client's draft, re-checks the slot and persists the
// booking. The draft is cleared only after the booking is stored.
func (s *Service) Submit(ctx context.Context, clientID string) (*SubmitResult, error) {
	logger := utils.GetLogger().With(zap.String("clientId", clientID))

	draft, err := s.Drafts.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if missing := wizard.ReadyForSubmit(draft); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrDraftIncomplete, missing)
	}

	client, err := s.findOrCreateClient(ctx, draft)
	if err != nil {
		return nil, err
	}

	// The returning-client discount may differ from what the draft assumed.
	if ld := pricing.LoyaltyDiscount(client); ld != draft.LoyaltyDiscount {
		draft.LoyaltyDiscount = ld
		if err := wizard.Recompute(draft); err != nil {
			return nil, err
		}
	}
	if draft.Estimate == nil {
		if err := wizard.Recompute(draft); err != nil {
			return nil, err
		}
	}

	token := uuid.NewString()
	if err := s.Lock.Acquire(ctx, draft.ArtistID, draft.ScheduledDate, token); err != nil {
		if errors.Is(err, ErrLockHeld) {
			return nil, ErrSlotConflict
		}
		return nil, err
	}
	defer func() {
		if err := s.Lock.Release(context.WithoutCancel(ctx), draft.ArtistID, draft.ScheduledDate, token); err != nil {
			logger.Warn("releasing slot lock failed", zap.Error(err))
		}
	}()

	if err := s.recheckSlot(ctx, draft); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking := &models.Booking{
		ID:                uuid.NewString(),
		ClientID:          client.ID,
		ArtistID:          draft.ArtistID,
		ServiceType:       draft.ServiceType,
		Status:            models.BookingPending,
		ScheduledDate:     draft.ScheduledDate,
		ScheduledTime:     draft.ScheduledTime,
		EstimatedDuration: draft.EstimatedDuration,
		Description:       draft.Description,
		Placement:         draft.Placement,
		SizeCategory:      draft.SizeCategory,
		Style:             draft.Style,
		IsCoverUp:         draft.IsCoverUp,
		IsTouchUp:         draft.IsTouchUp,
		EstimatedPriceMin: draft.Estimate.TotalMin,
		EstimatedPriceMax: draft.Estimate.TotalMax,
		DepositAmount:     draft.Estimate.DepositRequired,
		PriceModifier:     draft.Estimate.Modifier,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.Bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("store booking: %w", err)
	}
	logger.Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("artistId", booking.ArtistID),
		zap.String("date", booking.ScheduledDate),
		zap.String("time", booking.ScheduledTime))

	if err := s.Drafts.Delete(ctx, clientID); err != nil {
		logger.Warn("clearing draft failed", zap.Error(err))
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminders(ctx, booking); err != nil {
			logger.Warn("scheduling reminders failed", zap.Error(err))
		}
	}

	result := &SubmitResult{Booking: booking}
	if s.Payments != nil && booking.DepositAmount > 0 {
		secret, err := s.Payments.CreateDepositIntent(ctx, booking)
		if err != nil {
			logger.Warn("creating deposit intent failed", zap.Error(err))
		} else {
			result.DepositIntentSecret = secret
		}
	}
	return result, nil
}

// recheckSlot re-resolves availability for the draft's session length and
// requires the requested start to still be an open slot.
func (s *Service) recheckSlot(ctx context.Context, draft *models.BookingDraft) error {
	duration := draft.EstimatedDuration
	if duration <= 0 {
		duration = scheduling.DefaultSessionMinutes
	}
	avail, err := s.Resolver.GetAvailability(ctx, draft.ArtistID, draft.ScheduledDate, duration)
	if err != nil {
		return err
	}
	for _, slot := range avail.Slots {
		if slot.Time == draft.ScheduledTime {
			if !slot.Available {
				return ErrSlotConflict
			}
			return nil
		}
	}
	return ErrSlotConflict
}

func (s *Service) findOrCreateClient(ctx context.Context, draft *models.BookingDraft) (*models.Client, error) {
	client, err := s.Clients.GetByEmail(ctx, draft.Email)
	if err == nil {
		return client, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("fetch client: %w", err)
	}

	now := time.Now().UTC()
	client = &models.Client{
		ID:          uuid.NewString(),
		Email:       draft.Email,
		Phone:       draft.Phone,
		FirstName:   draft.FirstName,
		LastName:    draft.LastName,
		DateOfBirth: draft.DateOfBirth,
		LoyaltyTier: models.TierStandard,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Clients.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return client, nil
}

// Complete marks a booking finished and credits loyalty points for the
// spend. The client's tier is recalculated from the new point balance on
// every credit, so tier discounts advance without any separate job.
func (s *Service) Complete(ctx context.Context, bookingID string, amountPaid float64) error {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if err := s.Bookings.UpdateStatus(ctx, bookingID, models.BookingCompleted); err != nil {
		return err
	}
	client, err := s.Clients.GetByID(ctx, booking.ClientID)
	if err != nil {
		return err
	}
	points := pricing.BookingPoints(amountPaid, client.LoyaltyTier)
	if err := s.Clients.RecordVisit(ctx, client.ID, amountPaid, points); err != nil {
		return err
	}
	if newTier := pricing.TierForPoints(client.LoyaltyPoints + points); newTier != client.LoyaltyTier {
		return s.Clients.UpdateTier(ctx, client.ID, newTier)
	}
	return nil
}
