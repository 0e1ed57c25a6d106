package wizard

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"inkstudio/models"
)

type memDraftStore struct {
	drafts map[string]models.BookingDraft
}

func newMemDraftStore() *memDraftStore {
	return &memDraftStore{drafts: map[string]models.BookingDraft{}}
}

func (m *memDraftStore) Get(_ context.Context, clientID string) (*models.BookingDraft, error) {
	d, ok := m.drafts[clientID]
	if !ok {
		return nil, ErrDraftNotFound
	}
	copy := d
	return &copy, nil
}

func (m *memDraftStore) Save(_ context.Context, draft *models.BookingDraft) error {
	m.drafts[draft.ClientID] = *draft
	return nil
}

func (m *memDraftStore) Delete(_ context.Context, clientID string) error {
	delete(m.drafts, clientID)
	return nil
}

func str(s string) *string { return &s }

func boolp(b bool) *bool { return &b }

func size(s models.SizeCategory) *models.SizeCategory { return &s }

func TestStartCreatesFreshDraft(t *testing.T) {
	svc := NewService(newMemDraftStore())
	ctx := context.Background()

	draft, err := svc.Start(ctx, "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Step != models.StepArtistStyle {
		t.Fatalf("new draft step = %v", draft.Step)
	}
	if draft.Estimate != nil {
		t.Fatalf("new draft must not carry an estimate")
	}
}

func TestNextBlocksOnMissingFields(t *testing.T) {
	svc := NewService(newMemDraftStore())
	ctx := context.Background()
	svc.Start(ctx, "c1")

	_, err := svc.Next(ctx, "c1")
	if !errors.Is(err, ErrStepIncomplete) {
		t.Fatalf("expected ErrStepIncomplete, got %v", err)
	}

	if _, err := svc.Update(ctx, "c1", DraftPatch{ArtistID: str("david"), Style: str("Flash")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	draft, err := svc.Next(ctx, "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Step != models.StepDetails {
		t.Fatalf("expected details step, got %v", draft.Step)
	}
}

func TestPriceRelevantEditRecomputesEstimate(t *testing.T) {
	svc := NewService(newMemDraftStore())
	ctx := context.Background()
	svc.Start(ctx, "c1")

	draft, err := svc.Update(ctx, "c1", DraftPatch{
		ArtistID:     str("david"),
		Style:        str("Fine Line & Dotwork"),
		SizeCategory: size(models.SizeMedium),
		Placement:    str("forearm"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Estimate == nil {
		t.Fatalf("size edit must produce an estimate")
	}
	if draft.Estimate.TotalMin != 250 || draft.Estimate.TotalMax != 500 {
		t.Fatalf("estimate totals %v/%v", draft.Estimate.TotalMin, draft.Estimate.TotalMax)
	}
	if draft.EstimatedDuration != 180 {
		t.Fatalf("duration = %d, want 180", draft.EstimatedDuration)
	}
	if draft.DepositAmount != draft.Estimate.DepositRequired {
		t.Fatalf("deposit %v diverges from estimate %v", draft.DepositAmount, draft.Estimate.DepositRequired)
	}

	// Flipping cover-up recomputes.
	draft, err = svc.Update(ctx, "c1", DraftPatch{IsCoverUp: boolp(true)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Estimate.TotalMin != 350 {
		t.Fatalf("cover-up estimate min = %v, want 350", draft.Estimate.TotalMin)
	}
	if draft.EstimatedDuration != 234 {
		t.Fatalf("cover-up duration = %d, want 234", draft.EstimatedDuration)
	}
}

func TestNonPriceEditKeepsEstimate(t *testing.T) {
	svc := NewService(newMemDraftStore())
	ctx := context.Background()
	svc.Start(ctx, "c1")

	svc.Update(ctx, "c1", DraftPatch{SizeCategory: size(models.SizeSmall)})
	before, _ := svc.Get(ctx, "c1")

	after, err := svc.Update(ctx, "c1", DraftPatch{Description: str("a swallow"), Placement: str("ankle")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after.Estimate == nil || !reflect.DeepEqual(after.Estimate, before.Estimate) {
		t.Fatalf("description edit must not change the estimate: %+v vs %+v", after.Estimate, before.Estimate)
	}
}

func TestScheduleEditAppliesSurcharges(t *testing.T) {
	svc := NewService(newMemDraftStore())
	ctx := context.Background()
	svc.Start(ctx, "c1")

	svc.Update(ctx, "c1", DraftPatch{SizeCategory: size(models.SizeMedium)})
	// 2026-09-05 is a Saturday.
	draft, err := svc.Update(ctx, "c1", DraftPatch{
		ScheduledDate: str("2026-09-05"),
		ScheduledTime: str("18:00"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	weekend, evening := 1.15, 1.20
	if draft.Estimate.Modifier != weekend*evening {
		t.Fatalf("estimate modifier = %v", draft.Estimate.Modifier)
	}
}

func TestBackKeepsData(t *testing.T) {
	svc := NewService(newMemDraftStore())
	ctx := context.Background()
	svc.Start(ctx, "c1")
	svc.Update(ctx, "c1", DraftPatch{ArtistID: str("nina"), Style: str("Flash")})
	svc.Next(ctx, "c1")

	draft, err := svc.Back(ctx, "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Step != models.StepArtistStyle {
		t.Fatalf("expected first step, got %v", draft.Step)
	}
	if draft.ArtistID != "nina" || draft.Style != "Flash" {
		t.Fatalf("back lost entered data: %+v", draft)
	}

	// Back at the first step stays put.
	draft, _ = svc.Back(ctx, "c1")
	if draft.Step != models.StepArtistStyle {
		t.Fatalf("back below first step: %v", draft.Step)
	}
}

func TestResetDeletesDraft(t *testing.T) {
	svc := NewService(newMemDraftStore())
	ctx := context.Background()
	svc.Start(ctx, "c1")

	if err := svc.Reset(ctx, "c1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Get(ctx, "c1"); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound, got %v", err)
	}
}

func TestReadyForSubmit(t *testing.T) {
	draft := &models.BookingDraft{
		ClientID:      "c1",
		ArtistID:      "david",
		Style:         "Flash",
		SizeCategory:  models.SizeSmall,
		Placement:     "wrist",
		ScheduledDate: "2026-09-02",
		ScheduledTime: "13:00",
		FirstName:     "Ada",
		LastName:      "Byron",
		Email:         "ada@example.com",
		Phone:         "0700000000",
	}
	if missing := ReadyForSubmit(draft); len(missing) != 0 {
		t.Fatalf("complete draft reported missing fields: %v", missing)
	}

	draft.ScheduledTime = ""
	missing := ReadyForSubmit(draft)
	if len(missing) != 1 || missing[0] != "scheduledTime" {
		t.Fatalf("expected [scheduledTime], got %v", missing)
	}
}
