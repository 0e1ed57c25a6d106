package booking

import (
	"context"
	"errors"
	"testing"

	"inkstudio/models"
	"inkstudio/services/pricing"
	"inkstudio/services/scheduling"
	"inkstudio/services/wizard"

	"go.mongodb.org/mongo-driver/mongo"
)

type fakeArtistRepo struct {
	artists map[string]*models.Artist
}

func (f *fakeArtistRepo) GetByID(_ context.Context, id string) (*models.Artist, error) {
	a, ok := f.artists[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return a, nil
}

func (f *fakeArtistRepo) ListActive(_ context.Context) ([]models.Artist, error) {
	return nil, nil
}

func (f *fakeArtistRepo) GetOverride(_ context.Context, _, _ string) (*models.ScheduleOverride, error) {
	return nil, mongo.ErrNoDocuments
}

type fakeBookingRepo struct {
	bookings []models.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *models.Booking) error {
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			return &f.bookings[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeBookingRepo) ListBlockingByArtistAndDate(_ context.Context, artistID, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ArtistID == artistID && b.ScheduledDate == date && b.Status.Blocks() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status models.BookingStatus) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Status = status
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeBookingRepo) SetDepositPaid(ctx context.Context, id string) error {
	return f.UpdateStatus(ctx, id, models.BookingDepositPaid)
}

type fakeClientRepo struct {
	byEmail map[string]*models.Client
	visits  map[string]int
}

func (f *fakeClientRepo) GetByID(_ context.Context, id string) (*models.Client, error) {
	for _, c := range f.byEmail {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeClientRepo) GetByEmail(_ context.Context, email string) (*models.Client, error) {
	c, ok := f.byEmail[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return c, nil
}

func (f *fakeClientRepo) Create(_ context.Context, c *models.Client) error {
	f.byEmail[c.Email] = c
	return nil
}

func (f *fakeClientRepo) RecordVisit(_ context.Context, id string, amountSpent float64, points int) error {
	if f.visits == nil {
		f.visits = map[string]int{}
	}
	f.visits[id] += points
	for _, c := range f.byEmail {
		if c.ID == id {
			c.VisitCount++
			c.TotalSpent += amountSpent
			c.LoyaltyPoints += points
		}
	}
	return nil
}

func (f *fakeClientRepo) UpdateTier(_ context.Context, id string, tier models.LoyaltyTier) error {
	for _, c := range f.byEmail {
		if c.ID == id {
			c.LoyaltyTier = tier
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type memDraftStore struct {
	drafts map[string]models.BookingDraft
}

func (m *memDraftStore) Get(_ context.Context, clientID string) (*models.BookingDraft, error) {
	d, ok := m.drafts[clientID]
	if !ok {
		return nil, wizard.ErrDraftNotFound
	}
	cp := d
	return &cp, nil
}

func (m *memDraftStore) Save(_ context.Context, draft *models.BookingDraft) error {
	m.drafts[draft.ClientID] = *draft
	return nil
}

func (m *memDraftStore) Delete(_ context.Context, clientID string) error {
	delete(m.drafts, clientID)
	return nil
}

type memLock struct {
	held map[string]string
}

func (l *memLock) Acquire(_ context.Context, artistID, date, token string) error {
	if l.held == nil {
		l.held = map[string]string{}
	}
	key := artistID + "|" + date
	if _, ok := l.held[key]; ok {
		return ErrLockHeld
	}
	l.held[key] = token
	return nil
}

func (l *memLock) Release(_ context.Context, artistID, date, token string) error {
	key := artistID + "|" + date
	if l.held[key] == token {
		delete(l.held, key)
	}
	return nil
}

func completeDraft() models.BookingDraft {
	return models.BookingDraft{
		ClientID:      "c1",
		Step:          models.StepReview,
		ArtistID:      "david",
		Style:         "Fine Line & Dotwork",
		SizeCategory:  models.SizeSmall,
		Placement:     "forearm",
		ScheduledDate: "2026-09-02", // a Wednesday
		ScheduledTime: "13:00",
		FirstName:     "Ada",
		LastName:      "Byron",
		Email:         "ada@example.com",
		Phone:         "0700000000",
	}
}

func newTestService(bookings *fakeBookingRepo, clients *fakeClientRepo, drafts *memDraftStore) *Service {
	artists := &fakeArtistRepo{artists: map[string]*models.Artist{
		"david": {
			ID:     "david",
			Name:   "David",
			Active: true,
			Weekly: models.WeeklySchedule{
				"tuesday":   {Start: "11:00", End: "19:00"},
				"wednesday": {Start: "11:00", End: "19:00"},
				"thursday":  {Start: "11:00", End: "19:00"},
				"friday":    {Start: "11:00", End: "19:00"},
				"saturday":  {Start: "11:00", End: "19:00"},
			},
		},
	}}
	return &Service{
		Resolver: scheduling.NewResolver(artists, bookings, 60),
		Bookings: bookings,
		Clients:  clients,
		Drafts:   drafts,
		Lock:     &memLock{},
	}
}

func TestSubmit_CreatesBookingAndClearsDraft(t *testing.T) {
	draft := completeDraft()
	drafts := &memDraftStore{drafts: map[string]models.BookingDraft{"c1": draft}}
	bookings := &fakeBookingRepo{}
	clients := &fakeClientRepo{byEmail: map[string]*models.Client{}}
	svc := newTestService(bookings, clients, drafts)

	res, err := svc.Submit(context.Background(), "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b := res.Booking
	if b.Status != models.BookingPending {
		t.Fatalf("new booking status = %s", b.Status)
	}
	if b.ArtistID != "david" || b.ScheduledTime != "13:00" {
		t.Fatalf("booking fields wrong: %+v", b)
	}
	// small size, no modifiers: 100-250, 90 minute session, deposit 75->clamped? round(250*0.30)=75 >=50 -> 75.
	if b.EstimatedPriceMin != 100 || b.EstimatedPriceMax != 250 {
		t.Fatalf("booking price %v-%v", b.EstimatedPriceMin, b.EstimatedPriceMax)
	}
	if b.DepositAmount != 75 {
		t.Fatalf("deposit = %v, want 75", b.DepositAmount)
	}
	if b.EstimatedDuration != 90 {
		t.Fatalf("duration = %d, want 90", b.EstimatedDuration)
	}

	if len(bookings.bookings) != 1 {
		t.Fatalf("booking not stored")
	}
	if _, ok := drafts.drafts["c1"]; ok {
		t.Fatalf("draft not cleared after submit")
	}
	if _, ok := clients.byEmail["ada@example.com"]; !ok {
		t.Fatalf("client not created")
	}
}

func TestSubmit_RejectsIncompleteDraft(t *testing.T) {
	draft := completeDraft()
	draft.Email = ""
	drafts := &memDraftStore{drafts: map[string]models.BookingDraft{"c1": draft}}
	svc := newTestService(&fakeBookingRepo{}, &fakeClientRepo{byEmail: map[string]*models.Client{}}, drafts)

	_, err := svc.Submit(context.Background(), "c1")
	if !errors.Is(err, ErrDraftIncomplete) {
		t.Fatalf("expected ErrDraftIncomplete, got %v", err)
	}
	if _, ok := drafts.drafts["c1"]; !ok {
		t.Fatalf("draft must survive a failed submit")
	}
}

func TestSubmit_ConflictWhenSlotTaken(t *testing.T) {
	draft := completeDraft()
	drafts := &memDraftStore{drafts: map[string]models.BookingDraft{"c1": draft}}
	bookings := &fakeBookingRepo{bookings: []models.Booking{{
		ID:                "existing",
		ArtistID:          "david",
		ScheduledDate:     "2026-09-02",
		ScheduledTime:     "12:00",
		EstimatedDuration: 120, // blocks 12:00-14:00
		Status:            models.BookingConfirmed,
	}}}
	svc := newTestService(bookings, &fakeClientRepo{byEmail: map[string]*models.Client{}}, drafts)

	_, err := svc.Submit(context.Background(), "c1")
	if !errors.Is(err, ErrSlotConflict) {
		t.Fatalf("expected ErrSlotConflict, got %v", err)
	}
	if len(bookings.bookings) != 1 {
		t.Fatalf("conflicting booking must not be stored")
	}
	if _, ok := drafts.drafts["c1"]; !ok {
		t.Fatalf("draft must survive a conflict")
	}
}

func TestSubmit_ConflictWhenLockHeld(t *testing.T) {
	draft := completeDraft()
	drafts := &memDraftStore{drafts: map[string]models.BookingDraft{"c1": draft}}
	svc := newTestService(&fakeBookingRepo{}, &fakeClientRepo{byEmail: map[string]*models.Client{}}, drafts)

	lock := svc.Lock.(*memLock)
	if err := lock.Acquire(context.Background(), "david", "2026-09-02", "other"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.Submit(context.Background(), "c1")
	if !errors.Is(err, ErrSlotConflict) {
		t.Fatalf("expected ErrSlotConflict, got %v", err)
	}
}

func TestSubmit_ReturningClientGetsLoyaltyDiscount(t *testing.T) {
	draft := completeDraft()
	drafts := &memDraftStore{drafts: map[string]models.BookingDraft{"c1": draft}}
	clients := &fakeClientRepo{byEmail: map[string]*models.Client{
		"ada@example.com": {
			ID:         "client-ada",
			Email:      "ada@example.com",
			FirstName:  "Ada",
			VisitCount: 1,
		},
	}}
	svc := newTestService(&fakeBookingRepo{}, clients, drafts)

	res, err := svc.Submit(context.Background(), "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Second visit: 5% off 100-250 -> 95-237.
	if res.Booking.EstimatedPriceMin != 95 || res.Booking.EstimatedPriceMax != 237 {
		t.Fatalf("discounted price %v-%v", res.Booking.EstimatedPriceMin, res.Booking.EstimatedPriceMax)
	}
	if res.Booking.ClientID != "client-ada" {
		t.Fatalf("existing client not reused: %s", res.Booking.ClientID)
	}
}

func TestComplete_RecordsVisitAndPoints(t *testing.T) {
	clients := &fakeClientRepo{byEmail: map[string]*models.Client{
		"ada@example.com": {ID: "client-ada", Email: "ada@example.com", LoyaltyPoints: 600, LoyaltyTier: models.TierSilver},
	}}
	bookings := &fakeBookingRepo{bookings: []models.Booking{{
		ID:       "b1",
		ClientID: "client-ada",
		ArtistID: "david",
		Status:   models.BookingConfirmed,
	}}}
	drafts := &memDraftStore{drafts: map[string]models.BookingDraft{}}
	svc := newTestService(bookings, clients, drafts)

	if err := svc.Complete(context.Background(), "b1", 200); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bookings.bookings[0].Status != models.BookingCompleted {
		t.Fatalf("status = %s", bookings.bookings[0].Status)
	}
	// Silver multiplier 1.25 on 200 points.
	if clients.visits["client-ada"] != 250 {
		t.Fatalf("points = %d, want 250", clients.visits["client-ada"])
	}
}

func TestComplete_AdvancesLoyaltyTier(t *testing.T) {
	clients := &fakeClientRepo{byEmail: map[string]*models.Client{
		"ada@example.com": {ID: "client-ada", Email: "ada@example.com", LoyaltyTier: models.TierStandard},
	}}
	bookings := &fakeBookingRepo{bookings: []models.Booking{{
		ID:       "b1",
		ClientID: "client-ada",
		ArtistID: "david",
		Status:   models.BookingConfirmed,
	}}}
	drafts := &memDraftStore{drafts: map[string]models.BookingDraft{}}
	svc := newTestService(bookings, clients, drafts)

	if err := svc.Complete(context.Background(), "b1", 5000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 5000 points at the standard multiplier clears the vip threshold; the
	// next estimate must see the 15% tier discount.
	client := clients.byEmail["ada@example.com"]
	if client.LoyaltyTier != models.TierVIP {
		t.Fatalf("tier = %s after 5000 points, want %s", client.LoyaltyTier, models.TierVIP)
	}
	if got := pricing.LoyaltyDiscount(client); got != 0.15 {
		t.Fatalf("discount = %v after tier advance, want 0.15", got)
	}
}
