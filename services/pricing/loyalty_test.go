package pricing

import (
	"testing"

	"inkstudio/models"
)

func TestTierForPoints(t *testing.T) {
	cases := []struct {
		points int
		want   models.LoyaltyTier
	}{
		{0, models.TierStandard},
		{499, models.TierStandard},
		{500, models.TierSilver},
		{1499, models.TierSilver},
		{1500, models.TierGold},
		{2999, models.TierGold},
		{3000, models.TierVIP},
		{10000, models.TierVIP},
	}
	for _, tc := range cases {
		if got := TierForPoints(tc.points); got != tc.want {
			t.Fatalf("TierForPoints(%d) = %s, want %s", tc.points, got, tc.want)
		}
	}
}

func TestLoyaltyDiscount_TakesBestOfVisitAndTier(t *testing.T) {
	second := models.Client{VisitCount: 1}
	if got := LoyaltyDiscount(&second); got != 0.05 {
		t.Fatalf("second visit discount = %v, want 0.05", got)
	}

	goldRegular := models.Client{VisitCount: 8, LoyaltyPoints: 1600, LoyaltyTier: models.TierGold}
	if got := LoyaltyDiscount(&goldRegular); got != 0.10 {
		t.Fatalf("gold discount = %v, want 0.10", got)
	}

	// Tier wins over a smaller visit discount.
	vipSecond := models.Client{VisitCount: 1, LoyaltyPoints: 3200, LoyaltyTier: models.TierVIP}
	if got := LoyaltyDiscount(&vipSecond); got != 0.15 {
		t.Fatalf("vip discount = %v, want 0.15", got)
	}
}

func TestBookingPoints(t *testing.T) {
	if got := BookingPoints(200, models.TierStandard); got != 200 {
		t.Fatalf("standard points = %d, want 200", got)
	}
	if got := BookingPoints(200, models.TierVIP); got != 400 {
		t.Fatalf("vip points = %d, want 400", got)
	}
}
