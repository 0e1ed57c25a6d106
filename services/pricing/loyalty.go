package pricing

import (
	"math"

	"inkstudio/models"
)

// Tier thresholds in lifetime loyalty points.
var tierThresholds = map[models.LoyaltyTier]int{
	models.TierStandard: 0,
	models.TierSilver:   500,
	models.TierGold:     1500,
	models.TierVIP:      3000,
}

// Per-tier benefit rates.
var tierDiscounts = map[models.LoyaltyTier]float64{
	models.TierStandard: 0,
	models.TierSilver:   0.05,
	models.TierGold:     0.10,
	models.TierVIP:      0.15,
}

var tierPointMultipliers = map[models.LoyaltyTier]float64{
	models.TierStandard: 1.0,
	models.TierSilver:   1.25,
	models.TierGold:     1.5,
	models.TierVIP:      2.0,
}

const pointsPerDollar = 1

// TierForPoints maps lifetime points to the loyalty tier.
func TierForPoints(points int) models.LoyaltyTier {
	switch {
	case points >= tierThresholds[models.TierVIP]:
		return models.TierVIP
	case points >= tierThresholds[models.TierGold]:
		return models.TierGold
	case points >= tierThresholds[models.TierSilver]:
		return models.TierSilver
	}
	return models.TierStandard
}

// TierDiscount returns the discount rate for a tier.
func TierDiscount(tier models.LoyaltyTier) float64 {
	return tierDiscounts[tier]
}

// VisitDiscount returns the returning-client discount rate for a client with
// the given completed visit count. Only the second and third sessions are
// discounted; tier discounts take over after that.
func VisitDiscount(visitCount int) float64 {
	switch visitCount {
	case 1:
		return 0.05 // 5% off 2nd session
	case 2:
		return 0.10 // 10% off 3rd session
	}
	return 0
}

// LoyaltyDiscount picks the rate fed into the estimate: the larger of the
// visit-count discount and the tier discount.
func LoyaltyDiscount(client *models.Client) float64 {
	if client == nil {
		return 0
	}
	return math.Max(VisitDiscount(client.VisitCount), TierDiscount(client.LoyaltyTier))
}

// BookingPoints converts a paid amount into loyalty points, applying the
// tier multiplier.
func BookingPoints(amount float64, tier models.LoyaltyTier) int {
	m, ok := tierPointMultipliers[tier]
	if !ok {
		m = 1.0
	}
	return int(math.Round(amount * pointsPerDollar * m))
}
