package pricing

import (
	"fmt"
	"math"

	"inkstudio/models"
)

// EstimateInput carries every attribute the quote depends on. Date and Time
// are optional; LoyaltyDiscount is a rate in [0, 1) computed elsewhere from
// the client's visit history.
type EstimateInput struct {
	Size            models.SizeCategory
	Style           string
	IsCoverUp       bool
	IsTouchUp       bool
	Date            string // "2006-01-02", optional
	Time            string // "15:04", optional
	LoyaltyDiscount float64
}

// BuildEstimate composes the full modifier chain into an itemized quote.
// The chain order is fixed: base range, style multiplier, cover-up or
// touch-up, date and time surcharges, loyalty discount, then the price
// floors. Cover-up and touch-up are mutually exclusive; when a caller sets
// both flags, cover-up wins and the touch-up discount is not applied.
// The result depends only on the input — no clocks, no hidden state.
func BuildEstimate(in EstimateInput) (models.PriceEstimate, error) {
	base, ok := BasePriceRange(in.Size)
	if !ok {
		return models.PriceEstimate{}, fmt.Errorf("%w: %q", ErrUnknownSize, in.Size)
	}

	styleMultiplier := StyleMultiplier(in.Style)
	coverUpMultiplier := 1.0
	touchUpMultiplier := 1.0
	isCoverUp, isTouchUp := in.IsCoverUp, in.IsTouchUp
	if isCoverUp {
		// Cover-up takes precedence over touch-up.
		isTouchUp = false
		coverUpMultiplier = coverUpPriceFactor
	} else if isTouchUp {
		touchUpMultiplier = touchUpPriceFactor
	}

	priceMin := math.Round(base.Min * styleMultiplier * coverUpMultiplier * touchUpMultiplier)
	priceMax := math.Round(base.Max * styleMultiplier * coverUpMultiplier * touchUpMultiplier)

	breakdown := []models.PriceBreakdownLine{
		{Label: fmt.Sprintf("Base price (%s)", in.Size), Amount: base.Min},
	}
	if styleMultiplier != 1.0 {
		breakdown = append(breakdown, models.PriceBreakdownLine{
			Label:  fmt.Sprintf("%s style", in.Style),
			Amount: math.Round((styleMultiplier - 1) * base.Min),
		})
	}
	if isCoverUp {
		breakdown = append(breakdown, models.PriceBreakdownLine{
			Label:  "Cover-up surcharge",
			Amount: math.Round((coverUpPriceFactor - 1) * base.Min),
		})
	}
	if isTouchUp {
		breakdown = append(breakdown, models.PriceBreakdownLine{
			Label:  "Touch-up discount",
			Amount: -math.Round((1 - touchUpPriceFactor) * base.Min),
		})
	}

	scheduleModifier := 1.0
	if in.Date != "" {
		dm, err := DateModifier(in.Date)
		if err != nil {
			return models.PriceEstimate{}, fmt.Errorf("%w: bad date %q", ErrInvalidInput, in.Date)
		}
		if dm.Factor > 1 {
			scheduleModifier *= dm.Factor
			breakdown = append(breakdown, models.PriceBreakdownLine{
				Label:  dm.Label,
				Amount: math.Round((dm.Factor - 1) * priceMin),
			})
		}
	}
	if in.Time != "" {
		tm, err := TimeModifier(in.Time)
		if err != nil {
			return models.PriceEstimate{}, fmt.Errorf("%w: bad time %q", ErrInvalidInput, in.Time)
		}
		if tm.Factor > 1 {
			scheduleModifier *= tm.Factor
			breakdown = append(breakdown, models.PriceBreakdownLine{
				Label:  tm.Label,
				Amount: math.Round((tm.Factor - 1) * priceMin),
			})
		}
	}

	priceMin = math.Round(priceMin * scheduleModifier)
	priceMax = math.Round(priceMax * scheduleModifier)

	if in.LoyaltyDiscount > 0 {
		// Min and max discounts are rounded separately; the rounding
		// asymmetry matches the studio's published quote behavior.
		discountAmount := math.Round(priceMin * in.LoyaltyDiscount)
		breakdown = append(breakdown, models.PriceBreakdownLine{
			Label:  fmt.Sprintf("Loyalty discount (%.0f%%)", in.LoyaltyDiscount*100),
			Amount: -discountAmount,
		})
		priceMin -= discountAmount
		priceMax -= math.Round(priceMax * in.LoyaltyDiscount)
	}

	duration, err := EstimateDuration(in.Size, in.Style, in.IsCoverUp)
	if err != nil {
		return models.PriceEstimate{}, err
	}

	return models.PriceEstimate{
		BaseMin:         base.Min,
		BaseMax:         base.Max,
		Modifier:        scheduleModifier,
		DepositRequired: CalculateDeposit(priceMax, duration),
		TotalMin:        math.Max(priceMin, floorMin),
		TotalMax:        math.Max(priceMax, floorMax),
		Breakdown:       breakdown,
	}, nil
}
