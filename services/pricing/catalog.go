package pricing

import "inkstudio/models"

// Range is an inclusive min/max pair.
type Range struct {
	Min float64
	Max float64
}

// DurationRange is an inclusive min/max session length in minutes.
type DurationRange struct {
	Min int
	Max int
}

// Base prices by size tier (USD).
var basePrices = map[models.SizeCategory]Range{
	models.SizeTiny:   {Min: 50, Max: 100},    // < 2"
	models.SizeSmall:  {Min: 100, Max: 250},   // 2-4"
	models.SizeMedium: {Min: 250, Max: 500},   // 4-6"
	models.SizeLarge:  {Min: 500, Max: 1200},  // 6-10"
	models.SizeXLarge: {Min: 1200, Max: 3000}, // 10"+
	models.SizeCustom: {Min: 200, Max: 5000},
}

// Session length estimates by size tier.
var durationEstimates = map[models.SizeCategory]DurationRange{
	models.SizeTiny:   {Min: 30, Max: 60},
	models.SizeSmall:  {Min: 60, Max: 120},
	models.SizeMedium: {Min: 120, Max: 240},
	models.SizeLarge:  {Min: 240, Max: 480},
	models.SizeXLarge: {Min: 480, Max: 960},
	models.SizeCustom: {Min: 60, Max: 480},
}

// Style multipliers. Unknown styles fall back to 1.0.
var styleMultipliers = map[string]float64{
	"Color Realism":        1.3,
	"Black & Grey Realism": 1.2,
	"Fine Line & Dotwork":  1.0,
	"Neo-Traditional":      1.15,
	"Cover-ups":            1.4,
	"Floral & Botanical":   1.0,
	"Pet Tattoos":          1.1,
	"Custom Tattoos":       1.15,
	"Flash":                0.85,
}

const (
	coverUpPriceFactor    = 1.4
	touchUpPriceFactor    = 0.5
	coverUpDurationFactor = 1.3

	weekendRate = 1.15
	eveningRate = 1.20
	eveningHour = 18

	floorMin = 50
	floorMax = 100
)

// BasePriceRange looks up the base range for a size tier.
func BasePriceRange(size models.SizeCategory) (Range, bool) {
	r, ok := basePrices[size]
	return r, ok
}

// StyleMultiplier returns the multiplier for a style, 1.0 when unknown.
func StyleMultiplier(style string) float64 {
	if m, ok := styleMultipliers[style]; ok {
		return m
	}
	return 1.0
}
