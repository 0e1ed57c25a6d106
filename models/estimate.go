package models

// SizeCategory is the enumerated tattoo size tier.
type SizeCategory string

const (
	SizeTiny   SizeCategory = "tiny"
	SizeSmall  SizeCategory = "small"
	SizeMedium SizeCategory = "medium"
	SizeLarge  SizeCategory = "large"
	SizeXLarge SizeCategory = "xlarge"
	SizeCustom SizeCategory = "custom"
)

// PriceBreakdownLine is one named contribution to a quote. Amounts are deltas
// against the base minimum, not a running total, and may be negative.
type PriceBreakdownLine struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// PriceEstimate is the final computed quote for a booking draft.
type PriceEstimate struct {
	BaseMin         float64              `json:"base_min"`
	BaseMax         float64              `json:"base_max"`
	Modifier        float64              `json:"modifier"`
	DepositRequired float64              `json:"deposit_required"`
	TotalMin        float64              `json:"total_min"`
	TotalMax        float64              `json:"total_max"`
	Breakdown       []PriceBreakdownLine `json:"breakdown"`
}
