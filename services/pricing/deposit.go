package pricing

import "math"

// CalculateDeposit derives the required deposit from the estimated maximum
// price and session duration. Sessions up to three hours take 30% clamped to
// [50, 100]; longer sessions take 25% clamped to [100, 250].
func CalculateDeposit(estimatedMax float64, durationMinutes int) float64 {
	if durationMinutes <= 180 {
		return clamp(math.Round(estimatedMax*0.30), 50, 100)
	}
	return clamp(math.Round(estimatedMax*0.25), 100, 250)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(lo, v), hi)
}
