package pricing

import (
	"fmt"
	"math"

	"inkstudio/models"
)

// EstimateDuration maps (size, style, cover-up) to an estimated session
// length in minutes. Schedule modifiers never apply to duration, only to
// price. Touch-ups do not change the duration estimate.
func EstimateDuration(size models.SizeCategory, style string, isCoverUp bool) (int, error) {
	base, ok := durationEstimates[size]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSize, size)
	}

	avg := math.Round(float64(base.Min+base.Max) / 2)
	coverUpMultiplier := 1.0
	if isCoverUp {
		coverUpMultiplier = coverUpDurationFactor
	}
	return int(math.Round(avg * StyleMultiplier(style) * coverUpMultiplier)), nil
}
