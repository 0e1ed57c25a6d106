// File: services/scheduling/slots.go
package scheduling

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock converts a "15:04" wall-clock string to minutes since midnight.
func ParseClock(clock string) (int, error) {
	hourStr, minStr, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q", clock)
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", clock)
	}
	min, err := strconv.Atoi(minStr)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", clock)
	}
	if hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0, fmt.Errorf("time %q out of range", clock)
	}
	return hour*60 + min, nil
}

// FormatClock converts minutes since midnight back to "15:04" form.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// GenerateStarts returns candidate slot starts, in minutes since midnight,
// stepping by interval from the window open. A start is only emitted when the
// full session still fits before close.
func GenerateStarts(openMin, closeMin, interval, sessionDuration int) []int {
	var starts []int
	if interval <= 0 || sessionDuration <= 0 {
		return starts
	}
	for cur := openMin; cur+sessionDuration <= closeMin; cur += interval {
		starts = append(starts, cur)
	}
	return starts
}
