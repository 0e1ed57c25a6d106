package pricing

import (
	"strconv"
	"strings"
	"time"
)

// Modifier is one schedule-driven price adjustment.
type Modifier struct {
	Factor float64
	Label  string
}

// DateModifier returns the weekend surcharge for a date, or a neutral
// modifier on weekdays. The date must be in "2006-01-02" form.
func DateModifier(date string) (Modifier, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return Modifier{}, err
	}
	if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		return Modifier{Factor: weekendRate, Label: "Weekend rate (+15%)"}, nil
	}
	return Modifier{Factor: 1.0}, nil
}

// TimeModifier returns the evening surcharge for a "15:04" start time, or a
// neutral modifier earlier in the day.
func TimeModifier(clock string) (Modifier, error) {
	hourStr, _, ok := strings.Cut(clock, ":")
	if !ok {
		hourStr = clock
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return Modifier{}, err
	}
	if hour >= eveningHour {
		return Modifier{Factor: eveningRate, Label: "Evening rate (+20%)"}, nil
	}
	return Modifier{Factor: 1.0}, nil
}

// IsWeekend reports whether the parsed date falls on Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	return d.Weekday() == time.Saturday || d.Weekday() == time.Sunday
}
