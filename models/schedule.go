package models

// DayWindow is a single open/close window within one weekday.
// Times use the "15:04" wall-clock format.
type DayWindow struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// WeeklySchedule maps lowercase weekday names ("monday".."sunday") to the
// artist's working window for that day. A missing day means closed.
type WeeklySchedule map[string]DayWindow

// ScheduleOverride is a one-off exception for an artist and date. It takes
// precedence over the weekly schedule. When IsAvailable is false the day is
// fully closed regardless of the weekly window; when true, StartTime/EndTime
// replace the weekly bounds, each falling back to the weekly window when empty.
type ScheduleOverride struct {
	ArtistID    string `bson:"artistId" json:"artistId"`
	Date        string `bson:"date" json:"date"` // "2006-01-02"
	IsAvailable bool   `bson:"isAvailable" json:"isAvailable"`
	StartTime   string `bson:"startTime,omitempty" json:"startTime,omitempty"`
	EndTime     string `bson:"endTime,omitempty" json:"endTime,omitempty"`
	Reason      string `bson:"reason,omitempty" json:"reason,omitempty"`
}
