package entity

import (
	"strings"
	"time"
)

// TimeFrame is the custom type to enforce enum-like behavior
type TimeFrame string

func (tf TimeFrame) String() string {
	return string(tf)
}

const (
	TimeFrameWeek  TimeFrame = "week"
	TimeFrameMonth TimeFrame = "month"
	TimeFrameYear  TimeFrame = "year"
)

// ValidTimeFrames is a set of valid time frame tokens
var ValidTimeFrames = map[TimeFrame]bool{
	TimeFrameWeek:  true,
	TimeFrameMonth: true,
	TimeFrameYear:  true,
}

// ParseTimeFrame maps a raw token to a TimeFrame. Unrecognized or empty
// tokens fall back to the month window and never produce an error.
func ParseTimeFrame(raw string) TimeFrame {
	tf := TimeFrame(strings.ToLower(strings.TrimSpace(raw)))
	if ValidTimeFrames[tf] {
		return tf
	}
	return TimeFrameMonth
}

// Start returns the inclusive lower bound of the window ending at now.
// Windows are open-ended above.
func (tf TimeFrame) Start(now time.Time) time.Time {
	switch tf {
	case TimeFrameWeek:
		return now.AddDate(0, 0, -7)
	case TimeFrameYear:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, -1, 0)
	}
}
