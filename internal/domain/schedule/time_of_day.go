package schedule

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTimeFormat = errors.New("invalid time of day format")
	ErrInvalidTimeRange  = errors.New("start time must be before end time")
)

const (
	minutesPerDay = 24 * 60
	// EndOfDay is the 24:00 sentinel, valid only as the end of a range.
	EndOfDay = TimeOfDay(minutesPerDay)
)

// TimeOfDay is a wall-clock time with minute resolution, counted as
// minutes since midnight. The range is [00:00, 24:00]; 24:00 exists only
// as an end-of-day sentinel.
type TimeOfDay int

// ParseTimeOfDay parses a strict HH:mm string. Hours run 00-23 except for
// the single sentinel value 24:00.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrInvalidTimeFormat
	}

	h, ok := parseTwoDigits(s[0], s[1])
	if !ok {
		return 0, ErrInvalidTimeFormat
	}
	m, ok := parseTwoDigits(s[3], s[4])
	if !ok {
		return 0, ErrInvalidTimeFormat
	}

	if m > 59 {
		return 0, ErrInvalidTimeFormat
	}
	switch {
	case h < 24:
		return TimeOfDay(h*60 + m), nil
	case h == 24 && m == 0:
		return EndOfDay, nil
	default:
		return 0, ErrInvalidTimeFormat
	}
}

// FromSeconds rehydrates a TimeOfDay from seconds since midnight as stored
// in the database. Sub-minute precision is rejected.
func FromSeconds(sec int) (TimeOfDay, error) {
	if sec < 0 || sec > minutesPerDay*60 || sec%60 != 0 {
		return 0, ErrInvalidTimeFormat
	}
	return TimeOfDay(sec / 60), nil
}

func (t TimeOfDay) Seconds() int {
	return int(t) * 60
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func parseTwoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}
