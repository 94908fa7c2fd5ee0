package album

import (
	"errors"
	"strings"
	"time"
)

// Countdown is the remaining time to the release deadline broken into whole
// units. All fields are non-negative; a past deadline reads as all zeros.
type Countdown struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Remaining decomposes max(0, target-now) into days, hours, minutes, and
// seconds, flooring to whole seconds first.
func Remaining(target, now time.Time) Countdown {
	remaining := target.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	totalSeconds := int(remaining / time.Second)
	return Countdown{
		Days:    totalSeconds / 86400,
		Hours:   (totalSeconds % 86400) / 3600,
		Minutes: (totalSeconds % 3600) / 60,
		Seconds: totalSeconds % 60,
	}
}

var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDeadline parses a deadline in the stored RFC 3339 form or one of the
// shorthand layouts above. Layouts without an offset are read as local time.
func ParseDeadline(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("deadline is empty")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	for _, layout := range deadlineLayouts[1:] {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized deadline format")
}
