package album

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultTempo replaces missing or unparsable tempo input.
	DefaultTempo = 120

	// MinTempo and MaxTempo bound stored tempo values in BPM.
	MinTempo = 30
	MaxTempo = 300

	// maxDurationPart bounds each duration component independently. Seconds
	// never carry into minutes: 75 seconds clamps to 59, not 1:15.
	maxDurationPart = 59

	// totalMinutesCap is the total-duration value at and above which the
	// display is capped at "999h+".
	totalMinutesCap = 59940
)

// ClampPercent forces a progress value into [0, 100]. Idempotent.
func ClampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ValidateTempo parses free-form tempo input and returns a BPM value that is
// always inside [MinTempo, MaxTempo]. Unparsable input yields DefaultTempo;
// fractional input rounds to the nearest whole BPM before clamping.
func ValidateTempo(input string) int {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return DefaultTempo
	}
	rounded := int(math.Round(parsed))
	if rounded < MinTempo {
		return MinTempo
	}
	if rounded > MaxTempo {
		return MaxTempo
	}
	return rounded
}

// ValidateDuration parses the minutes and seconds fields independently.
// Non-numeric input coerces to 0; each part floors to a whole number and
// clamps to [0, 59] on its own.
func ValidateDuration(minutes, seconds string) Duration {
	return Duration{
		Minutes: clampDurationPart(minutes),
		Seconds: clampDurationPart(seconds),
	}
}

func clampDurationPart(input string) int {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(parsed) {
		return 0
	}
	floored := int(math.Floor(parsed))
	if floored < 0 {
		return 0
	}
	if floored > maxDurationPart {
		return maxDurationPart
	}
	return floored
}

// FormatDuration renders a song duration as "M:SS".
func FormatDuration(minutes, seconds int) string {
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FormatTotalDuration renders an album run time given in whole minutes as
// hours and minutes, omitting zero components ("3h 5m", "3h", "45m").
// Totals of 999 hours or more collapse to "999h+".
func FormatTotalDuration(totalMinutes int) string {
	if totalMinutes >= totalMinutesCap {
		return "999h+"
	}
	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", minutes)
	case minutes == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
}
