package algorithm

import (
	"fmt"
	"math"
)

const etaPending = "Calculating..."

// FormatETA converts a duration in seconds to a human-readable bucket:
// minutes below an hour, hours below a day, days otherwise. Non-positive
// or non-finite durations degrade to "Calculating...".
func FormatETA(durationSeconds float64) string {
	if math.IsNaN(durationSeconds) || math.IsInf(durationSeconds, 0) || durationSeconds <= 0 {
		return etaPending
	}

	switch {
	case durationSeconds < 60*60:
		minutes := int(math.Round(durationSeconds / 60))
		return fmt.Sprintf("%d minute(s)", minutes)
	case durationSeconds < 24*60*60:
		hours := int(math.Round(durationSeconds / (60 * 60)))
		return fmt.Sprintf("%d hour(s)", hours)
	default:
		days := int(math.Round(durationSeconds / (24 * 60 * 60)))
		return fmt.Sprintf("%d day(s)", days)
	}
}

// FormatETAValue formats loosely typed duration input, as received from
// external payloads. Anything that is not a number degrades to
// "Calculating...".
func FormatETAValue(duration any) string {
	switch v := duration.(type) {
	case float64:
		return FormatETA(v)
	case float32:
		return FormatETA(float64(v))
	case int:
		return FormatETA(float64(v))
	case int32:
		return FormatETA(float64(v))
	case int64:
		return FormatETA(float64(v))
	default:
		return etaPending
	}
}
