package itinerary

import (
	"fmt"
	"math"
)

// formatClock renders minutes-from-midnight as a 12-hour clock string,
// e.g. 570 -> "9:30 AM".
func formatClock(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	display := hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, mins, period)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
