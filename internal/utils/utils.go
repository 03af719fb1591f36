package utils

import (
	"fmt"
	"time"
)

func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// FormatRest renders a rest countdown as m:ss.
func FormatRest(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// DayKey formats a time as the local calendar day used by streaks and the
// daily checkpoint.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
