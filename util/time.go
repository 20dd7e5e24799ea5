package util

import (
	"fmt"
	"time"

	"github.com/icza/gox/timex"
)

// ParseTime parses a string like "02.01.2006 15:04" to a local time.
func ParseTime(ts string) (time.Time, error) {
	return time.ParseInLocation("02.01.2006 15:04", ts, time.Local)
}

// RelativeTime says how long ago t was, in the largest sensible unit,
// like "3 days ago". Times in the future or less than a minute in the
// past are "just now".
func RelativeTime(t time.Time, now time.Time) string {

	if !t.Before(now) {
		return "just now"
	}

	years, months, days, hours, mins, _ := timex.Diff(t, now)

	switch {
	case years > 0:
		return relative(years, "year")
	case months > 0:
		return relative(months, "month")
	case days > 0:
		return relative(days, "day")
	case hours > 0:
		return relative(hours, "hour")
	case mins > 0:
		return relative(mins, "minute")
	default:
		return "just now"
	}
}

func relative(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
