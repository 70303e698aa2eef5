package datemath

import (
	"fmt"
	"time"
)

// LocationFor builds a fixed-offset zone from a browser-style timezone
// offset in minutes. The sign convention follows JavaScript's
// Date.getTimezoneOffset: the offset is UTC minus local time, so negative
// values mean the caller is ahead of UTC (e.g. -420 is UTC+07:00).
func LocationFor(offsetMinutes int) *time.Location {
	seconds := -offsetMinutes * 60
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if minutes < 0 {
		minutes = -minutes
	}
	name := fmt.Sprintf("UTC%+03d:%02d", hours, minutes)
	return time.FixedZone(name, seconds)
}

// Now returns the current instant in the caller's zone. With a nil offset it
// returns process-local wall-clock time, which always carries the local zone.
func Now(offsetMinutes *int) time.Time {
	if offsetMinutes == nil {
		return time.Now()
	}
	return time.Now().In(LocationFor(*offsetMinutes))
}

// NextWeekday advances ref to the next occurrence of target, preserving the
// time of day. The result is always 1-7 days ahead: "next Monday" said on a
// Monday means the following Monday, never the reference day itself.
func NextWeekday(target time.Weekday, ref time.Time) time.Time {
	days := int(target) - int(ref.Weekday())
	if days <= 0 {
		days += 7
	}
	return ref.AddDate(0, 0, days)
}

// EndOfDay returns 23:59:59 of the given instant's calendar day in its zone.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
