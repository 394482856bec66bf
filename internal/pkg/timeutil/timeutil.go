// Package timeutil holds the duration and calendar arithmetic shared by the
// schedule and reporting services. All hour values are rounded to two
// decimal places.
package timeutil

import (
	"time"

	"github.com/shopspring/decimal"
)

// HoursBetween returns the elapsed hours from start to end, rounded to two
// decimals. A missing endpoint (a punch that is still open) contributes
// zero, never an error.
func HoursBetween(start, end *time.Time) float64 {
	if start == nil || end == nil {
		return 0
	}
	return Round2(end.Sub(*start).Hours())
}

// WraparoundHours returns the hours between two times of day, treating both
// as clock readings on a common reference date. A negative raw difference
// means the window crosses midnight, so 24 hours are added: 22:00-06:00 is
// 8.00 hours, not -16.00.
func WraparoundHours(start, end time.Time) float64 {
	d := end.Sub(start)
	if d < 0 {
		d += 24 * time.Hour
	}
	return Round2(d.Hours())
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	out, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return out
}

// Rate returns part/total as a percentage rounded to two decimals. A zero
// total yields 0 rather than NaN or Inf.
func Rate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round2(float64(part) / float64(total) * 100)
}

// MonthKey formats t as a fixed-width year-month key, e.g. "2024-03".
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// DayKey formats t as a calendar-date key, e.g. "2024-03-04".
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// TruncateToDay drops the time-of-day component of t, keeping its location.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateIn re-anchors t's calendar date at midnight in loc. DATE columns scan
// as UTC midnights; comparing them against days in a company timezone must
// compare the date, not the instant.
func DateIn(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// ParseClock parses a time-of-day string in "15:04" or "15:04:05" form.
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse("15:04", s)
	if err == nil {
		return t, nil
	}
	return time.Parse("15:04:05", s)
}

// OnDate projects the time-of-day component of clock onto the calendar date
// of day, in day's location.
func OnDate(day, clock time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, day.Location())
}
