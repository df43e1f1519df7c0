// Package daterange provides calendar-day arithmetic for booking placement.
//
// All helpers operate at day granularity: callers are expected to pass
// times through Normalize before comparison so time-of-day and timezone
// offsets cannot produce false negatives.
//
// Two different inclusivity rules coexist on purpose. Overlaps uses
// inclusive edges, which is what month bucketing wants (a stay touching a
// month boundary still belongs to that month). Covers is half-open, which
// is what per-day occupancy wants (the checkout day is not occupied).
package daterange

import (
	"errors"
	"math"
	"time"

	"frontdesk/shared/timezone"
)

// ErrInvalidRange is returned when a range's start is not before its end.
var ErrInvalidRange = errors.New("invalid date range: start must be before end")

const dayHours = 24

// Normalize strips the time component, returning midnight of the same
// calendar day in the application timezone.
func Normalize(t time.Time) time.Time {
	in := timezone.ToAppTime(t)

	return time.Date(in.Year(), in.Month(), in.Day(), 0, 0, 0, 0, timezone.GetLocation())
}

// AddDays returns the normalized date n calendar days after t. Using
// AddDate keeps the arithmetic DST-safe.
func AddDays(t time.Time, n int) time.Time {
	return Normalize(t).AddDate(0, 0, n)
}

// DaysInRange enumerates every date from start inclusive to end exclusive.
func DaysInRange(start, end time.Time) ([]time.Time, error) {
	first := Normalize(start)
	last := Normalize(end)

	if !first.Before(last) {
		return nil, ErrInvalidRange
	}

	days := make([]time.Time, 0, DurationDays(first, last))
	for day := first; day.Before(last); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}

	return days, nil
}

// Overlaps reports whether [aStart, aEnd] and [bStart, bEnd] intersect,
// edges inclusive. A booking that merely touches a window boundary still
// overlaps it.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	a1, a2 := Normalize(aStart), Normalize(aEnd)
	b1, b2 := Normalize(bStart), Normalize(bEnd)

	return !a1.After(b2) && !a2.Before(b1)
}

// Covers reports whether day falls inside the half-open stay interval
// [checkIn, checkOut).
func Covers(day, checkIn, checkOut time.Time) bool {
	d := Normalize(day)
	in := Normalize(checkIn)
	out := Normalize(checkOut)

	return !d.Before(in) && d.Before(out)
}

// SameDay reports whether both times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Normalize(a).Equal(Normalize(b))
}

// DurationDays returns the number of nights between check-in and
// check-out. A valid stay is at least one night.
func DurationDays(checkIn, checkOut time.Time) int {
	in := Normalize(checkIn)
	out := Normalize(checkOut)

	// Rounding keeps the count stable across DST transitions, where a
	// "day" is 23 or 25 hours long.
	return int(math.Round(out.Sub(in).Hours() / dayHours))
}

// MonthBounds returns the first and last day of the given month.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, timezone.GetLocation())
	last := first.AddDate(0, 1, -1)

	return first, last
}

// StartOfWeek returns the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	day := Normalize(t)

	return day.AddDate(0, 0, -int(day.Weekday()))
}
