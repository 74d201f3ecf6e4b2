// Package calendar classifies journal dates into template tiers.
//
// Every predicate works on the calendar date only. Time of day and
// location offsets are normalized away before any comparison, so a late
// Friday evening and an early Friday morning classify the same way.
package calendar

import "time"

// DefaultCutoffDay is the December day used for the yearly review when the
// configuration does not say otherwise.
const DefaultCutoffDay = 17

// Normalize truncates t to midnight in its own location.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// civil maps t onto a UTC midnight with the same calendar date so that day
// arithmetic never crosses a DST transition.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the number of whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	return int(civil(b).Sub(civil(a)).Hours() / 24)
}

// IsFriday reports whether t falls on a Friday.
func IsFriday(t time.Time) bool {
	return t.Weekday() == time.Friday
}

// IsEndOfMonthFriday reports whether t is the last Friday of its month.
func IsEndOfMonthFriday(t time.Time) bool {
	if !IsFriday(t) {
		return false
	}
	d := civil(t)
	return d.AddDate(0, 0, 7).Month() != d.Month()
}

// IsEndOfQuarterFriday reports whether t is the last Friday on or before
// the final day of its quarter.
func IsEndOfQuarterFriday(t time.Time) bool {
	if !IsFriday(t) {
		return false
	}
	d := civil(t)
	return EndOfQuarter(d).Before(d.AddDate(0, 0, 7))
}

// IsVacationFriday reports whether t is the last Friday on or before
// December cutoffDay of t's year.
func IsVacationFriday(t time.Time, cutoffDay int) bool {
	if !IsFriday(t) || t.Month() != time.December {
		return false
	}
	cutoff := time.Date(t.Year(), time.December, cutoffDay, 0, 0, 0, 0, time.UTC)
	diff := daysBetween(t, cutoff)
	return diff >= 0 && diff < 7
}

// ISOWeek returns the ISO-8601 week number of t.
func ISOWeek(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// Quarter returns the quarter (1-4) t falls in.
func Quarter(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// EndOfQuarter returns the last calendar day of t's quarter at midnight,
// in t's location.
func EndOfQuarter(t time.Time) time.Time {
	first := time.Month((Quarter(t)-1)*3 + 1)
	// Day zero of the month after the quarter is its last day.
	return time.Date(t.Year(), first+3, 0, 0, 0, 0, 0, t.Location())
}
