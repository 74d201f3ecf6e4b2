package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestIsFriday(t *testing.T) {
	assert.True(t, IsFriday(date(2025, time.March, 28)))
	assert.False(t, IsFriday(date(2025, time.March, 27)))
}

func TestIsEndOfMonthFriday(t *testing.T) {
	tests := map[string]struct {
		on   time.Time
		want bool
	}{
		"last friday of january":     {on: date(2025, time.January, 31), want: true},
		"february 28 2025":           {on: date(2025, time.February, 28), want: true},
		"another friday remains":     {on: date(2024, time.August, 23), want: false},
		"last friday of august 2024": {on: date(2024, time.August, 30), want: true},
		"thursday before month end":  {on: date(2025, time.January, 30), want: false},
		"friday on the 31st":         {on: date(2025, time.October, 31), want: true},
		"friday a week before":       {on: date(2025, time.October, 24), want: false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsEndOfMonthFriday(tc.on))
		})
	}
}

func TestIsEndOfQuarterFriday(t *testing.T) {
	tests := map[string]struct {
		on   time.Time
		want bool
	}{
		"q1 2025 ends on a monday":     {on: date(2025, time.March, 28), want: true},
		"end of month but not quarter": {on: date(2025, time.February, 28), want: false},
		"quarter ends on the friday":   {on: date(2023, time.March, 31), want: true},
		"week before quarter end":      {on: date(2025, time.March, 21), want: false},
		"q4 2024":                      {on: date(2024, time.December, 27), want: true},
		"monday of quarter end":        {on: date(2025, time.March, 31), want: false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsEndOfQuarterFriday(tc.on))
		})
	}
}

func TestIsVacationFriday(t *testing.T) {
	tests := map[string]struct {
		on     time.Time
		cutoff int
		want   bool
	}{
		"last friday before the 17th 2024": {on: date(2024, time.December, 13), cutoff: 17, want: true},
		"last friday before the 17th 2023": {on: date(2023, time.December, 15), cutoff: 17, want: true},
		"friday after the cutoff":          {on: date(2024, time.December, 20), cutoff: 17, want: false},
		"friday two weeks before":          {on: date(2024, time.December, 6), cutoff: 17, want: false},
		"outside december":                 {on: date(2024, time.November, 15), cutoff: 17, want: false},
		"not a friday":                     {on: date(2024, time.December, 12), cutoff: 17, want: false},
		"cutoff day is the friday":         {on: date(2023, time.December, 1), cutoff: 1, want: true},
		"cutoff on the 31st":               {on: date(2021, time.December, 31), cutoff: 31, want: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsVacationFriday(tc.on, tc.cutoff))
		})
	}
}

func TestPredicatesIgnoreTimeOfDay(t *testing.T) {
	zone := time.FixedZone("UTC-5", -5*60*60)
	late := time.Date(2025, time.March, 28, 23, 59, 59, 0, zone)
	early := time.Date(2024, time.December, 13, 0, 0, 1, 0, zone)

	assert.True(t, IsEndOfQuarterFriday(late))
	assert.True(t, IsEndOfMonthFriday(late))
	assert.True(t, IsVacationFriday(early, 17))
	assert.Equal(t, time.Date(2025, time.March, 28, 0, 0, 0, 0, zone), Normalize(late))
}

func TestISOWeek(t *testing.T) {
	assert.Equal(t, 1, ISOWeek(date(2025, time.January, 1)))
	assert.Equal(t, 53, ISOWeek(date(2021, time.January, 1)))
	assert.Equal(t, 1, ISOWeek(date(2024, time.December, 30)))
	assert.Equal(t, 13, ISOWeek(date(2025, time.March, 28)))
}

func TestQuarter(t *testing.T) {
	assert.Equal(t, 1, Quarter(date(2025, time.March, 31)))
	assert.Equal(t, 2, Quarter(date(2025, time.April, 1)))
	assert.Equal(t, 4, Quarter(date(2025, time.December, 31)))
	assert.Equal(t, date(2025, time.June, 30), EndOfQuarter(date(2025, time.May, 2)))
	assert.Equal(t, date(2025, time.December, 31), EndOfQuarter(date(2025, time.October, 1)))
}
