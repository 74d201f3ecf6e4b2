package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectTier(t *testing.T) {
	tests := map[string]struct {
		on     time.Time
		cutoff int
		want   Tier
	}{
		"monday":                        {on: date(2025, time.January, 27), cutoff: 17, want: Daily},
		"plain friday":                  {on: date(2025, time.January, 24), cutoff: 17, want: Weekly},
		"last friday of january":        {on: date(2025, time.January, 31), cutoff: 17, want: Monthly},
		"last friday of q1":             {on: date(2025, time.March, 28), cutoff: 17, want: Quarterly},
		"vacation friday":               {on: date(2025, time.December, 12), cutoff: 17, want: Yearly},
		"after vacation, before q4 end": {on: date(2024, time.December, 20), cutoff: 17, want: Weekly},
		"q4 end after vacation":         {on: date(2024, time.December, 27), cutoff: 17, want: Quarterly},
		"yearly beats quarterly":        {on: date(2021, time.December, 31), cutoff: 31, want: Yearly},
		"quarterly without vacation":    {on: date(2021, time.December, 31), cutoff: 17, want: Quarterly},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, SelectTier(tc.on, tc.cutoff))
		})
	}
}

func TestSelectTierPriority(t *testing.T) {
	start := date(2020, time.January, 1)
	end := date(2031, time.January, 1)
	for _, cutoff := range []int{1, 17, 31} {
		for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
			got := SelectTier(d, cutoff)
			switch {
			case !IsFriday(d):
				require.Equal(t, Daily, got, "%s", d.Format("2006-01-02"))
			case IsVacationFriday(d, cutoff):
				require.Equal(t, Yearly, got, "%s", d.Format("2006-01-02"))
			case IsEndOfQuarterFriday(d):
				require.Equal(t, Quarterly, got, "%s", d.Format("2006-01-02"))
			case IsEndOfMonthFriday(d):
				require.Equal(t, Monthly, got, "%s", d.Format("2006-01-02"))
			default:
				require.Equal(t, Weekly, got, "%s", d.Format("2006-01-02"))
			}
		}
	}
}

func TestOneYearlyPerDecember(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		for _, cutoff := range []int{1, 7, 17, 24, 31} {
			count := 0
			for d := date(year, time.December, 1); d.Month() == time.December; d = d.AddDate(0, 0, 1) {
				if IsVacationFriday(d, cutoff) {
					count++
				}
			}
			// A cutoff before the first Friday has no Friday on or before it.
			first := date(year, time.December, 1)
			for !IsFriday(first) {
				first = first.AddDate(0, 0, 1)
			}
			want := 1
			if cutoff < first.Day() {
				want = 0
			}
			assert.Equal(t, want, count, "year %d cutoff %d", year, cutoff)
		}
	}
}

func TestTierNames(t *testing.T) {
	assert.Equal(t, "daily_template.md", Daily.TemplateName())
	assert.Equal(t, "yearly_template.md", Yearly.TemplateName())
	assert.Equal(t, "quarterly", Quarterly.String())

	for _, tier := range Tiers() {
		got, err := ParseTier(tier.String())
		require.NoError(t, err)
		assert.Equal(t, tier, got)
	}

	got, err := ParseTier(" Monthly ")
	require.NoError(t, err)
	assert.Equal(t, Monthly, got)

	_, err = ParseTier("hourly")
	assert.Error(t, err)
}
