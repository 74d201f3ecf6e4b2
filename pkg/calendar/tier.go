package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Tier is the template category selected for a journal date.
type Tier int

const (
	Daily Tier = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

var tierNames = map[Tier]string{
	Daily:     "daily",
	Weekly:    "weekly",
	Monthly:   "monthly",
	Quarterly: "quarterly",
	Yearly:    "yearly",
}

// Tiers lists every tier from lowest to highest priority.
func Tiers() []Tier {
	return []Tier{Daily, Weekly, Monthly, Quarterly, Yearly}
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tier(%d)", int(t))
}

// TemplateName is the file name of the template used for the tier.
func (t Tier) TemplateName() string {
	return t.String() + "_template.md"
}

// ParseTier resolves a tier from its name, ignoring case.
func ParseTier(s string) (Tier, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, t := range Tiers() {
		if tierNames[t] == want {
			return t, nil
		}
	}
	return Daily, fmt.Errorf("unknown tier %q, expected one of daily, weekly, monthly, quarterly, yearly", s)
}

// SelectTier picks the template tier for t. Rules are checked from the
// highest priority down and the first match wins, so a vacation Friday
// that also closes a quarter is still Yearly.
func SelectTier(t time.Time, cutoffDay int) Tier {
	d := Normalize(t)
	switch {
	case IsVacationFriday(d, cutoffDay):
		return Yearly
	case IsEndOfQuarterFriday(d):
		return Quarterly
	case IsEndOfMonthFriday(d):
		return Monthly
	case IsFriday(d):
		return Weekly
	default:
		return Daily
	}
}
