package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/workjournal/pkg/timeutil"
)

const (
	layoutISO = "2006-01-02"
)

// DayOptions pick the day an entry is for.
type DayOptions struct {
	Offset   string
	OnString string
}

func AddDayArgs(cmd *cobra.Command, o *DayOptions) {
	cmd.Flags().StringVar(&o.Offset, "offset", "0",
		`Day offset from today, example: --offset=-1 for yesterday or --offset=1w for a week from now.`)
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date instead of today, example: --on="2025-03-28".`)
}

// OffsetDays is --offset in days.
func (o *DayOptions) OffsetDays() (int, error) {
	offset, err := timeutil.ParseOffset(o.Offset)
	if err != nil {
		return 0, fmt.Errorf("invalid --offset: %w", err)
	}
	return offset, nil
}

// GetDay resolves the day relative to now. The offset applies to --on too.
func (o *DayOptions) GetDay(now time.Time) (time.Time, error) {
	offset, err := o.OffsetDays()
	if err != nil {
		return time.Time{}, err
	}
	day := now
	if o.OnString != "" {
		t, err := time.ParseInLocation(layoutISO, o.OnString, now.Location())
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --on date %q, expected yyyy-mm-dd", o.OnString)
		}
		day = t
	}
	return day.AddDate(0, 0, offset), nil
}
