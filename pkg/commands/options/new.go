package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/workjournal/pkg/calendar"
)

// NewOptions
type NewOptions struct {
	Open  bool
	Force bool
	Tier  string
}

func AddNewArgs(cmd *cobra.Command, o *NewOptions) {
	cmd.Flags().BoolVar(&o.Open, "open", false,
		"Open the journal entry after creation.")
	cmd.Flags().BoolVar(&o.Force, "force", false,
		"Force overwrite existing journal entry.")
	cmd.Flags().StringVar(&o.Tier, "tier", "",
		"Use the template of this tier instead of the calendar rules, one of daily, weekly, monthly, quarterly or yearly.")
}

// GetTier returns the requested tier, or nil to follow the calendar.
func (o *NewOptions) GetTier() (*calendar.Tier, error) {
	if o.Tier == "" {
		return nil, nil
	}
	t, err := calendar.ParseTier(o.Tier)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
