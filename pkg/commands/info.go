package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/workjournal/pkg/commands/options"
	"tableflip.dev/workjournal/pkg/paths"
	"tableflip.dev/workjournal/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	jo := &options.JournalOptions{}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about where templates, config and entries are stored.",
		Example: `
work-journal info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			l := logger()
			r, err := paths.NewResolver(l)
			if err != nil {
				return err
			}
			cfg, err := configStore(r, l)
			if err != nil {
				return err
			}
			p, err := journal(jo.Dir)
			if err != nil {
				return err
			}
			s := info.Info{
				Resolver:    r,
				Config:      cfg,
				Persistence: p,
				Today:       time.Now(),
				Printer:     printer(cmd),
			}
			return s.Do(context.Background())
		},
	}

	options.AddJournalArgs(cmd, jo)
	topLevel.AddCommand(cmd)
}
