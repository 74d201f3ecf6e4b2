package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/workjournal/pkg/calendar"
	"tableflip.dev/workjournal/pkg/commands/options"
	"tableflip.dev/workjournal/pkg/editor"
	"tableflip.dev/workjournal/pkg/paths"
	"tableflip.dev/workjournal/pkg/runner/newentry"
	"tableflip.dev/workjournal/pkg/templates"
	"tableflip.dev/workjournal/pkg/timeutil"
)

func addNew(topLevel *cobra.Command) {
	do := &options.DayOptions{}
	no := &options.NewOptions{}
	jo := &options.JournalOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create today's journal entry from the template its date calls for.",
		Example: `
work-journal new
work-journal new --offset=-1 --open
work-journal new --on=2025-03-28 --tier=quarterly --force
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			oo.Out = cmd.OutOrStdout()
			err := runNew(cmd, do, no, jo)
			return oo.HandleError(cmd, err)
		},
	}

	options.AddDayArgs(cmd, do)
	options.AddNewArgs(cmd, no)
	options.AddJournalArgs(cmd, jo)
	options.AddOutputArg(cmd, oo)
	_ = cmd.RegisterFlagCompletionFunc("tier", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return tierCompletions(), cobra.ShellCompDirectiveNoFileComp
	})
	topLevel.AddCommand(cmd)
}

func runNew(cmd *cobra.Command, do *options.DayOptions, no *options.NewOptions, jo *options.JournalOptions) error {
	day, err := do.GetDay(time.Now())
	if err != nil {
		return err
	}
	tier, err := no.GetTier()
	if err != nil {
		return err
	}
	offset, err := do.OffsetDays()
	if err != nil {
		return err
	}

	l := logger()
	l.Debug("resolved journal day", "day", day.Format(time.DateOnly), "offset", timeutil.FormatOffset(offset))
	r, err := paths.NewResolver(l)
	if err != nil {
		return err
	}
	projectTemplates, err := r.ProjectTemplatesDir()
	if err != nil {
		return err
	}
	userTemplates, err := r.UserTemplatesDir()
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

	pp := printer(cmd)
	n := newentry.NewEntry{
		Date:      day,
		Open:      no.Open,
		Force:     no.Force,
		Tier:      tier,
		Journal:   p,
		Templates: templates.SearchLoader(projectTemplates, userTemplates),
		Config:    cfg,
		Editor:    &editor.ExecLauncher{},
		Logger:    l,
		Printer:   pp,
	}
	path, err := n.Do(context.Background())
	if err != nil {
		return err
	}
	pp.Faint("Journal entry ready: %s", path)
	return nil
}

func tierCompletions() []string {
	names := make([]string, 0, len(calendar.Tiers()))
	for _, t := range calendar.Tiers() {
		names = append(names, t.String())
	}
	return names
}
