package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/workjournal/pkg/commands/options"
	"tableflip.dev/workjournal/pkg/paths"
	"tableflip.dev/workjournal/pkg/runner/initialize"
)

func addInit(topLevel *cobra.Command) {
	so := &options.ScopeOptions{}
	oo := &options.OutputOptions{}
	force := false

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Seed a templates directory with the bundled templates.",
		Example: `
work-journal init
work-journal init --user
work-journal init --force
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			oo.Out = cmd.OutOrStdout()
			l := logger()
			r, err := paths.NewResolver(l)
			if err != nil {
				return oo.HandleError(cmd, err)
			}
			scope, err := r.ResolveScope(so.User)
			if err != nil {
				return oo.HandleError(cmd, err)
			}
			i := initialize.Init{
				Dest:    scope.Templates,
				Force:   force,
				Logger:  l,
				Printer: printer(cmd),
			}
			err = i.Do(context.Background())
			return oo.HandleError(cmd, err)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false,
		"Overwrite an existing templates directory.")
	options.AddScopeArgs(cmd, so, "templates directory")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
