package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/workjournal/pkg/commands/options"
	"tableflip.dev/workjournal/pkg/config"
	"tableflip.dev/workjournal/pkg/paths"
	"tableflip.dev/workjournal/pkg/runner/configure"
	"tableflip.dev/workjournal/pkg/runner/key"
)

func addConfig(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration.",
		Long: `Settings live in two flat JSON files. The project file
(work-journal.json next to the templates directory) overrides the user file,
and WORK_JOURNAL_* environment variables override both.`,
		Example: `
work-journal config get
work-journal config set holidayCutoffDay 20 --user
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addConfigGet(cmd)
	addConfigSet(cmd)
	addConfigKeys(cmd)

	topLevel.AddCommand(cmd)
}

func addConfigGet(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "get [key]",
		Short: "Read configuration value(s), omit the key to get all values.",
		Example: `
work-journal config get
work-journal config get holidayCutoffDay --json
`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: keyCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			oo.Out = cmd.OutOrStdout()
			l := logger()
			r, err := paths.NewResolver(l)
			if err != nil {
				return oo.HandleError(cmd, err)
			}
			store, err := configStore(r, l)
			if err != nil {
				return oo.HandleError(cmd, err)
			}
			g := configure.Get{
				JSON:    oo.JSON,
				Store:   store,
				Printer: printer(cmd),
			}
			if len(args) == 1 {
				g.Key = args[0]
			}
			err = g.Do(context.Background())
			return oo.HandleError(cmd, err)
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addConfigSet(topLevel *cobra.Command) {
	so := &options.ScopeOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value.",
		Example: `
work-journal config set holidayCutoffDay 20
work-journal config set holidayCutoffDay 20 --user
`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: keyCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
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
			store, err := configStore(r, l)
			if err != nil {
				return oo.HandleError(cmd, err)
			}
			s := configure.Set{
				Key:     args[0],
				Value:   args[1],
				Path:    scope.ConfigFile,
				Scope:   so.Name(),
				Store:   store,
				Printer: printer(cmd),
			}
			err = s.Do(context.Background())
			return oo.HandleError(cmd, err)
		},
	}

	options.AddScopeArgs(cmd, so, "config")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addConfigKeys(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List the recognized configuration keys.",
		Example: `
work-journal config keys
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k := key.Key{Printer: printer(cmd)}
			return k.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func keyCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var keys []string
	for _, k := range config.Schema() {
		if strings.HasPrefix(strings.ToLower(k.Name), strings.ToLower(toComplete)) {
			keys = append(keys, k.Name)
		}
	}
	return keys, cobra.ShellCompDirectiveNoFileComp
}
