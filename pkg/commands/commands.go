// Package commands wires the work-journal CLI.
package commands

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/workjournal/pkg/commands/options"
	"tableflip.dev/workjournal/pkg/config"
	"tableflip.dev/workjournal/pkg/paths"
	"tableflip.dev/workjournal/pkg/printers"
	"tableflip.dev/workjournal/pkg/store"
)

var (
	lo = &options.LogOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "work-journal",
		Short: base.Wrap80("Scaffold dated markdown journal entries from calendar aware templates."),
		Long: base.Wrap80(`Scaffold dated markdown journal entries. Fridays get a weekly template,
the last Friday of a month or quarter gets a monthly or quarterly one, and
the Friday before the December holidays gets the yearly review.`),
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			lo.Out = cmd.ErrOrStderr()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddLogArgs(cmd, lo)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addInit(topLevel)
	addNew(topLevel)
	addConfig(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

func logger() *log.Logger {
	return lo.Logger()
}

func printer(cmd *cobra.Command) *printers.PrettyPrint {
	return &printers.PrettyPrint{Out: cmd.OutOrStdout()}
}

// configStore reads the user and project config files of r.
func configStore(r *paths.Resolver, l *log.Logger) (*config.Store, error) {
	user, err := r.ResolveScope(true)
	if err != nil {
		return nil, err
	}
	project, err := r.ResolveScope(false)
	if err != nil {
		return nil, err
	}
	l.Debug("config files", "user", user.ConfigFile, "project", project.ConfigFile)
	return config.NewStore(config.Paths{
		User:    user.ConfigFile,
		Project: project.ConfigFile,
	}, config.WithLogger(l)), nil
}

// journal opens the journal under dir, or ./Journal when dir is empty.
func journal(dir string) (store.Persistence, error) {
	if dir == "" {
		return store.Load(nil)
	}
	return store.Load(store.Dir(dir))
}
