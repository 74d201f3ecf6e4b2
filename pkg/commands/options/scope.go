package options

import (
	"github.com/spf13/cobra"
)

// ScopeOptions choose between the project and the user scope.
type ScopeOptions struct {
	User bool
}

func AddScopeArgs(cmd *cobra.Command, o *ScopeOptions, what string) {
	cmd.Flags().BoolVar(&o.User, "user", false,
		"Use the user "+what+" instead of the project "+what+".")
}

// Name is "user" or "project".
func (o *ScopeOptions) Name() string {
	if o.User {
		return "user"
	}
	return "project"
}

// JournalOptions
type JournalOptions struct {
	Dir string
}

func AddJournalArgs(cmd *cobra.Command, o *JournalOptions) {
	cmd.Flags().StringVar(&o.Dir, "dir", "",
		`Journal directory, defaults to "./Journal".`)
}
