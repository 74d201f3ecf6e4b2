package options

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// LogPrefix tags every log line.
const LogPrefix = "work-journal"

// LogOptions
type LogOptions struct {
	Verbose bool
	// Out defaults to stderr.
	Out io.Writer
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Show debug logging.")
}

// Logger builds the logger shared by every command.
func (o *LogOptions) Logger() *log.Logger {
	w := o.Out
	if w == nil {
		w = os.Stderr
	}
	level := log.InfoLevel
	if o.Verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          LogPrefix,
		Level:           level,
		ReportTimestamp: false,
	})
}
