// Package initialize seeds a templates directory with the bundled
// templates.
package initialize

import (
	"context"
	"io/fs"

	"github.com/charmbracelet/log"

	"tableflip.dev/workjournal/pkg/printers"
	"tableflip.dev/workjournal/pkg/templates"
)

type Init struct {
	// Dest is the templates directory to create.
	Dest  string
	Force bool
	// Source defaults to the bundled templates.
	Source fs.FS

	Logger  *log.Logger
	Printer *printers.PrettyPrint
}

func (i *Init) Do(ctx context.Context) error {
	pp := i.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	src := i.Source
	if src == nil {
		src = templates.Bundled()
	}

	copied, err := templates.Seed(i.Dest, src, ".", i.Force, i.Logger)
	if err != nil {
		return err
	}
	for _, name := range copied {
		pp.Faint("  %s", name)
	}
	pp.Done("%s ready, hack away!", i.Dest)
	return nil
}
