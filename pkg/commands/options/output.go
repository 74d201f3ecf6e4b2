package options

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/workjournal/pkg/config"
	"tableflip.dev/workjournal/pkg/paths"
	"tableflip.dev/workjournal/pkg/templates"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
	// Out defaults to color.Output.
	Out io.Writer
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

// Error codes reported with --json.
const (
	CodeUnknownKey       = "unknown_key"
	CodeOutOfRange       = "out_of_range"
	CodeTemplateNotFound = "template_not_found"
	CodeInvalidTemplate  = "invalid_template_name"
	CodeDuplicateDirs    = "duplicate_templates_dir"
	CodeExists           = "already_exists"
	CodeSourceNotFound   = "source_not_found"
	CodePermission       = "permission_denied"
	CodeInternal         = "error"
)

// Classify maps err to one of the error codes.
func Classify(err error) string {
	switch {
	case errors.Is(err, config.ErrUnknownConfigKey):
		return CodeUnknownKey
	case errors.Is(err, config.ErrOutOfRange):
		return CodeOutOfRange
	case errors.Is(err, templates.ErrTemplateNotFound):
		return CodeTemplateNotFound
	case errors.Is(err, templates.ErrInvalidTemplateName):
		return CodeInvalidTemplate
	case errors.Is(err, paths.ErrDuplicateTemplatesDir):
		return CodeDuplicateDirs
	case errors.Is(err, templates.ErrDestinationExists):
		return CodeExists
	case errors.Is(err, templates.ErrSourceNotFound):
		return CodeSourceNotFound
	case errors.Is(err, os.ErrPermission):
		return CodePermission
	default:
		return CodeInternal
	}
}

// HandleError prints err as JSON when --json is set and silences cobra's own
// report of it. err is always returned so the process exits non-zero.
func (o *OutputOptions) HandleError(cmd *cobra.Command, err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
			"code":  Classify(err),
		}
		b, merr := json.Marshal(out)
		if merr != nil {
			return merr
		}
		w := o.Out
		if w == nil {
			w = color.Output
		}
		_, _ = fmt.Fprintln(w, string(b))
		if cmd != nil {
			cmd.SilenceErrors = true
		}
	}
	return err
}
