// Package printers writes human readable command output.
package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// Entry outcomes reported by Status.
const (
	StatusCreated   = "Created"
	StatusOverwrote = "Overwrote"
	StatusExists    = "already exists"
)

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// Status reports what happened to a journal entry.
func (pp *PrettyPrint) Status(status, path string) {
	switch status {
	case StatusCreated:
		_, _ = color.New(color.FgGreen).Fprintf(pp.out(), "Created journal entry: %s\n", path)
	case StatusOverwrote:
		_, _ = color.New(color.FgYellow).Fprintf(pp.out(), "Overwrote journal entry: %s\n", path)
	default:
		_, _ = color.New(color.Faint).Fprintf(pp.out(), "Journal entry %s: %s\n", status, path)
	}
}

// Done prints a success line.
func (pp *PrettyPrint) Done(format string, a ...any) {
	_, _ = color.New(color.FgGreen).Fprint(pp.out(), "✓ ")
	_, _ = fmt.Fprintf(pp.out(), format+"\n", a...)
}

// Faint prints a de-emphasized line.
func (pp *PrettyPrint) Faint(format string, a ...any) {
	_, _ = color.New(color.Faint, color.Italic).Fprintf(pp.out(), format+"\n", a...)
}

// Table prints rows under a bold header, first column right aligned.
func (pp *PrettyPrint) Table(header []string, rows [][]string) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	cells := make([]interface{}, len(header))
	for i, h := range header {
		cells[i] = bold.Sprint(h)
	}
	tbl.AddRow(cells...)
	for _, row := range rows {
		cells := make([]interface{}, len(row))
		for i, c := range row {
			cells[i] = c
		}
		tbl.AddRow(cells...)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Pairs prints key/value rows without a header.
func (pp *PrettyPrint) Pairs(rows [][2]string) {
	tbl := uitable.New()
	tbl.Separator = "  "
	faint := color.New(color.Faint)
	for _, r := range rows {
		tbl.AddRow(faint.Sprint(r[0]), r[1])
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// JSON prints v as indented JSON.
func (pp *PrettyPrint) JSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(pp.out(), string(b))
	return err
}
