// Package configure reads and writes work-journal settings.
package configure

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/workjournal/pkg/config"
	"tableflip.dev/workjournal/pkg/printers"
)

// Get prints one merged setting, or all of them when Key is empty.
type Get struct {
	Key     string
	JSON    bool
	Store   *config.Store
	Printer *printers.PrettyPrint
}

type getOutput struct {
	Key     string         `json:"key,omitempty"`
	Value   any            `json:"value,omitempty"`
	Found   *bool          `json:"found,omitempty"`
	Config  *config.Values `json:"config,omitempty"`
	Sources []string       `json:"sources"`
}

func (g *Get) Do(ctx context.Context) error {
	if g.Store == nil {
		return errors.New("can not get config, no store")
	}
	pp := g.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	res, err := g.Store.Get(g.Key)
	if err != nil {
		return err
	}
	sources := res.Sources
	if sources == nil {
		sources = []string{}
	}

	if g.JSON {
		out := getOutput{Sources: sources}
		if g.Key == "" {
			out.Config = res.Merged
		} else {
			out.Key, out.Value, out.Found = res.Key, res.Value, &res.Found
		}
		return pp.JSON(out)
	}

	if g.Key != "" {
		if !res.Found {
			pp.Faint("%s is not set", g.Key)
		} else {
			pp.Table([]string{"Key", "Value"}, [][]string{{res.Key, fmt.Sprint(res.Value)}})
		}
	} else {
		rows := make([][]string, 0, res.Merged.Len())
		for _, e := range res.Merged.Entries() {
			rows = append(rows, []string{e.Key, fmt.Sprint(e.Value)})
		}
		if len(rows) == 0 {
			pp.Faint("no configuration set")
		} else {
			pp.Table([]string{"Key", "Value"}, rows)
		}
	}
	if len(res.Sources) > 0 {
		pp.Faint("Loaded from: %s", strings.Join(res.Sources, ", "))
	}
	return nil
}

// Set stores a setting in the config file of one scope.
type Set struct {
	Key   string
	Value string
	// Path is the config file written to; Scope names it for the user.
	Path    string
	Scope   string
	Store   *config.Store
	Printer *printers.PrettyPrint
}

func (s *Set) Do(ctx context.Context) error {
	if s.Store == nil {
		return errors.New("can not set config, no store")
	}
	if s.Path == "" {
		return errors.New("can not set config, no config file")
	}
	pp := s.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	if err := s.Store.Set(s.Path, s.Key, s.Value); err != nil {
		return err
	}
	pp.Done("saved (%s scope)", s.Scope)
	return nil
}
