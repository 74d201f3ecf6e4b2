// Package key prints the legend of recognized configuration keys.
package key

import (
	"context"
	"fmt"

	"tableflip.dev/workjournal/pkg/config"
	"tableflip.dev/workjournal/pkg/printers"
)

// Key prints every schema key with its type, range and override variable.
type Key struct {
	Printer *printers.PrettyPrint
}

// Do renders the key table.
func (k *Key) Do(ctx context.Context) error {
	pp := k.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	rows := make([][]string, 0, len(config.Schema()))
	for _, info := range config.Schema() {
		rows = append(rows, Row(info))
	}
	pp.NewLine()
	pp.Table([]string{"Key", "Type", "Range", "Default", "Environment", "Meaning"}, rows)
	return nil
}

// Row describes one key.
func Row(info config.KeyInfo) []string {
	rng := "-"
	if info.Kind == config.KindInt {
		rng = fmt.Sprintf("%d-%d", info.Min, info.Max)
	}
	def := "-"
	if info.Default != nil {
		def = fmt.Sprint(info.Default)
	}
	return []string{info.Name, string(info.Kind), rng, def, config.EnvName(info.Name), info.Description}
}
