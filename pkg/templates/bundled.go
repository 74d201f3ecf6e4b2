// Package templates finds, renders and seeds journal templates.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed defaults/*.md
var bundled embed.FS

// Bundled returns the templates shipped with the binary.
func Bundled() fs.FS {
	sub, err := fs.Sub(bundled, "defaults")
	if err != nil {
		// fs.Sub only fails on an invalid path, and "defaults" is valid.
		panic(err)
	}
	return sub
}
