package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/peterbourgon/diskv/v3"
)

var (
	// ErrDestinationExists is returned when seeding would overwrite a
	// templates directory without force.
	ErrDestinationExists = errors.New("templates directory already exists")
	// ErrSourceNotFound is returned when the seed source is missing.
	ErrSourceNotFound = errors.New("source templates directory not found")
)

// Seed copies the regular files found in dir of src into dest and returns
// the copied names. Entries that cannot be read are skipped with a warning.
func Seed(dest string, src fs.FS, dir string, force bool, logger *log.Logger) ([]string, error) {
	if logger == nil {
		logger = log.Default()
	}
	if _, err := os.Stat(dest); err == nil && !force {
		return nil, fmt.Errorf("%w: %s, use --force to overwrite", ErrDestinationExists, dest)
	}
	entries, err := fs.ReadDir(src, dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceNotFound, dir, err)
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return nil, fmt.Errorf("templates: create %s: %w", dest, err)
	}

	d := diskv.New(diskv.Options{
		BasePath:  dest,
		Transform: flatTransform,
		PathPerm:  0o755,
		FilePerm:  0o644,
	})

	var copied []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		data, err := fs.ReadFile(src, joinFS(dir, name))
		if err != nil {
			logger.Warn("skipping source template", "name", name, "err", err)
			continue
		}
		if err := d.Write(name, data); err != nil {
			return copied, fmt.Errorf("templates: write %s: %w", name, err)
		}
		copied = append(copied, name)
	}
	return copied, nil
}

func joinFS(dir, name string) string {
	if dir == "" || dir == "." {
		return name
	}
	return dir + "/" + name
}
