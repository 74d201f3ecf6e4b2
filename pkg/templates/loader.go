package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

var (
	// ErrTemplateNotFound is returned when no source holds the template.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrInvalidTemplateName guards against names escaping a source.
	ErrInvalidTemplateName = errors.New("invalid template name")
)

// Source is one place templates can be read from.
type Source interface {
	fmt.Stringer
	Has(name string) bool
	Read(name string) ([]byte, error)
}

// flatTransform stores every key directly under the base path.
func flatTransform(string) []string {
	return []string{}
}

type dirSource struct {
	dir string
	d   *diskv.Diskv
}

// DirSource reads templates from a directory on disk. The directory does
// not need to exist.
func DirSource(dir string) Source {
	return &dirSource{
		dir: dir,
		d: diskv.New(diskv.Options{
			BasePath:  dir,
			Transform: flatTransform,
			PathPerm:  0o755,
			FilePerm:  0o644,
		}),
	}
}

func (s *dirSource) String() string {
	return s.dir
}

func (s *dirSource) Has(name string) bool {
	return s.d.Has(name)
}

func (s *dirSource) Read(name string) ([]byte, error) {
	return s.d.Read(name)
}

type fsSource struct {
	label string
	fsys  fs.FS
}

// FSSource reads templates from fsys, for example the bundled defaults.
func FSSource(label string, fsys fs.FS) Source {
	return &fsSource{label: label, fsys: fsys}
}

func (s *fsSource) String() string {
	return s.label
}

func (s *fsSource) Has(name string) bool {
	info, err := fs.Stat(s.fsys, name)
	return err == nil && !info.IsDir()
}

func (s *fsSource) Read(name string) ([]byte, error) {
	return fs.ReadFile(s.fsys, name)
}

// Loader searches its sources in order, first hit wins.
type Loader struct {
	Sources []Source
}

// NewLoader returns a Loader over sources, skipping nil ones.
func NewLoader(sources ...Source) *Loader {
	l := &Loader{}
	for _, s := range sources {
		if s != nil {
			l.Sources = append(l.Sources, s)
		}
	}
	return l
}

// ValidateName rejects names that could reach outside a source directory.
func ValidateName(name string) error {
	if name == "" || strings.Contains(name, "..") || strings.HasPrefix(name, "/") || filepath.IsAbs(name) {
		return fmt.Errorf("%w: %q", ErrInvalidTemplateName, name)
	}
	return nil
}

// Load returns the text of the named template.
func (l *Loader) Load(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	labels := make([]string, 0, len(l.Sources))
	for _, src := range l.Sources {
		labels = append(labels, src.String())
		if !src.Has(name) {
			continue
		}
		data, err := src.Read(name)
		if err != nil {
			return "", fmt.Errorf("templates: read %s from %s: %w", name, src, err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("%w: %q is not in any source: %s", ErrTemplateNotFound, name, strings.Join(labels, ", "))
}

// BundledLabel names the bundled source in messages.
const BundledLabel = "bundled"

// SearchLoader looks in the project directory, then the user directory,
// then the bundled templates. Empty directories are skipped.
func SearchLoader(projectDir, userDir string) *Loader {
	var project, user Source
	if projectDir != "" {
		project = DirSource(projectDir)
	}
	if userDir != "" {
		user = DirSource(userDir)
	}
	return NewLoader(project, user, FSSource(BundledLabel, Bundled()))
}
