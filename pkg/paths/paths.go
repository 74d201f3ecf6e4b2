// Package paths discovers where templates and configuration live for the
// user and project scopes.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
)

const (
	// AppName names the per-user directory.
	AppName = "work-journal"
	// TemplatesDir is the canonical templates directory name.
	TemplatesDir = "templates"
	// ProjectConfigFile sits at the project root.
	ProjectConfigFile = "work-journal.json"
	// UserConfigFile sits in the per-user directory.
	UserConfigFile = "config.json"

	nonCanonicalTemplatesDir = "Templates"
)

// ErrDuplicateTemplatesDir is returned when both templates and Templates
// exist side by side and it is unclear which one is meant.
var ErrDuplicateTemplatesDir = errors.New("ERR_DUPLICATE_TEMPLATES_DIR: both templates/ and Templates/ exist")

// ScopePaths are the locations owned by one scope.
type ScopePaths struct {
	Root       string
	Templates  string
	ConfigFile string
}

// Resolver answers path questions relative to an explicit working
// directory and environment instead of process globals.
type Resolver struct {
	Cwd     string
	Home    string
	AppData string
	GOOS    string
	Logger  *log.Logger
}

// NewResolver captures the current process state.
func NewResolver(logger *log.Logger) (*Resolver, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("paths: working directory: %w", err)
	}
	return &Resolver{
		Cwd:     cwd,
		AppData: os.Getenv("APPDATA"),
		GOOS:    runtime.GOOS,
		Logger:  logger,
	}, nil
}

func (r *Resolver) logger() *log.Logger {
	if r.Logger == nil {
		return log.Default()
	}
	return r.Logger
}

func (r *Resolver) home() (string, error) {
	if r.Home != "" {
		return r.Home, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("paths: home directory: %w", err)
	}
	return home, nil
}

func isDir(path string) (os.FileInfo, bool) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil, false
	}
	return info, true
}

// ProjectTemplatesDir walks up from the working directory looking for a
// templates directory. It returns "" when there is none.
func (r *Resolver) ProjectTemplatesDir() (string, error) {
	dir := filepath.Clean(r.Cwd)
	for {
		lower := filepath.Join(dir, TemplatesDir)
		upper := filepath.Join(dir, nonCanonicalTemplatesDir)
		li, hasLower := isDir(lower)
		ui, hasUpper := isDir(upper)

		// Case-insensitive filesystems report the same directory twice.
		if hasLower && hasUpper && os.SameFile(li, ui) {
			hasUpper = false
		}

		switch {
		case hasLower && hasUpper:
			return "", fmt.Errorf("%w in %s, remove one of them", ErrDuplicateTemplatesDir, dir)
		case hasLower:
			return lower, nil
		case hasUpper:
			r.logger().Warn("using non-canonical templates directory, rename it to templates/", "path", upper)
			return upper, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// ProjectRoot is the directory holding the project templates directory, or
// the working directory when there is none. templates is the directory found,
// or the canonical one under root.
func (r *Resolver) ProjectRoot() (root, templates string, err error) {
	tpl, err := r.ProjectTemplatesDir()
	if err != nil {
		return "", "", err
	}
	if tpl == "" {
		root = filepath.Clean(r.Cwd)
		return root, filepath.Join(root, TemplatesDir), nil
	}
	return filepath.Dir(tpl), tpl, nil
}

// UserBaseDir is the per-user work-journal directory: %APPDATA% when set,
// ~/Library/Preferences on macOS and ~/.config elsewhere.
func (r *Resolver) UserBaseDir() (string, error) {
	if r.AppData != "" {
		return filepath.Join(r.AppData, AppName), nil
	}
	home, err := r.home()
	if err != nil {
		return "", err
	}
	if r.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Preferences", AppName), nil
	}
	return filepath.Join(home, ".config", AppName), nil
}

// UserTemplatesDir may not exist yet; loaders skip missing directories.
func (r *Resolver) UserTemplatesDir() (string, error) {
	base, err := r.UserBaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, TemplatesDir), nil
}

// ResolveScope picks the user or project locations.
func (r *Resolver) ResolveScope(user bool) (ScopePaths, error) {
	if user {
		base, err := r.UserBaseDir()
		if err != nil {
			return ScopePaths{}, err
		}
		return ScopePaths{
			Root:       base,
			Templates:  filepath.Join(base, TemplatesDir),
			ConfigFile: filepath.Join(base, UserConfigFile),
		}, nil
	}

	root, tpl, err := r.ProjectRoot()
	if err != nil {
		return ScopePaths{}, err
	}
	return ScopePaths{
		Root:       root,
		Templates:  tpl,
		ConfigFile: filepath.Join(root, ProjectConfigFile),
	}, nil
}
