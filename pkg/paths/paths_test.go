package paths

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func mkdirs(t *testing.T, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", d, err)
		}
	}
}

func TestProjectTemplatesDirWalksUp(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "project", "notes", "deep")
	want := filepath.Join(root, "project", "templates")
	mkdirs(t, sub, want)

	r := &Resolver{Cwd: sub}
	got, err := r.ProjectTemplatesDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}

	projectRoot, tpl, err := r.ProjectRoot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if projectRoot != filepath.Join(root, "project") {
		t.Fatalf("unexpected project root %s", projectRoot)
	}
	if tpl != want {
		t.Fatalf("expected templates %s, got %s", want, tpl)
	}

	scope, err := r.ResolveScope(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scope.Root != projectRoot || scope.Templates != want {
		t.Fatalf("unexpected project scope %+v", scope)
	}
}

func TestProjectTemplatesDirMissing(t *testing.T) {
	cwd := t.TempDir()
	r := &Resolver{Cwd: cwd}

	got, err := r.ProjectTemplatesDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A templates directory somewhere above the temp dir would be found
	// legitimately; only assert nothing was found below it.
	if got != "" && strings.HasPrefix(got, cwd) {
		t.Fatalf("expected no project templates, got %s", got)
	}
}

func TestProjectTemplatesDirIgnoresFiles(t *testing.T) {
	cwd := t.TempDir()
	if err := os.WriteFile(filepath.Join(cwd, "templates"), []byte("not a dir"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := &Resolver{Cwd: cwd}

	got, err := r.ProjectTemplatesDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == filepath.Join(cwd, "templates") {
		t.Fatalf("a regular file must not count as a templates directory")
	}
}

func TestProjectTemplatesDirNonCanonical(t *testing.T) {
	cwd := t.TempDir()
	upper := filepath.Join(cwd, "Templates")
	mkdirs(t, upper)

	var buf bytes.Buffer
	r := &Resolver{Cwd: cwd, Logger: log.New(&buf)}
	got, err := r.ProjectTemplatesDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.EqualFold(got, upper) {
		t.Fatalf("expected %s, got %s", upper, got)
	}
	if got == upper && !strings.Contains(buf.String(), "non-canonical") {
		t.Fatalf("expected a non-canonical warning, got %q", buf.String())
	}
}

func TestProjectTemplatesDirDuplicate(t *testing.T) {
	cwd := t.TempDir()
	lower := filepath.Join(cwd, "templates")
	upper := filepath.Join(cwd, "Templates")
	mkdirs(t, lower, upper)

	li, _ := os.Stat(lower)
	ui, _ := os.Stat(upper)
	if os.SameFile(li, ui) {
		t.Skip("filesystem is case-insensitive")
	}

	r := &Resolver{Cwd: cwd}
	if _, err := r.ProjectTemplatesDir(); !errors.Is(err, ErrDuplicateTemplatesDir) {
		t.Fatalf("expected ErrDuplicateTemplatesDir, got %v", err)
	}
	if _, err := r.ResolveScope(false); !errors.Is(err, ErrDuplicateTemplatesDir) {
		t.Fatalf("expected scope resolution to fail too, got %v", err)
	}
}

func TestUserBaseDir(t *testing.T) {
	tests := map[string]struct {
		r    Resolver
		want string
	}{
		"linux": {
			r:    Resolver{Home: "/home/user", GOOS: "linux"},
			want: filepath.Join("/home/user", ".config", "work-journal"),
		},
		"darwin": {
			r:    Resolver{Home: "/Users/user", GOOS: "darwin"},
			want: filepath.Join("/Users/user", "Library", "Preferences", "work-journal"),
		},
		"appdata wins": {
			r:    Resolver{Home: "/home/user", GOOS: "linux", AppData: "/appdata"},
			want: filepath.Join("/appdata", "work-journal"),
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := tc.r.UserBaseDir()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestResolveScope(t *testing.T) {
	cwd := t.TempDir()
	home := t.TempDir()
	r := &Resolver{Cwd: cwd, Home: home, GOOS: "linux"}

	user, err := r.ResolveScope(true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	base := filepath.Join(home, ".config", "work-journal")
	if user.Templates != filepath.Join(base, "templates") {
		t.Fatalf("unexpected user templates %s", user.Templates)
	}
	if user.ConfigFile != filepath.Join(base, "config.json") {
		t.Fatalf("unexpected user config %s", user.ConfigFile)
	}

	mkdirs(t, filepath.Join(cwd, "templates"))
	project, err := r.ResolveScope(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if project.Root != cwd {
		t.Fatalf("unexpected project root %s", project.Root)
	}
	if project.Templates != filepath.Join(cwd, "templates") {
		t.Fatalf("unexpected project templates %s", project.Templates)
	}
	if project.ConfigFile != filepath.Join(cwd, "work-journal.json") {
		t.Fatalf("unexpected project config %s", project.ConfigFile)
	}
}
