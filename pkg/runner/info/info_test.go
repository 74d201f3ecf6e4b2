package info

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/workjournal/pkg/config"
	"tableflip.dev/workjournal/pkg/paths"
	"tableflip.dev/workjournal/pkg/printers"
	"tableflip.dev/workjournal/pkg/store"
)

func TestInfo(t *testing.T) {
	color.NoColor = true
	t.Setenv(config.EnvName(config.HolidayCutoffDay), "")

	base := t.TempDir()
	project := filepath.Join(base, "project")
	require.NoError(t, os.MkdirAll(filepath.Join(project, "templates"), 0o755))
	cwd := filepath.Join(project, "notes")
	require.NoError(t, os.MkdirAll(cwd, 0o755))

	quiet := log.New(io.Discard)
	r := &paths.Resolver{Cwd: cwd, AppData: filepath.Join(base, "appdata"), GOOS: "linux", Logger: quiet}
	cfg := config.NewStore(config.Paths{
		User:    filepath.Join(base, "appdata", "work-journal", "config.json"),
		Project: filepath.Join(project, "work-journal.json"),
	}, config.WithLogger(quiet))

	journal, err := store.Load(store.Dir(filepath.Join(cwd, "Journal")))
	require.NoError(t, err)
	today := time.Date(2025, time.March, 28, 12, 0, 0, 0, time.Local)
	require.NoError(t, journal.Write(today, "done"))

	var out bytes.Buffer
	n := Info{Resolver: r, Config: cfg, Persistence: journal, Today: today, Printer: &printers.PrettyPrint{Out: &out}}
	require.NoError(t, n.Do(context.Background()))

	got := out.String()
	assert.Contains(t, got, filepath.Join(project, "templates"))
	assert.Contains(t, got, filepath.Join(base, "appdata", "work-journal", "templates")+" (missing)")
	assert.Contains(t, got, "quarterly")
	assert.Contains(t, got, "quarterly_template.md")
	assert.Contains(t, got, "3. bundled")
	assert.Contains(t, got, "March 2025")
}

func TestInfoRequiresPersistence(t *testing.T) {
	n := Info{Resolver: &paths.Resolver{Cwd: t.TempDir()}}
	assert.Error(t, n.Do(context.Background()))
}
