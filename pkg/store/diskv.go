package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"
)

const (
	layoutISO = "2006-01-02"
	extension = ".md"
)

// Persistence holds one markdown entry per calendar day.
type Persistence interface {
	BasePath() string
	Path(date time.Time) string
	Has(date time.Time) bool
	Read(date time.Time) (string, error)
	Write(date time.Time, content string) error
	Dates(ctx context.Context) []time.Time
}

// Load creates a Persistence backed by diskv. A nil cfg uses DefaultConfig.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = DefaultConfig()
		if err != nil {
			return nil, fmt.Errorf("store: resolve journal dir: %w", err)
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		PathPerm:          0o755,
		FilePerm:          0o644,
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) BasePath() string {
	return p.basePath
}

func (p *persistence) Path(date time.Time) string {
	pk := keyToPathTransform(toKey(date))
	parts := append([]string{p.basePath}, pk.Path...)
	return filepath.Join(append(parts, pk.FileName)...)
}

func (p *persistence) Has(date time.Time) bool {
	return p.d.Has(toKey(date))
}

func (p *persistence) Read(date time.Time) (string, error) {
	val, err := p.d.Read(toKey(date))
	if err != nil {
		return "", fmt.Errorf("store: read %s: %w", toKey(date), err)
	}
	return string(val), nil
}

func (p *persistence) Write(date time.Time, content string) error {
	if err := p.d.Write(toKey(date), []byte(content)); err != nil {
		return fmt.Errorf("store: write %s: %w", toKey(date), err)
	}
	return nil
}

// Dates lists the days that have an entry, oldest first. Files that are not
// named after a date are ignored.
func (p *persistence) Dates(ctx context.Context) []time.Time {
	var dates []time.Time
	for key := range p.d.Keys(ctx.Done()) {
		t, err := time.Parse(layoutISO, key)
		if err != nil {
			continue
		}
		if p.d.Has(key) && toKey(t) == key {
			dates = append(dates, t)
		}
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}

// keyToPathTransform maps `2025-03-28` to `2025/03/2025-03-28.md`.
func keyToPathTransform(s string) *diskv.PathKey {
	if len(s) != len(layoutISO) {
		return &diskv.PathKey{Path: []string{}, FileName: s + extension}
	}
	return &diskv.PathKey{
		Path:     []string{s[:4], s[5:7]},
		FileName: s + extension,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.TrimSuffix(pathKey.FileName, extension)
}

// toKey makes `yyyy-MM-dd` from the calendar date of t.
func toKey(t time.Time) string {
	return t.Format(layoutISO)
}
