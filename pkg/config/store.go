package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
)

// Paths locates the config file of each scope. An empty path skips the
// scope.
type Paths struct {
	User    string
	Project string
}

// Store merges user, project and environment configuration. Nothing is
// cached: every Get rereads the files and the environment.
type Store struct {
	paths  Paths
	strict bool
	logger *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithStrict toggles schema enforcement. Stores are strict by default; a
// non-strict store accepts keys outside the schema.
func WithStrict(strict bool) Option {
	return func(s *Store) {
		s.strict = strict
	}
}

// WithLogger sets the logger used for degraded reads.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// NewStore returns a Store for the given scope files.
func NewStore(paths Paths, opts ...Option) *Store {
	s := &Store{paths: paths, strict: true}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	return s
}

// Result is the outcome of Get.
type Result struct {
	// Key is the stored casing when found, otherwise the requested key.
	Key   string
	Value any
	Found bool
	// Merged holds every merged setting, highest precedence applied.
	Merged *Values
	// Sources lists the config files that contributed, then SourceEnv
	// when an environment override applied.
	Sources []string
}

// Get merges the configuration with precedence env > project > user. With
// an empty key the whole merged object is returned.
func (s *Store) Get(key string) (Result, error) {
	if key != "" && s.strict {
		if _, ok := LookupKey(key); !ok {
			return Result{}, unknownKey(key)
		}
	}

	merged := &Values{}
	var sources []string
	for _, path := range []string{s.paths.User, s.paths.Project} {
		if path == "" {
			continue
		}
		vals := s.read(path)
		if vals.Len() == 0 {
			continue
		}
		merged.Merge(vals)
		sources = append(sources, path)
	}

	env, err := envValues()
	if err != nil {
		return Result{}, err
	}
	if env.Len() > 0 {
		merged.Merge(env)
		sources = append(sources, SourceEnv)
	}

	res := Result{Key: key, Merged: merged, Sources: sources}
	if key == "" {
		return res, nil
	}
	if e, ok := merged.Get(key); ok {
		res.Key, res.Value, res.Found = e.Key, e.Value, true
	}
	return res, nil
}

// Int returns the merged integer value of key, or def when unset. Values
// of schema keys are revalidated, so a hand-edited file cannot smuggle in
// an out-of-range number.
func (s *Store) Int(key string, def int) (int, error) {
	res, err := s.Get(key)
	if err != nil {
		return def, err
	}
	if !res.Found {
		return def, nil
	}

	raw := fmt.Sprint(res.Value)
	if k, ok := LookupKey(key); ok {
		val, err := k.Coerce(raw)
		if err != nil {
			return def, fmt.Errorf("config: %w", err)
		}
		if n, ok := val.(int); ok {
			return n, nil
		}
	}
	switch n := res.Value.(type) {
	case int:
		return n, nil
	case float64:
		if n == math.Trunc(n) {
			return int(n), nil
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def, fmt.Errorf("config: %s is not an integer: %q", key, raw)
	}
	return n, nil
}

// Set validates and stores key=raw in the config file at path. Any other
// casing of key already in the file is replaced.
func (s *Store) Set(path, key, raw string) error {
	value, err := s.coerce(key, raw)
	if err != nil {
		return err
	}
	if err := ensureFile(path); err != nil {
		return err
	}

	vals := s.read(path)
	vals.Set(key, value)
	return writeFile(path, vals)
}

func (s *Store) coerce(key, raw string) (any, error) {
	if k, ok := LookupKey(key); ok {
		return k.Coerce(raw)
	}
	if s.strict {
		return nil, unknownKey(key)
	}
	return coerceLoose(raw), nil
}

// read loads path, creating it when missing. Problems are logged and the
// scope is treated as empty.
func (s *Store) read(path string) *Values {
	if err := ensureFile(path); err != nil {
		s.logger.Warn("cannot create config file", "path", path, "err", err)
		return &Values{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warn("cannot read config file", "path", path, "err", err)
		return &Values{}
	}
	vals := &Values{}
	if len(data) == 0 {
		return vals
	}
	if err := json.Unmarshal(data, vals); err != nil {
		s.logger.Warn("ignoring malformed config file", "path", path, "err", err)
		return &Values{}
	}
	return vals
}

// ensureFile creates path, and its directory, holding an empty object.
func ensureFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: ensure directory: %w", err)
	}
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	return nil
}

func writeFile(path string, vals *Values) error {
	data, err := json.MarshalIndent(vals, "", "  ")
	if err != nil {
		return fmt.Errorf("config: encode %s: %w", path, err)
	}
	data = append(data, '\n')
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
