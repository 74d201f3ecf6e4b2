// Package config reads and writes the layered work-journal configuration.
//
// Two flat JSON files hold settings, one per OS user and one per project.
// Environment variables override both for a single process. Keys are
// matched without regard to case, while the casing of the latest write is
// what ends up on disk.
package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HolidayCutoffDay is the December day the yearly review is anchored to.
const HolidayCutoffDay = "holidayCutoffDay"

var (
	// ErrUnknownConfigKey is returned for keys outside the schema.
	ErrUnknownConfigKey = errors.New("unknown config key")
	// ErrOutOfRange is matched by RangeError.
	ErrOutOfRange = errors.New("config value out of range")
)

// Kind is the value type of a schema key.
type Kind string

const (
	KindInt    Kind = "int"
	KindString Kind = "string"
)

// KeyInfo describes one recognized configuration key.
type KeyInfo struct {
	Name        string
	Kind        Kind
	Min, Max    int
	Default     any
	Description string
}

var schema = []KeyInfo{{
	Name:        HolidayCutoffDay,
	Kind:        KindInt,
	Min:         1,
	Max:         31,
	Default:     17,
	Description: "Day in December; the last Friday on or before it gets the yearly template.",
}}

// Schema returns the recognized keys.
func Schema() []KeyInfo {
	out := make([]KeyInfo, len(schema))
	copy(out, schema)
	return out
}

// LookupKey finds a schema key, ignoring case.
func LookupKey(name string) (KeyInfo, bool) {
	for _, k := range schema {
		if strings.EqualFold(k.Name, name) {
			return k, true
		}
	}
	return KeyInfo{}, false
}

func knownKeys() string {
	names := make([]string, 0, len(schema))
	for _, k := range schema {
		names = append(names, k.Name)
	}
	return strings.Join(names, ", ")
}

func unknownKey(name string) error {
	return fmt.Errorf("%w: %q (known keys: %s)", ErrUnknownConfigKey, name, knownKeys())
}

// RangeError reports a value that is not an integer inside a key's range.
type RangeError struct {
	Key      string
	Min, Max int
	Raw      string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be an integer between %d and %d, got %q", e.Key, e.Min, e.Max, e.Raw)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// Coerce converts raw into the typed value stored for the key.
func (k KeyInfo) Coerce(raw string) (any, error) {
	switch k.Kind {
	case KindInt:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < k.Min || n > k.Max {
			return nil, &RangeError{Key: k.Name, Min: k.Min, Max: k.Max, Raw: raw}
		}
		return n, nil
	default:
		return raw, nil
	}
}

// coerceLoose stores numeric strings as numbers and anything else verbatim.
func coerceLoose(raw string) any {
	s := strings.TrimSpace(raw)
	if s == "" {
		return raw
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n >= math.MinInt && n <= math.MaxInt {
			return int(n)
		}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}
	return raw
}
