package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Entry is a key with the casing it was last written under.
type Entry struct {
	Key   string
	Value any
}

// Values is an insertion-ordered map with case-insensitive keys. Only one
// casing of a logical key is ever held.
type Values struct {
	index   map[string]int
	entries []Entry
}

func fold(key string) string {
	return strings.ToLower(key)
}

func (v *Values) Len() int {
	if v == nil {
		return 0
	}
	return len(v.entries)
}

// Get looks key up, ignoring case.
func (v *Values) Get(key string) (Entry, bool) {
	if v == nil || v.index == nil {
		return Entry{}, false
	}
	i, ok := v.index[fold(key)]
	if !ok {
		return Entry{}, false
	}
	return v.entries[i], true
}

// Set removes any case-variant of key and appends key with value.
func (v *Values) Set(key string, value any) {
	v.Delete(key)
	if v.index == nil {
		v.index = make(map[string]int)
	}
	v.index[fold(key)] = len(v.entries)
	v.entries = append(v.entries, Entry{Key: key, Value: value})
}

// Delete removes key regardless of casing and reports whether it existed.
func (v *Values) Delete(key string) bool {
	if v == nil || v.index == nil {
		return false
	}
	i, ok := v.index[fold(key)]
	if !ok {
		return false
	}
	v.entries = append(v.entries[:i], v.entries[i+1:]...)
	delete(v.index, fold(key))
	for j := i; j < len(v.entries); j++ {
		v.index[fold(v.entries[j].Key)] = j
	}
	return true
}

// Entries returns a copy of the entries in order.
func (v *Values) Entries() []Entry {
	if v == nil {
		return nil
	}
	out := make([]Entry, len(v.entries))
	copy(out, v.entries)
	return out
}

// Merge overlays other onto v; other wins on conflicts.
func (v *Values) Merge(other *Values) {
	for _, e := range other.Entries() {
		v.Set(e.Key, e.Value)
	}
}

// Map returns a plain map keyed by the stored casing.
func (v *Values) Map() map[string]any {
	out := make(map[string]any, v.Len())
	for _, e := range v.Entries() {
		out[e.Key] = e.Value
	}
	return out
}

func (v *Values) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range v.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("config: marshal %q: %w", e.Key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (v *Values) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("config: expected a JSON object")
	}

	out := &Values{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("config: unexpected token %v", tok)
		}
		var raw any
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("config: decode %q: %w", key, err)
		}
		// null leaves the key unset.
		if raw == nil {
			out.Delete(key)
			continue
		}
		out.Set(key, normalize(raw))
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*v = *out
	return nil
}

// normalize turns json.Number into int when integral, float64 otherwise.
func normalize(raw any) any {
	switch t := raw.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n)
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for k, val := range t {
			t[k] = normalize(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = normalize(val)
		}
		return t
	default:
		return raw
	}
}
