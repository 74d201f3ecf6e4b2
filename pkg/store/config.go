package store

import (
	"os"
	"path/filepath"
)

// JournalDir is the directory journal entries live under, relative to the
// working directory.
const JournalDir = "Journal"

type Config interface {
	BasePath() string
}

// Dir is a Config rooted at a fixed directory.
type Dir string

func (d Dir) BasePath() string {
	return string(d)
}

// DefaultConfig roots the journal at <cwd>/Journal.
func DefaultConfig() (Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return Dir(filepath.Join(cwd, JournalDir)), nil
}
