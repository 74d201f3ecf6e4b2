// Package editor opens journal entries in the user's editor.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// DefaultEditor is used when $EDITOR is unset.
const DefaultEditor = "code"

// Launcher opens a file without waiting for the editor to exit.
type Launcher interface {
	Launch(path string) (string, error)
}

// ExecLauncher starts the editor as a detached child process.
type ExecLauncher struct {
	// Editor overrides $EDITOR when set.
	Editor string
}

// Command returns the editor command line, $EDITOR or DefaultEditor.
func (l *ExecLauncher) Command() []string {
	ed := l.Editor
	if ed == "" {
		ed = os.Getenv("EDITOR")
	}
	fields := strings.Fields(ed)
	if len(fields) == 0 {
		return []string{DefaultEditor}
	}
	return fields
}

// Launch starts the editor on path and returns the editor name.
func (l *ExecLauncher) Launch(path string) (string, error) {
	argv := l.Command()
	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return argv[0], fmt.Errorf("editor: start %s: %w", argv[0], err)
	}
	// Not awaited.
	_ = cmd.Process.Release()
	return argv[0], nil
}
