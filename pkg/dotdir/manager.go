// Package dotdir manages the .vinyasa/ and ~/.vinyasa directories.
//
// Configuration, credentials, and the knowledge file live in a dot
// directory resolved per invocation: an explicit override wins, then a
// local ./.vinyasa/ directory, then ~/.vinyasa/.
package dotdir

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// dirName is the name of the vinyasa directory.
	dirName = ".vinyasa"
)

type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// Target returns the target absolute path to a .vinyasa/ directory.
// Order of precedence is as follows:
//  1. Provided override
//  2. Local ./.vinyasa/ dir
//  3. Home ~/.vinyasa/ dir
//  4. If none found, attempt to create ~/.vinyasa/ dir
func (m *Manager) Target(overrideDir string) (string, error) {
	var dir string

	switch {
	case overrideDir != "":
		dir = overrideDir

	case m.localDirExists():
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w", err)
		}
		dir = filepath.Join(cwd, dirName)

	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, dirName)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating vinyasa directory %s: %w", dir, err)
	}

	return filepath.Abs(dir)
}

// localDirExists checks whether a .vinyasa/ directory exists in the current
// working directory.
func (m *Manager) localDirExists() bool {
	cwd, err := os.Getwd()
	if err != nil {
		return false
	}

	info, err := os.Stat(filepath.Join(cwd, dirName))
	return err == nil && info.IsDir()
}
