package venv

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/autovenv/autovenv/internal/platform"
)

// ErrCreateFailed means the interpreter could not build the environment
var ErrCreateFailed = errors.New("environment creation failed")

// Create builds a new virtual environment at dir using the given
// interpreter. The interpreter runs synchronously; its output is folded
// into the returned error on failure.
func Create(python, dir string) error {
	cmd := exec.Command(python, "-m", "venv", dir)
	output, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(output))
		if msg == "" {
			msg = err.Error()
		}
		return fmt.Errorf("%w: %s", ErrCreateFailed, msg)
	}
	return nil
}

// Remove deletes an environment directory and everything under it
func Remove(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove environment: %w", err)
	}
	return nil
}

// Exists reports whether dir looks like a usable virtual environment:
// the directory is present and carries an activation script.
func Exists(dir string) bool {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}
	_, err = os.Stat(ActivationScript(dir))
	return err == nil
}

// ActivationScript returns the path of the POSIX activation script for an
// environment directory: <dir>/bin/activate, or <dir>/Scripts/activate on
// Windows. Shell-specific variants (activate.fish) live next to it.
func ActivationScript(dir string) string {
	return filepath.Join(dir, platform.ScriptsDirName(), "activate")
}

// PythonAvailable checks that the interpreter can be invoked
func PythonAvailable(python string) bool {
	cmd := exec.Command(python, "--version")
	return cmd.Run() == nil
}

// List returns the names of environment directories under root, sorted by
// the filesystem's directory order. A missing root is an empty list.
func List(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read envs directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
