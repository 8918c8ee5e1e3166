package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// MkdirSecure creates a directory with appropriate permissions for the platform
func MkdirSecure(path string) error {
	if runtime.GOOS == "windows" {
		// Windows doesn't use Unix permissions
		return os.MkdirAll(path, 0755)
	}
	// Unix/Linux: use restrictive permissions
	return os.MkdirAll(path, 0700)
}

// WriteFileSecure writes a file with appropriate permissions for the platform
func WriteFileSecure(path string, data []byte) error {
	if runtime.GOOS == "windows" {
		return os.WriteFile(path, data, 0644)
	}
	// Unix/Linux: use restrictive permissions
	return os.WriteFile(path, data, 0600)
}

// OpenFileSecure opens a file for writing with appropriate permissions
func OpenFileSecure(path string, flag int) (*os.File, error) {
	if runtime.GOOS == "windows" {
		return os.OpenFile(path, flag, 0644)
	}
	return os.OpenFile(path, flag, 0600)
}

// ScriptsDirName returns the directory inside a virtualenv that holds the
// activation script and interpreter shims: "Scripts" on Windows, "bin" elsewhere.
func ScriptsDirName() string {
	if runtime.GOOS == "windows" {
		return "Scripts"
	}
	return "bin"
}

// HasCommand checks if a command is available in PATH
func HasCommand(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// ExpandTilde expands ~ to home directory in path
func ExpandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if len(path) == 1 {
		return home, nil
	}

	// Handle ~/rest/of/path
	if path[1] == os.PathSeparator || path[1] == '/' {
		return filepath.Join(home, path[2:]), nil
	}

	return path, nil
}

// GetPlatformName returns a user-friendly platform name
func GetPlatformName() string {
	switch runtime.GOOS {
	case "windows":
		return "Windows"
	case "darwin":
		return "macOS"
	case "linux":
		return "Linux"
	default:
		return runtime.GOOS
	}
}
