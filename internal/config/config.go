package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/autovenv/autovenv/internal/platform"
)

const (
	ConfigDirName    = ".autovenv"
	BindingsFileName = "bindings.json"
	SettingsFileName = "settings.toml"
	EnvsDirName      = "envs"
)

// GetConfigDir returns the path to the autovenv config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ConfigDirName), nil
}

// GetBindingsPath returns the path to the bindings file
func GetBindingsPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, BindingsFileName), nil
}

// GetSettingsPath returns the path to the settings file
func GetSettingsPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, SettingsFileName), nil
}

// Initialized checks if the config directory and bindings file exist
func Initialized() (bool, error) {
	bindingsPath, err := GetBindingsPath()
	if err != nil {
		return false, err
	}
	_, err = os.Stat(bindingsPath)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// EnsureInitialized idempotently creates the config directory, the envs
// directory, and an empty bindings file. Existing state is left untouched.
func EnsureInitialized(configDir string) error {
	if err := platform.MkdirSecure(configDir); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := platform.MkdirSecure(filepath.Join(configDir, EnvsDirName)); err != nil {
		return fmt.Errorf("failed to create envs directory: %w", err)
	}

	bindingsPath := filepath.Join(configDir, BindingsFileName)
	if _, err := os.Stat(bindingsPath); os.IsNotExist(err) {
		if err := platform.WriteFileSecure(bindingsPath, []byte("{}\n")); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteFailed, err)
		}
	}
	return nil
}
