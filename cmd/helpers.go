package cmd

import (
	"fmt"
	"os"

	"github.com/autovenv/autovenv/internal/config"
	"github.com/autovenv/autovenv/internal/ui"
)

// store bundles the resolved paths and settings every command needs
type store struct {
	ConfigDir    string
	BindingsPath string
	Settings     *config.Settings
	EnvsDir      string
}

// openStore initializes the config directory if needed and resolves paths
// and settings. Commands load bindings themselves so every operation reads
// fresh state from disk.
func openStore() (*store, error) {
	configDir, err := config.GetConfigDir()
	if err != nil {
		return nil, err
	}

	if err := config.EnsureInitialized(configDir); err != nil {
		return nil, err
	}

	settingsPath, err := config.GetSettingsPath()
	if err != nil {
		return nil, err
	}
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return nil, err
	}

	envsDir, err := settings.ResolveEnvsDir(configDir)
	if err != nil {
		return nil, err
	}

	bindingsPath, err := config.GetBindingsPath()
	if err != nil {
		return nil, err
	}

	return &store{
		ConfigDir:    configDir,
		BindingsPath: bindingsPath,
		Settings:     settings,
		EnvsDir:      envsDir,
	}, nil
}

// resolveLocation turns a --path flag value into a binding key. A missing
// or nonexistent path falls back to the current directory with a warning.
func resolveLocation(flagValue string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	if flagValue == "" {
		return config.NormalizeLocation(cwd)
	}

	location, err := config.NormalizeLocation(flagValue)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(location); os.IsNotExist(err) {
		ui.Warning(fmt.Sprintf("Path does not exist: %s", location))
		ui.Info("Falling back to the current directory.")
		return config.NormalizeLocation(cwd)
	}

	return location, nil
}

// activeEnvDir returns the directory of the currently active virtualenv.
// Python's activation scripts export VIRTUAL_ENV; empty means none active.
func activeEnvDir() string {
	return os.Getenv("VIRTUAL_ENV")
}
