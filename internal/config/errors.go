package config

import "errors"

// Error kinds surfaced by the store and the command surface.
// All are wrapped with context via fmt.Errorf("...: %w", err) at the call site.
var (
	// ErrCorrupt means the persisted state exists but cannot be parsed or
	// has the wrong shape. It is surfaced to the user, never auto-repaired.
	ErrCorrupt = errors.New("config file is corrupt")

	// ErrWriteFailed means saving the config to disk failed.
	ErrWriteFailed = errors.New("failed to write config")

	// ErrEnvNotFound means a referenced environment name has no directory.
	ErrEnvNotFound = errors.New("environment not found")

	// ErrPathNotFound means a location argument does not exist on disk.
	ErrPathNotFound = errors.New("path not found")
)
