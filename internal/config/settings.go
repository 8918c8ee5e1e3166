package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/autovenv/autovenv/internal/platform"
)

// Settings holds tool-level preferences. The file is optional; every field
// has a default.
type Settings struct {
	Python  string `toml:"python"`   // Default interpreter for 'create'
	EnvsDir string `toml:"envs_dir"` // Override for the environments root
	Shell   string `toml:"shell"`    // Default shell for hook/activate output
}

// LoadSettings reads settings.toml. A missing file yields defaults.
func LoadSettings(path string) (*Settings, error) {
	var s Settings
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if os.IsNotExist(err) {
			s.applyDefaults()
			return &s, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	s.applyDefaults()
	return &s, nil
}

// SaveSettings writes settings.toml with secure permissions
func SaveSettings(path string, s *Settings) error {
	f, err := platform.OpenFileSecure(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

// ResolveEnvsDir returns the environments root, honoring the settings
// override (with ~ expansion) and falling back to <configDir>/envs.
func (s *Settings) ResolveEnvsDir(configDir string) (string, error) {
	if s.EnvsDir == "" {
		return filepath.Join(configDir, EnvsDirName), nil
	}
	expanded, err := platform.ExpandTilde(s.EnvsDir)
	if err != nil {
		return "", err
	}
	return filepath.Clean(expanded), nil
}

func (s *Settings) applyDefaults() {
	if s.Python == "" {
		s.Python = "python"
	}
	if s.Shell == "" {
		s.Shell = "bash"
	}
}
