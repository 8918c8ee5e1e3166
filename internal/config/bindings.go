package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Bindings maps an absolute directory path to an environment name.
// Keys are unique cleaned paths without a trailing separator; several
// locations may share the same environment.
type Bindings map[string]string

// NormalizeLocation cleans a location into its canonical binding-key form
func NormalizeLocation(location string) (string, error) {
	abs, err := filepath.Abs(location)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path '%s': %w", location, err)
	}
	return filepath.Clean(abs), nil
}

// LoadBindings parses the bindings file into memory. A missing or empty
// file is an empty mapping. Invalid JSON, a non-object document, or a key
// that is not an absolute path all surface as ErrCorrupt.
func LoadBindings(path string) (Bindings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Bindings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read bindings: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return Bindings{}, nil
	}

	var b Bindings
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}

	for location := range b {
		if !filepath.IsAbs(location) {
			return nil, fmt.Errorf("%w: binding key '%s' is not an absolute path", ErrCorrupt, location)
		}
	}

	if b == nil {
		b = Bindings{}
	}
	return b, nil
}

// SaveBindings serializes the full mapping and replaces the bindings file.
// The document is written to a temporary file in the same directory and
// renamed over the target, so a crash mid-write cannot truncate it.
func SaveBindings(path string, b Bindings) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), ".bindings-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

// Set binds a location to an environment name, overwriting any previous
// assignment for that location
func (b Bindings) Set(location, envName string) {
	b[location] = envName
}

// EnvFor returns the environment bound to an exact location
func (b Bindings) EnvFor(location string) (string, bool) {
	name, ok := b[location]
	return name, ok
}

// RemoveLocation removes the binding for a single location.
// Other locations bound to the same environment are untouched.
func (b Bindings) RemoveLocation(location string) bool {
	if _, ok := b[location]; !ok {
		return false
	}
	delete(b, location)
	return true
}

// RemoveEnv removes every binding that references the environment name.
// Returns the number of bindings removed.
func (b Bindings) RemoveEnv(envName string) int {
	removed := 0
	for location, name := range b {
		if name == envName {
			delete(b, location)
			removed++
		}
	}
	return removed
}

// LocationsFor returns all locations bound to an environment, sorted
func (b Bindings) LocationsFor(envName string) []string {
	var locations []string
	for location, name := range b {
		if name == envName {
			locations = append(locations, location)
		}
	}
	sort.Strings(locations)
	return locations
}

// EnvNames returns the distinct environment names referenced, sorted
func (b Bindings) EnvNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, name := range b {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Locations returns all bound locations, sorted
func (b Bindings) Locations() []string {
	locations := make([]string, 0, len(b))
	for location := range b {
		locations = append(locations, location)
	}
	sort.Strings(locations)
	return locations
}
