package reconcile

import (
	"path/filepath"
	"strings"

	"github.com/autovenv/autovenv/internal/config"
)

// ActionKind says what the shell layer should do after a directory change
type ActionKind string

const (
	KindActivate   ActionKind = "activate"
	KindDeactivate ActionKind = "deactivate"
	KindNoOp       ActionKind = "noop"
)

// Action is the reconciler's decision for one directory-change event
type Action struct {
	Kind    ActionKind
	EnvName string // Set for KindActivate
	Target  string // Environment directory, <EnvsDir>/<EnvName>
}

// Reconciler decides which environment should be active for a location.
// It holds no mutable state; the active environment is an input and the
// decision an output, so the shell integration layer owns all actual
// environment mutation.
type Reconciler struct {
	EnvsDir string // Root that environment names resolve under
}

// Evaluate compares the current directory against the bindings and decides
// whether to activate, deactivate, or leave the shell alone.
//
// When several bound locations contain currentPath, the longest location
// wins, so a binding on a nested subdirectory shadows its parent. Matching
// is path-segment-aware: /home/u/proj does not match /home/u/project2.
//
// activeTarget is the directory of the currently active environment
// (VIRTUAL_ENV), or empty when none is active. The comparison is on the
// fully resolved target path, not the name, so a stale active environment
// pointing elsewhere still triggers re-activation.
func (r *Reconciler) Evaluate(currentPath, activeTarget string, bindings config.Bindings) Action {
	current := filepath.Clean(currentPath)

	var matchedLocation, matchedEnv string
	for location, envName := range bindings {
		if !isPathInside(current, location) {
			continue
		}
		if len(location) > len(matchedLocation) {
			matchedLocation = location
			matchedEnv = envName
		}
	}

	if matchedLocation == "" {
		if activeTarget != "" {
			return Action{Kind: KindDeactivate}
		}
		return Action{Kind: KindNoOp}
	}

	target := filepath.Join(r.EnvsDir, matchedEnv)
	if activeTarget != "" && filepath.Clean(activeTarget) == target {
		return Action{Kind: KindNoOp}
	}

	return Action{Kind: KindActivate, EnvName: matchedEnv, Target: target}
}

// isPathInside checks if childPath is parentPath or inside it
func isPathInside(childPath, parentPath string) bool {
	child := filepath.Clean(childPath)
	parent := filepath.Clean(parentPath)

	if child == parent {
		return true
	}

	if !strings.HasSuffix(parent, string(filepath.Separator)) {
		parent = parent + string(filepath.Separator)
	}
	return strings.HasPrefix(child, parent)
}
