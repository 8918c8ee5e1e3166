package reconcile_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autovenv/autovenv/internal/config"
	"github.com/autovenv/autovenv/internal/reconcile"
)

const envsDir = "/home/u/.autovenv/envs"

func newReconciler() *reconcile.Reconciler {
	return &reconcile.Reconciler{EnvsDir: envsDir}
}

func target(name string) string {
	return filepath.Join(envsDir, name)
}

func TestEvaluate_EnteringBoundLocationActivates(t *testing.T) {
	r := newReconciler()
	bindings := config.Bindings{
		"/home/u/proj1": "envA",
		"/home/u/proj2": "envB",
	}

	action := r.Evaluate("/home/u/proj1/src", "", bindings)
	assert.Equal(t, reconcile.KindActivate, action.Kind)
	assert.Equal(t, "envA", action.EnvName)
	assert.Equal(t, target("envA"), action.Target)

	action = r.Evaluate("/home/u/proj2", "", bindings)
	assert.Equal(t, reconcile.KindActivate, action.Kind)
	assert.Equal(t, "envB", action.EnvName)
}

func TestEvaluate_LeavingBoundLocationDeactivates(t *testing.T) {
	r := newReconciler()
	bindings := config.Bindings{"/home/u/proj1": "envA"}

	action := r.Evaluate("/home/u/other", target("envA"), bindings)
	assert.Equal(t, reconcile.KindDeactivate, action.Kind)
}

func TestEvaluate_UnboundAndInactiveIsNoOp(t *testing.T) {
	r := newReconciler()
	bindings := config.Bindings{"/home/u/proj1": "envA"}

	action := r.Evaluate("/home/u/other", "", bindings)
	assert.Equal(t, reconcile.KindNoOp, action.Kind)
}

func TestEvaluate_Idempotent(t *testing.T) {
	r := newReconciler()
	bindings := config.Bindings{"/home/u/proj1": "envA"}

	first := r.Evaluate("/home/u/proj1", "", bindings)
	assert.Equal(t, reconcile.KindActivate, first.Kind)

	// Same path with the environment already active: no redundant action
	second := r.Evaluate("/home/u/proj1", first.Target, bindings)
	assert.Equal(t, reconcile.KindNoOp, second.Kind)
}

func TestEvaluate_EmptyMapping(t *testing.T) {
	r := newReconciler()

	action := r.Evaluate("/home/u/anywhere", "", config.Bindings{})
	assert.Equal(t, reconcile.KindNoOp, action.Kind)

	action = r.Evaluate("/home/u/anywhere", target("stale"), config.Bindings{})
	assert.Equal(t, reconcile.KindDeactivate, action.Kind)
}

func TestEvaluate_NestedBindingsLongestWins(t *testing.T) {
	r := newReconciler()
	bindings := config.Bindings{
		"/home/u/proj":        "envOuter",
		"/home/u/proj/plugin": "envInner",
	}

	action := r.Evaluate("/home/u/proj/plugin/src", "", bindings)
	assert.Equal(t, reconcile.KindActivate, action.Kind)
	assert.Equal(t, "envInner", action.EnvName)

	action = r.Evaluate("/home/u/proj/docs", "", bindings)
	assert.Equal(t, "envOuter", action.EnvName)
}

// A binding on /home/u/proj must not match /home/u/project-other: matching
// is by path segment, not by raw string prefix.
func TestEvaluate_SiblingWithSharedPrefixDoesNotMatch(t *testing.T) {
	r := newReconciler()
	bindings := config.Bindings{"/home/u/proj": "envA"}

	action := r.Evaluate("/home/u/project-other", "", bindings)
	assert.Equal(t, reconcile.KindNoOp, action.Kind)

	action = r.Evaluate("/home/u/project-other", target("envA"), bindings)
	assert.Equal(t, reconcile.KindDeactivate, action.Kind)
}

func TestEvaluate_BoundLocationItselfMatches(t *testing.T) {
	r := newReconciler()
	bindings := config.Bindings{"/home/u/proj": "envA"}

	action := r.Evaluate("/home/u/proj", "", bindings)
	assert.Equal(t, reconcile.KindActivate, action.Kind)
}

// A stale active environment whose path differs from the binding's target
// still triggers re-activation: comparison is on the resolved path.
func TestEvaluate_StaleActiveTargetReactivates(t *testing.T) {
	r := newReconciler()
	bindings := config.Bindings{"/home/u/proj": "envA"}

	action := r.Evaluate("/home/u/proj", "/somewhere/else/envA", bindings)
	assert.Equal(t, reconcile.KindActivate, action.Kind)
	assert.Equal(t, target("envA"), action.Target)
}

func TestEvaluate_SwitchingBetweenBoundLocations(t *testing.T) {
	r := newReconciler()
	bindings := config.Bindings{
		"/home/u/proj1": "envA",
		"/home/u/proj2": "envB",
	}

	action := r.Evaluate("/home/u/proj2", target("envA"), bindings)
	assert.Equal(t, reconcile.KindActivate, action.Kind)
	assert.Equal(t, "envB", action.EnvName)
}
