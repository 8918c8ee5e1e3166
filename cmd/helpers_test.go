package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autovenv/autovenv/internal/config"
	"github.com/autovenv/autovenv/internal/shell"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup. (testing.T.Chdir requires Go 1.24.)
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestResolveLocation_DefaultsToCwd(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	location, err := resolveLocation("")
	require.NoError(t, err)

	expected, err := config.NormalizeLocation(dir)
	require.NoError(t, err)
	assert.Equal(t, expected, location)
}

func TestResolveLocation_MissingPathFallsBack(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	location, err := resolveLocation(filepath.Join(dir, "does-not-exist"))
	require.NoError(t, err)

	expected, err := config.NormalizeLocation(dir)
	require.NoError(t, err)
	assert.Equal(t, expected, location)
}

func TestResolveLocation_ExistingPath(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "proj")
	require.NoError(t, os.MkdirAll(sub, 0755))

	location, err := resolveLocation(sub)
	require.NoError(t, err)

	expected, err := config.NormalizeLocation(sub)
	require.NoError(t, err)
	assert.Equal(t, expected, location)
}

func TestPickShell(t *testing.T) {
	st := &store{Settings: &config.Settings{Shell: "zsh"}}

	sh, err := pickShell("", st)
	require.NoError(t, err)
	assert.Equal(t, shell.Zsh, sh)

	sh, err = pickShell("fish", st)
	require.NoError(t, err)
	assert.Equal(t, shell.Fish, sh)

	_, err = pickShell("csh", st)
	require.Error(t, err)
}
