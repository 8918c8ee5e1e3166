package platform_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autovenv/autovenv/internal/platform"
)

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := platform.ExpandTilde("~/code/proj")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "code", "proj"), expanded)

	expanded, err = platform.ExpandTilde("~")
	require.NoError(t, err)
	assert.Equal(t, home, expanded)

	// Paths without a leading tilde pass through untouched
	expanded, err = platform.ExpandTilde("/srv/venvs")
	require.NoError(t, err)
	assert.Equal(t, "/srv/venvs", expanded)

	// ~user form is not expanded
	expanded, err = platform.ExpandTilde("~other/code")
	require.NoError(t, err)
	assert.Equal(t, "~other/code", expanded)
}

func TestMkdirSecure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")
	require.NoError(t, platform.MkdirSecure(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent
	require.NoError(t, platform.MkdirSecure(dir))
}
