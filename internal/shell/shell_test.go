package shell_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autovenv/autovenv/internal/shell"
)

func TestParseType(t *testing.T) {
	for _, name := range []string{"bash", "zsh", "fish"} {
		sh, err := shell.ParseType(name)
		require.NoError(t, err)
		assert.Equal(t, shell.Type(name), sh)
	}

	_, err := shell.ParseType("powershell")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "powershell")
}

func TestActivate_SourcesScript(t *testing.T) {
	line := shell.Activate("/home/u/.autovenv/envs/proj/bin/activate", shell.Zsh)
	assert.Equal(t, "source /home/u/.autovenv/envs/proj/bin/activate\n", line)
}

func TestActivate_QuotesSpaces(t *testing.T) {
	line := shell.Activate("/home/u/my envs/proj/bin/activate", shell.Bash)
	assert.True(t, strings.HasPrefix(line, "source "))
	// The path must come through as a single shell word
	assert.NotContains(t, line, "source /home/u/my envs")
}

func TestActivate_FishUsesFishVariant(t *testing.T) {
	line := shell.Activate("/envs/p/bin/activate", shell.Fish)
	assert.Contains(t, line, "activate.fish")
}

func TestDeactivate_IsGuarded(t *testing.T) {
	assert.Contains(t, shell.Deactivate(shell.Bash), "type deactivate")
	assert.Contains(t, shell.Deactivate(shell.Zsh), "&& deactivate")
	assert.Contains(t, shell.Deactivate(shell.Fish), "functions -q deactivate")
}

func TestHookSnippet_PerShellMechanism(t *testing.T) {
	zsh := shell.HookSnippet(shell.Zsh)
	assert.Contains(t, zsh, "chpwd_functions")
	assert.Contains(t, zsh, "autovenv activate --shell zsh")

	bash := shell.HookSnippet(shell.Bash)
	assert.Contains(t, bash, "PROMPT_COMMAND")
	assert.Contains(t, bash, "autovenv activate --shell bash")

	fish := shell.HookSnippet(shell.Fish)
	assert.Contains(t, fish, "--on-variable PWD")
	assert.Contains(t, fish, "autovenv activate --shell fish")
}

func TestHookSnippet_RunsOnceAtLoad(t *testing.T) {
	// Each snippet calls its hook function once so a shell that starts
	// inside a bound directory activates immediately.
	assert.True(t, strings.HasSuffix(shell.HookSnippet(shell.Zsh), "_autovenv_chpwd\n"))
	assert.True(t, strings.HasSuffix(shell.HookSnippet(shell.Bash), "_autovenv_prompt_command\n"))
	assert.True(t, strings.HasSuffix(shell.HookSnippet(shell.Fish), "_autovenv_chpwd\n"))
}
