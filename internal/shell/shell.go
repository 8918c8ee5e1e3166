package shell

import (
	"fmt"

	"github.com/kballard/go-shellquote"
)

// Type identifies a supported shell dialect
type Type string

const (
	Bash Type = "bash"
	Zsh  Type = "zsh"
	Fish Type = "fish"
)

// ParseType validates a --shell flag value
func ParseType(name string) (Type, error) {
	switch Type(name) {
	case Bash, Zsh, Fish:
		return Type(name), nil
	default:
		return "", fmt.Errorf("unsupported shell '%s' (expected bash, zsh, or fish)", name)
	}
}

// Activate generates the shell line that sources an environment's
// activation script. The script path is quoted so paths with spaces
// survive the eval.
func Activate(script string, sh Type) string {
	if sh == Fish {
		return shellquote.Join("source", script+".fish") + "\n"
	}
	return shellquote.Join("source", script) + "\n"
}

// Deactivate generates the shell line that tears down the active
// environment. The call is guarded so eval'ing it is harmless when no
// deactivate function is defined.
func Deactivate(sh Type) string {
	if sh == Fish {
		return "functions -q deactivate; and deactivate\n"
	}
	return "type deactivate >/dev/null 2>&1 && deactivate\n"
}

// HookSnippet returns the shell integration snippet for the user's rc
// file. Each variant re-evaluates on directory change and once at load, so
// a shell opened inside a bound directory activates immediately.
func HookSnippet(sh Type) string {
	switch sh {
	case Zsh:
		return `# autovenv shell integration (zsh)
_autovenv_chpwd() {
  eval "$(autovenv activate --shell zsh 2>/dev/null)"
}
chpwd_functions+=(_autovenv_chpwd)
_autovenv_chpwd
`
	case Fish:
		return `# autovenv shell integration (fish)
function _autovenv_chpwd --on-variable PWD
  eval (autovenv activate --shell fish 2>/dev/null)
end
_autovenv_chpwd
`
	default:
		return `# autovenv shell integration (bash)
_autovenv_prompt_command() {
  eval "$(autovenv activate --shell bash 2>/dev/null)"
}
PROMPT_COMMAND="_autovenv_prompt_command;${PROMPT_COMMAND}"
_autovenv_prompt_command
`
	}
}
