// Package shell generates the lines eval'd by the host shell: activation
// and deactivation commands, and the hook snippets (chpwd for Zsh,
// PROMPT_COMMAND for Bash, --on-variable PWD for Fish) that re-run
// autovenv activate on every directory change.
package shell
