package ui

import (
	"fmt"
	"regexp"

	"github.com/AlecAivazis/survey/v2"
)

var envNamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// PromptEnvName prompts for a new environment name interactively
func PromptEnvName() (string, error) {
	var name string
	prompt := &survey.Input{
		Message: "Environment name:",
		Help:    "Short identifier for the environment - lowercase, no spaces (e.g., myproj, api-dev)",
	}
	validator := func(val interface{}) error {
		if str, ok := val.(string); ok {
			if !IsValidEnvName(str) {
				return fmt.Errorf("name may only contain letters, digits, '.', '_' and '-'")
			}
		}
		return nil
	}
	if err := survey.AskOne(prompt, &name, survey.WithValidator(survey.Required), survey.WithValidator(validator)); err != nil {
		return "", err
	}
	return name, nil
}

// PromptConfirmation prompts for yes/no confirmation
func PromptConfirmation(message string) (bool, error) {
	var confirmed bool
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}

// IsValidEnvName checks that a name is safe to use as a directory name
func IsValidEnvName(name string) bool {
	return envNamePattern.MatchString(name)
}
