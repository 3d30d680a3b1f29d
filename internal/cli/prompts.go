package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/dyike/PulseGo/internal/gateway"
	"github.com/dyike/PulseGo/internal/session"
)

// PromptForURLs prompts the user for the newline-separated URL batch. The
// previous input is offered as the default so a failed run can be edited
// and retried.
func PromptForURLs(previous string) (string, error) {
	var raw string
	prompt := &survey.Multiline{
		Message: "Enter the Reddit post URLs to analyze (one per line):",
		Help:    "Every line must contain reddit.com. Blank lines are ignored.",
		Default: previous,
	}

	err := survey.AskOne(prompt, &raw, survey.WithValidator(func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("invalid input type")
		}
		_, err := gateway.ParseURLList(str)
		return err
	}))

	if err != nil {
		return "", err
	}

	return raw, nil
}

// PromptForView prompts the user to pick the view to render next
func PromptForView(selector *session.ViewSelector) (int, error) {
	entries := selector.Entries()
	options := make([]string, len(entries))
	for i, entry := range entries {
		options[i] = entry.Label
	}

	var selected string
	prompt := &survey.Select{
		Message: "Select a view:",
		Options: options,
		Help:    "The summary aggregates every post; Post N shows one post's breakdown.",
		Default: options[selector.ActiveIndex()],
	}

	err := survey.AskOne(prompt, &selected)
	if err != nil {
		return 0, err
	}

	for i, option := range options {
		if option == selected {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown view selection: %s", selected)
}

// Next actions offered after a view is rendered
const (
	actionSwitchView  = "Switch view"
	actionExportCSV   = "Export results as CSV"
	actionNewAnalysis = "Start a new analysis"
	actionQuit        = "Quit"
)

// PromptForNextAction prompts the user for what to do with the results
func PromptForNextAction(canSwitch bool) (string, error) {
	options := []string{actionSwitchView, actionExportCSV, actionNewAnalysis, actionQuit}
	if !canSwitch {
		options = options[1:]
	}

	var selected string
	prompt := &survey.Select{
		Message: "What would you like to do next?",
		Options: options,
		Default: options[0],
	}

	err := survey.AskOne(prompt, &selected)
	return selected, err
}

// PromptForRetry asks whether to retry after a failed analysis
func PromptForRetry() (bool, error) {
	var retry bool
	prompt := &survey.Confirm{
		Message: "Try again with different URLs?",
		Default: true,
	}

	err := survey.AskOne(prompt, &retry)
	return retry, err
}

// PromptForOverwrite asks whether to replace an existing export file
func PromptForOverwrite(filename string) (bool, error) {
	var overwrite bool
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("%s already exists. Overwrite it?", filename),
		Default: true,
	}

	err := survey.AskOne(prompt, &overwrite)
	return overwrite, err
}
