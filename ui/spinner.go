package ui

import (
	"github.com/charmbracelet/huh/spinner"
)

// SpinnerAction runs an action with a spinner, returning any error from the action
type SpinnerAction func() error

// RunWithSpinner runs an action with a spinner display.
// Off a terminal, or in verbose mode where child output is streamed, the
// action runs without one.
func RunWithSpinner(title string, action SpinnerAction) error {
	if !IsTTY() || IsVerbose() {
		return action()
	}

	var actionErr error
	spinErr := spinner.New().
		Title(title).
		Action(func() {
			actionErr = action()
		}).
		Run()

	if spinErr != nil {
		return spinErr
	}
	return actionErr
}
