package ui

import (
	"github.com/charmbracelet/bubbles/list"

	"github.com/violentpy/showcase/internal/launcher"
	"github.com/violentpy/showcase/internal/uninstall"
)

// catalogLoadedMsg carries a fresh discovery pass.
type catalogLoadedMsg struct {
	items []list.Item
	err   error
}

// showDetailMsg requests a switch to the detail view.
type showDetailMsg struct {
	script Script
}

// previewLoadedMsg carries rendered preview content for the detail view.
type previewLoadedMsg struct {
	content string
	err     error
}

// launchedMsg reports a launch attempt.
type launchedMsg struct {
	handle *launcher.Handle
	err    error
}

// scriptExitedMsg reports that a spawned terminal exited.
type scriptExitedMsg struct {
	exit launcher.Exit
}

// uninstallDoneMsg carries the outcome of one uninstall attempt.
type uninstallDoneMsg struct {
	outcome uninstall.Outcome
}

// errorMsg represents any error that occurred during UI operations.
type errorMsg struct {
	err error
}

func (e errorMsg) Error() string { return e.err.Error() }
