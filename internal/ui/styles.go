package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	defaultWidth  = 66
	defaultHeight = 26
)

type dialogStyles struct {
	warning lipgloss.Style
	result  lipgloss.Style
	status  lipgloss.Style
	errText lipgloss.Style
}

func initStyles() dialogStyles {
	warnColor := lipgloss.Color("203")
	okColor := lipgloss.Color("42")
	statusColor := lipgloss.Color("245")
	if !termenv.HasDarkBackground() {
		warnColor = lipgloss.Color("160")
		okColor = lipgloss.Color("28")
		statusColor = lipgloss.Color("240")
	}

	dialog := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Bold(true).
		Padding(1, 1).
		Align(lipgloss.Center).
		Width(defaultWidth - 4)

	return dialogStyles{
		warning: dialog.
			BorderForeground(warnColor).
			Foreground(warnColor),
		result: dialog.
			BorderForeground(okColor).
			Foreground(okColor),
		status:  lipgloss.NewStyle().Foreground(statusColor).Margin(0, 2),
		errText: lipgloss.NewStyle().Foreground(warnColor),
	}
}
