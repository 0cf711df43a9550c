package ui

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"

	"github.com/violentpy/showcase/internal/uninstall"
)

// View returns the string representation of the current UI state
func (m Model) View() string {
	defer color.Unset()

	if m.err != nil {
		slog.Error("rendering of the view has stopped", "error", m.err)
		return m.err.Error()
	}

	switch m.state.current {
	case LIST_VIEW:
		return m.listView()

	case DETAIL_VIEW:
		return m.detailView()

	case CONFIRM_VIEW:
		return m.renderDialogOverBase(m.baseView(), m.confirmDialog())

	case INPUT_VIEW:
		return m.renderDialogOverBase(m.baseView(), m.inputDialog())

	case RESULT_VIEW:
		return m.renderDialogOverBase(m.baseView(), m.resultDialog())

	case QUITTING:
		return ""

	default:
		return ""
	}
}

func (m Model) listView() string {
	listView := m.list.View()
	statusView := m.styles.status.Render(ansi.Truncate(m.status, defaultWidth-4, "…"))
	helpView := lipgloss.NewStyle().
		Margin(1, 2).
		Render(m.help.View(m.listKeys))
	return listView + "\n" + statusView + "\n" + helpView
}

func (m Model) detailView() string {
	d := m.detailScript.desc
	header := lipgloss.NewStyle().
		Bold(true).
		Margin(0, 2).
		Render(m.detailScript.Title())
	meta := m.styles.status.Render(
		d.Name + "  " + filepath.Dir(d.Path),
	)

	previewView := m.viewport.View()
	helpView := lipgloss.NewStyle().
		Margin(1, 2).
		Render(m.help.View(m.detailKeys))

	return strings.Join([]string{header, meta, "", previewView, helpView}, "\n")
}

// baseView is what dialogs are drawn on top of.
func (m Model) baseView() string {
	switch m.state.previous {
	case DETAIL_VIEW:
		return m.detailView()
	default:
		return m.listView()
	}
}

func (m Model) confirmDialog() string {
	contents := []string{
		"Uninstall the whole showcase?",
		"The project folder is moved to the trash,",
		"not deleted permanently.",
		"",
		"(y/n)",
	}
	return m.styles.warning.Render(
		lipgloss.JoinVertical(lipgloss.Center, contents...),
	)
}

func (m Model) inputDialog() string {
	contents := []string{
		"Type the project folder name to confirm:",
		filepath.Base(m.root),
		"",
		m.input.View(),
	}
	return m.styles.warning.Render(
		lipgloss.JoinVertical(lipgloss.Center, contents...),
	)
}

func (m Model) resultDialog() string {
	var contents []string
	switch m.outcome.Kind {
	case uninstall.MovedToTrash:
		contents = []string{
			"Moved to trash via " + string(m.outcome.Mechanism) + ".",
			"Restore it from there if this was a mistake.",
			"",
			"press any key to exit",
		}
	case uninstall.RenamedFallback:
		contents = []string{
			"No trash mechanism available.",
			"The folder was renamed instead:",
			filepath.Base(m.outcome.NewPath),
			"delete it manually once you are sure",
			"",
			"press any key to exit",
		}
	default:
		contents = []string{
			"Uninstall failed; the folder was left in place.",
			m.outcome.Reason.Error(),
			"",
			"press any key to go back",
		}
	}
	style := m.styles.result
	if m.outcome.Kind == uninstall.Failed {
		style = m.styles.warning
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Center, contents...))
}

// renderDialogOverBase renders the dialog box centered over the base
// view.
func (m Model) renderDialogOverBase(baseView, dialogContent string) string {
	baseLines := strings.Split(baseView, "\n")
	dialogLines := strings.Split(dialogContent, "\n")

	dialogStartLine := (len(baseLines) - len(dialogLines)) / 2
	if dialogStartLine < 0 {
		return dialogContent
	}

	for i, line := range dialogLines {
		centeredLine := lipgloss.NewStyle().
			Width(defaultWidth).
			Align(lipgloss.Center).
			Render(line)
		baseLines[dialogStartLine+i] = centeredLine
	}

	return strings.Join(baseLines, "\n")
}
