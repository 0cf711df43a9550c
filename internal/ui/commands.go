package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/violentpy/showcase/internal/registry"
	"github.com/violentpy/showcase/internal/uninstall"
)

// loadCatalogCmd runs a discovery pass. Called on startup and on
// refresh; the list always reflects the on-disk state.
func (m Model) loadCatalogCmd() tea.Cmd {
	return func() tea.Msg {
		catalog, err := m.registry.Discover()
		if err != nil {
			return catalogLoadedMsg{err: err}
		}
		slog.Info("catalog loaded", "scripts", len(catalog))
		items := lo.Map(catalog, func(d registry.Descriptor, _ int) list.Item {
			return newScript(d)
		})
		return catalogLoadedMsg{items: items}
	}
}

// previewCmd renders the detail preview off the update loop.
func (m Model) previewCmd(s Script, width, height int) tea.Cmd {
	return func() tea.Msg {
		content, err := m.renderer.Render(s.desc.Path, width, height)
		return previewLoadedMsg{content: content, err: err}
	}
}

// launchCmd spawns the script in a terminal window.
func (m Model) launchCmd(s Script) tea.Cmd {
	return func() tea.Msg {
		handle, err := m.launcher.Run(s.desc)
		return launchedMsg{handle: handle, err: err}
	}
}

// watchExitsCmd waits for the next terminal-exit notification. It
// re-arms itself from Update after each delivery.
func (m Model) watchExitsCmd() tea.Cmd {
	return func() tea.Msg {
		return scriptExitedMsg{exit: <-m.launcher.Exits()}
	}
}

// uninstallCmd runs the full uninstall attempt with the answers the
// dialogs already collected. The coordinator re-validates the path and
// re-runs the confirmation flow against these scripted events.
func (m Model) uninstallCmd(typed string) tea.Cmd {
	return func() tea.Msg {
		outcome := m.coordinator.Attempt(m.root, uninstall.NewScriptedPrompter(
			uninstall.ProceedEvent(),
			uninstall.TypedTextEvent(typed),
		))
		return uninstallDoneMsg{outcome: outcome}
	}
}

func errorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return errorMsg{err}
	}
}
