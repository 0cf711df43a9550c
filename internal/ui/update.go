package ui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/violentpy/showcase/internal/uninstall"
)

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCatalogCmd(), m.watchExitsCmd(), textinput.Blink)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)

	case catalogLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.status = fmt.Sprintf("%d scripts", len(msg.items))
		cmds = append(cmds, m.list.SetItems(msg.items))

	case showDetailMsg:
		m.detailScript = msg.script
		m.state.SetView(DETAIL_VIEW)
		m.viewport = m.newViewportModel()
		return m, m.previewCmd(msg.script, m.viewport.Width, m.viewport.Height)

	case previewLoadedMsg:
		if msg.err != nil {
			slog.Warn("preview failed", "error", msg.err)
			m.state.preview.available = false
			m.viewport.SetContent("(preview unavailable)")
		} else {
			m.state.preview.available = true
			m.viewport.SetContent(msg.content)
		}

	case launchedMsg:
		if msg.err != nil {
			m.status = m.styles.errText.Render(msg.err.Error())
		} else {
			m.status = fmt.Sprintf("launched %q in %s (pid %d)",
				msg.handle.Script.Title, msg.handle.Terminal, msg.handle.PID)
		}

	case scriptExitedMsg:
		m.status = fmt.Sprintf("%q window closed", msg.exit.Handle.Script.Title)
		cmds = append(cmds, m.watchExitsCmd())

	case uninstallDoneMsg:
		outcome := msg.outcome
		m.outcome = &outcome
		switch outcome.Kind {
		case uninstall.Aborted:
			m.state.SetView(LIST_VIEW)
			m.status = fmt.Sprintf("nothing was changed: %v", outcome.Reason)
		default:
			m.state.SetView(RESULT_VIEW)
		}

	case errorMsg:
		m.err = msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	switch m.state.current {
	case LIST_VIEW:
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	case DETAIL_VIEW:
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	case INPUT_VIEW:
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state.current {
	case LIST_VIEW:
		return m.handleListKey(msg)
	case DETAIL_VIEW:
		return m.handleDetailKey(msg)
	case CONFIRM_VIEW:
		return m.handleConfirmKey(msg)
	case INPUT_VIEW:
		return m.handleInputKey(msg)
	case RESULT_VIEW:
		return m.handleResultKey()
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the fuzzy filter is open, every key belongs to it.
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.listKeys.Quit):
		m.state.SetView(QUITTING)
		return m, tea.Quit

	case key.Matches(msg, m.listKeys.Enter):
		if s, ok := m.list.SelectedItem().(Script); ok {
			return m, m.launchCmd(s)
		}
		return m, nil

	case key.Matches(msg, m.listKeys.Space):
		if s, ok := m.list.SelectedItem().(Script); ok {
			return m, func() tea.Msg { return showDetailMsg{script: s} }
		}
		return m, nil

	case key.Matches(msg, m.listKeys.Refresh):
		return m, m.loadCatalogCmd()

	case key.Matches(msg, m.listKeys.Uninstall):
		m.state.SetView(CONFIRM_VIEW)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.detailKeys.Quit):
		m.state.SetView(QUITTING)
		return m, tea.Quit

	case key.Matches(msg, m.detailKeys.Esc):
		m.state.SetView(LIST_VIEW)
		return m, nil

	case key.Matches(msg, m.detailKeys.Enter):
		return m, m.launchCmd(m.detailScript)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.confirmKeys.Yes):
		m.input.SetValue("")
		m.input.Focus()
		m.state.SetView(INPUT_VIEW)
		return m, textinput.Blink

	case key.Matches(msg, m.confirmKeys.No):
		m.state.SetView(m.state.previous)
		m.status = "uninstall cancelled"
		return m, nil
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.state.SetView(LIST_VIEW)
		m.status = "uninstall cancelled"
		return m, nil

	case tea.KeyEnter:
		typed := m.input.Value()
		if err := m.validate(typed); err != nil {
			return m, nil
		}
		m.status = "uninstalling..."
		return m, m.uninstallCmd(typed)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleResultKey() (tea.Model, tea.Cmd) {
	// The folder is gone (trashed or renamed); the only way forward is
	// out. A failure returns to the list instead.
	if m.outcome != nil && m.outcome.Kind == uninstall.Failed {
		m.outcome = nil
		m.state.SetView(LIST_VIEW)
		return m, nil
	}
	m.state.SetView(QUITTING)
	return m, tea.Quit
}

// newViewportModel creates the preview viewport for the detail view.
func (m *Model) newViewportModel() viewport.Model {
	vp := viewport.New(defaultWidth, defaultHeight-8)
	vp.KeyMap = previewKeys
	vp.SetContent("loading...")
	return vp
}
