package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/jimschubert/answer/colors"
	"github.com/jimschubert/answer/validate"

	"github.com/violentpy/showcase/internal/config"
	"github.com/violentpy/showcase/internal/launcher"
	"github.com/violentpy/showcase/internal/preview"
	"github.com/violentpy/showcase/internal/registry"
	"github.com/violentpy/showcase/internal/uninstall"
)

// Model is the main UI model following the Bubble Tea pattern.
type Model struct {
	registry    *registry.Registry
	coordinator *uninstall.Coordinator
	launcher    *launcher.Controller
	renderer    *preview.Renderer
	root        string

	state *ViewState

	listKeys    *listKeyMap
	detailKeys  *detailKeyMap
	confirmKeys *confirmKeyMap

	detailScript Script
	status       string
	outcome      *uninstall.Outcome

	config   config.UI
	help     help.Model
	list     list.Model
	viewport viewport.Model
	input    textinput.Model
	validate validate.Func

	styles dialogStyles

	err error
}

// ModelParams carries the wired subsystems into the UI.
type ModelParams struct {
	Config      config.Config
	Root        string
	Registry    *registry.Registry
	Coordinator *uninstall.Coordinator
	Launcher    *launcher.Controller
	Renderer    *preview.Renderer
}

func NewModel(p ModelParams) Model {
	delegate := list.NewDefaultDelegate()
	if p.Config.UI.Density == "compact" {
		delegate.ShowDescription = false
		delegate.SetSpacing(0)
	}

	l := list.New(nil, delegate, defaultWidth, defaultHeight)
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	l.Title = launcher.WindowMarker
	l.DisableQuitKeybindings()
	switch p.Config.UI.Paginator {
	case "arabic":
		l.Paginator.Type = paginator.Arabic
	default:
		l.Paginator.Type = paginator.Dots
	}

	input := textinput.New()
	input.Prompt = "folder name: "
	input.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.PromptPrefix))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Placeholder))

	return Model{
		registry:    p.Registry,
		coordinator: p.Coordinator,
		launcher:    p.Launcher,
		renderer:    p.Renderer,
		root:        p.Root,
		state:       NewViewState(),
		listKeys:    newListKeyMap(),
		detailKeys:  newDetailKeyMap(),
		confirmKeys: newConfirmKeyMap(),
		config:      p.Config.UI,
		help:        help.New(),
		list:        l,
		viewport:    viewport.Model{},
		input:       input,
		validate:    validate.NewValidation().MinLength(1, "type the folder name, or press esc").Build(),
		styles:      initStyles(),
	}
}
