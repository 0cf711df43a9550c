// Package ui is the interactive showcase browser: a script list with
// preview, launch, and the guarded uninstall dialogs.
package ui

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/violentpy/showcase/internal/config"
	"github.com/violentpy/showcase/internal/launcher"
	"github.com/violentpy/showcase/internal/preview"
	"github.com/violentpy/showcase/internal/registry"
	"github.com/violentpy/showcase/internal/uninstall"
)

// Params carries the wired subsystems into Run.
type Params struct {
	Config      config.Config
	Root        string
	Registry    *registry.Registry
	Coordinator *uninstall.Coordinator
	Launcher    *launcher.Controller
}

// Run starts the interactive UI and blocks until the user quits or an
// uninstall removes the installation.
func Run(p Params) error {
	renderer, err := preview.NewRenderer(preview.Options{
		SyntaxHighlight: p.Config.UI.Preview.SyntaxHighlight,
		Colorscheme:     p.Config.UI.Preview.Colorscheme,
		Images:          p.Config.UI.Preview.Images,
		MaxSize:         p.Config.UI.Preview.MaxSize,
	})
	if err != nil {
		return err
	}

	model := NewModel(ModelParams{
		Config:      p.Config,
		Root:        p.Root,
		Registry:    p.Registry,
		Coordinator: p.Coordinator,
		Launcher:    p.Launcher,
		Renderer:    renderer,
	})

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	m, ok := final.(Model)
	if !ok {
		return fmt.Errorf("unexpected final model type %T", final)
	}
	if m.err != nil {
		return m.err
	}

	slog.Debug("ui finished", "last-view", m.state.current.String())
	if msg := p.Config.UI.ExitMessage; msg != "" {
		fmt.Println(msg)
	}
	return nil
}
