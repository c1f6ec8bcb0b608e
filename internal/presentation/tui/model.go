// Package tui provides the terminal rendition of the menu generator page.
package tui

import (
	"github.com/Ngamdu/Meditouch/internal/application/settings"
	"github.com/Ngamdu/Meditouch/internal/presentation/tui/state"
	"github.com/Ngamdu/Meditouch/internal/presentation/tui/update"
	"github.com/Ngamdu/Meditouch/internal/presentation/tui/view"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model represents the main application state.
type Model struct {
	menus  update.MenuClient
	render func(string, int) string
	state  *state.ModelState
}

// NewModel creates a new application model.
func NewModel(cfg settings.Settings, menus update.MenuClient) *Model {
	return &Model{
		menus:  menus,
		render: update.RenderMarkdown,
		state:  newModelState(cfg),
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case update.MenuGeneratedMsg:
		update.HandleMenuGeneratedMsg(m.state, msg, m.deps())
		update.UpdateSizes(m.state)
		return m, nil
	}

	if m.state.Phase == state.Submitting {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		m.state.Input, cmd = m.state.Input.Update(msg)
		cmds = append(cmds, cmd)
		update.UpdateSizes(m.state)
	}

	m.state.Viewport, cmd = m.state.Viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Menus:  m.menus,
		Render: m.render,
	}
}

func newModelState(cfg settings.Settings) *state.ModelState {
	return &state.ModelState{
		Phase:    state.Idle,
		Input:    newTextInput(),
		Spinner:  newSpinner(),
		Viewport: viewport.New(0, 0),
		Help:     help.New(),
		Keys:     state.NewKeyMap(cfg.KeyMap),
	}
}

func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "e.g. Italian"
	ti.Prompt = "Subject: "
	ti.CharLimit = 200
	ti.Focus()
	return ti
}

func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return s
}
