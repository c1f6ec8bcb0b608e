// Package update holds UI update logic for the TUI.
package update

import (
	"context"

	"github.com/Ngamdu/Meditouch/internal/presentation/tui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// MenuClient requests menus from the menu service.
type MenuClient interface {
	Generate(ctx context.Context, subject string) (string, error)
}

// Deps groups external dependencies for updates.
type Deps struct {
	Menus  MenuClient
	Render func(markdown string, width int) string
}

// MenuGeneratedMsg is emitted after a menu request completes.
type MenuGeneratedMsg struct {
	Subject string
	Menu    string
	Err     error
}

// GenerateMenuCmd creates a command that requests a menu for subject.
func GenerateMenuCmd(client MenuClient, subject string) tea.Cmd {
	return func() tea.Msg {
		text, err := client.Generate(context.Background(), subject)
		return MenuGeneratedMsg{Subject: subject, Menu: text, Err: err}
	}
}

// HandleKeyMsg handles bindings. It reports false for keys that belong to the text input.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, s.Keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, s.Keys.Help):
		s.Help.ShowAll = !s.Help.ShowAll
		UpdateSizes(s)
		return nil, true
	case key.Matches(msg, s.Keys.Submit):
		return submit(s, deps), true
	case key.Matches(msg, s.Keys.ScrollUp):
		s.Viewport.HalfViewUp()
		return nil, true
	case key.Matches(msg, s.Keys.ScrollDown):
		s.Viewport.HalfViewDown()
		return nil, true
	}
	return nil, false
}

func submit(s *state.ModelState, deps Deps) tea.Cmd {
	if !s.CanSubmit() || deps.Menus == nil {
		return nil
	}
	s.Phase = state.Submitting
	s.Subject = s.Input.Value()
	return tea.Batch(s.Spinner.Tick, GenerateMenuCmd(deps.Menus, s.Subject))
}

// HandleWindowSize stores the terminal size.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height
	UpdateSizes(s)
}

// HandleMenuGeneratedMsg shows the finished result, replacing the previous one.
func HandleMenuGeneratedMsg(s *state.ModelState, msg MenuGeneratedMsg, deps Deps) {
	if s.Phase != state.Submitting || msg.Subject != s.Subject {
		return
	}
	s.SetResult(msg.Menu, msg.Err)
	refreshResultViewport(s, deps)
}

func refreshResultViewport(s *state.ModelState, deps Deps) {
	s.Viewport.SetContent(buildResultContent(s, deps.Render))
	s.Viewport.GotoTop()
}
