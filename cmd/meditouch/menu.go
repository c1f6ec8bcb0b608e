package main

import (
	"github.com/Ngamdu/Meditouch/internal/infrastructure/menuapi"
	"github.com/Ngamdu/Meditouch/internal/presentation/tui"
	tea "github.com/charmbracelet/bubbletea"
)

// MenuCmd opens the terminal page.
type MenuCmd struct {
	Endpoint string `help:"Menu API endpoint (overrides client.endpoint)."`
}

// Run starts the Bubble Tea program.
func (c *MenuCmd) Run(rt *runtime) error {
	cfg := rt.store.Settings
	endpoint := cfg.Client.Endpoint
	if c.Endpoint != "" {
		endpoint = c.Endpoint
	}

	model := tui.NewModel(cfg, menuapi.NewClient(endpoint, nil))
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
