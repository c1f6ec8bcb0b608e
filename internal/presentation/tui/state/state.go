// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/Ngamdu/Meditouch/internal/application/settings"
	"github.com/charmbracelet/bubbles/key"
)

// Phase represents the request lifecycle of the page.
type Phase int

const (
	Idle Phase = iota
	Submitting
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Submit     key.Binding
	Quit       key.Binding
	Help       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Quit, k.Help}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Quit, k.Help},
		{k.ScrollUp, k.ScrollDown},
	}
}

// NewKeyMap builds key bindings from config.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Submit)...),
			key.WithHelp(cfg.Submit, "generate"),
		),
		Quit: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Quit)...),
			key.WithHelp(cfg.Quit, "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Help)...),
			key.WithHelp(cfg.Help, "toggle help"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys(splitKeys(cfg.ScrollUp)...),
			key.WithHelp(cfg.ScrollUp, "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys(splitKeys(cfg.ScrollDown)...),
			key.WithHelp(cfg.ScrollDown, "scroll down"),
		),
	}
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
	}
	return out
}
