// Package mainview provides the main content area component.
package mainview

import (
	"github.com/Ngamdu/Meditouch/internal/presentation/tui/metrics"
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the main view component.
type Props struct {
	Width  int
	Height int
	Body   string
	Error  bool
}

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

// Render renders the main view component.
func Render(p Props) string {
	mainStyle := lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		PaddingLeft(metrics.MainLeftPadding)

	body := p.Body
	if p.Error {
		body = errorStyle.Render(body)
	}
	return mainStyle.Render(body)
}
