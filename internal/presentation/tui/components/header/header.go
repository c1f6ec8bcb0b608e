// Package header provides the page header component.
package header

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the header component.
type Props struct {
	Title string
	Input string
}

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

// Render renders the header component.
func Render(p Props) string {
	return titleStyle.Render("🍽  "+p.Title) + "\n" + p.Input + "\n"
}
