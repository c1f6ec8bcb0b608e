// Package layout provides the page layout component.
package layout

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the layout component.
type Props struct {
	Header string
	Main   string
	Footer string
}

// Render stacks header, main and footer.
func Render(p Props) string {
	return lipgloss.JoinVertical(lipgloss.Left, p.Header, p.Main, p.Footer)
}
