package update

import (
	"github.com/Ngamdu/Meditouch/internal/presentation/tui/metrics"
	"github.com/Ngamdu/Meditouch/internal/presentation/tui/state"
	"github.com/charmbracelet/lipgloss"
)

// UpdateSizes fits the input and result viewport to the terminal.
func UpdateSizes(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}

	s.Input.Width = inputWidth(s)
	s.Viewport.Width = clampMin(s.Width-metrics.MainLeftPadding, 1)
	s.Viewport.Height = clampMin(s.Height-metrics.HeaderLines-footerHeight(s), 1)
}

func inputWidth(s *state.ModelState) int {
	return clampMin(s.Width-lipgloss.Width(s.Input.Prompt)-metrics.MainLeftPadding-1, 10)
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	return lipgloss.Height(state.FooterText(state.StatusText(s), state.FooterHelpText(s.Help, s.Keys)))
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
