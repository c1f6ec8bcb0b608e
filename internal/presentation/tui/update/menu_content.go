package update

import (
	"fmt"
	"strings"

	"github.com/Ngamdu/Meditouch/internal/presentation/tui/state"
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders menu markdown for the terminal. On renderer failure
// the raw text is returned.
func RenderMarkdown(markdown string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return markdown
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}

func buildResultContent(s *state.ModelState, render func(string, int) string) string {
	if s.Err != nil {
		return fmt.Sprintf("Error: %v", s.Err)
	}
	if strings.TrimSpace(s.Menu) == "" {
		return ""
	}
	if render == nil {
		return s.Menu
	}
	return render(s.Menu, clampMin(s.Viewport.Width, 20))
}
