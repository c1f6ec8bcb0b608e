package state

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
)

// StatusText returns the one-line status for the current state.
func StatusText(s *ModelState) string {
	switch {
	case s.Phase == Submitting:
		return fmt.Sprintf("Generating a %s menu...", strings.TrimSpace(s.Subject))
	case strings.TrimSpace(s.Input.Value()) == "":
		return "Type a subject to generate a menu."
	default:
		return ""
	}
}

// FooterText returns the footer content for the current state.
func FooterText(status, helpText string) string {
	status = strings.TrimSpace(status)
	if status == "" {
		return helpText
	}
	if helpText == "" {
		return status
	}
	return status + "\n" + helpText
}

// FooterHelpText renders the key help.
func FooterHelpText(h help.Model, keys KeyMap) string {
	return h.View(&keys)
}
