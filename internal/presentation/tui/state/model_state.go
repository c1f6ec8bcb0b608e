package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Phase    Phase
	Input    textinput.Model
	Spinner  spinner.Model
	Viewport viewport.Model
	Help     help.Model
	Keys     KeyMap
	Width    int
	Height   int
	Subject  string
	Menu     string
	Err      error
}

// CanSubmit reports whether a request may be sent now.
func (s *ModelState) CanSubmit() bool {
	return s.Phase != Submitting && strings.TrimSpace(s.Input.Value()) != ""
}

// HasResult reports whether a menu or an error is on screen.
func (s *ModelState) HasResult() bool {
	return s.Menu != "" || s.Err != nil
}

// SetResult replaces any previous result. Exactly one of menu or err is kept.
func (s *ModelState) SetResult(menuText string, err error) {
	s.Phase = Idle
	if err != nil {
		s.Menu = ""
		s.Err = err
		return
	}
	s.Menu = menuText
	s.Err = nil
}
