// Package menu defines the menu generation models.
package menu

import (
	"fmt"
	"strings"
)

// Request is a single menu generation request.
type Request struct {
	Subject string `json:"subject"`
}

// Validate reports a validation error when the subject is blank.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Subject) == "" {
		return NewError(KindValidation, MessageSubjectRequired, nil)
	}
	return nil
}

// Response is the success payload returned to callers.
type Response struct {
	Success bool   `json:"success"`
	Menu    string `json:"menu"`
}

// ErrorResponse is the failure payload returned to callers.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Prompt builds the provider prompt for a subject. The subject is embedded as given.
func Prompt(subject string) string {
	return fmt.Sprintf("Generate a creative 3-course %s menu with appetizer, main course, and dessert. Format it nicely with clear sections.", subject)
}
