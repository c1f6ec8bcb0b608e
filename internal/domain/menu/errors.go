package menu

import "errors"

// Kind classifies menu generation failures.
type Kind string

const (
	KindConfiguration Kind = "configuration"
	KindValidation    Kind = "validation"
	KindGeneration    Kind = "generation"
)

// Caller-facing messages.
const (
	MessageNotConfigured   = "Google AI API key not configured"
	MessageSubjectRequired = "Subject is required"
	MessageGenerateFailed  = "Failed to generate menu"
	MessageProviderFailed  = "Failed to generate menu with AI"
)

// Error is a classified menu generation error. Err keeps the original cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// NewError constructs an Error.
func NewError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err, or an empty Kind when err is not classified.
func KindOf(err error) Kind {
	var menuErr *Error
	if errors.As(err, &menuErr) {
		return menuErr.Kind
	}
	return ""
}
