// Package ai provides abstractions for AI provider integrations.
package ai

import "context"

// Client is an abstraction over concrete AI providers.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Configurable is implemented by clients that can report missing credentials
// before any provider call is attempted.
type Configurable interface {
	Configured() bool
}

// Configured reports whether c is usable. Clients that do not implement
// Configurable are assumed to be configured.
func Configured(c Client) bool {
	if c == nil {
		return false
	}
	if cc, ok := c.(Configurable); ok {
		return cc.Configured()
	}
	return true
}
