// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	HeaderLines        = 3
	HeaderWidthPadding = 4
	MainLeftPadding    = 1
)
