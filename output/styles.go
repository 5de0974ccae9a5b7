// Package output provides styling helpers for terminal output.
package output

import (
	"io"

	"github.com/muesli/termenv"

	"fincoach"
)

// Styles provides styled output helpers for the CLI. Styling degrades
// to plain text automatically when the writer is not a terminal.
type Styles struct {
	output *termenv.Output
}

// NewStyles creates a new Styles instance for the given writer.
func NewStyles(w io.Writer) *Styles {
	return &Styles{
		output: termenv.NewOutput(w),
	}
}

// Success returns a styled success string (green + bold).
func (s *Styles) Success(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("2")).
		Bold().
		String()
}

// Error returns a styled error string (red + bold).
func (s *Styles) Error(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("1")).
		Bold().
		String()
}

// Warning returns a styled warning (yellow + bold).
func (s *Styles) Warning(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("3")).
		Bold().
		String()
}

// FilePath returns a styled file path (cyan).
func (s *Styles) FilePath(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("6")).
		String()
}

// Amount returns a styled monetary amount (magenta).
func (s *Styles) Amount(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("5")).
		String()
}

// Category returns a styled category name (yellow).
func (s *Styles) Category(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("3")).
		String()
}

// Dim returns dimmed text (for secondary information).
func (s *Styles) Dim(text string) string {
	return s.output.String(text).
		Faint().
		String()
}

// Severity returns the severity label styled by rank: alerts red,
// warnings yellow, everything else dimmed.
func (s *Styles) Severity(severity fincoach.Severity) string {
	switch severity {
	case fincoach.Alert:
		return s.Error(string(severity))
	case fincoach.Warn:
		return s.Warning(string(severity))
	default:
		return s.Dim(string(severity))
	}
}
