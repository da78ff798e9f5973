package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGreen = lipgloss.Color("35")  // success
	colorRed   = lipgloss.Color("167") // errors
	colorWhite = lipgloss.Color("255") // values
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleValue       = lipgloss.NewStyle().Foreground(colorWhite)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

// successLine formats a "file written" confirmation for terminal output.
func successLine(path string) string {
	return fmt.Sprintf("%s Saved %s", styleIconSuccess.Render(iconSuccess), styleValue.Render(path))
}

// errorLine formats a per-variant failure for terminal output.
func errorLine(variant string, err error) string {
	return fmt.Sprintf("%s %s: %v", styleIconError.Render(iconError), variant, err)
}
