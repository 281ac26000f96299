// Package style holds the terminal styles used by the concat command line.
package style

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)
)

// Indicators
var (
	SuccessIndicator = SuccessStyle.Render("✓")
)

// Error renders err the way the command line reports failures
func Error(err error) string {
	return ErrorStyle.Render(fmt.Sprintf("Error: %v", err))
}

// Success renders a one-line success message
func Success(msg string) string {
	return SuccessIndicator + " " + msg
}

// Path renders a file path
func Path(p string) string {
	return PathStyle.Render(p)
}

// Muted renders secondary text
func Muted(s string) string {
	return MutedStyle.Render(s)
}

// Indent prefixes every line of s with level*2 spaces
func Indent(s string, level int) string {
	pad := strings.Repeat("  ", level)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}
