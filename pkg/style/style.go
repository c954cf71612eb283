// Package style holds the lipgloss styles for CLI output and the logic
// deciding whether color is emitted at all.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Base styles
var (
	// MatchStyle renders a path that matched the pattern
	MatchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	// DirStyle renders directory results
	DirStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true)

	// MutedStyle renders secondary information (grammar names, hints)
	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	// ErrorStyle renders failures
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)
)

// Configure applies the color mode (auto, always, never) to the global
// lipgloss renderer. In auto mode color is kept only when stdout is a
// terminal that supports it.
func Configure(mode string) {
	switch mode {
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	}
}
