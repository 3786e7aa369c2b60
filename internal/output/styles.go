package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Use these instead of inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: template ids, folder names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for headings and the DONE marker.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for commands the user should run.
	ColorYellow = lipgloss.Color("220")

	// ColorBlue is used for URLs and shell keywords.
	ColorBlue = lipgloss.Color("39")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (template ids, folder names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleHeading styles section headings such as "Next Steps".
	StyleHeading = lipgloss.NewStyle().Bold(true).Foreground(ColorGreen)

	// StyleCommand styles a shell command line.
	StyleCommand = lipgloss.NewStyle().Bold(true).Foreground(ColorYellow)

	// StyleURL styles links.
	StyleURL = lipgloss.NewStyle().Italic(true).Foreground(ColorBlue)

	// StyleDim styles structural chrome (comments, prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatDone renders the bold green DONE marker followed by msg.
func FormatDone(msg string) string {
	return StyleHeading.Render("DONE") + " " + msg
}
