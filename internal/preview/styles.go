package preview

import "github.com/charmbracelet/lipgloss"

// Terminal styles for preview output. Lipgloss automatically degrades
// colors based on terminal capabilities.
var (
	stylePropertyName = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	// StyleClassName is used for the class name heading above a preview.
	StyleClassName = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleMuted is used for hints and degraded-mode notices.
	StyleMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderStyle applies a lipgloss style to text when colors are enabled.
func renderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// Heading renders a class-name heading for a preview pane.
func Heading(class string, useColors bool) string {
	if !useColors {
		return class
	}
	return StyleClassName.Render(class)
}

// Notice renders a muted informational line.
func Notice(text string, useColors bool) string {
	if !useColors {
		return text
	}
	return StyleMuted.Render(text)
}
