// Package style defines spark's terminal output: lipgloss styles, output
// format detection and the status lines printed while templates are created
// and extracted.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	// LabelStyle is used for the left side of "label: value" lines
	LabelStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	KeyStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	ValueStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	TemplatePathStyle = lipgloss.NewStyle().
				Foreground(AccentColor)

	PromptStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
)

// Status renders a "label: value" line
func Status(label, value string) string {
	return LabelStyle.Render(label) + ": " + PathStyle.Render(value)
}

// Field renders one line of template information
func Field(key, value string) string {
	return KeyStyle.Render(key) + ": " + ValueStyle.Render(value)
}

// Success renders a confirmation message
func Success(msg string) string {
	return SuccessStyle.Render("✅ " + msg)
}

// Notice renders a message about something that was already done
func Notice(msg string) string {
	return WarningStyle.Render("✅ " + msg)
}

// Error renders an error message
func Error(msg string) string {
	return ErrorStyle.Render("error") + ": " + msg
}
