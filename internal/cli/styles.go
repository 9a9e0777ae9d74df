// Package cli runs the interactive payroll session and provides styled terminal output using lipgloss.
package cli

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#4ECDC4")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#95E1D3") // Light teal
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for the session banner.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// PromptStyle is used for user prompts.
	PromptStyle = lipgloss.NewStyle().
			Bold(true)
)

// FormatTitle formats the banner shown at the start of a session.
func FormatTitle(title string) string {
	return TitleStyle.Render("=== " + title + " ===")
}

// FormatPrompt formats a prompt label. The trailing space is kept outside the style.
func FormatPrompt(prompt string) string {
	return PromptStyle.Render(prompt) + " "
}

// FormatSuccess formats a success message.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(message)
}

// FormatError formats an error message.
func FormatError(message string) string {
	return ErrorStyle.Render(message)
}

// FormatWarning formats a warning message.
func FormatWarning(message string) string {
	return WarningStyle.Render(message)
}

// FormatOption formats one menu entry, e.g. "1 = Employee".
func FormatOption(code int, label string) string {
	return SubtleStyle.Render(strconv.Itoa(code)+" =") + " " + label
}
