// Package styles provides Lip Gloss styles for the skyset TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/skyset/internal/color"
)

// Color palette for the TUI chrome. Document colors are rendered with
// Swatch instead.
var (
	Primary     = lipgloss.Color("#7C4DFF") // Violet
	Secondary   = lipgloss.Color("#06B6D4") // Cyan
	Success     = lipgloss.Color("#10B981") // Green
	Warning     = lipgloss.Color("#F59E0B") // Amber
	Error       = lipgloss.Color("#EF4444") // Red
	Muted       = lipgloss.Color("#6B7280") // Gray
	MutedLight  = lipgloss.Color("#9CA3AF") // Light Gray
	Background  = lipgloss.Color("#1F2937") // Dark Gray
	Foreground  = lipgloss.Color("#F9FAFB") // White
	BorderColor = lipgloss.Color("#374151") // Border Gray
)

// Header styles.
var (
	// TitleStyle is for the application title.
	TitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	// HeaderLabelStyle is for header labels.
	HeaderLabelStyle = lipgloss.NewStyle().
				Foreground(MutedLight)

	// HeaderValueStyle is for header values.
	HeaderValueStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Bold(true)
)

// Box styles.
var (
	// BoxStyle is a standard box with border.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// FocusedBoxStyle is a box that's currently focused.
	FocusedBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)
)

// Field list styles.
var (
	// FieldLabelStyle is for unselected field labels.
	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(MutedLight)

	// FieldLabelSelectedStyle is for the selected field label.
	FieldLabelSelectedStyle = lipgloss.NewStyle().
				Foreground(Secondary).
				Bold(true)

	// FieldValueStyle is for committed values.
	FieldValueStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	// FieldInputStyle is for the live input buffer.
	FieldInputStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Background)

	// EditingMarkerStyle marks a field with uncommitted input.
	EditingMarkerStyle = lipgloss.NewStyle().
				Foreground(Warning).
				Bold(true)
)

// Text styles.
var (
	// MutedTextStyle is for de-emphasized text.
	MutedTextStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// ErrorTextStyle is for error messages.
	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(Error)

	// SuccessTextStyle is for success messages.
	SuccessTextStyle = lipgloss.NewStyle().
				Foreground(Success)

	// WarningTextStyle is for warning messages.
	WarningTextStyle = lipgloss.NewStyle().
				Foreground(Warning)
)

// Status bar styles.
var (
	// StatusBarStyle is the main status bar container.
	StatusBarStyle = lipgloss.NewStyle().
			Background(Background).
			Foreground(MutedLight).
			Padding(0, 1)

	// KeyStyle is for keyboard shortcut keys.
	KeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// HelpStyle is for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// Swatch renders text on the document color value with a readable
// foreground. Invalid values render as plain "??".
func Swatch(value, text string) string {
	hex, err := color.Normalize(value)
	if err != nil {
		return MutedTextStyle.Render("??")
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(color.Contrast(hex))).
		Render(text)
}
