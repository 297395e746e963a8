package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/skyset/internal/tui/styles"
)

// StatusBarData contains the data to display in the status bar.
type StatusBarData struct {
	Editing bool
	// Notice is the outcome of the last command, e.g. "saved".
	Notice string
	// Error is the last error, shown until the next successful command.
	Error      string
	LastReload time.Time
	Shortcuts  []ShortcutDef
}

// StatusBar shows editing state, the last notice or error, and shortcuts.
type StatusBar struct {
	data  StatusBarData
	width int
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetData updates the status bar data.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

// Data returns the current data.
func (s *StatusBar) Data() StatusBarData {
	return s.data
}

// SetWidth sets the width of the status bar.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	sep := lipgloss.NewStyle().
		Foreground(styles.Muted).
		Render(" │ ")

	var left string
	if s.data.Editing {
		left = styles.WarningTextStyle.Render("● editing")
	} else {
		left = styles.SuccessTextStyle.Render("○ clean")
	}

	if !s.data.LastReload.IsZero() {
		left += sep + styles.MutedTextStyle.Render("reloaded "+s.data.LastReload.Format("15:04:05"))
	}

	switch {
	case s.data.Error != "":
		left += sep + styles.ErrorTextStyle.Render(s.data.Error)
	case s.data.Notice != "":
		left += sep + lipgloss.NewStyle().
			Foreground(styles.MutedLight).
			Italic(true).
			Render(s.data.Notice)
	}

	right := NewShortcutBar(s.data.Shortcuts...).View()

	if s.width > 0 {
		container := styles.StatusBarStyle.Width(s.width)
		padding := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2 // container padding
		if padding > 0 {
			return container.Render(left + strings.Repeat(" ", padding) + right)
		}
		return container.Render(left + "  " + right)
	}

	return styles.StatusBarStyle.Render(left + "  " + right)
}
