package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/skyset/internal/tui/styles"
)

// HelpOverlay lists every key binding of a help.KeyMap.
type HelpOverlay struct {
	visible bool
	width   int
	keys    help.KeyMap
	help    help.Model
}

// NewHelpOverlay creates a hidden overlay for keys.
func NewHelpOverlay(keys help.KeyMap) *HelpOverlay {
	h := help.New()
	h.ShowAll = true
	h.Styles.FullKey = styles.KeyStyle
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(styles.MutedLight)
	h.Styles.FullSeparator = styles.HelpStyle
	return &HelpOverlay{
		width: 60,
		keys:  keys,
		help:  h,
	}
}

// SetSize sets the overlay width.
func (h *HelpOverlay) SetSize(width int) {
	h.width = width
	h.help.Width = width - 8
}

// Show makes the overlay visible.
func (h *HelpOverlay) Show() {
	h.visible = true
}

// Hide hides the overlay.
func (h *HelpOverlay) Hide() {
	h.visible = false
}

// Toggle toggles visibility.
func (h *HelpOverlay) Toggle() {
	h.visible = !h.visible
}

// IsVisible returns whether the overlay is visible.
func (h *HelpOverlay) IsVisible() bool {
	return h.visible
}

// Update closes the overlay on any key.
func (h *HelpOverlay) Update(msg tea.Msg) tea.Cmd {
	if !h.visible {
		return nil
	}
	if _, ok := msg.(tea.KeyMsg); ok {
		h.Hide()
		return func() tea.Msg {
			return HelpClosedMsg{}
		}
	}
	return nil
}

// View renders the help overlay.
func (h *HelpOverlay) View() string {
	if !h.visible {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Background(styles.Primary).
		Bold(true).
		Padding(0, 1)
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(h.help.FullHelpView(h.keys.FullHelp()))
	b.WriteString("\n\n")

	b.WriteString(styles.MutedTextStyle.Italic(true).Render("Letter shortcuts work only while the field is unchanged."))
	b.WriteString("\n")
	b.WriteString(styles.MutedTextStyle.Italic(true).Render("Press any key to close"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(styles.Primary).
		Padding(1, 2)

	return boxStyle.Render(b.String())
}

// HelpClosedMsg is sent when the help overlay is closed.
type HelpClosedMsg struct{}
