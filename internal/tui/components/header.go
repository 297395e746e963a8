// Package components provides the panes of the skyset editor.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/skyset/internal/tui/styles"
)

// HeaderData contains the data to display in the header.
type HeaderData struct {
	Path      string
	Origin    string
	UpdatedAt string
}

// Header displays the document path and provenance.
type Header struct {
	data  HeaderData
	width int
}

// NewHeader creates a new Header component.
func NewHeader() *Header {
	return &Header{}
}

// SetData updates the header data.
func (h *Header) SetData(data HeaderData) {
	h.data = data
}

// SetWidth sets the width for the header.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header.
func (h *Header) View() string {
	title := styles.TitleStyle.Render("SKYSET")

	sep := lipgloss.NewStyle().
		Foreground(styles.MutedLight).
		Render(" │ ")

	content := title + sep +
		styles.HeaderLabelStyle.Render("File: ") +
		styles.HeaderValueStyle.Render(h.data.Path)

	origin := h.data.Origin
	if origin == "" {
		origin = "-"
	}
	content += sep + styles.HeaderLabelStyle.Render("Origin: ") + styles.HeaderValueStyle.Render(origin)

	updated := h.data.UpdatedAt
	if updated == "" {
		updated = "never"
	}
	content += sep + styles.HeaderLabelStyle.Render("Updated: ") + styles.HeaderValueStyle.Render(updated)

	headerStyle := lipgloss.NewStyle().
		Background(styles.Primary).
		Foreground(styles.Foreground).
		Padding(0, 1)

	if h.width > 0 {
		headerStyle = headerStyle.Width(h.width)
	}

	return headerStyle.Render(content)
}
