package components

import (
	"strings"

	"github.com/dbmrq/skyset/internal/skyset"
	"github.com/dbmrq/skyset/internal/tui/styles"
)

// Preview renders the committed document: the message on its accent and
// each palette and gradient color as a swatch.
type Preview struct {
	doc   *skyset.Skyset
	width int
}

// NewPreview creates a new Preview showing the default document.
func NewPreview() *Preview {
	return &Preview{doc: skyset.Default()}
}

// SetDocument replaces the previewed document.
func (p *Preview) SetDocument(doc *skyset.Skyset) {
	p.doc = doc
}

// SetWidth sets the width of the pane.
func (p *Preview) SetWidth(width int) {
	p.width = width
}

// View renders the preview.
func (p *Preview) View() string {
	doc := p.doc
	var b strings.Builder

	message := doc.Message
	if message == "" {
		message = "(no message)"
	}
	b.WriteString(styles.Swatch(doc.Theme.Accent, " "+message+" "))
	b.WriteString("\n")
	if doc.Submessage != "" {
		b.WriteString(styles.MutedTextStyle.Render(doc.Submessage))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(label("Mode") + doc.Theme.Mode.String() + "\n")
	b.WriteString(label("Accent") + chip(doc.Theme.Accent) + "\n")
	b.WriteString(label("Palette") + chips(doc.Palette.Primary, doc.Palette.Secondary, doc.Palette.Tertiary) + "\n")
	b.WriteString(label("Background") + chips(doc.Gradients.Background...) + "\n")
	b.WriteString(label("Hero") + chips(doc.Gradients.Hero...) + "\n")

	updates := "no"
	if doc.SourceWillUpdate {
		updates = "yes"
	}
	b.WriteString(label("Source updates") + updates)

	box := styles.BoxStyle
	if p.width > 0 {
		box = box.Width(p.width - 2)
	}
	return box.Render(b.String())
}

func label(s string) string {
	return styles.FieldLabelStyle.Width(16).Render(s)
}

// chip is a swatch followed by its hex value.
func chip(value string) string {
	return styles.Swatch(value, "    ") + " " + styles.MutedTextStyle.Render(value)
}

func chips(values ...string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = chip(v)
	}
	return strings.Join(parts, "  ")
}
