package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/skyset/internal/tui/styles"
)

// FieldRow is one editable field as the list shows it.
type FieldRow struct {
	Label string
	// Value is the committed value.
	Value string
	// Input is the buffer. Only the selected row shows it.
	Input    string
	Selected bool
	// Editing is set when Input differs from Value.
	Editing bool
	Toggle  bool
	Color   bool
}

// FieldList renders the document fields with the selected one showing its
// live input buffer.
type FieldList struct {
	rows     []FieldRow
	width    int
	focused  bool
	labelCol int
}

// NewFieldList creates a new FieldList component.
func NewFieldList() *FieldList {
	return &FieldList{
		focused:  true,
		labelCol: 20,
	}
}

// SetRows replaces the rows.
func (f *FieldList) SetRows(rows []FieldRow) {
	f.rows = rows
}

// Rows returns the current rows.
func (f *FieldList) Rows() []FieldRow {
	return f.rows
}

// SetWidth sets the width of the list.
func (f *FieldList) SetWidth(width int) {
	f.width = width
}

// SetFocused sets whether the list is focused.
func (f *FieldList) SetFocused(focused bool) {
	f.focused = focused
}

// View renders the list.
func (f *FieldList) View() string {
	var b strings.Builder
	for i, row := range f.rows {
		b.WriteString(f.renderRow(row))
		if i < len(f.rows)-1 {
			b.WriteString("\n")
		}
	}

	box := styles.BoxStyle
	if f.focused {
		box = styles.FocusedBoxStyle
	}
	if f.width > 0 {
		box = box.Width(f.width - 2)
	}
	return box.Render(b.String())
}

func (f *FieldList) renderRow(row FieldRow) string {
	cursor := "  "
	labelStyle := styles.FieldLabelStyle
	if row.Selected {
		cursor = styles.FieldLabelSelectedStyle.Render("› ")
		labelStyle = styles.FieldLabelSelectedStyle
	}
	label := labelStyle.Width(f.labelCol).Render(row.Label)

	var value string
	switch {
	case row.Selected && !row.Toggle:
		value = styles.FieldInputStyle.Render(row.Input + "▏")
	default:
		value = styles.FieldValueStyle.Render(row.Value)
	}

	line := cursor + label + value
	if row.Color {
		line += " " + styles.Swatch(row.Value, "  ")
	}
	if row.Toggle && row.Selected {
		line += styles.MutedTextStyle.Render("  (enter to toggle)")
	}
	if row.Editing {
		line += styles.EditingMarkerStyle.Render(" *")
	}
	if f.width > 4 {
		return lipgloss.NewStyle().MaxWidth(f.width - 4).Render(line)
	}
	return line
}
