// Package editor tracks which field is selected and the operator's
// uncommitted input for it.
package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/dbmrq/skyset/internal/field"
	"github.com/dbmrq/skyset/internal/skyset"
)

// State is the selection and input buffer. It never holds a document; every
// method that needs committed values takes one.
type State struct {
	selected int
	input    string
}

// New selects the first field and captures its committed value.
func New(doc *skyset.Skyset) *State {
	s := &State{}
	s.Sync(doc)
	return s
}

// Fields returns the navigation order.
func (s *State) Fields() []field.ID {
	return field.Order()
}

// Selected returns the index of the selected field.
func (s *State) Selected() int {
	return s.selected
}

// Current returns the selected field.
func (s *State) Current() field.ID {
	return field.At(s.selected)
}

// Input returns the input buffer.
func (s *State) Input() string {
	return s.input
}

// SetInput replaces the input buffer.
func (s *State) SetInput(value string) {
	s.input = value
}

// PushChar appends r to the buffer.
func (s *State) PushChar(r rune) {
	s.input += string(r)
}

// PopChar removes the last character from the buffer.
func (s *State) PopChar() {
	_, size := utf8.DecodeLastRuneInString(s.input)
	s.input = s.input[:len(s.input)-size]
}

// Next selects the following field, wrapping around, and discards the buffer.
func (s *State) Next(doc *skyset.Skyset) {
	s.selected = (s.selected + 1) % field.Count
	s.Sync(doc)
}

// Previous selects the preceding field, wrapping around, and discards the buffer.
func (s *State) Previous(doc *skyset.Skyset) {
	s.selected = (s.selected + field.Count - 1) % field.Count
	s.Sync(doc)
}

// Sync resets the buffer to the selected field's committed value.
func (s *State) Sync(doc *skyset.Skyset) {
	s.input = field.Get(doc, s.Current())
}

// IsEditing reports whether the buffer differs from the committed value.
func (s *State) IsEditing(doc *skyset.Skyset) bool {
	return s.input != field.Get(doc, s.Current())
}

// Apply commits the buffer to doc. Toggle fields ignore the buffer and
// toggle. Other fields receive the trimmed buffer; when that fails
// validation doc is unchanged, the buffer is kept for correction and the
// error is returned.
func (s *State) Apply(doc *skyset.Skyset) error {
	id := s.Current()
	if id.IsToggle() {
		field.Toggle(doc, id)
		s.Sync(doc)
		return nil
	}

	if err := field.Set(doc, id, strings.TrimSpace(s.input)); err != nil {
		return err
	}
	s.Sync(doc)
	return nil
}

// Toggle toggles the selected field when it is a toggle field.
func (s *State) Toggle(doc *skyset.Skyset) {
	id := s.Current()
	if !id.IsToggle() {
		return
	}
	field.Toggle(doc, id)
	s.Sync(doc)
}
