// Package field is the registry of editable skyset fields: a fixed, ordered
// table mapping each field to its label, getter, validator and setter.
package field

import (
	"strconv"
	"strings"

	"github.com/dbmrq/skyset/internal/color"
	skyerrors "github.com/dbmrq/skyset/internal/errors"
	"github.com/dbmrq/skyset/internal/skyset"
)

// ID identifies an editable field. The numeric order is the navigation order.
type ID int

const (
	Origin ID = iota
	Message
	Submessage
	ThemeMode
	Accent
	Primary
	Secondary
	Tertiary
	Background1
	Background2
	Background3
	Hero1
	Hero2
	SourceWillUpdate

	count
)

// Count is the number of editable fields.
const Count = int(count)

type entry struct {
	label  string
	key    string
	toggle bool
	get    func(*skyset.Skyset) string
	// validate returns the canonical form of the raw value.
	validate func(string) (string, error)
	// assign stores an already validated value.
	assign func(*skyset.Skyset, string)
}

var registry = [count]entry{
	Origin: {
		label:    "Origin",
		key:      "origin",
		get:      func(s *skyset.Skyset) string { return s.Origin },
		validate: verbatim,
		assign:   func(s *skyset.Skyset, v string) { s.Origin = v },
	},
	Message: {
		label:    "Message",
		key:      "message",
		get:      func(s *skyset.Skyset) string { return s.Message },
		validate: verbatim,
		assign:   func(s *skyset.Skyset, v string) { s.Message = v },
	},
	Submessage: {
		label:    "Submessage",
		key:      "submessage",
		get:      func(s *skyset.Skyset) string { return s.Submessage },
		validate: verbatim,
		assign:   func(s *skyset.Skyset, v string) { s.Submessage = v },
	},
	ThemeMode: {
		label:    "Theme mode",
		key:      "mode",
		toggle:   true,
		get:      func(s *skyset.Skyset) string { return s.Theme.Mode.String() },
		validate: validateMode,
		assign: func(s *skyset.Skyset, v string) {
			s.Theme.Mode, _ = skyset.ParseThemeMode(v)
		},
	},
	Accent: {
		label:    "Accent",
		key:      "accent",
		get:      func(s *skyset.Skyset) string { return s.Theme.Accent },
		validate: color.Normalize,
		assign:   func(s *skyset.Skyset, v string) { s.Theme.Accent = v },
	},
	Primary: {
		label:    "Primary",
		key:      "primary",
		get:      func(s *skyset.Skyset) string { return s.Palette.Primary },
		validate: color.Normalize,
		assign:   func(s *skyset.Skyset, v string) { s.Palette.Primary = v },
	},
	Secondary: {
		label:    "Secondary",
		key:      "secondary",
		get:      func(s *skyset.Skyset) string { return s.Palette.Secondary },
		validate: color.Normalize,
		assign:   func(s *skyset.Skyset, v string) { s.Palette.Secondary = v },
	},
	Tertiary: {
		label:    "Tertiary",
		key:      "tertiary",
		get:      func(s *skyset.Skyset) string { return s.Palette.Tertiary },
		validate: color.Normalize,
		assign:   func(s *skyset.Skyset, v string) { s.Palette.Tertiary = v },
	},
	Background1: backgroundStop(0),
	Background2: backgroundStop(1),
	Background3: backgroundStop(2),
	Hero1:       heroStop(0),
	Hero2:       heroStop(1),
	SourceWillUpdate: {
		label:    "Source will update",
		key:      "source-will-update",
		toggle:   true,
		get:      func(s *skyset.Skyset) string { return strconv.FormatBool(s.SourceWillUpdate) },
		validate: func(v string) (string, error) { return strconv.FormatBool(ParseBool(v)), nil },
		assign:   func(s *skyset.Skyset, v string) { s.SourceWillUpdate = v == "true" },
	},
}

func backgroundStop(index int) entry {
	return entry{
		label:    "Background #" + strconv.Itoa(index+1),
		key:      "background" + strconv.Itoa(index+1),
		get:      func(s *skyset.Skyset) string { return stop(s.Gradients.Background, index) },
		validate: color.Normalize,
		assign: func(s *skyset.Skyset, v string) {
			s.Gradients.Background = setStop(s.Gradients.Background, index, v)
		},
	}
}

func heroStop(index int) entry {
	return entry{
		label:    "Hero #" + strconv.Itoa(index+1),
		key:      "hero" + strconv.Itoa(index+1),
		get:      func(s *skyset.Skyset) string { return stop(s.Gradients.Hero, index) },
		validate: color.Normalize,
		assign: func(s *skyset.Skyset, v string) {
			s.Gradients.Hero = setStop(s.Gradients.Hero, index, v)
		},
	}
}

// stop returns the gradient stop at index, or "" when the sequence is shorter.
func stop(stops []string, index int) string {
	if index < len(stops) {
		return stops[index]
	}
	return ""
}

// setStop grows stops with fallback black until index exists, then assigns.
func setStop(stops []string, index int, value string) []string {
	for len(stops) <= index {
		stops = append(stops, color.Fallback)
	}
	stops[index] = value
	return stops
}

func verbatim(v string) (string, error) {
	return v, nil
}

func validateMode(v string) (string, error) {
	mode, ok := skyset.ParseThemeMode(v)
	if !ok {
		return "", skyerrors.InvalidThemeMode(v)
	}
	return mode.String(), nil
}

// Order returns the fields in navigation order.
func Order() []ID {
	ids := make([]ID, Count)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// At returns the field at position i of the navigation order.
func At(i int) ID {
	return ID(i)
}

// Valid reports whether id names a registered field.
func (id ID) Valid() bool {
	return id >= 0 && id < count
}

// Label returns the display label.
func (id ID) Label() string {
	if !id.Valid() {
		return ""
	}
	return registry[id].label
}

// Key returns the identifier used for overrides and CLI flags.
func (id ID) Key() string {
	if !id.Valid() {
		return ""
	}
	return registry[id].key
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return id.Key()
}

// IsToggle reports whether Enter cycles or flips the field instead of
// committing typed text.
func (id ID) IsToggle() bool {
	return id.Valid() && registry[id].toggle
}

// Lookup finds a field by its Key.
func Lookup(key string) (ID, bool) {
	for i := range registry {
		if registry[i].key == key {
			return ID(i), true
		}
	}
	return 0, false
}

// IsColor reports whether the field holds a hex color.
func (id ID) IsColor() bool {
	return id >= Accent && id <= Hero2
}

// Get returns the field's current value as a display string. Missing
// gradient stops are returned as "".
func Get(doc *skyset.Skyset, id ID) string {
	if !id.Valid() {
		return ""
	}
	return registry[id].get(doc)
}

// Set validates value and assigns its canonical form. Text fields are stored
// verbatim. On error the document is not modified.
func Set(doc *skyset.Skyset, id ID, value string) error {
	if !id.Valid() {
		return skyerrors.New(skyerrors.ErrValidation, "unknown field")
	}
	e := registry[id]
	canonical, err := e.validate(value)
	if err != nil {
		return err
	}
	e.assign(doc, canonical)
	return nil
}

// Toggle cycles ThemeMode and flips SourceWillUpdate. It does nothing for
// other fields.
func Toggle(doc *skyset.Skyset, id ID) {
	switch id {
	case ThemeMode:
		doc.Theme.Mode = doc.Theme.Mode.Next()
	case SourceWillUpdate:
		doc.SourceWillUpdate = !doc.SourceWillUpdate
	}
}

// ParseBool maps "true", "1" and "yes" (any case) to true and every other
// string to false. It never fails.
func ParseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// Overrides is a sparse set of raw values keyed by field, applied once at
// startup.
type Overrides map[ID]string
