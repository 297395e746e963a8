// Package skyset defines the skyset document: the single structured
// configuration entity edited by skyset, with its defaults and codec.
package skyset

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"
)

// SchemaVersion is written to every saved document.
const SchemaVersion = 1

// Default values.
const (
	DefaultAccent    = "#7C4DFF"
	DefaultPrimary   = "#0E0E10"
	DefaultSecondary = "#1F1F23"
	DefaultTertiary  = "#2E2E35"
)

// ThemeMode is the theme's light/dark preference.
type ThemeMode int

const (
	// ModeDark is the default mode.
	ModeDark ThemeMode = iota
	// ModeLight prefers a light theme.
	ModeLight
	// ModeSystem follows the host setting.
	ModeSystem
	// ModeUnknown is any unrecognized value read from disk. Editing never produces it.
	ModeUnknown
)

// String returns the lowercase label used on disk.
func (m ThemeMode) String() string {
	switch m {
	case ModeDark:
		return "dark"
	case ModeLight:
		return "light"
	case ModeSystem:
		return "system"
	default:
		return "unknown"
	}
}

// ParseThemeMode accepts dark, light or system in any case.
func ParseThemeMode(s string) (ThemeMode, bool) {
	switch strings.ToLower(s) {
	case "dark":
		return ModeDark, true
	case "light":
		return ModeLight, true
	case "system":
		return ModeSystem, true
	}
	return ModeUnknown, false
}

// Next returns the mode after m in the dark → light → system cycle.
// Unknown continues as if it came before dark.
func (m ThemeMode) Next() ThemeMode {
	switch m {
	case ModeDark:
		return ModeLight
	case ModeLight:
		return ModeSystem
	default:
		return ModeDark
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m ThemeMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unrecognized values
// decode as ModeUnknown rather than failing.
func (m *ThemeMode) UnmarshalText(text []byte) error {
	mode, ok := ParseThemeMode(string(text))
	if !ok {
		mode = ModeUnknown
	}
	*m = mode
	return nil
}

// Theme holds the mode and accent color.
type Theme struct {
	Mode   ThemeMode `yaml:"mode" json:"mode"`
	Accent string    `yaml:"accent" json:"accent"`
}

// Palette holds the three base shades.
type Palette struct {
	Primary   string `yaml:"primary" json:"primary"`
	Secondary string `yaml:"secondary" json:"secondary"`
	Tertiary  string `yaml:"tertiary" json:"tertiary"`
}

// Gradients holds the ordered gradient stops.
type Gradients struct {
	// Background has up to three stops.
	Background []string `yaml:"background" json:"background"`
	// Hero has up to two stops.
	Hero []string `yaml:"hero" json:"hero"`
}

// Skyset is the document persisted at latest.yml.
type Skyset struct {
	Version          int       `yaml:"_version" json:"_version"`
	Origin           string    `yaml:"origin" json:"origin"`
	UpdatedAt        string    `yaml:"updated_at" json:"updated_at"`
	Message          string    `yaml:"message" json:"message"`
	Submessage       string    `yaml:"submessage" json:"submessage"`
	SourceWillUpdate bool      `yaml:"source_will_update" json:"source_will_update"`
	Theme            Theme     `yaml:"theme" json:"theme"`
	Palette          Palette   `yaml:"palette" json:"palette"`
	Gradients        Gradients `yaml:"gradients" json:"gradients"`
}

// Default returns an all-defaults document.
func Default() *Skyset {
	return &Skyset{
		Version:          SchemaVersion,
		SourceWillUpdate: true,
		Theme: Theme{
			Mode:   ModeDark,
			Accent: DefaultAccent,
		},
		Palette: Palette{
			Primary:   DefaultPrimary,
			Secondary: DefaultSecondary,
			Tertiary:  DefaultTertiary,
		},
		Gradients: Gradients{
			Background: []string{"#0B0B12", "#141424", "#1D1D32"},
			Hero:       []string{"#7C4DFF", "#5E35B1"},
		},
	}
}

// Clone returns a deep copy.
func (s *Skyset) Clone() *Skyset {
	c := *s
	c.Gradients.Background = append([]string(nil), s.Gradients.Background...)
	c.Gradients.Hero = append([]string(nil), s.Gradients.Hero...)
	return &c
}

// Parse decodes a YAML document. Keys that are missing keep their defaults.
func Parse(data []byte) (*Skyset, error) {
	doc := Default()
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	if doc.Version <= 0 {
		doc.Version = SchemaVersion
	}
	return doc, nil
}

// Encode serializes the document as YAML.
func Encode(s *Skyset) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
