// Package color validates and canonicalizes the 6-digit hex colors stored in
// a skyset document.
package color

import (
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	skyerrors "github.com/dbmrq/skyset/internal/errors"
)

// Fallback is used for gradient stops that exist only to pad a sequence.
const Fallback = "#000000"

var hexDigits = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// Normalize trims whitespace and a single leading '#', and returns the
// canonical "#RRGGBB" form with uppercase digits. Anything that is not
// exactly six hex digits is rejected with a validation error.
func Normalize(input string) (string, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(input), "#")
	if !hexDigits.MatchString(trimmed) {
		return "", skyerrors.InvalidColor(input)
	}
	return "#" + strings.ToUpper(trimmed), nil
}

// Valid reports whether input normalizes.
func Valid(input string) bool {
	_, err := Normalize(input)
	return err == nil
}

// RGB decomposes a hex color into its channels. ok is false when the value
// does not normalize.
func RGB(value string) (r, g, b uint8, ok bool) {
	c, ok := parse(value)
	if !ok {
		return 0, 0, 0, false
	}
	r, g, b = c.RGB255()
	return r, g, b, true
}

// Contrast returns black or white, whichever reads better on top of value.
// Invalid input gets white.
func Contrast(value string) string {
	c, ok := parse(value)
	if !ok {
		return "#FFFFFF"
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#FFFFFF"
}

func parse(value string) (colorful.Color, bool) {
	canonical, err := Normalize(value)
	if err != nil {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(canonical)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}
