// Package output renders a skyset document for scripts and terminals
// without starting the editor.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	fcolor "github.com/fatih/color"

	"github.com/dbmrq/skyset/internal/color"
	"github.com/dbmrq/skyset/internal/skyset"
)

// JSON returns the document as indented JSON using the same key names as
// the YAML file.
func JSON(doc *skyset.Skyset) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}
	return string(data), nil
}

// Swatch returns a two-cell truecolor block for value, or "??" when value
// is not a hex color.
func Swatch(value string) string {
	r, g, b, ok := color.RGB(value)
	if !ok {
		return "??"
	}
	c := fcolor.New().AddBgRGB(int(r), int(g), int(b))
	c.EnableColor()
	return c.Sprint("  ")
}

func swatches(values []string) string {
	var sb strings.Builder
	for _, v := range values {
		sb.WriteString(Swatch(v))
	}
	return sb.String()
}

// Oneline summarizes the document on a single line:
//
//	<path> <accent> | msg="<message>" | palette: <p><s><t> | background: <stops> | hero: <stops>
func Oneline(path string, doc *skyset.Skyset) string {
	palette := []string{doc.Palette.Primary, doc.Palette.Secondary, doc.Palette.Tertiary}
	return fmt.Sprintf("%s %s | msg=\"%s\" | palette: %s | background: %s | hero: %s",
		path,
		Swatch(doc.Theme.Accent),
		doc.Message,
		swatches(palette),
		swatches(doc.Gradients.Background),
		swatches(doc.Gradients.Hero),
	)
}
