package field

import (
	"testing"

	"github.com/dbmrq/skyset/internal/color"
	skyerrors "github.com/dbmrq/skyset/internal/errors"
	"github.com/dbmrq/skyset/internal/skyset"
)

func TestOrder(t *testing.T) {
	want := []string{
		"origin", "message", "submessage", "mode", "accent",
		"primary", "secondary", "tertiary",
		"background1", "background2", "background3",
		"hero1", "hero2", "source-will-update",
	}
	order := Order()
	if len(order) != 14 || Count != 14 {
		t.Fatalf("Order() has %d fields, want 14", len(order))
	}
	for i, id := range order {
		if id.Key() != want[i] {
			t.Errorf("Order()[%d] = %q, want %q", i, id.Key(), want[i])
		}
	}
}

func TestLabels(t *testing.T) {
	tests := map[ID]string{
		ThemeMode:        "Theme mode",
		Background2:      "Background #2",
		Hero1:            "Hero #1",
		SourceWillUpdate: "Source will update",
	}
	for id, want := range tests {
		if got := id.Label(); got != want {
			t.Errorf("%v.Label() = %q, want %q", id, got, want)
		}
	}
}

func TestIsToggle(t *testing.T) {
	for _, id := range Order() {
		want := id == ThemeMode || id == SourceWillUpdate
		if id.IsToggle() != want {
			t.Errorf("%v.IsToggle() = %v, want %v", id, id.IsToggle(), want)
		}
	}
}

func TestLookup(t *testing.T) {
	for _, id := range Order() {
		got, ok := Lookup(id.Key())
		if !ok || got != id {
			t.Errorf("Lookup(%q) = %v, %v", id.Key(), got, ok)
		}
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup should reject unknown keys")
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	tests := []struct {
		id    ID
		value string
		want  string
	}{
		{Origin, "  spaced  ", "  spaced  "},
		{Message, "hello", "hello"},
		{Submessage, "", ""},
		{ThemeMode, "LIGHT", "light"},
		{Accent, "abc123", "#ABC123"},
		{Primary, "#0e0e10", "#0E0E10"},
		{Secondary, " 1f1f23 ", "#1F1F23"},
		{Tertiary, "#FFFFFF", "#FFFFFF"},
		{Background1, "010203", "#010203"},
		{Background3, "#a0a0a0", "#A0A0A0"},
		{Hero2, "5e35b1", "#5E35B1"},
		{SourceWillUpdate, "YES", "true"},
		{SourceWillUpdate, "no", "false"},
	}

	for _, tt := range tests {
		t.Run(tt.id.Key()+"="+tt.value, func(t *testing.T) {
			doc := skyset.Default()
			if err := Set(doc, tt.id, tt.value); err != nil {
				t.Fatalf("Set error = %v", err)
			}
			if got := Get(doc, tt.id); got != tt.want {
				t.Errorf("Get = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetInvalidLeavesDocumentUnchanged(t *testing.T) {
	tests := []struct {
		id    ID
		value string
	}{
		{Accent, "12345"},
		{Primary, "#GGGGGG"},
		{Background2, ""},
		{Hero1, "purple"},
		{ThemeMode, "sepia"},
		{ThemeMode, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.id.Key()+"="+tt.value, func(t *testing.T) {
			doc := skyset.Default()
			before := doc.Clone()

			err := Set(doc, tt.id, tt.value)
			if err == nil {
				t.Fatal("Set should fail")
			}
			if !skyerrors.IsValidation(err) {
				t.Errorf("error should be a validation error, got %v", err)
			}
			if Get(doc, tt.id) != Get(before, tt.id) {
				t.Errorf("Get changed from %q to %q", Get(before, tt.id), Get(doc, tt.id))
			}
			if len(doc.Gradients.Background) != len(before.Gradients.Background) {
				t.Error("failed Set should not grow gradients")
			}
		})
	}
}

func TestSetGrowsGradient(t *testing.T) {
	doc := skyset.Default()
	doc.Gradients.Background = []string{"#111111"}

	if err := Set(doc, Background2, "#222222"); err != nil {
		t.Fatal(err)
	}
	bg := doc.Gradients.Background
	if len(bg) != 2 {
		t.Fatalf("len(Background) = %d, want 2", len(bg))
	}
	if bg[0] != "#111111" || bg[1] != "#222222" {
		t.Errorf("Background = %v", bg)
	}
}

func TestSetPadsIntermediateStops(t *testing.T) {
	doc := skyset.Default()
	doc.Gradients.Background = nil

	if err := Set(doc, Background3, "abcdef"); err != nil {
		t.Fatal(err)
	}
	want := []string{color.Fallback, color.Fallback, "#ABCDEF"}
	bg := doc.Gradients.Background
	if len(bg) != len(want) {
		t.Fatalf("Background = %v, want %v", bg, want)
	}
	for i := range want {
		if bg[i] != want[i] {
			t.Errorf("Background[%d] = %q, want %q", i, bg[i], want[i])
		}
	}
}

func TestGetMissingStop(t *testing.T) {
	doc := skyset.Default()
	doc.Gradients.Hero = []string{"#7C4DFF"}

	if got := Get(doc, Hero2); got != "" {
		t.Errorf("Get(Hero2) = %q, want empty", got)
	}
	doc.Gradients.Background = nil
	if got := Get(doc, Background1); got != "" {
		t.Errorf("Get(Background1) = %q, want empty", got)
	}
}

func TestToggleThemeMode(t *testing.T) {
	doc := skyset.Default()
	want := []string{"light", "system", "dark"}
	for i, w := range want {
		Toggle(doc, ThemeMode)
		if got := Get(doc, ThemeMode); got != w {
			t.Errorf("toggle %d: mode = %q, want %q", i+1, got, w)
		}
	}
}

func TestToggleUnknownMode(t *testing.T) {
	doc := skyset.Default()
	doc.Theme.Mode = skyset.ModeUnknown

	Toggle(doc, ThemeMode)
	if doc.Theme.Mode != skyset.ModeDark {
		t.Errorf("Unknown should toggle to dark, got %v", doc.Theme.Mode)
	}

	Toggle(doc, ThemeMode)
	Toggle(doc, ThemeMode)
	Toggle(doc, ThemeMode)
	if doc.Theme.Mode != skyset.ModeDark {
		t.Errorf("four toggles from unknown should land on dark, got %v", doc.Theme.Mode)
	}
}

func TestToggleSourceWillUpdate(t *testing.T) {
	doc := skyset.Default()
	Toggle(doc, SourceWillUpdate)
	if doc.SourceWillUpdate {
		t.Error("toggle should flip true to false")
	}
	Toggle(doc, SourceWillUpdate)
	if !doc.SourceWillUpdate {
		t.Error("toggle should flip false to true")
	}
}

func TestToggleNonToggleIsNoop(t *testing.T) {
	doc := skyset.Default()
	before := doc.Clone()

	for _, id := range []ID{Origin, Accent, Background1} {
		Toggle(doc, id)
		if Get(doc, id) != Get(before, id) {
			t.Errorf("Toggle(%v) should be a no-op", id)
		}
	}
}

func TestParseBool(t *testing.T) {
	tests := map[string]bool{
		"true":   true,
		"TRUE":   true,
		"1":      true,
		"yes":    true,
		"YES":    true,
		"Yes":    true,
		"no":     false,
		"false":  false,
		"0":      false,
		"":       false,
		"banana": false,
		" yes":   false,
	}
	for in, want := range tests {
		if got := ParseBool(in); got != want {
			t.Errorf("ParseBool(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInvalidID(t *testing.T) {
	doc := skyset.Default()
	bad := ID(99)

	if bad.Valid() || bad.Label() != "" || bad.IsToggle() {
		t.Error("out-of-range ID should be invalid")
	}
	if Get(doc, bad) != "" {
		t.Error("Get with invalid ID should return empty")
	}
	if err := Set(doc, bad, "x"); err == nil {
		t.Error("Set with invalid ID should fail")
	}
}
