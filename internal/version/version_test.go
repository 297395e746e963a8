package version

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewInfo(t *testing.T) {
	info := NewInfo("1.0.0", "abc123", "2024-01-01")

	if info.Version != "1.0.0" {
		t.Errorf("Version = %q, want %q", info.Version, "1.0.0")
	}
	if info.Commit != "abc123" {
		t.Errorf("Commit = %q, want %q", info.Commit, "abc123")
	}
	if info.Date != "2024-01-01" {
		t.Errorf("Date = %q, want %q", info.Date, "2024-01-01")
	}
	if info.GoVer == "" || info.OS == "" || info.Arch == "" {
		t.Errorf("runtime fields should be set: %+v", info)
	}
}

func TestInfoString(t *testing.T) {
	info := NewInfo("1.0.0", "abc123", "2024-01-01")

	if s := info.String(); s != "skyset 1.0.0 (commit: abc123, built: 2024-01-01)" {
		t.Errorf("String() = %q, unexpected format", s)
	}
}

func TestInfoFullString(t *testing.T) {
	info := NewInfo("1.0.0", "abc123", "2024-01-01")
	s := info.FullString()

	for _, want := range []string{"skyset 1.0.0", "Commit:   abc123", "Built:    2024-01-01", info.OS + "/" + info.Arch} {
		if !strings.Contains(s, want) {
			t.Errorf("FullString() missing %q:\n%s", want, s)
		}
	}
}

func TestInfoJSON(t *testing.T) {
	info := NewInfo("1.0.0", "abc123", "2024-01-01")

	out, err := info.JSON()
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	var decoded Info
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("JSON() output invalid: %v", err)
	}
	if decoded != *info {
		t.Errorf("decoded = %+v, want %+v", decoded, *info)
	}
}
