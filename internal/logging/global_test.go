package logging

import (
	"os"
	"strings"
	"testing"
)

func TestGlobalDefaultsToNoop(t *testing.T) {
	SetGlobal(nil)
	if Global() == nil {
		t.Fatal("Global() should never return nil")
	}
	Info("dropped")
}

func TestInitGlobal(t *testing.T) {
	tmpDir := t.TempDir()
	if err := InitGlobal(&Config{Level: LevelDebug, LogDir: tmpDir}); err != nil {
		t.Fatalf("InitGlobal() error = %v", err)
	}
	path := Global().LogPath()
	t.Cleanup(func() { _ = CloseGlobal() })

	Debug("global debug")
	Info("global info")
	Warn("global warn")
	Error("global error")
	With("component", "tui").Info("scoped")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	for _, msg := range []string{"global debug", "global info", "global warn", "global error", "component=tui"} {
		if !strings.Contains(string(content), msg) {
			t.Errorf("global log missing %q", msg)
		}
	}
}

func TestCloseGlobal(t *testing.T) {
	if err := InitGlobal(&Config{LogDir: t.TempDir()}); err != nil {
		t.Fatalf("InitGlobal() error = %v", err)
	}
	if err := CloseGlobal(); err != nil {
		t.Errorf("CloseGlobal() error = %v", err)
	}
	if Global().LogPath() != "" {
		t.Error("Global() should fall back to noop after CloseGlobal")
	}
	if err := CloseGlobal(); err != nil {
		t.Errorf("second CloseGlobal() error = %v", err)
	}
}
