package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestLogger(t *testing.T, config *Config) *Logger {
	t.Helper()
	logger, err := New(config)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = logger.Close() })
	return logger
}

func readLog(t *testing.T, logger *Logger) string {
	t.Helper()
	content, err := os.ReadFile(logger.LogPath())
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()
	logger := newTestLogger(t, &Config{Level: LevelDebug, LogDir: tmpDir})

	if logger.LogPath() == "" {
		t.Fatal("LogPath() should not be empty")
	}
	if !strings.HasPrefix(filepath.Base(logger.LogPath()), "skyset_") {
		t.Errorf("log file name = %q, want skyset_ prefix", filepath.Base(logger.LogPath()))
	}
	if _, err := os.Stat(logger.LogPath()); err != nil {
		t.Errorf("log file should exist: %v", err)
	}
}

func TestNewCreatesLogDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	newTestLogger(t, &Config{LogDir: dir})

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("log dir should have been created, err = %v", err)
	}
}

func TestNewNoop(t *testing.T) {
	logger := NewNoop()
	logger.Info("ignored")
	if logger.LogPath() != "" {
		t.Errorf("noop LogPath() = %q, want empty", logger.LogPath())
	}
	if err := logger.Close(); err != nil {
		t.Errorf("noop Close() error = %v", err)
	}
}

func TestLogLevels(t *testing.T) {
	logger := newTestLogger(t, &Config{Level: LevelDebug, LogDir: t.TempDir()})

	logger.Debug("debug message", "key", "value")
	logger.Info("info message", "key", "value")
	logger.Warn("warn message", "key", "value")
	logger.Error("error message", "key", "value")

	content := readLog(t, logger)
	for _, msg := range []string{"debug message", "info message", "warn message", "error message"} {
		if !strings.Contains(content, msg) {
			t.Errorf("Log file missing %q", msg)
		}
	}
}

func TestLogLevelFiltering(t *testing.T) {
	logger := newTestLogger(t, &Config{Level: LevelWarn, LogDir: t.TempDir()})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	content := readLog(t, logger)
	if strings.Contains(content, "debug message") {
		t.Error("Debug message should have been filtered")
	}
	if strings.Contains(content, "info message") {
		t.Error("Info message should have been filtered")
	}
	if !strings.Contains(content, "warn message") {
		t.Error("Warn message should be present")
	}
	if !strings.Contains(content, "error message") {
		t.Error("Error message should be present")
	}
}

func TestJSONFormat(t *testing.T) {
	logger := newTestLogger(t, &Config{Level: LevelInfo, LogDir: t.TempDir(), JSONFormat: true})

	logger.Info("test message", "key", "value")

	content := readLog(t, logger)
	if !strings.Contains(content, `"msg"`) {
		t.Error("JSON format should contain 'msg' key")
	}
	if !strings.Contains(content, `"key"`) {
		t.Error("JSON format should contain 'key' key")
	}
}

func TestWith(t *testing.T) {
	logger := newTestLogger(t, &Config{Level: LevelInfo, LogDir: t.TempDir()})

	logger.With("path", "/tmp/latest.yml").Info("saved")

	if !strings.Contains(readLog(t, logger), "/tmp/latest.yml") {
		t.Error("Log should contain path attribute")
	}
}

func TestCleanup(t *testing.T) {
	tmpDir := t.TempDir()

	old := time.Now().Add(-30 * 24 * time.Hour)
	for _, name := range []string{"skyset_old1.log", "skyset_old2.log"} {
		p := filepath.Join(tmpDir, name)
		if err := os.WriteFile(p, []byte("old"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := os.Chtimes(p, old, old); err != nil {
			t.Fatal(err)
		}
	}
	unrelated := filepath.Join(tmpDir, "other.log")
	if err := os.WriteFile(unrelated, []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}

	logger := newTestLogger(t, &Config{LogDir: tmpDir, MaxLogFiles: 10, MaxLogAge: 24 * time.Hour})
	if err := logger.Cleanup(); err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}

	for _, name := range []string{"skyset_old1.log", "skyset_old2.log"} {
		if _, err := os.Stat(filepath.Join(tmpDir, name)); !os.IsNotExist(err) {
			t.Errorf("%s should have been removed", name)
		}
	}
	if _, err := os.Stat(unrelated); err != nil {
		t.Error("unrelated file should be kept")
	}
	if _, err := os.Stat(logger.LogPath()); err != nil {
		t.Error("current log file should be kept")
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   Level
		wantOK bool
	}{
		{"debug", LevelDebug, true},
		{"INFO", LevelInfo, true},
		{" warn ", LevelWarn, true},
		{"warning", LevelWarn, true},
		{"Error", LevelError, true},
		{"verbose", LevelInfo, false},
		{"", LevelInfo, false},
	}

	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Level != LevelInfo {
		t.Errorf("default Level = %v, want INFO", config.Level)
	}
	if !strings.HasSuffix(config.LogDir, filepath.Join("skyset", "logs")) {
		t.Errorf("default LogDir = %q", config.LogDir)
	}
	if config.Console {
		t.Error("console output should be off by default")
	}
	if config.MaxLogFiles != 10 {
		t.Errorf("default MaxLogFiles = %d, want 10", config.MaxLogFiles)
	}
}
