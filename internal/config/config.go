// Package config holds the editor's own settings. These are separate from
// the skyset document being edited.
package config

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	skyerrors "github.com/dbmrq/skyset/internal/errors"
	"github.com/dbmrq/skyset/internal/logging"
)

// Default setting values.
const (
	DefaultPollInterval = 30 * time.Second
	DefaultTickInterval = time.Second
	DefaultLogLevel     = "info"
)

// Settings configures the interactive editor.
type Settings struct {
	// PollInterval is how often the editor reloads the document.
	PollInterval time.Duration `mapstructure:"poll_interval" yaml:"poll_interval"`
	// TickInterval is how often the UI refreshes and checks the poll timer.
	TickInterval time.Duration `mapstructure:"tick_interval" yaml:"tick_interval"`
	// Watch also reloads when the document changes on disk.
	Watch bool      `mapstructure:"watch" yaml:"watch"`
	Log   LogConfig `mapstructure:"log" yaml:"log"`
}

// LogConfig configures the log file.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	Dir   string `mapstructure:"dir" yaml:"dir"`
}

// NewSettings returns the default settings.
func NewSettings() *Settings {
	return &Settings{
		PollInterval: DefaultPollInterval,
		TickInterval: DefaultTickInterval,
		Watch:        true,
		Log: LogConfig{
			Level: DefaultLogLevel,
			Dir:   logging.DefaultLogDir(),
		},
	}
}

// DefaultPath is <config home>/skyset/editor.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "skyset", "editor.yaml")
}

// Validate reports every out-of-range setting.
func (s *Settings) Validate() error {
	var errs []error
	if s.PollInterval <= 0 {
		errs = append(errs, skyerrors.ConfigValidationError("poll_interval", "must be positive"))
	}
	if s.TickInterval <= 0 {
		errs = append(errs, skyerrors.ConfigValidationError("tick_interval", "must be positive"))
	}
	if _, ok := logging.ParseLevel(s.Log.Level); !ok {
		errs = append(errs, skyerrors.ConfigValidationError("log.level", "must be 'debug', 'info', 'warn', or 'error'"))
	}
	return errors.Join(errs...)
}

// LoggingConfig converts the log settings. verbose forces debug level.
func (s *Settings) LoggingConfig(verbose bool) *logging.Config {
	cfg := logging.DefaultConfig()
	if level, ok := logging.ParseLevel(s.Log.Level); ok {
		cfg.Level = level
	}
	if verbose {
		cfg.Level = logging.LevelDebug
	}
	if s.Log.Dir != "" {
		cfg.LogDir = s.Log.Dir
	}
	return cfg
}
