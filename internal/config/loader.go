package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	skyerrors "github.com/dbmrq/skyset/internal/errors"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "SKYSET"

// Loader reads settings from a file and the environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader with defaults registered, so every key can be
// overridden from the environment even when the file does not set it.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := NewSettings()
	v.SetDefault("poll_interval", d.PollInterval)
	v.SetDefault("tick_interval", d.TickInterval)
	v.SetDefault("watch", d.Watch)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.dir", d.Log.Dir)

	return &Loader{v: v}
}

// Load reads the settings file at path, or DefaultPath when path is empty.
// A missing file is not an error.
func (l *Loader) Load(path string) (*Settings, error) {
	if path == "" {
		path = DefaultPath()
	}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, skyerrors.ConfigParseError(path, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, skyerrors.ConfigParseError(path, err)
	}

	s := NewSettings()
	if err := l.v.Unmarshal(s, viperDecodeHook); err != nil {
		return nil, skyerrors.ConfigParseError(path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// Load is a convenience function that creates a new Loader and loads settings.
func Load(path string) (*Settings, error) {
	return NewLoader().Load(path)
}
