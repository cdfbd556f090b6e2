package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Engine EngineConfig
	Log    LogConfig
}

// EngineConfig holds the external accounting engine settings.
type EngineConfig struct {
	Binary  string
	Options []string
}

// LogConfig holds debug logging settings.
type LogConfig struct {
	Path string
}

// Load reads configuration from an optional config file under
// ~/.config/regdel/. Defaults apply when no file is present; there are no
// environment-variable overrides.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("engine.binary", "ledger")
	v.SetDefault("engine.options", []string{})
	v.SetDefault("log.path", "")

	v.SetConfigType("toml")
	v.SetConfigName("config")
	v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "regdel"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	return Config{
		Engine: EngineConfig{
			Binary:  v.GetString("engine.binary"),
			Options: v.GetStringSlice("engine.options"),
		},
		Log: LogConfig{
			Path: v.GetString("log.path"),
		},
	}, nil
}
