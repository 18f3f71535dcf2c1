package config

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for a magnetar session.
// Values are populated from .magnetar.yaml, MAGNETAR_* env vars, and CLI
// flags.
type Config struct {
	RootPath string `mapstructure:"root_path"`
	StateDB  string `mapstructure:"state_db"`
	Verbose  bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("root_path", "tasks")
	viper.SetDefault("state_db", "")
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)

	if cfg.StateDB == "" {
		cfg.StateDB = filepath.Join(cfg.RootPath, ".magnetar", "state.db")
	}
	return cfg
}
