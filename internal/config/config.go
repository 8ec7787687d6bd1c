package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jwulff/routines/internal/db"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig holds sqlite settings. An empty path keeps routines in
// memory only.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig holds log file settings. An empty path disables logging.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// SlogLevel maps Level onto a slog level, defaulting to info.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.Level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "routines", "routines.log")
}

// Load reads configuration from file and env. Env var overrides use prefix
// ROUTINES_. A missing config file is fine; a malformed one is an error.
func Load() (Config, error) {
	return load(os.Getenv("ROUTINES_CONFIG"))
}

func load(cfgPath string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", db.DefaultDBPath())
	v.SetDefault("log.path", DefaultLogPath())
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		home, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(home, ".config", "routines"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ROUTINES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
