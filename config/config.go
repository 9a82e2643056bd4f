package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Environment EnvironmentConfig
	Logger      LoggerConfig
	Storage     StorageConfig
	Resolver    ResolverConfig
	UI          UIConfig
}

type EnvironmentConfig struct {
	Name string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	OutputPaths  []string
}

// StorageConfig selects where tasks are persisted between sessions.
type StorageConfig struct {
	Driver     string // "file" or "sqlite"
	Path       string // flat text file used by the file driver
	SQLitePath string
}

// ResolverConfig tunes date/time recognition.
type ResolverConfig struct {
	Timezone      string
	CacheSize     int
	CacheTTL      time.Duration
	RelativeDates bool
}

type UIConfig struct {
	Name         string
	Tagline      string
	DividerWidth int
	ColorEnabled bool
}

const (
	StorageDriverFile   = "file"
	StorageDriverSQLite = "sqlite"
)

// Load loads configuration using Viper.
// When configFile is empty, config.yaml is searched in ./config, . and $HOME/.gbot.
// Environment variables override file values, e.g. STORAGE_PATH or LOGGER_LEVEL.
func Load(configFile string) (*Config, error) {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".gbot"))
		}
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")

	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Logger.OutputPaths = splitList(viper.GetString("logger.output_paths"))

	cfg.Storage.Driver = strings.ToLower(viper.GetString("storage.driver"))
	cfg.Storage.Path = viper.GetString("storage.path")
	cfg.Storage.SQLitePath = viper.GetString("storage.sqlite_path")

	cfg.Resolver.Timezone = viper.GetString("resolver.timezone")
	cfg.Resolver.CacheSize = viper.GetInt("resolver.cache_size")
	cfg.Resolver.CacheTTL = viper.GetDuration("resolver.cache_ttl")
	cfg.Resolver.RelativeDates = viper.GetBool("resolver.relative_dates")

	cfg.UI.Name = viper.GetString("ui.name")
	cfg.UI.Tagline = viper.GetString("ui.tagline")
	cfg.UI.DividerWidth = viper.GetInt("ui.divider_width")
	cfg.UI.ColorEnabled = viper.GetBool("ui.color_enabled")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("logger.output_paths", "stderr")

	viper.SetDefault("storage.driver", StorageDriverFile)
	viper.SetDefault("storage.path", "./data/Gbot.txt")
	viper.SetDefault("storage.sqlite_path", "./data/gbot.db")

	viper.SetDefault("resolver.timezone", "Local")
	viper.SetDefault("resolver.cache_size", 256)
	viper.SetDefault("resolver.cache_ttl", "10m")
	viper.SetDefault("resolver.relative_dates", false)

	viper.SetDefault("ui.name", "GbTheFatBoy")
	viper.SetDefault("ui.tagline", "I'm smelly meow meow!")
	viper.SetDefault("ui.divider_width", 60)
	viper.SetDefault("ui.color_enabled", true)
}

func validate(cfg *Config) error {
	switch cfg.Storage.Driver {
	case StorageDriverFile:
		if cfg.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the %q driver", StorageDriverFile)
		}
	case StorageDriverSQLite:
		if cfg.Storage.SQLitePath == "" {
			return fmt.Errorf("storage.sqlite_path is required for the %q driver", StorageDriverSQLite)
		}
	default:
		return fmt.Errorf("unknown storage.driver %q (want %q or %q)", cfg.Storage.Driver, StorageDriverFile, StorageDriverSQLite)
	}

	if cfg.Resolver.CacheSize < 0 {
		return fmt.Errorf("resolver.cache_size must not be negative")
	}
	if cfg.UI.DividerWidth <= 0 {
		return fmt.Errorf("ui.divider_width must be positive")
	}
	return nil
}

// splitList splits a comma separated value since viper does not parse
// arrays from env vars.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
