// Package config loads homekeep settings from defaults, an optional YAML
// file, a .env file and HOMEKEEP_* environment variables, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/homekeep/internal/status"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "HOMEKEEP"

// Config is the resolved application configuration.
type Config struct {
	DBPath      string     `mapstructure:"db"`
	LogUseCases bool       `mapstructure:"log_use_cases"`
	Thresholds  Thresholds `mapstructure:"thresholds"`
}

// Thresholds groups the engine's two band tables.
type Thresholds struct {
	Task      status.TaskThresholds      `mapstructure:"task"`
	Aggregate status.AggregateThresholds `mapstructure:"aggregate"`
}

// Options controls where Load looks for its inputs. Zero values fall back to
// the user's home directory and ./.env.
type Options struct {
	ConfigFile string
	HomeDir    string
	DotEnvFile string
}

// Load resolves the configuration. An explicitly named config file must
// exist; the default one is optional.
func Load(opts Options) (Config, error) {
	if err := loadDotEnv(opts.DotEnvFile); err != nil {
		return Config{}, err
	}

	home := opts.HomeDir
	if home == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		home = h
	}

	v := viper.New()
	setDefaults(v, home)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.AddConfigPath(filepath.Join(home, ".homekeep"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("reading config file %s: %w", v.ConfigFileUsed(), err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the engine could not be built from.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("invalid config: db path must be set")
	}
	if err := c.Thresholds.Task.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := c.Thresholds.Aggregate.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// EngineOptions returns the status engine options for the configured thresholds.
func (c Config) EngineOptions() []status.Option {
	return []status.Option{
		status.WithTaskThresholds(c.Thresholds.Task),
		status.WithAggregateThresholds(c.Thresholds.Aggregate),
	}
}

func setDefaults(v *viper.Viper, home string) {
	task := status.DefaultTaskThresholds()
	agg := status.DefaultAggregateThresholds()

	v.SetDefault("db", filepath.Join(home, ".homekeep", "homekeep.db"))
	v.SetDefault("log_use_cases", false)
	v.SetDefault("thresholds.task.complete", task.Complete)
	v.SetDefault("thresholds.task.soon", task.Soon)
	v.SetDefault("thresholds.task.due", task.Due)
	v.SetDefault("thresholds.aggregate.complete", agg.Complete)
	v.SetDefault("thresholds.aggregate.soon", agg.Soon)
	v.SetDefault("thresholds.aggregate.due", agg.Due)
}

// loadDotEnv applies a .env file if one exists. Variables already set in the
// environment win.
func loadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}
