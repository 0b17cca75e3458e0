package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ocs_dashboard/internal/repository/db"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// Config is the runtime configuration of the dashboard.
type Config struct {
	Port       string           `mapstructure:"port"`
	Log        LogConfig        `mapstructure:"log"`
	DB         DBConfig         `mapstructure:"db"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	Events     EventsConfig     `mapstructure:"events"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console | json
}

type DBConfig struct {
	DSN string `mapstructure:"dsn"`
}

type SimulationConfig struct {
	Tick       time.Duration `mapstructure:"tick"`
	Seed       uint64        `mapstructure:"seed"`
	AssetsFile string        `mapstructure:"assets_file"`
}

type EventsConfig struct {
	Retention     time.Duration `mapstructure:"retention"`
	MaxEntries    int           `mapstructure:"max_entries"`
	PruneSchedule string        `mapstructure:"prune_schedule"`
}

const envPrefix = "OCS"

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("db.dsn", db.DefaultDSN)
	v.SetDefault("simulation.tick", "3s")
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.assets_file", "")
	v.SetDefault("events.retention", "24h")
	v.SetDefault("events.max_entries", 1000)
	v.SetDefault("events.prune_schedule", "@every 1m")
}

// Load reads configs/config.yml (or path, when given) on top of defaults.
// A missing default config file is not an error; env vars prefixed with OCS_ override both.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("configs")
		v.SetConfigName("config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Simulation.Tick <= 0 {
		return fmt.Errorf("simulation.tick must be > 0, got %s", c.Simulation.Tick)
	}
	if c.Events.Retention < 0 {
		return fmt.Errorf("events.retention must be >= 0, got %s", c.Events.Retention)
	}
	if c.Events.MaxEntries < 0 {
		return fmt.Errorf("events.max_entries must be >= 0, got %d", c.Events.MaxEntries)
	}
	// an empty schedule disables pruning
	if c.Events.PruneSchedule != "" {
		if _, err := cron.ParseStandard(c.Events.PruneSchedule); err != nil {
			return fmt.Errorf("events.prune_schedule %q: %w", c.Events.PruneSchedule, err)
		}
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	return nil
}
