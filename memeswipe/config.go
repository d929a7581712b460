package memeswipe

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/services"
)

// EnvPrefix is prepended to every environment override, e.g. MEMESWIPE_DB_HOST.
const EnvPrefix = "MEMESWIPE_"

// LoadConfig reads the TOML file at path on top of DefaultConfig, then applies a .env
// file from the working directory if there is one and finally the process environment.
// An empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open config: %w", err)
		}
		defer file.Close()

		if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to apply environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Log      LogConfig             `toml:"log" envPrefix:"LOG_"`
	DB       database.DBConfig     `toml:"db" envPrefix:"DB_"`
	Web      WebConfig             `toml:"web" envPrefix:"WEB_"`
	Calendar CalendarConfig        `toml:"calendar" envPrefix:"CALENDAR_"`
	Rewards  services.RewardConfig `toml:"rewards" envPrefix:"REWARDS_"`
	Metrics  MetricsConfig         `toml:"metrics" envPrefix:"METRICS_"`
}

type LogConfig struct {
	Level string `toml:"level" env:"LEVEL"`
}

type WebConfig struct {
	Host         string `toml:"host" env:"HOST"`
	Port         int    `toml:"port" env:"PORT"`
	AllowOrigins string `toml:"allow_origins" env:"ALLOW_ORIGINS"`
	// RateLimit is the number of API requests one user may make per minute; 0 disables it.
	RateLimit int `toml:"rate_limit" env:"RATE_LIMIT"`
}

func (w WebConfig) Address() string {
	return fmt.Sprintf("%s:%d", w.Host, w.Port)
}

// CalendarConfig sets the zone that decides where a day and a week end for streaks
// and quest resets.
type CalendarConfig struct {
	Timezone string `toml:"timezone" env:"TIMEZONE"`
}

func (c CalendarConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid calendar timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

type MetricsConfig struct {
	Enabled bool   `toml:"enabled" env:"ENABLED"`
	Path    string `toml:"path" env:"PATH"`
}

func DefaultConfig() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		DB: database.DBConfig{
			Driver:   database.DriverPostgres,
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Database: "memeswipe",
			SSLMode:  "disable",
			Path:     "memeswipe.db",
			PoolSize: 10,
		},
		Web: WebConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			AllowOrigins: "http://localhost:3000",
			RateLimit:    120,
		},
		Calendar: CalendarConfig{Timezone: "UTC"},
		Rewards:  services.DefaultRewardConfig(),
		Metrics:  MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

func (c *Config) Validate() error {
	switch c.DB.Driver {
	case database.DriverPostgres, database.DriverSQLite, database.DriverMemory:
	default:
		return fmt.Errorf("db.driver: unsupported driver %q", c.DB.Driver)
	}
	if c.DB.Driver == database.DriverSQLite && c.DB.Path == "" {
		return fmt.Errorf("db.path: required for the sqlite driver")
	}
	if c.Web.Port <= 0 || c.Web.Port > 65535 {
		return fmt.Errorf("web.port: %d out of range", c.Web.Port)
	}
	if c.Web.RateLimit < 0 {
		return fmt.Errorf("web.rate_limit: must not be negative")
	}
	if _, err := c.Calendar.Location(); err != nil {
		return err
	}
	return c.Rewards.Validate()
}
