// Package config loads service settings from configs/config.yml, an optional
// .env file and ALERTS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"alerts_review/internal/heating"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "ALERTS"

// Config is the typed view of all settings.
type Config struct {
	Port      string
	DBPath    string
	Log       LogConfig
	Auth      AuthConfig
	Cases     CasesConfig
	Display   DisplayConfig
	Heating   heating.Thresholds
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Simulator SimulatorConfig
}

// LogConfig controls level and the optional rotating file sink.
type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

// CasesConfig bounds list queries and the snapshot window around a case.
type CasesConfig struct {
	ListLimit     int
	WindowPadding time.Duration
}

type DisplayConfig struct {
	Timezone string
}

type CacheConfig struct {
	TTL time.Duration
}

type RateLimitConfig struct {
	PerSecond float64
	Burst     int
}

type SimulatorConfig struct {
	Enabled bool
	Tick    time.Duration
	Step    time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("db.path", "alerts.db")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 28)

	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", time.Hour)

	v.SetDefault("cases.list_limit", 500)
	v.SetDefault("cases.window_padding", 2*time.Hour)

	v.SetDefault("display.timezone", "America/Los_Angeles")

	v.SetDefault("heating.min_snapshots", heating.DefaultMinSnapshots)
	v.SetDefault("heating.min_window", heating.DefaultMinWindow)
	v.SetDefault("heating.max_heating_rate", heating.DefaultMaxHeatingRate)
	v.SetDefault("heating.min_temperature_gap", heating.DefaultMinTemperatureGap)
	v.SetDefault("heating.max_ambient_air", heating.DefaultMaxAmbientAir)

	v.SetDefault("cache.ttl", 30*time.Second)

	v.SetDefault("rate_limit.per_second", 10.0)
	v.SetDefault("rate_limit.burst", 5)

	v.SetDefault("simulator.enabled", false)
	v.SetDefault("simulator.tick", 5*time.Second)
	v.SetDefault("simulator.step", 15*time.Minute)
}

// Load reads the config file at path (a missing file is fine, defaults and
// environment still apply) and returns the typed settings.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	}

	cfg := fromViper(v)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, os.ErrNotExist)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Port:   v.GetString("port"),
		DBPath: v.GetString("db.path"),
		Log: LogConfig{
			Level:      v.GetString("log.level"),
			File:       v.GetString("log.file"),
			MaxSizeMB:  v.GetInt("log.max_size_mb"),
			MaxBackups: v.GetInt("log.max_backups"),
			MaxAgeDays: v.GetInt("log.max_age_days"),
		},
		Auth: AuthConfig{
			SigningKey: v.GetString("auth.signing_key"),
			TokenTTL:   v.GetDuration("auth.token_ttl"),
		},
		Cases: CasesConfig{
			ListLimit:     v.GetInt("cases.list_limit"),
			WindowPadding: v.GetDuration("cases.window_padding"),
		},
		Display: DisplayConfig{Timezone: v.GetString("display.timezone")},
		Heating: heating.Thresholds{
			MinSnapshots:      v.GetInt("heating.min_snapshots"),
			MinWindow:         v.GetDuration("heating.min_window"),
			MaxHeatingRate:    v.GetFloat64("heating.max_heating_rate"),
			MinTemperatureGap: v.GetFloat64("heating.min_temperature_gap"),
			MaxAmbientAir:     v.GetFloat64("heating.max_ambient_air"),
		},
		Cache: CacheConfig{TTL: v.GetDuration("cache.ttl")},
		RateLimit: RateLimitConfig{
			PerSecond: v.GetFloat64("rate_limit.per_second"),
			Burst:     v.GetInt("rate_limit.burst"),
		},
		Simulator: SimulatorConfig{
			Enabled: v.GetBool("simulator.enabled"),
			Tick:    v.GetDuration("simulator.tick"),
			Step:    v.GetDuration("simulator.step"),
		},
	}
}

var errMissingSigningKey = errors.New("auth.signing_key is required (set ALERTS_AUTH_SIGNING_KEY)")

func (c *Config) validate() error {
	if strings.TrimSpace(c.Auth.SigningKey) == "" {
		return errMissingSigningKey
	}
	if c.Cases.ListLimit <= 0 {
		return fmt.Errorf("cases.list_limit must be positive, got %d", c.Cases.ListLimit)
	}
	if c.Cases.WindowPadding < 0 {
		return fmt.Errorf("cases.window_padding must not be negative, got %s", c.Cases.WindowPadding)
	}
	if _, err := time.LoadLocation(c.Display.Timezone); err != nil {
		return fmt.Errorf("display.timezone %q: %w", c.Display.Timezone, err)
	}
	return nil
}

// Location returns the display timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Display.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
