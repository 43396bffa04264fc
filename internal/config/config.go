// Package config handles configuration loading for commentlens.
// It supports YAML config files, a .env file and environment variable
// overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// EnvPrefix is the prefix for environment overrides, e.g. COMMENTLENS_API_PORT.
const EnvPrefix = "COMMENTLENS"

// DotEnvFile is loaded from the working directory when present.
const DotEnvFile = ".env"

// Config represents the complete application configuration.
type Config struct {
	Platforms PlatformsConfig `mapstructure:"platforms" yaml:"platforms"`
	Analysis  AnalysisConfig  `mapstructure:"analysis"  yaml:"analysis"`
	API       APIConfig       `mapstructure:"api"       yaml:"api"`
	Logging   LoggingConfig   `mapstructure:"logging"   yaml:"logging"`
}

// PlatformsConfig holds per-platform credentials and endpoints.
type PlatformsConfig struct {
	YouTube   YouTubeConfig `mapstructure:"youtube"   yaml:"youtube"`
	Facebook  GraphConfig   `mapstructure:"facebook"  yaml:"facebook"`
	Instagram GraphConfig   `mapstructure:"instagram" yaml:"instagram"`
}

// YouTubeConfig holds YouTube Data API settings.
type YouTubeConfig struct {
	APIKey  string `mapstructure:"api_key"  yaml:"api_key"`
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
}

// GraphConfig holds settings for a Graph-style API (Facebook, Instagram).
type GraphConfig struct {
	AccessToken string `mapstructure:"access_token" yaml:"access_token"`
	BaseURL     string `mapstructure:"base_url"     yaml:"base_url"`
}

// AnalysisConfig holds analysis pipeline settings.
type AnalysisConfig struct {
	ConcurrentFetches int `mapstructure:"concurrent_fetches" yaml:"concurrent_fetches"` // reply requests in flight
	FetchTimeoutSec   int `mapstructure:"fetch_timeout_sec"  yaml:"fetch_timeout_sec"`
}

// FetchTimeout returns the per-analysis deadline.
func (a AnalysisConfig) FetchTimeout() time.Duration {
	return time.Duration(a.FetchTimeoutSec) * time.Second
}

// APIConfig holds HTTP server settings.
type APIConfig struct {
	Host        string   `mapstructure:"host"         yaml:"host"`
	Port        int      `mapstructure:"port"         yaml:"port"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// Addr returns host:port.
func (a APIConfig) Addr() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Load reads the configuration from .env, config file and environment.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.commentlens/config.yaml (home directory)
//  3. /etc/commentlens/config.yaml (system)
//
// Environment variables override config file values.
// Format: COMMENTLENS_<SECTION>_<KEY>, e.g., COMMENTLENS_API_PORT
func Load() (*Config, error) {
	loadDotEnv(DotEnvFile)

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".commentlens"))
	v.AddConfigPath("/etc/commentlens")

	// Read config file (not required to exist)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return decode(v)
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	loadDotEnv(DotEnvFile)

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	overrideFromEnv(&cfg)
	return &cfg, nil
}

// loadDotEnv loads KEY=VALUE pairs without overriding variables already set.
func loadDotEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := gotenv.Load(path); err != nil {
		slog.Warn("[Config] could not load env file", slog.String("path", path), slog.Any("error", err))
	}
}

// setDefaults sets sensible defaults for all config values. Every key the
// env overrides should reach needs a default so viper knows about it.
func setDefaults(v *viper.Viper) {
	// Platform defaults
	v.SetDefault("platforms.youtube.api_key", "")
	v.SetDefault("platforms.youtube.base_url", "https://www.googleapis.com/youtube/v3")
	v.SetDefault("platforms.facebook.access_token", "")
	v.SetDefault("platforms.facebook.base_url", "https://graph.facebook.com/v18.0")
	v.SetDefault("platforms.instagram.access_token", "")
	v.SetDefault("platforms.instagram.base_url", "https://graph.instagram.com/v18.0")

	// Analysis defaults
	v.SetDefault("analysis.concurrent_fetches", 4)
	v.SetDefault("analysis.fetch_timeout_sec", 60)

	// API defaults
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 3000)
	v.SetDefault("api.cors_origins", []string{"*"})

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Well-known variables that take precedence over everything else.
const (
	EnvYouTubeAPIKey        = "YOUTUBE_API_KEY"
	EnvFacebookAccessToken  = "FACEBOOK_ACCESS_TOKEN"
	EnvInstagramAccessToken = "INSTAGRAM_ACCESS_TOKEN"
	EnvPort                 = "PORT"
)

// overrideFromEnv explicitly reads credentials and the port from their
// conventional unprefixed variables.
func overrideFromEnv(cfg *Config) {
	if key := os.Getenv(EnvYouTubeAPIKey); key != "" {
		cfg.Platforms.YouTube.APIKey = key
	}
	if tok := os.Getenv(EnvFacebookAccessToken); tok != "" {
		cfg.Platforms.Facebook.AccessToken = tok
	}
	if tok := os.Getenv(EnvInstagramAccessToken); tok != "" {
		cfg.Platforms.Instagram.AccessToken = tok
	}
	if p := os.Getenv(EnvPort); p != "" {
		if port, err := strconv.Atoi(p); err == nil {
			cfg.API.Port = port
		} else {
			slog.Warn("[Config] ignoring invalid PORT", slog.String("value", p))
		}
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.API.Port < 1 || c.API.Port > 65535 {
		return fmt.Errorf("api.port %d out of range", c.API.Port)
	}
	if c.Analysis.ConcurrentFetches < 1 {
		return fmt.Errorf("analysis.concurrent_fetches must be at least 1, got %d", c.Analysis.ConcurrentFetches)
	}
	if c.Analysis.FetchTimeoutSec < 1 {
		return fmt.Errorf("analysis.fetch_timeout_sec must be at least 1, got %d", c.Analysis.FetchTimeoutSec)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	return nil
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
