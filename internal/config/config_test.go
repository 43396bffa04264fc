package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var credentialEnvVars = []string{
	EnvYouTubeAPIKey, EnvFacebookAccessToken, EnvInstagramAccessToken, EnvPort,
	"COMMENTLENS_PLATFORMS_YOUTUBE_API_KEY",
	"COMMENTLENS_PLATFORMS_FACEBOOK_ACCESS_TOKEN",
	"COMMENTLENS_PLATFORMS_INSTAGRAM_ACCESS_TOKEN",
	"COMMENTLENS_API_PORT",
}

// clearEnv blanks every variable that would interfere; t.Setenv restores them.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, e := range credentialEnvVars {
		t.Setenv(e, "")
	}
}

// ── Load / Defaults ──

func TestLoadReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Platform defaults
	if cfg.Platforms.YouTube.APIKey != "" {
		t.Errorf("YouTube.APIKey: got %q, want empty", cfg.Platforms.YouTube.APIKey)
	}
	if cfg.Platforms.YouTube.BaseURL != "https://www.googleapis.com/youtube/v3" {
		t.Errorf("YouTube.BaseURL: got %q", cfg.Platforms.YouTube.BaseURL)
	}
	if cfg.Platforms.Facebook.BaseURL != "https://graph.facebook.com/v18.0" {
		t.Errorf("Facebook.BaseURL: got %q", cfg.Platforms.Facebook.BaseURL)
	}
	if cfg.Platforms.Instagram.BaseURL != "https://graph.instagram.com/v18.0" {
		t.Errorf("Instagram.BaseURL: got %q", cfg.Platforms.Instagram.BaseURL)
	}

	// Analysis defaults
	if cfg.Analysis.ConcurrentFetches != 4 {
		t.Errorf("Analysis.ConcurrentFetches: got %d, want 4", cfg.Analysis.ConcurrentFetches)
	}
	if cfg.Analysis.FetchTimeout() != 60*time.Second {
		t.Errorf("Analysis.FetchTimeout: got %s, want 1m0s", cfg.Analysis.FetchTimeout())
	}

	// API defaults
	if cfg.API.Host != "0.0.0.0" {
		t.Errorf("API.Host: got %q", cfg.API.Host)
	}
	if cfg.API.Port != 3000 {
		t.Errorf("API.Port: got %d, want 3000", cfg.API.Port)
	}
	if len(cfg.API.CORSOrigins) != 1 || cfg.API.CORSOrigins[0] != "*" {
		t.Errorf("API.CORSOrigins: got %v", cfg.API.CORSOrigins)
	}

	// Logging defaults
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("Logging: got %+v", cfg.Logging)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "test_config.yaml")
	content := []byte(`
platforms:
  youtube:
    api_key: "yt_key_1234567890"
    base_url: "http://localhost:9999/yt"
  facebook:
    access_token: "fb_token_1234567890"
analysis:
  concurrent_fetches: 8
  fetch_timeout_sec: 15
api:
  port: 9090
  cors_origins: ["https://app.example.com"]
logging:
  level: "debug"
  format: "json"
`)
	if err := os.WriteFile(cfgPath, content, 0644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := LoadFromFile(cfgPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if cfg.Platforms.YouTube.APIKey != "yt_key_1234567890" {
		t.Errorf("YouTube.APIKey: got %q", cfg.Platforms.YouTube.APIKey)
	}
	if cfg.Platforms.YouTube.BaseURL != "http://localhost:9999/yt" {
		t.Errorf("YouTube.BaseURL: got %q", cfg.Platforms.YouTube.BaseURL)
	}
	if cfg.Platforms.Facebook.AccessToken != "fb_token_1234567890" {
		t.Errorf("Facebook.AccessToken: got %q", cfg.Platforms.Facebook.AccessToken)
	}
	if cfg.Platforms.Instagram.BaseURL != "https://graph.instagram.com/v18.0" {
		t.Errorf("Instagram.BaseURL should keep its default, got %q", cfg.Platforms.Instagram.BaseURL)
	}
	if cfg.Analysis.ConcurrentFetches != 8 || cfg.Analysis.FetchTimeoutSec != 15 {
		t.Errorf("Analysis: got %+v", cfg.Analysis)
	}
	if cfg.API.Port != 9090 {
		t.Errorf("API.Port: got %d, want 9090", cfg.API.Port)
	}
	if len(cfg.API.CORSOrigins) != 1 || cfg.API.CORSOrigins[0] != "https://app.example.com" {
		t.Errorf("API.CORSOrigins: got %v", cfg.API.CORSOrigins)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging: got %+v", cfg.Logging)
	}
}

func TestLoadFromFileNotFound(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("LoadFromFile() with nonexistent path should return error")
	}
}

func TestPrefixedEnvOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("COMMENTLENS_API_PORT", "4321")
	t.Setenv("COMMENTLENS_PLATFORMS_INSTAGRAM_ACCESS_TOKEN", "ig-from-prefixed-env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.API.Port != 4321 {
		t.Errorf("API.Port: got %d, want 4321", cfg.API.Port)
	}
	if cfg.Platforms.Instagram.AccessToken != "ig-from-prefixed-env" {
		t.Errorf("Instagram.AccessToken: got %q", cfg.Platforms.Instagram.AccessToken)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("FACEBOOK_ACCESS_TOKEN", "already-set")

	path := filepath.Join(t.TempDir(), ".env")
	content := "YOUTUBE_API_KEY=from-dotenv-file\nFACEBOOK_ACCESS_TOKEN=from-dotenv-file\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	// clearEnv registered the restore; gotenv only fills unset variables.
	os.Unsetenv("YOUTUBE_API_KEY")

	loadDotEnv(path)

	if got := os.Getenv("YOUTUBE_API_KEY"); got != "from-dotenv-file" {
		t.Errorf("YOUTUBE_API_KEY: got %q", got)
	}
	if got := os.Getenv("FACEBOOK_ACCESS_TOKEN"); got != "already-set" {
		t.Errorf("existing variable overridden: got %q", got)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	loadDotEnv(filepath.Join(t.TempDir(), "absent.env"))
}

// ── overrideFromEnv ──

func TestOverrideFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvYouTubeAPIKey, "yt-env-key")
	t.Setenv(EnvFacebookAccessToken, "fb-env-token")
	t.Setenv(EnvInstagramAccessToken, "ig-env-token")
	t.Setenv(EnvPort, "8088")

	cfg := &Config{}
	overrideFromEnv(cfg)

	if cfg.Platforms.YouTube.APIKey != "yt-env-key" {
		t.Errorf("YouTube.APIKey: got %q", cfg.Platforms.YouTube.APIKey)
	}
	if cfg.Platforms.Facebook.AccessToken != "fb-env-token" {
		t.Errorf("Facebook.AccessToken: got %q", cfg.Platforms.Facebook.AccessToken)
	}
	if cfg.Platforms.Instagram.AccessToken != "ig-env-token" {
		t.Errorf("Instagram.AccessToken: got %q", cfg.Platforms.Instagram.AccessToken)
	}
	if cfg.API.Port != 8088 {
		t.Errorf("API.Port: got %d, want 8088", cfg.API.Port)
	}
}

func TestOverrideFromEnvNoEnvSet(t *testing.T) {
	clearEnv(t)

	cfg := &Config{
		Platforms: PlatformsConfig{YouTube: YouTubeConfig{APIKey: "from-config"}},
		API:       APIConfig{Port: 3000},
	}
	overrideFromEnv(cfg)

	if cfg.Platforms.YouTube.APIKey != "from-config" {
		t.Errorf("APIKey should stay as 'from-config' when env is unset, got %q", cfg.Platforms.YouTube.APIKey)
	}
	if cfg.API.Port != 3000 {
		t.Errorf("API.Port: got %d", cfg.API.Port)
	}
}

func TestOverrideFromEnvInvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPort, "not-a-port")

	cfg := &Config{API: APIConfig{Port: 3000}}
	overrideFromEnv(cfg)
	if cfg.API.Port != 3000 {
		t.Errorf("invalid PORT should be ignored, got %d", cfg.API.Port)
	}
}

// ── Validate ──

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Analysis: AnalysisConfig{ConcurrentFetches: 4, FetchTimeoutSec: 60},
			API:      APIConfig{Host: "0.0.0.0", Port: 3000},
			Logging:  LoggingConfig{Level: "info", Format: "text"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"json uppercase", func(c *Config) { c.Logging.Format = "JSON" }, false},
		{"port zero", func(c *Config) { c.API.Port = 0 }, true},
		{"port too large", func(c *Config) { c.API.Port = 70000 }, true},
		{"no concurrency", func(c *Config) { c.Analysis.ConcurrentFetches = 0 }, true},
		{"no timeout", func(c *Config) { c.Analysis.FetchTimeoutSec = 0 }, true},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestAPIAddr(t *testing.T) {
	a := APIConfig{Host: "127.0.0.1", Port: 3000}
	if a.Addr() != "127.0.0.1:3000" {
		t.Errorf("Addr: got %q", a.Addr())
	}
}

// ── maskKey ──

func TestMaskKeyShort(t *testing.T) {
	// Keys with 8 or fewer characters should be fully masked
	for _, in := range []string{"", "a", "abcd", "12345678"} {
		if got := maskKey(in); got != "***" {
			t.Errorf("maskKey(%q): got %q, want ***", in, got)
		}
	}
}

func TestMaskKeyLong(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"123456789", "123...789"},
		{"AIzaSyD-example-key-x9Q", "AIz...x9Q"},
		{"EAAGm0PX4ZCpsBA", "EAA...sBA"},
	}
	for _, tc := range tests {
		if got := maskKey(tc.input); got != tc.want {
			t.Errorf("maskKey(%q): got %q, want %q", tc.input, got, tc.want)
		}
	}
}

// ── CheckAPIKeys / checkKey ──

func TestCheckAPIKeysAllEmpty(t *testing.T) {
	clearEnv(t)

	statuses := CheckAPIKeys(&Config{})
	if len(statuses) != 3 {
		t.Fatalf("CheckAPIKeys: got %d statuses, want 3", len(statuses))
	}
	for _, s := range statuses {
		if s.IsSet {
			t.Errorf("Key %q should not be set", s.Name)
		}
		if s.Source != KeySourceNone {
			t.Errorf("Key %q source: got %q, want %q", s.Name, s.Source, KeySourceNone)
		}
		if s.Masked != "" {
			t.Errorf("Key %q should have no mask, got %q", s.Name, s.Masked)
		}
	}
}

func TestCheckAPIKeysFromConfig(t *testing.T) {
	clearEnv(t)

	cfg := &Config{Platforms: PlatformsConfig{YouTube: YouTubeConfig{APIKey: "AIz-test-very-long-key-value"}}}
	statuses := CheckAPIKeys(cfg)

	s := statuses[0]
	if s.Platform != "youtube" || s.EnvVar != EnvYouTubeAPIKey {
		t.Fatalf("first status should be youtube, got %+v", s)
	}
	if !s.IsSet {
		t.Error("YouTube key should be set")
	}
	if s.Source != KeySourceConfig {
		t.Errorf("Source: got %q, want %q", s.Source, KeySourceConfig)
	}
	if s.Masked != "AIz...lue" {
		t.Errorf("Masked: got %q, want %q", s.Masked, "AIz...lue")
	}
}

func TestCheckAPIKeysFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("COMMENTLENS_PLATFORMS_FACEBOOK_ACCESS_TOKEN", "fb-env-token-for-testing")

	cfg := &Config{Platforms: PlatformsConfig{Facebook: GraphConfig{AccessToken: "fb-env-token-for-testing"}}}
	for _, s := range CheckAPIKeys(cfg) {
		if s.Platform == "facebook" && s.Source != KeySourceEnv {
			t.Errorf("Source: got %q, want %q", s.Source, KeySourceEnv)
		}
	}
}

// ── homeDir ──

func TestHomeDirReturnsNonEmpty(t *testing.T) {
	if homeDir() == "" {
		t.Error("homeDir() should not return empty string")
	}
}
