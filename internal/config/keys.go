package config

import "os"

// APIKeySource represents where a credential comes from.
type APIKeySource string

const (
	KeySourceEnv    APIKeySource = "env"
	KeySourceConfig APIKeySource = "config"
	KeySourceNone   APIKeySource = "none"
)

// KeyStatus represents the status of a platform credential.
type KeyStatus struct {
	Platform string       `json:"platform"`
	Name     string       `json:"name"`
	EnvVar   string       `json:"env_var"`
	Source   APIKeySource `json:"source"`
	IsSet    bool         `json:"is_set"`
	Masked   string       `json:"masked,omitempty"` // e.g., "AIz...x9Q"
}

// CheckAPIKeys returns the status of every platform credential.
func CheckAPIKeys(cfg *Config) []KeyStatus {
	return []KeyStatus{
		checkKey("youtube", "YouTube API Key", cfg.Platforms.YouTube.APIKey,
			EnvYouTubeAPIKey, EnvPrefix+"_PLATFORMS_YOUTUBE_API_KEY"),
		checkKey("facebook", "Facebook Access Token", cfg.Platforms.Facebook.AccessToken,
			EnvFacebookAccessToken, EnvPrefix+"_PLATFORMS_FACEBOOK_ACCESS_TOKEN"),
		checkKey("instagram", "Instagram Access Token", cfg.Platforms.Instagram.AccessToken,
			EnvInstagramAccessToken, EnvPrefix+"_PLATFORMS_INSTAGRAM_ACCESS_TOKEN"),
	}
}

// checkKey checks if a key is set and which variable, if any, supplied it.
func checkKey(platform, name, value string, envVars ...string) KeyStatus {
	status := KeyStatus{
		Platform: platform,
		Name:     name,
		EnvVar:   envVars[0],
		IsSet:    value != "",
		Source:   KeySourceNone,
	}
	if value == "" {
		return status
	}

	status.Source = KeySourceConfig
	for _, env := range envVars {
		if os.Getenv(env) != "" {
			status.Source = KeySourceEnv
			break
		}
	}
	status.Masked = maskKey(value)
	return status
}

// maskKey masks a credential for display, showing only first 3 and last 3 chars.
func maskKey(key string) string {
	if len(key) <= 8 {
		return "***"
	}
	return key[:3] + "..." + key[len(key)-3:]
}
