// Package providers builds every concrete platform provider from
// configuration and registers it with a provider registry.
package providers

import (
	"log/slog"
	"net/http"

	"github.com/seenimoa/commentlens/internal/config"
	"github.com/seenimoa/commentlens/internal/provider"
	"github.com/seenimoa/commentlens/internal/providers/facebook"
	"github.com/seenimoa/commentlens/internal/providers/instagram"
	"github.com/seenimoa/commentlens/internal/providers/snapchat"
	"github.com/seenimoa/commentlens/internal/providers/youtube"
)

// NewRegistry returns a registry with every platform registered.
func NewRegistry(cfg *config.Config, hc *http.Client, logger *slog.Logger) (*provider.Registry, error) {
	reg := provider.NewRegistry()
	if err := RegisterAllTo(reg, cfg, hc, logger); err != nil {
		return nil, err
	}
	return reg, nil
}

// RegisterAllTo registers all platform providers to the given registry.
// Providers without a credential are still registered; they serve mock
// data. hc may be nil.
func RegisterAllTo(reg *provider.Registry, cfg *config.Config, hc *http.Client, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	pc := cfg.Platforms
	concurrency := cfg.Analysis.ConcurrentFetches

	all := []provider.Provider{
		youtube.New(youtube.Options{
			APIKey:      pc.YouTube.APIKey,
			BaseURL:     pc.YouTube.BaseURL,
			HTTPClient:  hc,
			Concurrency: concurrency,
			Logger:      logger,
		}),
		facebook.New(facebook.Options{
			AccessToken: pc.Facebook.AccessToken,
			BaseURL:     pc.Facebook.BaseURL,
			HTTPClient:  hc,
			Concurrency: concurrency,
			Logger:      logger,
		}),
		instagram.New(instagram.Options{
			AccessToken: pc.Instagram.AccessToken,
			BaseURL:     pc.Instagram.BaseURL,
			HTTPClient:  hc,
			Concurrency: concurrency,
			Logger:      logger,
		}),
		snapchat.New(),
	}

	for _, p := range all {
		if err := reg.Register(p); err != nil {
			return err
		}
		if !p.Configured() && len(p.Info().Credentials) > 0 {
			logger.Warn("[Providers] "+p.Info().Name+" has no credential, mock data will be served",
				slog.String("env_var", p.Info().Credentials[0].EnvVar))
		}
	}
	return nil
}
