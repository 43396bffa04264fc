// Package snapchat registers Snapchat as a recognised platform. Snapchat
// has no public comment API, so every fetch fails without a network call.
package snapchat

import (
	"context"

	"github.com/seenimoa/commentlens/internal/provider"
	"github.com/seenimoa/commentlens/pkg/models"
)

// Provider implements provider.Provider for Snapchat.
type Provider struct{}

// New creates a Snapchat provider.
func New() *Provider { return &Provider{} }

func (p *Provider) Info() provider.Info {
	return provider.Info{
		Name:        "snapchat",
		Platform:    models.PlatformSnapchat,
		Description: "Snapchat - recognised, not yet supported",
		Website:     "https://www.snapchat.com",
	}
}

func (p *Provider) Configured() bool { return false }

// Fetch always returns *provider.ErrUnsupportedFeature.
func (p *Provider) Fetch(context.Context, string) ([]models.Comment, error) {
	return nil, &provider.ErrUnsupportedFeature{Platform: models.PlatformSnapchat}
}
