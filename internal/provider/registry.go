package provider

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/seenimoa/commentlens/pkg/models"
)

// Registry is a thread-safe, platform-keyed set of providers.
type Registry struct {
	mu        sync.RWMutex
	providers map[models.Platform]Provider
}

// NewRegistry creates a new empty provider registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[models.Platform]Provider)}
}

// Register adds a provider under its Info().Platform.
// Duplicate registrations overwrite the previous entry.
func (r *Registry) Register(p Provider) error {
	info := p.Info()
	if info.Platform == "" {
		return fmt.Errorf("provider %q has no platform", info.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[info.Platform] = p
	return nil
}

// Get returns the provider for a platform.
func (r *Registry) Get(platform models.Platform) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[platform]
	if !ok {
		return nil, &ErrProviderNotFound{Platform: platform}
	}
	return p, nil
}

// List returns info about all registered providers in models.Platforms order.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order := make(map[models.Platform]int, len(models.Platforms))
	for i, p := range models.Platforms {
		order[p] = i
	}

	infos := make([]Info, 0, len(r.providers))
	for _, p := range r.providers {
		infos = append(infos, p.Info())
	}
	sort.Slice(infos, func(i, j int) bool {
		oi, iok := order[infos[i].Platform]
		oj, jok := order[infos[j].Platform]
		if iok != jok {
			return iok
		}
		if oi != oj {
			return oi < oj
		}
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// Fetch dispatches to the provider registered for the target's platform.
// Provider errors are returned unwrapped so their messages reach users as is.
func (r *Registry) Fetch(ctx context.Context, t Target) ([]models.Comment, error) {
	p, err := r.Get(t.Platform)
	if err != nil {
		return nil, err
	}
	return p.Fetch(ctx, t.ID)
}
