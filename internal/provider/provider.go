// Package provider implements the platform abstraction layer for comment
// retrieval. It defines the Provider interface, URL classification, a
// platform-keyed registry and the typed errors shared by every fetcher.
package provider

import (
	"context"
	"fmt"

	"github.com/seenimoa/commentlens/pkg/models"
)

// Credential describes a credential a provider consumes.
type Credential struct {
	Name        string `json:"name"`        // e.g., "api_key"
	Description string `json:"description"` // e.g., "YouTube Data API v3 key"
	EnvVar      string `json:"env_var"`     // e.g., "YOUTUBE_API_KEY"
}

// Info holds metadata about a registered provider.
type Info struct {
	Name        string          `json:"name"`     // e.g., "youtube"
	Platform    models.Platform `json:"platform"` // registry key
	Description string          `json:"description"`
	Website     string          `json:"website"`
	Credentials []Credential    `json:"credentials"`
}

// Provider fetches the comment thread for one platform.
type Provider interface {
	// Info returns metadata about this provider.
	Info() Info

	// Configured reports whether a credential is present. Unconfigured
	// providers serve mock data instead of calling upstream.
	Configured() bool

	// Fetch returns all comments and replies for the content id, in
	// upstream order with each reply placed after its parent.
	Fetch(ctx context.Context, contentID string) ([]models.Comment, error)
}

// ErrInvalidURL is returned when an input cannot be parsed as an absolute
// URL or carries no usable content id.
type ErrInvalidURL struct {
	URL    string
	Reason string
}

func (e *ErrInvalidURL) Error() string {
	if e.Reason == "" {
		return "Invalid URL provided"
	}
	return e.Reason
}

// ErrUnsupportedPlatform is returned when the host matches no known platform.
type ErrUnsupportedPlatform struct {
	Host string
}

func (e *ErrUnsupportedPlatform) Error() string {
	if e.Host == "" {
		return "Unsupported platform"
	}
	return fmt.Sprintf("Unsupported platform: %s", e.Host)
}

// ErrFetchFailed wraps an upstream failure for a configured provider.
// Message is what callers show to users; Err keeps the cause.
type ErrFetchFailed struct {
	Platform models.Platform
	Message  string
	Err      error
}

func (e *ErrFetchFailed) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("failed to fetch %s comments", e.Platform.DisplayName())
}

func (e *ErrFetchFailed) Unwrap() error { return e.Err }

// ErrUnsupportedFeature is returned for platforms that are recognised but
// cannot be fetched.
type ErrUnsupportedFeature struct {
	Platform models.Platform
	Feature  string
}

func (e *ErrUnsupportedFeature) Error() string {
	if e.Feature != "" {
		return e.Feature
	}
	return fmt.Sprintf("%s integration is not yet supported", e.Platform.DisplayName())
}

// ErrProviderNotFound is returned when no provider is registered for a platform.
type ErrProviderNotFound struct {
	Platform models.Platform
}

func (e *ErrProviderNotFound) Error() string {
	return fmt.Sprintf("no provider registered for platform %q", e.Platform)
}
