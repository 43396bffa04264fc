// Package youtube implements the YouTube Data API v3 comment provider.
// Threads are listed with commentThreads.list and replies with
// comments.list, both authenticated with an API key query parameter.
//
// Quota: 1 unit per list call.
// Docs: https://developers.google.com/youtube/v3/docs/commentThreads/list
package youtube

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/seenimoa/commentlens/internal/infra"
	"github.com/seenimoa/commentlens/internal/provider"
	"github.com/seenimoa/commentlens/pkg/models"
)

const (
	providerName   = "youtube"
	DefaultBaseURL = "https://www.googleapis.com/youtube/v3"
	credAPIKey     = "api_key"

	failureMessage = "Failed to fetch YouTube comments. Please check your API key and video URL."
)

// pageSize is the maximum maxResults the API accepts.
const pageSize = "100"

var mockThread = []provider.MockComment{
	{Text: "This is a great video! Very informative.", Author: "User1", Likes: 10},
	{Text: "I learned so much from this, thanks for sharing!", Author: "User2", Likes: 5},
	{Text: "Could have been better explained.", Author: "User3", Likes: 2},
}

// Options configures the provider. Zero values fall back to defaults.
type Options struct {
	APIKey      string
	BaseURL     string
	HTTPClient  *http.Client
	Concurrency int // reply requests in flight per page
	Logger      *slog.Logger
}

// Provider implements provider.Provider for YouTube.
type Provider struct {
	provider.BaseProvider
	baseURL     string
	client      *infra.Client
	concurrency int
}

// New creates a YouTube provider.
func New(opts Options) *Provider {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = provider.DefaultReplyConcurrency
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Provider{
		BaseProvider: provider.NewBaseProvider(provider.Info{
			Name:        providerName,
			Platform:    models.PlatformYouTube,
			Description: "YouTube Data API v3 - video comment threads and replies",
			Website:     "https://developers.google.com/youtube/v3",
			Credentials: []provider.Credential{
				{
					Name:        credAPIKey,
					Description: "YouTube Data API v3 key from the Google Cloud console",
					EnvVar:      "YOUTUBE_API_KEY",
				},
			},
		}, opts.APIKey, failureMessage, logger),
		baseURL:     opts.BaseURL,
		client:      infra.NewClient(opts.HTTPClient, logger),
		concurrency: opts.Concurrency,
	}
}

// Fetch returns every comment thread and reply for a video id.
func (p *Provider) Fetch(ctx context.Context, videoID string) ([]models.Comment, error) {
	return p.FetchOrMock(ctx, videoID, p.fetchAll, func() []models.Comment {
		return provider.MockComments(models.PlatformYouTube, mockThread)
	})
}
