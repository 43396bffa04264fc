// Package instagram implements the Instagram Graph API comment provider.
// Media comments come from {media-id}/comments and replies from the
// {comment-id}/replies edge.
//
// Docs: https://developers.facebook.com/docs/instagram-platform/reference/instagram-media/comments
package instagram

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/seenimoa/commentlens/internal/provider"
	"github.com/seenimoa/commentlens/internal/providers/graph"
	"github.com/seenimoa/commentlens/pkg/models"
)

const (
	providerName   = "instagram"
	DefaultBaseURL = "https://graph.instagram.com/v18.0"
	credToken      = "access_token"

	failureMessage = "Failed to fetch Instagram comments. Please check your access token and post URL."
)

var mockThread = []provider.MockComment{
	{Text: "Amazing! 🔥", Likes: 25},
	{Text: "Love this content!", Likes: 12},
}

type igComment struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Timestamp  string `json:"timestamp"`
	LikeCount  int64  `json:"like_count"`
	ReplyCount int64  `json:"reply_count"`
}

var source = graph.Source[igComment]{
	Platform:      models.PlatformInstagram,
	CommentFields: "id,text,timestamp,like_count,reply_count",
	ReplyEdge:     "replies",
	ReplyFields:   "id,text,timestamp,like_count",
	Convert: func(c igComment) models.Comment {
		return models.Comment{
			ID:        c.ID,
			Text:      c.Text,
			Likes:     c.LikeCount,
			Timestamp: c.Timestamp,
		}
	},
	ReplyCount: func(c igComment) int64 { return c.ReplyCount },
}

// Options configures the provider. Zero values fall back to defaults.
type Options struct {
	AccessToken string
	BaseURL     string
	HTTPClient  *http.Client
	Concurrency int
	Logger      *slog.Logger
}

// Provider implements provider.Provider for Instagram.
type Provider struct {
	provider.BaseProvider
	client *graph.Client
}

// New creates an Instagram provider.
func New(opts Options) *Provider {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Provider{
		BaseProvider: provider.NewBaseProvider(provider.Info{
			Name:        providerName,
			Platform:    models.PlatformInstagram,
			Description: "Instagram Graph API - media comments and replies",
			Website:     "https://developers.facebook.com/docs/instagram-platform",
			Credentials: []provider.Credential{
				{
					Name:        credToken,
					Description: "Instagram user access token with instagram_basic",
					EnvVar:      "INSTAGRAM_ACCESS_TOKEN",
				},
			},
		}, opts.AccessToken, failureMessage, logger),
		client: graph.NewClient(opts.BaseURL, opts.AccessToken, opts.HTTPClient, opts.Concurrency, logger),
	}
}

// Fetch returns every comment and reply on a media object.
func (p *Provider) Fetch(ctx context.Context, mediaID string) ([]models.Comment, error) {
	return p.FetchOrMock(ctx, mediaID, p.fetchAll, func() []models.Comment {
		return provider.MockComments(models.PlatformInstagram, mockThread)
	})
}

func (p *Provider) fetchAll(ctx context.Context, mediaID string) ([]models.Comment, error) {
	return graph.FetchThread(ctx, p.client, source, mediaID)
}
