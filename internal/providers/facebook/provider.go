// Package facebook implements the Facebook Graph API comment provider.
// Post comments are listed from {post-id}/comments and replies from the
// same edge on each comment, authenticated with a page access token.
//
// Docs: https://developers.facebook.com/docs/graph-api/reference/object/comments
package facebook

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/seenimoa/commentlens/internal/provider"
	"github.com/seenimoa/commentlens/internal/providers/graph"
	"github.com/seenimoa/commentlens/pkg/models"
)

const (
	providerName   = "facebook"
	DefaultBaseURL = "https://graph.facebook.com/v18.0"
	credToken      = "access_token"

	failureMessage = "Failed to fetch Facebook comments. Please check your access token and post URL."
)

var mockThread = []provider.MockComment{
	{Text: "Great post! 👍", Likes: 15},
	{Text: "Thanks for sharing this!", Likes: 8},
}

// fbComment is one entry of the comments edge.
type fbComment struct {
	ID           string `json:"id"`
	Message      string `json:"message"`
	CreatedTime  string `json:"created_time"`
	LikeCount    int64  `json:"like_count"`
	CommentCount int64  `json:"comment_count"`
}

var source = graph.Source[fbComment]{
	Platform:      models.PlatformFacebook,
	CommentFields: "id,message,created_time,like_count,comment_count",
	ReplyEdge:     "comments",
	ReplyFields:   "id,message,created_time,like_count",
	Convert: func(c fbComment) models.Comment {
		return models.Comment{
			ID:        c.ID,
			Text:      c.Message,
			Likes:     c.LikeCount,
			Timestamp: c.CreatedTime,
		}
	},
	ReplyCount: func(c fbComment) int64 { return c.CommentCount },
}

// Options configures the provider. Zero values fall back to defaults.
type Options struct {
	AccessToken string
	BaseURL     string
	HTTPClient  *http.Client
	Concurrency int
	Logger      *slog.Logger
}

// Provider implements provider.Provider for Facebook.
type Provider struct {
	provider.BaseProvider
	client *graph.Client
}

// New creates a Facebook provider.
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
			Platform:    models.PlatformFacebook,
			Description: "Facebook Graph API - post comments and replies",
			Website:     "https://developers.facebook.com/docs/graph-api",
			Credentials: []provider.Credential{
				{
					Name:        credToken,
					Description: "Facebook page access token with pages_read_user_content",
					EnvVar:      "FACEBOOK_ACCESS_TOKEN",
				},
			},
		}, opts.AccessToken, failureMessage, logger),
		client: graph.NewClient(opts.BaseURL, opts.AccessToken, opts.HTTPClient, opts.Concurrency, logger),
	}
}

// Fetch returns every comment and reply on a post.
func (p *Provider) Fetch(ctx context.Context, postID string) ([]models.Comment, error) {
	return p.FetchOrMock(ctx, postID, p.fetchAll, func() []models.Comment {
		return provider.MockComments(models.PlatformFacebook, mockThread)
	})
}

func (p *Provider) fetchAll(ctx context.Context, postID string) ([]models.Comment, error) {
	return graph.FetchThread(ctx, p.client, source, postID)
}
