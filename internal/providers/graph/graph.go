// Package graph holds the comment-thread walker shared by the Facebook and
// Instagram Graph API providers. Both APIs page with cursors.after and expose
// replies through a per-comment edge.
package graph

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"

	"github.com/seenimoa/commentlens/internal/infra"
	"github.com/seenimoa/commentlens/internal/metrics"
	"github.com/seenimoa/commentlens/internal/provider"
	"github.com/seenimoa/commentlens/pkg/models"
)

// pageLimit is the largest page the comment edges accept.
const pageLimit = "100"

// Paging is the cursor block of a Graph API list response.
type Paging struct {
	Cursors struct {
		Before string `json:"before,omitempty"`
		After  string `json:"after,omitempty"`
	} `json:"cursors"`
	Next string `json:"next,omitempty"`
}

// Page is one Graph API list response.
type Page[T any] struct {
	Data   []T    `json:"data"`
	Paging Paging `json:"paging"`
}

// Source describes how one platform exposes its comment thread.
type Source[T any] struct {
	Platform      models.Platform
	CommentFields string // fields for {object}/comments
	ReplyEdge     string // edge under a comment that lists its replies
	ReplyFields   string
	Convert       func(T) models.Comment
	ReplyCount    func(T) int64
}

// Client walks comment threads on one Graph API host.
type Client struct {
	baseURL     string
	api         *infra.Client
	concurrency int
}

// NewClient returns a Client that authenticates every request with token as
// a bearer credential. hc supplies the transport and timeout.
func NewClient(baseURL, token string, hc *http.Client, concurrency int, logger *slog.Logger) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: infra.DefaultTimeout}
	}
	if concurrency <= 0 {
		concurrency = provider.DefaultReplyConcurrency
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		api:         infra.NewClient(bearerClient(token, hc), logger),
		concurrency: concurrency,
	}
}

func bearerClient(token string, hc *http.Client) *http.Client {
	if token == "" {
		return hc
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, hc)
	c := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	}))
	c.Timeout = hc.Timeout
	return c
}

// FetchThread pages through {objectID}/comments and expands the replies of
// every comment whose reply count is positive. Each page contributes its
// top-level comments followed by their replies. Paging stops when the after
// cursor is empty, the page is empty or a cursor repeats.
func FetchThread[T any](ctx context.Context, c *Client, src Source[T], objectID string) ([]models.Comment, error) {
	var (
		comments []models.Comment
		after    string
		seen     = map[string]bool{}
	)

	for page := 1; ; page++ {
		q := url.Values{
			"fields": {src.CommentFields},
			"limit":  {pageLimit},
		}
		if after != "" {
			q.Set("after", after)
		}

		var resp Page[T]
		err := c.api.GetJSON(ctx, c.baseURL+"/"+url.PathEscape(objectID)+"/comments", q, &resp)
		metrics.ObserveUpstream(src.Platform.String(), metrics.KindComments, err)
		if err != nil {
			return nil, fmt.Errorf("comments page %d: %w", page, err)
		}

		var withReplies []string
		for _, item := range resp.Data {
			cm := src.Convert(item)
			cm.Platform = src.Platform
			comments = append(comments, cm)
			if src.ReplyCount(item) > 0 {
				withReplies = append(withReplies, cm.ID)
			}
		}

		replies, err := provider.ExpandReplies(ctx, withReplies, c.concurrency, func(ctx context.Context, parentID string) ([]models.Comment, error) {
			return fetchReplies(ctx, c, src, parentID)
		})
		if err != nil {
			return nil, fmt.Errorf("replies on page %d: %w", page, err)
		}
		comments = append(comments, replies...)

		after = resp.Paging.Cursors.After
		if after == "" || len(resp.Data) == 0 || seen[after] {
			break
		}
		seen[after] = true
	}

	return comments, nil
}

func fetchReplies[T any](ctx context.Context, c *Client, src Source[T], parentID string) ([]models.Comment, error) {
	q := url.Values{
		"fields": {src.ReplyFields},
		"limit":  {pageLimit},
	}

	var resp Page[T]
	err := c.api.GetJSON(ctx, c.baseURL+"/"+url.PathEscape(parentID)+"/"+src.ReplyEdge, q, &resp)
	metrics.ObserveUpstream(src.Platform.String(), metrics.KindReplies, err)
	if err != nil {
		return nil, fmt.Errorf("replies of %s: %w", parentID, err)
	}

	out := make([]models.Comment, 0, len(resp.Data))
	for _, item := range resp.Data {
		cm := src.Convert(item)
		cm.Platform = src.Platform
		out = append(out, cm)
	}
	return out, nil
}
