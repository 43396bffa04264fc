package youtube

import (
	"context"
	"fmt"
	"net/url"

	"github.com/seenimoa/commentlens/internal/metrics"
	"github.com/seenimoa/commentlens/internal/provider"
	"github.com/seenimoa/commentlens/pkg/models"
)

// fetchAll pages through commentThreads.list. Each page contributes its
// top-level comments followed by the replies of those threads.
func (p *Provider) fetchAll(ctx context.Context, videoID string) ([]models.Comment, error) {
	var (
		comments  []models.Comment
		pageToken string
		seen      = map[string]bool{}
	)

	for page := 1; ; page++ {
		q := url.Values{
			"part":       {"snippet,replies"},
			"videoId":    {videoID},
			"maxResults": {pageSize},
			"textFormat": {"plainText"},
			"key":        {p.Credential()},
		}
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}

		var resp threadListResponse
		err := p.client.GetJSON(ctx, p.baseURL+"/commentThreads", q, &resp)
		metrics.ObserveUpstream(providerName, metrics.KindComments, err)
		if err != nil {
			return nil, fmt.Errorf("comment threads page %d: %w", page, err)
		}

		var withReplies []string
		for _, item := range resp.Items {
			s := item.Snippet.TopLevelComment.Snippet
			comments = append(comments, models.Comment{
				ID:        item.ID,
				Text:      s.TextDisplay,
				Platform:  models.PlatformYouTube,
				Author:    s.AuthorDisplayName,
				Likes:     s.LikeCount,
				Timestamp: s.PublishedAt,
			})
			if item.Snippet.TotalReplyCount > 0 {
				withReplies = append(withReplies, item.ID)
			}
		}

		replies, err := provider.ExpandReplies(ctx, withReplies, p.concurrency, p.fetchReplies)
		if err != nil {
			return nil, fmt.Errorf("replies on page %d: %w", page, err)
		}
		comments = append(comments, replies...)

		pageToken = resp.NextPageToken
		if pageToken == "" || len(resp.Items) == 0 || seen[pageToken] {
			break
		}
		seen[pageToken] = true
	}

	return comments, nil
}

// fetchReplies lists the replies of one thread with a single comments.list call.
func (p *Provider) fetchReplies(ctx context.Context, parentID string) ([]models.Comment, error) {
	q := url.Values{
		"part":       {"snippet"},
		"parentId":   {parentID},
		"maxResults": {pageSize},
		"textFormat": {"plainText"},
		"key":        {p.Credential()},
	}

	var resp commentListResponse
	err := p.client.GetJSON(ctx, p.baseURL+"/comments", q, &resp)
	metrics.ObserveUpstream(providerName, metrics.KindReplies, err)
	if err != nil {
		return nil, fmt.Errorf("replies of %s: %w", parentID, err)
	}

	out := make([]models.Comment, 0, len(resp.Items))
	for _, item := range resp.Items {
		out = append(out, models.Comment{
			ID:        item.ID,
			Text:      item.Snippet.TextDisplay,
			Platform:  models.PlatformYouTube,
			Author:    item.Snippet.AuthorDisplayName,
			Likes:     item.Snippet.LikeCount,
			Timestamp: item.Snippet.PublishedAt,
		})
	}
	return out, nil
}
