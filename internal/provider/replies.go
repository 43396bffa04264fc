package provider

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/seenimoa/commentlens/pkg/models"
)

// DefaultReplyConcurrency bounds reply requests in flight per page.
const DefaultReplyConcurrency = 4

// ReplyFetcher returns the replies to one top-level comment.
type ReplyFetcher func(ctx context.Context, parentID string) ([]models.Comment, error)

// ExpandReplies fetches the replies of every parent with at most limit
// requests in flight. The result lists replies grouped by parent, in the
// order of parentIDs, regardless of completion order. Every reply is marked
// IsReply with ParentID set to its parent. The first error cancels the rest.
func ExpandReplies(ctx context.Context, parentIDs []string, limit int, fetch ReplyFetcher) ([]models.Comment, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultReplyConcurrency
	}

	slots := make([][]models.Comment, len(parentIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, parentID := range parentIDs {
		g.Go(func() error {
			replies, err := fetch(gctx, parentID)
			if err != nil {
				return err
			}
			for j := range replies {
				replies[j].IsReply = true
				replies[j].ParentID = parentID
			}
			slots[i] = replies
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, s := range slots {
		total += len(s)
	}
	out := make([]models.Comment, 0, total)
	for _, s := range slots {
		out = append(out, s...)
	}
	return out, nil
}
