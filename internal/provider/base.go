package provider

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/seenimoa/commentlens/internal/infra"
	"github.com/seenimoa/commentlens/internal/metrics"
	"github.com/seenimoa/commentlens/pkg/models"
)

// BaseProvider carries what every concrete provider shares: metadata, the
// configured credential and the fallback policy. Embed it in providers.
type BaseProvider struct {
	info           Info
	credential     string
	failureMessage string
	logger         *slog.Logger
}

// NewBaseProvider creates a base provider. failureMessage is surfaced when a
// credentialed fetch fails and upstream gave no message of its own.
func NewBaseProvider(info Info, credential, failureMessage string, logger *slog.Logger) BaseProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return BaseProvider{
		info:           info,
		credential:     credential,
		failureMessage: failureMessage,
		logger:         logger,
	}
}

func (bp *BaseProvider) Info() Info { return bp.info }

func (bp *BaseProvider) Configured() bool { return bp.credential != "" }

// Credential returns the configured credential value.
func (bp *BaseProvider) Credential() string { return bp.credential }

// Logger returns the provider's logger.
func (bp *BaseProvider) Logger() *slog.Logger { return bp.logger }

// FetchFunc retrieves the live comment thread for a content id.
type FetchFunc func(ctx context.Context, contentID string) ([]models.Comment, error)

// FetchOrMock applies the fallback policy shared by all providers.
// Without a credential no upstream call is made and mock() is returned.
// With a credential, any failure is returned as *ErrFetchFailed.
func (bp *BaseProvider) FetchOrMock(ctx context.Context, contentID string, fetch FetchFunc, mock func() []models.Comment) ([]models.Comment, error) {
	platform := bp.info.Platform
	tag := "[" + platform.DisplayName() + "]"

	if !bp.Configured() {
		bp.logger.Warn(tag+" no credential configured, serving mock comments",
			slog.String("content_id", contentID),
		)
		metrics.MockFallbacks.WithLabelValues(platform.String()).Inc()
		return mock(), nil
	}

	start := time.Now()
	comments, err := fetch(ctx, contentID)
	if err != nil {
		bp.logger.Error(tag+" fetch failed",
			slog.String("content_id", contentID),
			slog.Any("error", err),
		)
		return nil, &ErrFetchFailed{
			Platform: platform,
			Message:  bp.userMessage(err),
			Err:      err,
		}
	}

	metrics.CommentsFetched.WithLabelValues(platform.String()).Add(float64(len(comments)))
	bp.logger.Info(tag+" fetched comments",
		slog.String("content_id", contentID),
		slog.Int("count", len(comments)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return comments, nil
}

// userMessage prefers the upstream API's own error message.
func (bp *BaseProvider) userMessage(err error) string {
	var ue *infra.UpstreamError
	if errors.As(err, &ue) && ue.Message != "" {
		return ue.Message
	}
	return bp.failureMessage
}

// MockComment is one entry of a provider's canned fallback thread.
type MockComment struct {
	Text   string
	Author string
	Likes  int64
}

// MockComments stamps canned entries with fresh ids and the current time.
// All of them are top-level.
func MockComments(platform models.Platform, entries []MockComment) []models.Comment {
	now := time.Now().UTC().Format(time.RFC3339)
	out := make([]models.Comment, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.Comment{
			ID:        uuid.NewString(),
			Text:      e.Text,
			Platform:  platform,
			Author:    e.Author,
			Likes:     e.Likes,
			Timestamp: now,
		})
	}
	return out
}
