// Package analyzer runs one analysis: classify the URL, fetch its comment
// thread, score every comment and summarise the labels.
package analyzer

import (
	"context"
	"log/slog"
	"time"

	"github.com/seenimoa/commentlens/internal/analysis/sentiment"
	"github.com/seenimoa/commentlens/internal/metrics"
	"github.com/seenimoa/commentlens/internal/provider"
	"github.com/seenimoa/commentlens/pkg/models"
)

// Fetcher retrieves the comment thread of a classified target.
// *provider.Registry satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, t provider.Target) ([]models.Comment, error)
}

// Analyzer is safe for concurrent use once constructed.
type Analyzer struct {
	fetcher Fetcher
	scorer  *sentiment.Scorer
	timeout time.Duration
	logger  *slog.Logger
}

// New creates an Analyzer. A zero timeout leaves the caller's deadline alone.
func New(fetcher Fetcher, scorer *sentiment.Scorer, timeout time.Duration, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		fetcher: fetcher,
		scorer:  scorer,
		timeout: timeout,
		logger:  logger,
	}
}

// Analyze runs the pipeline for rawURL. Classification and fetch errors
// are returned as the provider package's typed errors.
func (a *Analyzer) Analyze(ctx context.Context, rawURL string) (*models.AnalysisResult, error) {
	start := time.Now()

	target, err := provider.ClassifyURL(rawURL)
	if err != nil {
		a.logger.Warn("[Analyzer] rejected url", slog.String("url", rawURL), slog.Any("error", err))
		metrics.ObserveAnalyze("", metrics.OutcomeError, start)
		return nil, err
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	comments, err := a.fetcher.Fetch(ctx, target)
	if err != nil {
		a.logger.Error("[Analyzer] fetch failed",
			slog.String("platform", target.Platform.String()),
			slog.String("content_id", target.ID),
			slog.Any("error", err),
		)
		metrics.ObserveAnalyze(target.Platform.String(), metrics.OutcomeError, start)
		return nil, err
	}

	scored := a.scorer.ScoreComments(comments)
	result := &models.AnalysisResult{
		Comments: scored,
		Summary:  sentiment.Summarize(scored),
	}

	a.logger.Info("[Analyzer] analysis complete",
		slog.String("platform", target.Platform.String()),
		slog.String("content_id", target.ID),
		slog.Int("total", result.Summary.Total),
		slog.Int("positive", result.Summary.Positive),
		slog.Int("negative", result.Summary.Negative),
		slog.Int("neutral", result.Summary.Neutral),
		slog.Duration("elapsed", time.Since(start)),
	)
	metrics.ObserveAnalyze(target.Platform.String(), metrics.OutcomeOK, start)
	return result, nil
}
