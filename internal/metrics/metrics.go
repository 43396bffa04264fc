// Package metrics exposes the Prometheus instruments for analysis runs and
// upstream traffic.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
	OutcomeMock  = "mock"
)

// Upstream request kinds.
const (
	KindComments = "comments"
	KindReplies  = "replies"
)

var (
	// AnalyzeRequests counts analysis runs by platform and outcome.
	AnalyzeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "commentlens_analyze_requests_total",
		Help: "Total number of analysis runs by platform and outcome",
	}, []string{"platform", "outcome"})

	// UpstreamRequests counts calls to platform APIs.
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "commentlens_upstream_requests_total",
		Help: "Total number of upstream API requests by platform, kind and outcome",
	}, []string{"platform", "kind", "outcome"})

	MockFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "commentlens_mock_fallbacks_total",
		Help: "Total number of fetches served from mock data",
	}, []string{"platform"})

	CommentsFetched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "commentlens_comments_fetched_total",
		Help: "Total number of comments and replies fetched",
	}, []string{"platform"})

	// AnalyzeDuration records end-to-end analysis latency.
	AnalyzeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "commentlens_analyze_duration_seconds",
		Help:    "Analysis latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"platform"})
)

// ObserveAnalyze records one finished analysis run.
func ObserveAnalyze(platform, outcome string, start time.Time) {
	if platform == "" {
		platform = "unknown"
	}
	AnalyzeRequests.WithLabelValues(platform, outcome).Inc()
	AnalyzeDuration.WithLabelValues(platform).Observe(time.Since(start).Seconds())
}

// ObserveUpstream records one upstream call.
func ObserveUpstream(platform, kind string, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	UpstreamRequests.WithLabelValues(platform, kind, outcome).Inc()
}

// Handler serves the default registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
