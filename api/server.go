// Package api provides the HTTP server for commentlens.
//
// It exposes the analyze endpoint, health and platform status endpoints,
// Prometheus metrics and the embedded web UI.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/seenimoa/commentlens/internal/config"
	"github.com/seenimoa/commentlens/internal/metrics"
	"github.com/seenimoa/commentlens/internal/provider"
	"github.com/seenimoa/commentlens/pkg/models"
	"github.com/seenimoa/commentlens/web"
)

// GenericAnalyzeError is returned when an analysis error carries no message.
const GenericAnalyzeError = "An error occurred while analyzing comments"

// Analyzer runs the comment analysis pipeline for one URL.
type Analyzer interface {
	Analyze(ctx context.Context, rawURL string) (*models.AnalysisResult, error)
}

// Server is the HTTP API server.
type Server struct {
	router   chi.Router
	cfg      *config.Config
	analyzer Analyzer
	registry *provider.Registry
	logger   *slog.Logger
	serveUI  bool // when true, serve the embedded web UI at /
	uiFS     fs.FS
}

// NewServer creates a configured API server with all routes and middleware.
func NewServer(cfg *config.Config, analyzer Analyzer, registry *provider.Registry, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	srv := &Server{
		cfg:      cfg,
		analyzer: analyzer,
		registry: registry,
		logger:   logger,
		serveUI:  true,
	}
	srv.router = srv.buildRouter()
	return srv
}

// SetServeUI controls whether the embedded web UI is served.
// Must be called before ListenAndServe.
func (s *Server) SetServeUI(enabled bool) {
	s.serveUI = enabled
	s.router = s.buildRouter()
}

// SetUIFS replaces the embedded UI bundle. Used by tests.
func (s *Server) SetUIFS(fsys fs.FS) {
	s.uiFS = fsys
	s.router = s.buildRouter()
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe starts the HTTP server and blocks until SIGINT/SIGTERM,
// then drains in-flight requests.
func (s *Server) ListenAndServe(addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(done)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("[API] listening", slog.String("addr", addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-done:
	}
	s.logger.Info("[API] shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return httpSrv.Shutdown(ctx)
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	origins := []string{"*"}
	if s.cfg != nil && len(s.cfg.API.CORSOrigins) > 0 {
		origins = s.cfg.API.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Post("/analyze", s.handleAnalyze)
		r.Get("/platforms", s.handlePlatforms)
	})

	if s.serveUI {
		uiFS := s.uiFS
		if uiFS == nil {
			uiFS = web.DistFS()
		}
		s.mountSPA(r, uiFS)
	}

	return r
}

// requestLogger logs one line per request through slog.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := []any{
				slog.Int("status", status),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("ip", r.RemoteAddr),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("latency", time.Since(start)),
			}
			if rid := middleware.GetReqID(r.Context()); rid != "" {
				fields = append(fields, slog.String("request_id", rid))
			}
			if status >= http.StatusInternalServerError {
				logger.Error("[API] request failed", fields...)
				return
			}
			logger.Info("[API] request processed", fields...)
		})
	}
}

// mountSPA serves the embedded UI as a single-page app. Existing files are
// served directly; every other path falls back to index.html.
func (s *Server) mountSPA(r chi.Router, distFS fs.FS) {
	fileServer := http.FileServerFS(distFS)

	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		rPath := strings.TrimPrefix(r.URL.Path, "/")
		if rPath == "" {
			rPath = "index.html"
		}

		f, err := distFS.Open(rPath)
		if err != nil {
			serveIndexHTML(w, r, distFS)
			return
		}
		f.Close()

		if strings.HasPrefix(rPath, "assets/") {
			w.Header().Set("Cache-Control", "public, max-age=3600")
		} else if strings.HasSuffix(rPath, ".html") {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		}

		fileServer.ServeHTTP(w, r)
	})
}

// serveIndexHTML reads and serves the embedded index.html for SPA fallback.
func serveIndexHTML(w http.ResponseWriter, _ *http.Request, distFS fs.FS) {
	data, err := fs.ReadFile(distFS, "index.html")
	if err != nil {
		http.Error(w, "web UI not available", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}

// ============================================================
// Request / Response types
// ============================================================

// AnalyzeRequest is the body of POST /api/analyze.
type AnalyzeRequest struct {
	URL string `json:"url"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the body of the health endpoints.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// PlatformStatus describes one supported platform and its credential.
type PlatformStatus struct {
	Platform    models.Platform   `json:"platform"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Website     string            `json:"website,omitempty"`
	Configured  bool              `json:"configured"`
	Credential  *config.KeyStatus `json:"credential,omitempty"`
}

// ============================================================
// Handlers
// ============================================================

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	// An empty body decodes as an empty request.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rawURL := strings.TrimSpace(req.URL)
	if rawURL == "" {
		writeError(w, http.StatusBadRequest, "URL is required")
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), rawURL)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = GenericAnalyzeError
		}
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handlePlatforms(w http.ResponseWriter, _ *http.Request) {
	keys := map[string]config.KeyStatus{}
	if s.cfg != nil {
		for _, k := range config.CheckAPIKeys(s.cfg) {
			keys[k.Platform] = k
		}
	}

	out := make([]PlatformStatus, 0, len(models.Platforms))
	for _, p := range models.Platforms {
		st := PlatformStatus{Platform: p, Name: p.DisplayName()}
		if s.registry != nil {
			if prov, err := s.registry.Get(p); err == nil {
				info := prov.Info()
				st.Description = info.Description
				st.Website = info.Website
				st.Configured = prov.Configured()
			}
		}
		if k, ok := keys[p.String()]; ok {
			st.Credential = &k
		}
		out = append(out, st)
	}

	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("[API] failed to write JSON response", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Message: msg})
}
