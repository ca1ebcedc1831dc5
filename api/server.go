// Package api provides the HTTP REST API server for NewsNugget.
//
// It exposes endpoints for article, text and feed analysis, an HTML report
// page and a standalone sentiment gauge chart.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/seenimoa/newsnugget/internal/article"
	"github.com/seenimoa/newsnugget/internal/chartdata"
	"github.com/seenimoa/newsnugget/internal/config"
	"github.com/seenimoa/newsnugget/internal/nugget"
	"github.com/seenimoa/newsnugget/internal/report"
)

// Version is reported by the health endpoint. The CLI overrides it at startup.
var Version = "dev"

// maxRequestBody bounds JSON request bodies, pasted article text included.
const maxRequestBody = 5 << 20

// requestTimeout bounds a single analysis request, feed batches included.
const requestTimeout = 2 * time.Minute

// Server is the HTTP API server.
type Server struct {
	router chi.Router
	cfg    *config.Config
	svc    *nugget.Service
	logger *slog.Logger
}

// NewServer creates a configured API server with all routes and middleware.
func NewServer(cfg *config.Config, svc *nugget.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	srv := &Server{
		cfg:    cfg,
		svc:    svc,
		logger: logger,
	}
	srv.router = srv.buildRouter()
	return srv
}

// Router returns the chi router for testing and for embedding in other hosts.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe starts the HTTP server and shuts it down gracefully on
// SIGINT or SIGTERM.
func (s *Server) ListenAndServe(addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: requestTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(done)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("api listening", "addr", addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-done:
	}
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return httpSrv.Shutdown(ctx)
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	// CORS
	origins := []string{"*"}
	if len(s.cfg.API.CORSOrigins) > 0 {
		origins = s.cfg.API.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		// Analysis
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/analyze/text", s.handleAnalyzeText)
		r.Post("/feed", s.handleFeed)

		// Rendering
		r.Get("/report", s.handleReport)
		r.Get("/charts/gauge.svg", s.handleGaugeSVG)

		// Configuration
		r.Get("/config", s.handleGetConfig)
	})

	return r
}

// ============================================================
// Request / Response types
// ============================================================

// APIResponse is the standard JSON envelope.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// AnalyzeRequest is the body for POST /api/v1/analyze.
type AnalyzeRequest struct {
	URL string `json:"url"`
}

// AnalyzeTextRequest is the body for POST /api/v1/analyze/text.
type AnalyzeTextRequest struct {
	Text string `json:"text"`
}

// FeedRequest is the body for POST /api/v1/feed.
type FeedRequest struct {
	URL   string `json:"url"`
	Limit int    `json:"limit,omitempty"` // default: feed.limit from config
}

// ============================================================
// Handlers
// ============================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]any{
			"status":          "ok",
			"version":         Version,
			"time":            time.Now().UTC().Format(time.RFC3339),
			"cached_articles": s.svc.CachedArticles(),
		},
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	n, err := s.svc.AnalyzeURL(r.Context(), req.URL)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: n})
}

func (s *Server) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeTextRequest
	if !decodeBody(w, r, &req) {
		return
	}

	// Empty text is valid and yields the zero result.
	n := s.svc.AnalyzeText(req.Text)
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: n})
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	var req FeedRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}
	if req.Limit < 0 {
		writeError(w, http.StatusBadRequest, "limit must not be negative")
		return
	}
	limit := req.Limit
	if limit == 0 {
		limit = s.cfg.Feed.Limit
	}

	fr, err := s.svc.AnalyzeFeed(r.Context(), req.URL, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: fr})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		writeError(w, http.StatusBadRequest, "url query parameter is required")
		return
	}

	n, err := s.svc.AnalyzeURL(r.Context(), url)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	page, err := report.GenerateHTML(n, s.reportOptions())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(page)) //nolint:errcheck
}

func (s *Server) handleGaugeSVG(w http.ResponseWriter, r *http.Request) {
	score, err := strconv.ParseFloat(r.URL.Query().Get("score"), 64)
	if err != nil || math.IsNaN(score) || score < -1 || score > 1 {
		writeError(w, http.StatusBadRequest, "score must be a number between -1 and 1")
		return
	}
	width := s.cfg.Report.ChartWidth / 2
	if raw := r.URL.Query().Get("width"); raw != "" {
		if width, err = strconv.Atoi(raw); err != nil || width <= 0 {
			writeError(w, http.StatusBadRequest, "width must be a positive integer")
			return
		}
	}

	svg := report.SentimentGauge(chartdata.Gauge(score), width)
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(svg)) //nolint:errcheck
}

func (s *Server) reportOptions() report.Options {
	return report.Options{
		ChartWidth:   s.cfg.Report.ChartWidth,
		SummaryWords: s.cfg.Analysis.SummaryWords,
	}
}

// ============================================================
// Helpers
// ============================================================

// decodeBody parses a JSON request body into v, writing a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// StatusFor maps an analysis error onto an HTTP status code.
func StatusFor(err error) int {
	var (
		verr *article.ValidationError
		ferr *article.FetchError
		perr *article.ParseError
	)
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.As(err, &perr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &ferr):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	writeError(w, StatusFor(err), err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Error:   msg,
	})
}
