// Package server exposes the analyzer over a local HTTP API. It serves
// the same hybrid analysis as the CLI, plus health and metrics endpoints.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/avosk/discern/internal/model"
	"github.com/avosk/discern/internal/pipeline"
	"github.com/avosk/discern/internal/worker"
)

// Analyzer is the scoring entry point the server fronts.
type Analyzer interface {
	Analyze(ctx context.Context, req pipeline.Request) (*model.Report, error)
}

// Server is the HTTP API server.
type Server struct {
	analyzer Analyzer
	config   *model.Config
	limiter  *worker.Limiter
	metrics  *metrics
	registry *prometheus.Registry
}

type metrics struct {
	analysesTotal    *prometheus.CounterVec
	analysisDuration prometheus.Histogram
	rejectedTotal    *prometheus.CounterVec
}

// New creates a server around an analyzer.
func New(analyzer Analyzer, cfg *model.Config) *Server {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Server{
		analyzer: analyzer,
		config:   cfg,
		limiter:  worker.NewLimiter(cfg.HTTP.RequestsPerSecond, cfg.HTTP.Burst),
		registry: registry,
		metrics: &metrics{
			analysesTotal: factory.NewCounterVec(prometheus.CounterOpts{
				Name: "discern_analyses_total",
				Help: "Completed analyses by language and threat band.",
			}, []string{"language", "band"}),
			analysisDuration: factory.NewHistogram(prometheus.HistogramOpts{
				Name:    "discern_analysis_duration_seconds",
				Help:    "Wall time of one analysis request.",
				Buckets: prometheus.DefBuckets,
			}),
			rejectedTotal: factory.NewCounterVec(prometheus.CounterOpts{
				Name: "discern_rejected_requests_total",
				Help: "Requests rejected before analysis, by reason.",
			}, []string{"reason"}),
		},
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyse", s.handleAnalyse)
	mux.HandleFunc("POST /analyze", s.handleAnalyse)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return s.rateLimit(mux)
}

// ListenAndServe runs the server until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.HTTP.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.config.HTTP.ReadTimeout,
		WriteTimeout: s.config.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// analyseRequest is the JSON request body.
type analyseRequest struct {
	Text        string   `json:"text"`
	Language    string   `json:"language,omitempty"`
	DensityBias *float64 `json:"density_bias,omitempty"`
	Seed        *int64   `json:"seed,omitempty"`
}

func (s *Server) handleAnalyse(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req analyseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.metrics.rejectedTotal.WithLabelValues("bad_json").Inc()
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON body: %v", err))
		return
	}

	if limit := s.config.Analysis.MaxTextChars; limit > 0 && utf8.RuneCountInString(req.Text) > limit {
		s.metrics.rejectedTotal.WithLabelValues("too_large").Inc()
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("text exceeds %d characters", limit))
		return
	}

	densityBias := s.config.Analysis.DensityBias
	if req.DensityBias != nil {
		densityBias = *req.DensityBias
	}

	report, err := s.analyzer.Analyze(r.Context(), pipeline.Request{
		Text:        req.Text,
		Source:      "api",
		Language:    req.Language,
		DensityBias: densityBias,
		Seed:        req.Seed,
	})
	if err != nil {
		switch {
		case errors.Is(err, model.ErrValidation), errors.Is(err, model.ErrUnsupportedLanguage):
			s.metrics.rejectedTotal.WithLabelValues("invalid").Inc()
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	s.metrics.analysesTotal.WithLabelValues(report.Language, string(report.Band)).Inc()
	s.metrics.analysisDuration.Observe(time.Since(start).Seconds())

	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// rateLimit throttles per client IP.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if !s.limiter.Allow(host) {
			s.metrics.rejectedTotal.WithLabelValues("rate_limited").Inc()
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
