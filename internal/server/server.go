// Package server exposes the extraction pipeline over HTTP. One POST route
// per document family accepts a multipart PDF upload and returns the
// structured record as JSON.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/ppiankov/identia/internal/cache"
	"github.com/ppiankov/identia/internal/model"
	"github.com/ppiankov/identia/internal/ocr"
	"github.com/ppiankov/identia/internal/pipeline"
)

// Server serves the extraction HTTP API.
type Server struct {
	cfg       model.ServerConfig
	ocrCfg    model.OCRConfig
	log       zerolog.Logger
	extractor *pipeline.Extractor
	source    ocr.TextSource
	cache     cache.Cache
	cacheTTL  time.Duration
	metrics   *Metrics
	registry  *prometheus.Registry
}

// Option customizes a Server.
type Option func(*Server)

// WithCache enables OCR-text caching with the given TTL. A nil cache
// leaves caching off.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(s *Server) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

// WithLanguages overrides the per-family OCR language strings. Empty
// fields fall back to the profile defaults.
func WithLanguages(cfg model.OCRConfig) Option {
	return func(s *Server) {
		s.ocrCfg = cfg
	}
}

// New builds a Server over the given extractor and OCR text source.
func New(cfg model.ServerConfig, log zerolog.Logger, extractor *pipeline.Extractor, source ocr.TextSource, opts ...Option) *Server {
	registry := prometheus.NewRegistry()
	s := &Server{
		cfg:       cfg,
		log:       log,
		extractor: extractor,
		source:    source,
		metrics:   NewMetrics(registry),
		registry:  registry,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router assembles the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.RequestTimeout))
	r.Use(NewClientLimiter(s.cfg.RateLimit, s.cfg.RateBurst).Middleware)

	r.Post("/extract_aadhaar", s.handleExtract(model.DocumentAadhaar))
	r.Post("/extract_pan", s.handleExtract(model.DocumentPAN))
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.Router(),

		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.log.Info().Msg("shutting down")
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
