// Package server exposes the card renderer over HTTP.
//
// Routes:
//
//	GET /                     service banner (JSON)
//	GET /healthz              liveness probe
//	GET /api/themes           theme names (JSON)
//	GET /api/stats            stats card
//	GET /api/languages        top-languages card
//	GET /api/contributions    activity card (alias: /api/activity)
//
// Card routes take username, theme, bg_color, title_color, text_color,
// border_color and seed; /api/stats also takes hide_stars, hide_commits,
// hide_repos and hide_followers. Upstream failures render the error card
// with status 200 so that embedded badges still display.
package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gitcanvas/gitcanvas/pkg/card"
	"github.com/gitcanvas/gitcanvas/pkg/profile"
)

const (
	// DefaultMaxAge is the Cache-Control max-age for rendered cards.
	DefaultMaxAge = 30 * time.Minute

	shutdownTimeout = 10 * time.Second
)

// Server renders cards for HTTP clients. It is safe for concurrent use.
type Server struct {
	renderer *card.Renderer
	source   profile.Source
	logger   *log.Logger
	maxAge   time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxAge sets the Cache-Control max-age sent with rendered cards.
func WithMaxAge(d time.Duration) Option {
	return func(s *Server) { s.maxAge = d }
}

// New creates a Server that fetches profiles from source and draws them
// with renderer.
func New(renderer *card.Renderer, source profile.Source, opts ...Option) *Server {
	s := &Server{
		renderer: renderer,
		source:   source,
		logger:   log.NewWithOptions(io.Discard, log.Options{}),
		maxAge:   DefaultMaxAge,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed http.Handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleRoot)
	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/themes", s.handleThemes)
		r.Get("/stats", s.handleCard(card.KindStats))
		r.Get("/languages", s.handleCard(card.KindLanguages))
		r.Get("/contributions", s.handleCard(card.KindActivity))
		r.Get("/activity", s.handleCard(card.KindActivity))
	})
	return r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
