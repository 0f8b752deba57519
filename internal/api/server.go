package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/nkngn/payment-router/internal/metrics"
	"github.com/nkngn/payment-router/internal/router"
)

// Config holds server configuration
type Config struct {
	Log            zerolog.Logger
	Router         *router.PaymentRouter
	Metrics        *metrics.Metrics
	Addr           string
	AllowedOrigins []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
}

// Server represents the HTTP server
type Server struct {
	mux     *chi.Mux
	server  *http.Server
	log     zerolog.Logger
	router  *router.PaymentRouter
	metrics *metrics.Metrics
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		mux:     chi.NewRouter(),
		log:     cfg.Log.With().Str("component", "server").Logger(),
		router:  cfg.Router,
		metrics: cfg.Metrics,
	}

	s.setupMiddleware(cfg.AllowedOrigins)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

func (s *Server) setupMiddleware(allowedOrigins []string) {
	s.mux.Use(middleware.Recoverer)
	s.mux.Use(middleware.RequestID)
	s.mux.Use(middleware.RealIP)
	s.mux.Use(s.loggingMiddleware)

	s.mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.mux.Get("/healthz", s.handleHealth)
	if s.metrics != nil {
		s.mux.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	s.mux.Route("/api", func(r chi.Router) {
		r.Post("/routes/best", s.handleBestRoute)
		r.Get("/currencies", s.handleCurrencies)
		r.Get("/currencies/{currency}/corridors", s.handleCorridors)
	})
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
