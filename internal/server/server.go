package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/kuralverse/thirukural-api/internal/config"
	"github.com/kuralverse/thirukural-api/internal/explainer"
	"github.com/kuralverse/thirukural-api/internal/kural"
)

type Server struct {
	cfg       config.ServerConfig
	router    *chi.Mux
	server    *http.Server
	explainer *explainer.Service
	store     *kural.Store
}

func New(cfg *config.Config, svc *explainer.Service, store *kural.Store) *Server {
	s := &Server{
		cfg:       cfg.Server,
		router:    chi.NewRouter(),
		explainer: svc,
		store:     store,
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(30 * time.Second))

	// Permissive CORS; tighten origins in production deployments.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	s.router.Get("/", s.handleHealth)
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/random", s.handleRandom)
		r.Route("/v1/thirukural", func(r chi.Router) {
			r.Post("/analyze", s.handleAnalyze)
			r.Get("/random", s.handleRandom)
		})
	})
}

// Run starts the server and blocks until it fails or the process receives an
// interrupt, in which case outstanding requests get a drain deadline.
func (s *Server) Run() error {
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("starting server", "address", s.server.Addr)
		serverErrors <- s.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		slog.Info("starting shutdown", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}

	return nil
}
