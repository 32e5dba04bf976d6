package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Kaneki016/superhomes-website-sub000/internal/core/port"
)

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

func NewServer(listenPort string,
	propertyHandlers *PropertyHandlers,
	agentHandlers *AgentHandlers,
	metaHandlers *MetaHandlers,
	baseLogger port.LoggerPort) *Server {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware(baseLogger)) // logs every request (method, path, duration)
	r.Use(middleware.Recoverer)         // turns panics into 500s so the server stays up

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/properties", func(r chi.Router) {
			r.Get("/", propertyHandlers.SearchProperties)
			r.Get("/slug/{slug}", propertyHandlers.ResolveSlug)
			r.Get("/{propertyID}", propertyHandlers.GetPropertyByID)
		})
		r.Get("/featured", propertyHandlers.GetFeaturedProperties)
		r.Get("/agents", agentHandlers.ListAgents)
		r.Get("/filters/options", metaHandlers.GetFilterOptions)
		r.Post("/region-metrics", metaHandlers.ComputeRegionMetrics)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + listenPort,
			Handler: r,
		},
		logger: baseLogger,
	}
}

// Start runs the HTTP server until it errors or is shut down.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
