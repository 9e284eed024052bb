// Package api wires the HTTP surface of the bridge onto a chi router.
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/matiasleandrokruk/exprmcp/internal/api/handlers"
)

// NewRouter creates and configures a chi router with all routes. Every
// backend error is translated at this boundary into a JSON error response;
// nothing is retried.
func NewRouter(b handlers.Backend, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	rootHandler := handlers.NewRootHandler()
	healthHandler := handlers.NewHealthHandler(b, logger)
	toolsHandler := handlers.NewToolsHandler(b, logger)
	mcpHandler := handlers.NewMCPHandler(b, logger)

	r.Get("/", rootHandler.Metadata)
	r.Get("/health", healthHandler.Check)

	r.Route("/tools", func(r chi.Router) {
		r.Get("/list", toolsHandler.List)
		r.Get("/schema/{name}", toolsHandler.Schema)
		r.Post("/call/{name}", toolsHandler.Call)
	})

	r.Post("/mcp/request", mcpHandler.Request)

	return r
}
