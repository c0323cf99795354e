// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/dosecalc-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/dosecalc-service/internal/adapters/http/middleware"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given (first = outermost).
func NewRouter(
	conversionHandler *handlers.ConversionHandler,
	reagentHandler *handlers.ReagentHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Chain(middlewares...))

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Dosing conversions.
		r.Post("/conversions", conversionHandler.Convert)
		r.Post("/conversions/batch", conversionHandler.ConvertBatch)
		r.Get("/families", conversionHandler.ListFamilies)

		// Reagent registry passthrough.
		r.Get("/reagents", reagentHandler.ListReagents)
		r.Get("/reagents/{name}", reagentHandler.GetReagent)
	})

	return r
}
