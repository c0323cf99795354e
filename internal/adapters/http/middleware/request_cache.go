package middleware

import (
	"net/http"

	"github.com/jsamuelsen11/dosecalc-service/internal/app/reqcache"
)

// RequestCache returns middleware that creates a fresh reqcache.Cache for
// each HTTP request and stores it in the request context. Application
// services retrieve it via reqcache.FromContext(ctx) to memoize downstream
// lookups for the lifetime of the request.
//
// This middleware should be registered after CorrelationID (so the cache
// lives alongside request/correlation IDs) and before OpenTelemetry (so the
// cache is available when tracing begins).
func RequestCache() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := reqcache.WithCache(r.Context(), reqcache.New())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
