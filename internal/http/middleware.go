package http

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/court-finder/internal/http/handlers"
)

// Middleware defines the standard signature for an HTTP middleware.
type Middleware func(http.Handler) http.Handler

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// Chain combines multiple middlewares into a single handler.
// The middlewares are applied in the order they are passed.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// requestIDMiddleware reuses the caller's request id or assigns a new one, and
// echoes it in the response.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), handlers.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// paramsMiddleware handles common query parameters like 'verbose'.
func paramsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Info("incoming request", "method", r.Method, "url", r.URL.String(), "requestID", handlers.RequestIDFromContext(r))
		// Handle 'verbose' for request-scoped verbose logging.
		if r.URL.Query().Get("verbose") == "true" {
			originalLevel := log.GetLevel()
			log.SetLevel(log.DebugLevel)
			// Note: for a long-lived event stream this keeps the level raised until the
			// stream closes.
			defer log.SetLevel(originalLevel)
		}
		next.ServeHTTP(w, r)
	})
}
