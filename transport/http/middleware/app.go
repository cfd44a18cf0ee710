package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/shared/cache"
	"lodge/shared/constant"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	RequestID(next http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
	CORS() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

// Tracing opens a span per request, named after the matched route.
func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)
		if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil && routeCtx.RoutePattern() != "" {
			spanName = fmt.Sprintf("%s %s", r.Method, routeCtx.RoutePattern())
		}

		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       r.URL.Path,
			"http.method":     r.Method,
			"http.user_agent": a.getUA(r),
			"http.host":       r.Host,
			"http.source":     a.getClientIP(r),
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestID attaches a request id to the context and echoes it back in the
// response headers, keeping an inbound id when the client supplies one.
func (a *appMiddleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constant.RequestHeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), constant.ContextKeyRequestID, requestID)
		w.Header().Set(constant.RequestHeaderRequestID, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CORS builds the CORS middleware from configuration, or a pass-through when
// disabled.
func (a *appMiddleware) CORS() func(http.Handler) http.Handler {
	if !a.config.App.CORS.Enable {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return cors.Handler(cors.Options{
		AllowCredentials: a.config.App.CORS.AllowCredentials,
		AllowedHeaders:   a.config.App.CORS.AllowedHeaders,
		AllowedMethods:   a.config.App.CORS.AllowedMethods,
		AllowedOrigins:   a.config.App.CORS.AllowedOrigins,
		MaxAge:           a.config.App.CORS.MaxAgeSeconds,
	})
}
