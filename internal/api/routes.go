package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	canonhttp "github.com/nhalm/canonlog/http"
	"github.com/nhalm/chikit/ratelimit"
	"github.com/nhalm/chikit/ratelimit/store"
	chikitvalidate "github.com/nhalm/chikit/validate"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/yourorg/productsvc/docs" // Generated Swagger docs
)

type RouteConfig struct {
	APIPrefix      string
	APIVersion     string
	ReadRPS        int
	WriteRPS       int
	MaxBodyBytes   int64
	RequestTimeout time.Duration
	AllowedOrigins []string
	// Registry receives the HTTP metrics; a fresh registry is used when nil.
	Registry *prometheus.Registry
}

func DefaultRouteConfig() RouteConfig {
	return RouteConfig{
		APIPrefix:      "/api",
		APIVersion:     "1.0",
		ReadRPS:        100,
		WriteRPS:       20,
		MaxBodyBytes:   1048576,
		RequestTimeout: 60 * time.Second,
		AllowedOrigins: []string{"*"},
	}
}

func (h *Handler) Routes() http.Handler {
	return h.RoutesWithConfig(DefaultRouteConfig())
}

func (h *Handler) RoutesWithConfig(config RouteConfig) http.Handler {
	r := chi.NewRouter()

	registry := config.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	metrics := NewMetrics(registry)

	st := store.NewMemory()

	readLimiter := ratelimit.NewBuilder(st).
		WithName("read").
		WithIP().
		Limit(config.ReadRPS, time.Second)

	writeLimiter := ratelimit.NewBuilder(st).
		WithName("write").
		WithIP().
		Limit(config.WriteRPS, time.Second)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(canonhttp.ChiMiddleware(nil))
	r.Use(chikitvalidate.MaxBodySize(config.MaxBodyBytes))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(config.RequestTimeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", APIVersionHeader},
		ExposedHeaders:   []string{errorKindHeader, processTimeHeader, "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(middleware.StripSlashes)
	r.Use(middleware.Compress(5))
	r.Use(ProcessTime)
	r.Use(metrics.Middleware)

	r.Get("/", Ping)
	r.Get("/health", h.Health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	products := func(r chi.Router) {
		r.Use(RequireAPIVersion(config.APIVersion))

		r.Group(func(r chi.Router) {
			r.Use(readLimiter)
			r.Get("/product", h.GetAllProducts)
			r.Get("/product/{id}", h.GetProduct)
		})

		r.Group(func(r chi.Router) {
			r.Use(writeLimiter)
			r.Post("/product", h.CreateProduct)
			r.Put("/product/{id}", h.UpdateProduct)
			r.Delete("/product/{id}", h.DeleteProduct)
		})
	}

	if prefix := normalizePrefix(config.APIPrefix); prefix == "" {
		r.Group(products)
	} else {
		r.Route(prefix, products)
	}

	return r
}

func ParseAllowedOrigins(originsStr string) []string {
	if originsStr == "" {
		return []string{"*"}
	}
	origins := strings.Split(originsStr, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}

// normalizePrefix returns "/api" for "api", "/api/" or "/api", and "" for "/".
func normalizePrefix(prefix string) string {
	trimmed := strings.Trim(prefix, "/")
	if trimmed == "" {
		return ""
	}
	return "/" + trimmed
}
