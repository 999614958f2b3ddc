package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	eligibilityhandler "benefitcheck/internal/eligibility/handler"
	"benefitcheck/internal/platform/metrics"
	"benefitcheck/internal/platform/middleware"
	dErrors "benefitcheck/pkg/domain-errors"
	"benefitcheck/pkg/platform/httputil"
)

// RouterConfig carries everything NewRouter needs. MetricsHandler may be nil
// to disable the /metrics endpoint.
type RouterConfig struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	MetricsHandler http.Handler
	Eligibility    *eligibilityhandler.Handler
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter wires all public endpoints. Handlers stay thin and delegate to
// domain services so transport concerns remain isolated.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.Recovery(cfg.Logger, cfg.Metrics))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Latency(cfg.Metrics))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(handleNotFound)
	r.Get("/health", handleHealth)
	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	r.Route("/v1", func(v1 chi.Router) {
		v1.Use(chimw.Timeout(cfg.RequestTimeout))
		cfg.Eligibility.Register(v1)
	})
	return r
}

// PrometheusHandler exposes the collectors gathered by g.
func PrometheusHandler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// NewMetricsRouter serves /metrics on a dedicated listener, away from the
// public API and its CORS policy.
func NewMetricsRouter(metricsHandler http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", handleHealth)
	r.Method(http.MethodGet, "/metrics", metricsHandler)
	return r
}

func handleNotFound(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "route not found"))
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
