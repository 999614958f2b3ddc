package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/sync/errgroup"

	"benefitcheck/internal/eligibility"
	eligibilityhandler "benefitcheck/internal/eligibility/handler"
	eligibilitymetrics "benefitcheck/internal/eligibility/metrics"
	"benefitcheck/internal/platform/config"
	"benefitcheck/internal/platform/httpserver"
	"benefitcheck/internal/platform/logger"
	"benefitcheck/internal/platform/metrics"
	httptransport "benefitcheck/internal/transport/http"
)

// main wires config, observability and the eligibility service behind the
// HTTP router, then serves until SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if err := run(ctx, cfg, log, reg); err != nil {
		log.Error("server stopped with error", "error", err)
		stop()
		os.Exit(1)
	}
	log.Info("benefitcheck stopped")
}

// run serves the API, and the metrics listener when METRICS_ADDR is set, until
// ctx is cancelled or either server fails. A failing server stops the other.
func run(ctx context.Context, cfg config.Server, log *slog.Logger, reg *prometheus.Registry) error {
	// Spans carry trace ids into the logs; no exporter is configured.
	tp := sdktrace.NewTracerProvider(sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())))
	otel.SetTracerProvider(tp)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("tracer provider shutdown failed", "error", err)
		}
	}()

	service := eligibility.NewService(
		eligibility.WithLogger(log),
		eligibility.WithMetrics(eligibilitymetrics.New(reg)),
	)

	routerCfg := httptransport.RouterConfig{
		Logger:         log,
		Metrics:        metrics.New(reg),
		Eligibility:    eligibilityhandler.New(service, log),
		AllowedOrigins: cfg.AllowedOrigins,
		RequestTimeout: cfg.RequestTimeout,
	}
	metricsHandler := httptransport.PrometheusHandler(reg)
	separateMetrics := cfg.MetricsEnabled && cfg.MetricsAddr != ""
	if cfg.MetricsEnabled && !separateMetrics {
		routerCfg.MetricsHandler = metricsHandler
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting benefitcheck",
			"addr", cfg.Addr,
			"env", cfg.Environment,
			"metrics_enabled", cfg.MetricsEnabled,
		)
		srv := httpserver.New(cfg.Addr, httptransport.NewRouter(routerCfg))
		return httpserver.Run(gctx, srv, cfg.ShutdownTimeout)
	})
	if separateMetrics {
		g.Go(func() error {
			log.Info("starting metrics listener", "addr", cfg.MetricsAddr)
			srv := httpserver.New(cfg.MetricsAddr, httptransport.NewMetricsRouter(metricsHandler))
			return httpserver.Run(gctx, srv, cfg.ShutdownTimeout)
		})
	}
	return g.Wait()
}
