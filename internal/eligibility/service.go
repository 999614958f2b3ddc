package eligibility

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"benefitcheck/internal/eligibility/metrics"
	"benefitcheck/pkg/requestcontext"
)

const tracerName = "benefitcheck/internal/eligibility"

// Service runs the eligibility policy for transports and records how it went.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics sets the Prometheus collectors. A nil value disables metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// NewService constructs a Service.
func NewService(opts ...Option) *Service {
	s := &Service{
		logger: slog.Default(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Evaluate applies the policy to profile. Applicant answers are health data and
// are never logged; only the verdict is.
func (s *Service) Evaluate(ctx context.Context, profile ApplicantProfile) *EvaluateResult {
	ctx, span := s.tracer.Start(ctx, "eligibility.Evaluate")
	defer span.End()

	start := time.Now()
	verdict := Evaluate(profile)
	result := BuildResult(verdict, requestcontext.Now(ctx))
	s.metrics.ObserveEvaluateLatency(time.Since(start))
	s.metrics.IncrementVerdict(string(verdict.Status), string(verdict.Reason))

	span.SetAttributes(
		attribute.String("eligibility.status", string(verdict.Status)),
		attribute.String("eligibility.reason", string(verdict.Reason)),
	)

	s.logger.InfoContext(ctx, "eligibility evaluated",
		"request_id", requestcontext.RequestID(ctx),
		"trace_id", traceID(span),
		"status", verdict.Status,
		"reason", verdict.Reason,
	)

	return result
}

// traceID is empty when no SDK tracer provider is installed.
func traceID(span trace.Span) string {
	if sc := span.SpanContext(); sc.HasTraceID() {
		return sc.TraceID().String()
	}
	return ""
}
