package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the eligibility module.
type Metrics struct {
	// Verdicts by status and rejection reason ("" for approvals)
	Verdicts *prometheus.CounterVec

	// Evaluation latency including result building
	EvaluateLatency prometheus.Histogram
}

// New creates the eligibility metrics and registers them with reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Verdicts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "benefitcheck_eligibility_verdicts_total",
			Help: "Total eligibility verdicts by status and rejection reason",
		}, []string{"status", "reason"}),

		EvaluateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "benefitcheck_eligibility_evaluate_duration_seconds",
			Help:    "Duration of eligibility evaluations",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
	}
}

// IncrementVerdict records a verdict.
func (m *Metrics) IncrementVerdict(status, reason string) {
	if m != nil {
		m.Verdicts.WithLabelValues(status, reason).Inc()
	}
}

// ObserveEvaluateLatency records the evaluation duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}
