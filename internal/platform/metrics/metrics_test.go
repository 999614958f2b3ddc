package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRequest("/v1/eligibility/evaluate", "POST", "200", 3*time.Millisecond)
	m.ObserveRequest("/health", "GET", "200", time.Millisecond)

	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestLatency))
}

func TestIncrementPanics(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.IncrementPanics()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Panics))
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("/health", "GET", "200", time.Millisecond)
		m.IncrementPanics()
	})
}

func TestNewPanicsOnDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
