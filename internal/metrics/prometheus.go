package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sigil-03/interlock/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Metric registration is deferred until the first recording so that creating
// a collector never panics on duplicate registration before it is used.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	stateTransitions *prometheus.CounterVec
	clearAttempts    *prometheus.CounterVec
	latchActive      prometheus.Gauge
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "interlock" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "interlock"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.stateTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "latch",
			Name:      "state_transitions_total",
			Help:      "Total latch state transitions by from/to state.",
		}, []string{"from", "to"})

		p.clearAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "latch",
			Name:      "clear_attempts_total",
			Help:      "Total clear confirmation attempts by result (success|failure).",
		}, []string{"result"})

		p.latchActive = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "latch",
			Name:      "active",
			Help:      "Current latch position (1=active, 0=inactive).",
		})

		p.reg.MustRegister(p.stateTransitions)
		p.reg.MustRegister(p.clearAttempts)
		p.reg.MustRegister(p.latchActive)
	})
}

// RecordStateTransition increments the transition counter for the state pair.
func (p *PrometheusCollector) RecordStateTransition(from, to types.State) {
	p.ensureRegistered()
	p.stateTransitions.WithLabelValues(from.String(), to.String()).Inc()
}

// RecordClearAttempt increments the clear attempt counter by result.
func (p *PrometheusCollector) RecordClearAttempt(success bool) {
	p.ensureRegistered()
	result := "failure"
	if success {
		result = "success"
	}
	p.clearAttempts.WithLabelValues(result).Inc()
}

// SetLatchActive sets the latch position gauge (1 active, 0 inactive).
func (p *PrometheusCollector) SetLatchActive(active bool) {
	p.ensureRegistered()
	if active {
		p.latchActive.Set(1)
	} else {
		p.latchActive.Set(0)
	}
}
