package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riskibarqy/skauts-stats/internal/platform/resilience"
)

const metricsNamespace = "skauts_stats"

// Metrics records computation, degradation and dependency health series on a
// private registry.
type Metrics struct {
	registry *prometheus.Registry

	computationDuration *prometheus.HistogramVec
	degradedFetches     *prometheus.CounterVec
	stalePasses         *prometheus.CounterVec
	circuitState        *prometheus.GaugeVec
	circuitTransitions  *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	auto := promauto.With(registry)

	return &Metrics{
		registry: registry,
		computationDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "computation",
			Name:      "duration_seconds",
			Help:      "Duration of aggregation passes by view and outcome.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"view", "outcome"}),
		degradedFetches: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "fetch",
			Name:      "degraded_total",
			Help:      "Per-key fetch failures that were degraded instead of failing the view.",
		}, []string{"scope"}),
		stalePasses: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "computation",
			Name:      "stale_total",
			Help:      "Aggregation passes discarded because a newer pass superseded them.",
		}, []string{"view"}),
		circuitState: auto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "circuit",
			Name:      "open",
			Help:      "1 when the named circuit breaker is open or half open.",
		}, []string{"name"}),
		circuitTransitions: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "circuit",
			Name:      "transitions_total",
			Help:      "Circuit breaker state transitions.",
		}, []string{"name", "to"}),
	}
}

func (m *Metrics) ObserveComputation(view, outcome string, elapsed time.Duration) {
	m.computationDuration.WithLabelValues(view, outcome).Observe(elapsed.Seconds())
}

func (m *Metrics) IncDegradedFetch(scope string) {
	m.degradedFetches.WithLabelValues(scope).Inc()
}

func (m *Metrics) IncStalePass(view string) {
	m.stalePasses.WithLabelValues(view).Inc()
}

// CircuitStateListener feeds breaker transitions into the circuit series.
func (m *Metrics) CircuitStateListener() resilience.StateListener {
	return func(name string, _, to resilience.CircuitState) {
		m.circuitTransitions.WithLabelValues(name, string(to)).Inc()
		open := 0.0
		if to != resilience.CircuitStateClosed {
			open = 1
		}
		m.circuitState.WithLabelValues(name).Set(open)
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
