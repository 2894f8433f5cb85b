package apicache

import "github.com/prometheus/client_golang/prometheus"

// InvalidationKind labels how entries were removed on purpose.
type InvalidationKind string

const (
	InvalidateKey    InvalidationKind = "key"
	InvalidatePrefix InvalidationKind = "prefix"
)

// Metrics receives store events. Calls happen while the store lock is held,
// so implementations must not call back into the store.
type Metrics interface {
	Hit()
	Miss()
	Expire()
	Invalidate(kind InvalidationKind)
	Entries(n int)
}

// NoopMetrics discards every event.
type NoopMetrics struct{}

func (NoopMetrics) Hit()                        {}
func (NoopMetrics) Miss()                       {}
func (NoopMetrics) Expire()                     {}
func (NoopMetrics) Invalidate(InvalidationKind) {}
func (NoopMetrics) Entries(int)                 {}

// PrometheusMetrics exports store events as Prometheus series.
type PrometheusMetrics struct {
	lookups       *prometheus.CounterVec
	invalidations *prometheus.CounterVec
	entries       prometheus.Gauge
}

// NewPrometheusMetrics creates the cache collectors and registers them on reg.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "apicache_lookups_total",
				Help: "Cache reads by result (hit, miss, expired)",
			},
			[]string{"result"},
		),
		invalidations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "apicache_invalidations_total",
				Help: "Explicit cache invalidations by kind (key, prefix)",
			},
			[]string{"kind"},
		),
		entries: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "apicache_entries",
				Help: "Entries currently held, including expired entries not yet read",
			},
		),
	}
	reg.MustRegister(m.lookups, m.invalidations, m.entries)
	return m
}

func (m *PrometheusMetrics) Hit()    { m.lookups.WithLabelValues("hit").Inc() }
func (m *PrometheusMetrics) Miss()   { m.lookups.WithLabelValues("miss").Inc() }
func (m *PrometheusMetrics) Expire() { m.lookups.WithLabelValues("expired").Inc() }

func (m *PrometheusMetrics) Invalidate(kind InvalidationKind) {
	m.invalidations.WithLabelValues(string(kind)).Inc()
}

func (m *PrometheusMetrics) Entries(n int) { m.entries.Set(float64(n)) }
