/*
© 2025–present tlocal contributors
ISC License
*/

package tlocal

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes optional Prometheus instrumentation for the package's
// internal maintenance operations. A nil *Metrics (the default) makes
// every method a no-op, so instrumentation is opt-in and costs nothing
// when unused.
type Metrics struct {
	resizes         prometheus.Counter
	expungedEntries prometheus.Counter
	activeMaps      prometheus.Gauge
	inheritedMaps   prometheus.Counter
}

// NewMetrics registers this package's counters and gauge with reg and
// returns a *Metrics that reports to them. Pass the result to
// [SetMetrics] to activate instrumentation.
func NewMetrics(reg prometheus.Registerer) (m *Metrics) {
	m = &Metrics{
		resizes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tlocal",
			Name:      "resizes_total",
			Help:      "Number of PerThreadMap table doublings.",
		}),
		expungedEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tlocal",
			Name:      "expunged_entries_total",
			Help:      "Number of stale entries removed from PerThreadMaps.",
		}),
		activeMaps: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tlocal",
			Name:      "active_maps",
			Help:      "Number of threads currently holding a PerThreadMap.",
		}),
		inheritedMaps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tlocal",
			Name:      "inherited_maps_total",
			Help:      "Number of maps created via SpawnInherited.",
		}),
	}
	reg.MustRegister(m.resizes, m.expungedEntries, m.activeMaps, m.inheritedMaps)
	return
}

// activeMetrics is the process-wide instrumentation target, nil until
// [SetMetrics] is called.
var activeMetrics *Metrics

// SetMetrics installs m as the package's instrumentation target.
// Passing nil disables instrumentation.
func SetMetrics(m *Metrics) { activeMetrics = m }

func (m *Metrics) incResize() {
	if m == nil {
		return
	}
	m.resizes.Inc()
}

func (m *Metrics) addExpunged(n int) {
	if m == nil || n == 0 {
		return
	}
	m.expungedEntries.Add(float64(n))
}

func (m *Metrics) setActiveMaps(n int) {
	if m == nil {
		return
	}
	m.activeMaps.Set(float64(n))
}

func (m *Metrics) incInherited() {
	if m == nil {
		return
	}
	m.inheritedMaps.Inc()
}
