package kernelmetrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the kernel's instruments on a private Prometheus
// registry, so tests and embedders never collide with the global default
// registry.
type Metrics struct {
	registry *prometheus.Registry

	pluginsLoaded   prometheus.Counter
	pluginsRejected prometheus.Counter
	planLength      prometheus.Histogram
	invocationTime  *prometheus.HistogramVec
}

// New creates and registers the kernel's instruments.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		pluginsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "skanujkod_plugins_loaded_total",
			Help: "Plugins that passed loading and validation.",
		}),
		pluginsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "skanujkod_plugins_rejected_total",
			Help: "Plugin candidates rejected during loading or validation.",
		}),
		planLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "skanujkod_plan_length",
			Help:    "Number of plugin functions in each execution plan.",
			Buckets: prometheus.LinearBuckets(1, 2, 10),
		}),
		invocationTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "skanujkod_invocation_duration_seconds",
			Help:    "Wall-clock duration of each plugin-function invocation.",
			Buckets: prometheus.DefBuckets,
		}, []string{"qid"}),
	}

	m.registry.MustRegister(m.pluginsLoaded, m.pluginsRejected, m.planLength, m.invocationTime)
	return m
}

// PluginsLoaded records n successfully loaded plugins.
func (m *Metrics) PluginsLoaded(n int) { m.pluginsLoaded.Add(float64(n)) }

// PluginsRejected records n rejected plugin candidates.
func (m *Metrics) PluginsRejected(n int) { m.pluginsRejected.Add(float64(n)) }

// ObservePlan records the length of a freshly built execution plan.
func (m *Metrics) ObservePlan(length int) { m.planLength.Observe(float64(length)) }

// ObserveInvocation records one plugin-function invocation's duration.
func (m *Metrics) ObserveInvocation(qid string, seconds float64) {
	m.invocationTime.WithLabelValues(qid).Observe(seconds)
}

// Handler returns an http.Handler serving the metrics in the Prometheus
// text exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Gather exposes the underlying registry's gather function for tests.
func (m *Metrics) Gather() prometheus.Gatherer { return m.registry }
