// Package metrics exposes Prometheus instruments for procedure calls.
package metrics

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/c00p75/fitness-league-sub000/internal/rpc"
)

const namespace = "fitness"

type Metrics struct {
	registry *prometheus.Registry
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inflight prometheus.Gauge
}

// New creates the instruments on a private registry so tests can build
// several instances.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "calls_total",
			Help:      "Procedure calls by path and result code.",
		}, []string{"path", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "call_duration_seconds",
			Help:      "Procedure call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Requests currently being served.",
		}),
	}
	m.registry.MustRegister(
		m.calls,
		m.duration,
		m.inflight,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveCall matches rpc.HTTPOptions.Observe.
func (m *Metrics) ObserveCall(path string, code rpc.Code, elapsed time.Duration) {
	m.calls.WithLabelValues(path, string(code)).Inc()
	m.duration.WithLabelValues(path).Observe(elapsed.Seconds())
}

func (m *Metrics) Inflight() fiber.Handler {
	return func(c *fiber.Ctx) error {
		m.inflight.Inc()
		defer m.inflight.Dec()
		return c.Next()
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
