package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics groups the collectors the server exports on /metrics.
type Metrics struct {
	Registry        *prometheus.Registry
	StoreOperations *prometheus.CounterVec
	StoreFallbacks  *prometheus.CounterVec
	Mutations       *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		StoreOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dadprep",
			Name:      "store_operations_total",
			Help:      "Blob store loads and saves by result.",
		}, []string{"op", "result"}),
		StoreFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dadprep",
			Name:      "store_fallbacks_total",
			Help:      "Loads that fell back to the default collection.",
		}, []string{"collection", "reason"}),
		Mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dadprep",
			Name:      "mutations_total",
			Help:      "Domain mutations by feature, action and result.",
		}, []string{"feature", "action", "result"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dadprep",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	m.Registry.MustRegister(
		m.StoreOperations,
		m.StoreFallbacks,
		m.Mutations,
		m.HTTPDuration,
		collectors.NewGoCollector(),
	)
	return m
}

func (m *Metrics) ObserveStore(op string, err error) {
	if m == nil {
		return
	}
	m.StoreOperations.WithLabelValues(op, result(err)).Inc()
}

func (m *Metrics) ObserveFallback(collection, reason string) {
	if m == nil {
		return
	}
	m.StoreFallbacks.WithLabelValues(collection, reason).Inc()
}

func (m *Metrics) ObserveMutation(feature, action string, err error) {
	if m == nil {
		return
	}
	m.Mutations.WithLabelValues(feature, action, result(err)).Inc()
}

// Middleware records request latency labelled by the matched route pattern.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}
		m.HTTPDuration.
			WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
		return err
	}
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
