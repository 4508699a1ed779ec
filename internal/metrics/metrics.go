// Package metrics exposes Prometheus counters for the web tutor.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so several servers (and tests) can run
// in one process.
type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	answers  *prometheus.CounterVec
	resets   prometheus.Counter
	sessions *prometheus.CounterVec
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"method", "endpoint"},
		),
		answers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fractiz_answers_total",
				Help: "Graded submissions by checker category",
			},
			[]string{"category", "level"},
		),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fractiz_resets_total",
			Help: "Score resets",
		}),
		sessions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fractiz_session_cookies_total",
				Help: "Incoming session cookies by outcome",
			},
			[]string{"outcome"},
		),
	}
	m.registry.MustRegister(
		m.requests, m.duration, m.answers, m.resets, m.sessions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry backing Handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveAnswer counts one graded submission.
func (m *Metrics) ObserveAnswer(category, level string) {
	m.answers.WithLabelValues(category, level).Inc()
}

// ObserveReset counts one score reset.
func (m *Metrics) ObserveReset() {
	m.resets.Inc()
}

// ObserveSession counts how an incoming session cookie was handled:
// "new", "valid" or "invalid".
func (m *Metrics) ObserveSession(outcome string) {
	m.sessions.WithLabelValues(outcome).Inc()
}

// Middleware records request count and latency per route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, endpoint, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
