package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics owns a private registry so several servers can coexist in one process.
type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	scores   *prometheus.HistogramVec
	risks    *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "promptfoundry_http_requests_total",
			Help: "HTTP requests by route and status code.",
		}, []string{"route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "promptfoundry_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		scores: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "promptfoundry_prompt_score",
			Help:    "Normalized prompt scores by origin.",
			Buckets: prometheus.LinearBuckets(60, 5, 9),
		}, []string{"origin"}),
		risks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "promptfoundry_critique_risk_total",
			Help: "Critiques by hallucination risk level.",
		}, []string{"risk"}),
	}
	m.registry.MustRegister(
		m.requests, m.latency, m.scores, m.risks,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *metrics) observeRequest(route string, status int, d time.Duration) {
	m.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(route).Observe(d.Seconds())
}

func (m *metrics) observeScore(origin string, total int) {
	m.scores.WithLabelValues(origin).Observe(float64(total))
}

func (m *metrics) observeRisk(risk string) {
	m.risks.WithLabelValues(risk).Inc()
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
