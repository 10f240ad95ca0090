// Package metrics expone contadores Prometheus de la API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector agrupa las métricas del proceso.
type Collector struct {
	alertsEmitted *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	httpLatency   *prometheus.HistogramVec
}

// NewCollector crea el Collector y registra las métricas en reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		alertsEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vetstock_alerts_emitted_total",
			Help: "Alertas generadas por tipo (estoque, vacina).",
		}, []string{"type"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vetstock_http_requests_total",
			Help: "Requests HTTP por método, ruta y status.",
		}, []string{"method", "route", "status_code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vetstock_http_request_duration_seconds",
			Help:    "Latencia de requests HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(c.alertsEmitted, c.httpRequests, c.httpLatency)
	return c
}

// AlertEmitted cuenta una alerta persistida.
func (c *Collector) AlertEmitted(alertType string) {
	c.alertsEmitted.WithLabelValues(alertType).Inc()
}

// ObserveHTTP registra status y latencia de una request.
func (c *Collector) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler sirve el registry en formato de exposición Prometheus.
func Handler(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
