package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total de peticiones HTTP",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duración de las peticiones HTTP en segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	consumptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spog_consumptions_total",
			Help: "Consumos registrados por resultado (ok, insufficient_stock, unit_mismatch, invalid)",
		},
		[]string{"outcome"},
	)
)

// recordConsumption registra el resultado de un intento de consumo.
func recordConsumption(outcome string) {
	consumptionsTotal.WithLabelValues(outcome).Inc()
}

// PrometheusMetrics middleware de Fiber que cuenta y cronometra las peticiones
// por ruta registrada (no por URL cruda, para acotar la cardinalidad).
func PrometheusMetrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		if path == "" {
			path = "unknown"
		}
		status := strconv.Itoa(c.Response().StatusCode())

		httpRequestsTotal.WithLabelValues(c.Method(), path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Method(), path, status).Observe(time.Since(start).Seconds())
		return err
	}
}

// MetricsHandler expone el registro Prometheus en formato de texto.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
