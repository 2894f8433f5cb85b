package httpserver

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registered once on the default registry, next to the apicache collectors
// that cmd/server adds there.
var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Gateway HTTP requests by method, route and status",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Gateway HTTP request latencies in seconds, upstream calls included",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15},
		},
		[]string{"method", "endpoint"},
	)

	metricsHandler = promhttp.Handler()
)

// GetRequestsTotal returns the requests total metric for middleware use
func GetRequestsTotal() *prometheus.CounterVec {
	return requestsTotal
}

// GetRequestDuration returns the request duration metric for middleware use
func GetRequestDuration() *prometheus.HistogramVec {
	return requestDuration
}

// LogMetricsInitialization logs the series served on /metrics.
func (s *Server) LogMetricsInitialization() {
	if s.logger != nil {
		s.logger.WithFields(map[string]interface{}{
			"http_requests_total":           "requests by method, endpoint, status",
			"http_request_duration_seconds": "latency by method, endpoint",
			"apicache_lookups_total":        "response cache reads by result",
			"metrics_endpoint":              "/metrics",
		}).Debug("Prometheus metrics available")
	}
}

func (s *Server) metricsEndpoint(c echo.Context) error {
	metricsHandler.ServeHTTP(c.Response(), c.Request())
	return nil
}
