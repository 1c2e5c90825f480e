package metrics

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_api_requests_total",
			Help: "Total number of requests issued to the backend API.",
		},
		[]string{"resource", "operation", "outcome"},
	)
	apiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backend_api_request_duration_seconds",
			Help:    "Duration of backend API requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resource", "operation"},
	)

	checkoutAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_attempts_total",
			Help: "Checkout attempts by result; failed attempts carry the failing step.",
		},
		[]string{"result", "step"},
	)
)

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

// ObserveAPIRequest records one outbound call against a backend resource.
// Outcome is "ok", "rejected" or "unavailable".
func ObserveAPIRequest(resource, operation, outcome string, duration time.Duration) {
	apiRequestsTotal.WithLabelValues(resource, operation, outcome).Inc()
	apiRequestDuration.WithLabelValues(resource, operation).Observe(duration.Seconds())
}

func ObserveCheckoutSuccess() {
	checkoutAttemptsTotal.WithLabelValues("success", "").Inc()
}

func ObserveCheckoutFailure(step string) {
	checkoutAttemptsTotal.WithLabelValues("failure", step).Inc()
}

// http.Handler for the Prometheus /metrics endpoint
func Handler() http.Handler {

	return promhttp.Handler()
}
