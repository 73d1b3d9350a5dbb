package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus collectors for the service
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsCreatedTotal   prometheus.Counter
	BookingsFailedTotal    prometheus.Counter
	WindowsClaimedTotal    prometheus.Counter
	CacheHitsTotal         *prometheus.CounterVec
	CacheMissesTotal       *prometheus.CounterVec
	ActiveWorkflowSessions prometheus.Gauge
}

// New registers and returns the service collectors
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total HTTP requests by method, path and status code",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration by method and path",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		BookingsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Bookings persisted successfully",
			ConstLabels: constLabels,
		}),

		BookingsFailedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_failed_total",
			Help:        "Booking submissions that failed at the storage boundary",
			ConstLabels: constLabels,
		}),

		WindowsClaimedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "windows_claimed_total",
			Help:        "Available windows moved to pending by a booking",
			ConstLabels: constLabels,
		}),

		CacheHitsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_cache_hits_total",
			Help:        "Availability cache hits by entry kind",
			ConstLabels: constLabels,
		}, []string{"kind"}),

		CacheMissesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_cache_misses_total",
			Help:        "Availability cache misses by entry kind",
			ConstLabels: constLabels,
		}, []string{"kind"}),

		ActiveWorkflowSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "booking_workflow_sessions",
			Help:        "Booking workflow sessions currently alive",
			ConstLabels: constLabels,
		}),
	}
}
