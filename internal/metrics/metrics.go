package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_tracker_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gym_tracker_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	MembersRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gym_tracker_members_registered_total",
			Help: "Total number of members registered",
		},
	)

	TrackingDaysGeneratedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gym_tracker_tracking_days_generated_total",
			Help: "Total number of tracking days generated",
		},
	)

	AggregationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_tracker_aggregations_total",
			Help: "Total number of load aggregations performed",
		},
		[]string{"gym"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordRegistration() {
	MembersRegisteredTotal.Inc()
}

func RecordTrackingDay() {
	TrackingDaysGeneratedTotal.Inc()
}

func RecordAggregation(gym string) {
	AggregationsTotal.WithLabelValues(gym).Inc()
}
