package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PostFlyerDuration tracks the latency of flyer posting, including the
	// quota check-and-increment.
	PostFlyerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "flyer_post_duration_seconds",
			Help:    "Duration of flyer posting requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
		[]string{"status"}, // success, quota_exceeded, validation_error, failed
	)

	// CounterMutations counts view/reaction increments applied to flyers.
	CounterMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flyer_counter_mutations_total",
			Help: "Number of counter increments applied to flyers",
		},
		[]string{"counter"}, // views, likes, fire, heart
	)

	// StoreRetries counts transient-conflict retries in the command layer.
	StoreRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "flyer_store_retries_total",
			Help: "Number of retried atomic store operations after transient conflicts",
		},
	)
)

func RecordPostFlyerDuration(status string, seconds float64) {
	PostFlyerDuration.WithLabelValues(status).Observe(seconds)
}

func RecordCounterMutation(counter string) {
	CounterMutations.WithLabelValues(counter).Inc()
}
