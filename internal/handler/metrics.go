package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	eventsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "campus_laundry",
			Subsystem: "kafka_consumer",
			Name:      "events_processed_total",
			Help:      "Total number of order change events delivered to local subscribers",
		},
	)

	eventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "campus_laundry",
			Subsystem: "kafka_consumer",
			Name:      "events_failed_total",
			Help:      "Total number of order change events that could not be handled",
		},
	)

	eventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "campus_laundry",
			Subsystem: "kafka_consumer",
			Name:      "events_dlq_total",
			Help:      "Total number of order change events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "campus_laundry",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	eventProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "campus_laundry",
			Subsystem: "kafka_consumer",
			Name:      "event_processing_duration_seconds",
			Help:      "Histogram of order change event processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	eventsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "campus_laundry",
			Subsystem: "kafka_consumer",
			Name:      "events_in_progress",
			Help:      "Number of order change events currently being processed",
		},
	)
)

var activeStreams = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Namespace: "campus_laundry",
		Subsystem: "http",
		Name:      "order_streams_active",
		Help:      "Number of open live order streams",
	},
)

func RegisterMetrics() {
	prometheus.MustRegister(
		eventsProcessed,
		eventsFailed,
		eventsDLQ,
		commitErrors,
		eventProcessingDuration,
		eventsInProgress,

		activeStreams,
	)
}
