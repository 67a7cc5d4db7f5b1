// Package metrics defines the Prometheus collectors for the decision pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline metrics
var (
	// MenuEvaluationsTotal tracks completed pipeline passes by resulting status
	MenuEvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menu_evaluations_total",
			Help: "Completed menu evaluations by freshness status",
		},
		[]string{"status"},
	)

	// MenuEvaluationDuration tracks end-to-end pipeline latency in seconds
	MenuEvaluationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "menu_evaluation_duration_seconds",
			Help:    "Menu evaluation duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)
)

// Feedback metrics
var (
	// FeedbackSubmissionsTotal tracks analyzed feedback by sentiment bucket
	FeedbackSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_submissions_total",
			Help: "Feedback submissions by sentiment bucket",
		},
		[]string{"sentiment"},
	)

	// FeedbackPersistFailures tracks dropped fire-and-forget persistence attempts
	FeedbackPersistFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_persist_failures_total",
			Help: "Feedback persistence attempts that were logged and dropped",
		},
	)
)

// Record store metrics
var (
	// RecordStoreQueryDuration tracks record store query latency by query name
	RecordStoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "record_store_query_duration_seconds",
			Help:    "Record store query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"query"},
	)
)

// SentimentBucket maps a sentiment value to its counter label.
func SentimentBucket(sentiment float64) string {
	switch {
	case sentiment < 0:
		return "negative"
	case sentiment > 0:
		return "positive"
	default:
		return "neutral"
	}
}
