package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StatsFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wrapped_stats_fetch_total",
		Help: "Stats service requests by outcome",
	}, []string{"outcome"})

	QuizAnswersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wrapped_quiz_answers_total",
		Help: "Quiz answers by correctness",
	}, []string{"correct"})

	ImagesComposedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wrapped_images_composed_total",
		Help: "Total number of share images composed",
	})

	ShareActionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wrapped_share_actions_total",
		Help: "Share actions by kind",
	}, []string{"action"})

	PreviewBlobsLive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wrapped_preview_blobs_live",
		Help: "Number of image blobs currently published by the preview server",
	})
)

// Outcome labels for StatsFetchTotal.
const (
	OutcomeOK         = "ok"
	OutcomeValidation = "validation"
	OutcomeService    = "service"
	OutcomeNetwork    = "network"
)
