package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/deepheart/deepheart-api/schema"
)

var (
	// ensembleVerdicts counts verdicts by label, tier and model agreement
	ensembleVerdicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "deepheart_ensemble_verdicts_total",
		Help: "Total ensemble verdicts by label, confidence tier and agreement",
	}, []string{"label", "tier", "agree"})

	// classifierFailures counts uploads rejected because of the classifiers
	classifierFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "deepheart_classifier_failures_total",
		Help: "Total classifier failures by reason",
	}, []string{"reason"})

	// analyticsDuration tracks how long an analytics view takes to build
	analyticsDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "deepheart_analytics_duration_seconds",
		Help:    "Analytics computation duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	}, []string{"view"})

	// analyticsPopulation tracks how many records an analytics request scans
	analyticsPopulation = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "deepheart_analytics_population_records",
		Help:    "Number of records scanned per analytics request",
		Buckets: []float64{0, 10, 50, 100, 500, 1000, 5000},
	})
)

func observeVerdict(v *schema.EnsembleVerdict) {
	ensembleVerdicts.WithLabelValues(
		string(v.Label),
		string(v.ConfidenceTier),
		strconv.FormatBool(v.Agreement.Agree),
	).Inc()
}

func metricsHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
