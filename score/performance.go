package score

import (
	"math"
	"time"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"

	"github.com/deepheart/deepheart-api/schema"
)

// The functions in this file approximate model certainty from the shape of
// the predicted distributions. There is no ground truth in this system, so
// none of them is a validated clinical metric and they must not be reported
// as one.

const (
	// uniformPriorMean is the expected probability of each of the five
	// classes under a uniform prior.
	uniformPriorMean = 0.2

	aucProxyBase  = 0.5
	aucProxyScale = 2.5

	// confidentThreshold is the normalised probability above which a
	// prediction counts as confident for sensitivity and specificity.
	confidentThreshold = 0.6
)

// ConfidenceBasedAccuracyProxy is the mean of the per-record maximum
// normalised probability, in percent.
func ConfidenceBasedAccuracyProxy(probs []schema.ClassProbabilities) float64 {
	maxes := make([]float64, 0, len(probs))
	for _, p := range probs {
		maxes = append(maxes, MaxProbability(p))
	}

	mean, err := stats.Mean(maxes)
	if err != nil {
		return 0
	}
	return mean * 100
}

// separation is the variance of a normalised distribution around the
// uniform prior mean.
func separation(p schema.ClassProbabilities) float64 {
	values := NormalizedValues(p)
	diffs := values[:]
	floats.AddConst(-uniformPriorMean, diffs)
	return floats.Dot(diffs, diffs) / float64(len(diffs))
}

// VarianceBasedAUCProxy maps each distribution's separation from uniform to
// [0.5, 1] and averages the result, in percent. More separated
// distributions score higher.
func VarianceBasedAUCProxy(probs []schema.ClassProbabilities) float64 {
	scores := make([]float64, 0, len(probs))
	for _, p := range probs {
		scores = append(scores, math.Min(1, aucProxyBase+aucProxyScale*separation(p)))
	}

	mean, err := stats.Mean(scores)
	if err != nil {
		return 0
	}
	return math.Min(mean*100, 100)
}

// ConfidenceBasedSensitivityProxy is the share, in percent, of records
// classified as anything but NORM whose winning probability exceeds 0.6.
func ConfidenceBasedSensitivityProxy(probs []schema.ClassProbabilities) float64 {
	var confident, total int
	for _, p := range probs {
		label, max := Classify(p)
		if label == schema.LabelNORM {
			continue
		}
		total++
		if max > confidentThreshold {
			confident++
		}
	}

	if total == 0 {
		return 0
	}
	return float64(confident) / float64(total) * 100
}

// ConfidenceBasedSpecificityProxy is the share, in percent, of records
// classified as NORM whose NORM probability exceeds 0.6.
func ConfidenceBasedSpecificityProxy(probs []schema.ClassProbabilities) float64 {
	var confident, total int
	for _, p := range probs {
		label, _ := Classify(p)
		if label != schema.LabelNORM {
			continue
		}
		total++
		if Normalize(p.NORM) > confidentThreshold {
			confident++
		}
	}

	if total == 0 {
		return 0
	}
	return float64(confident) / float64(total) * 100
}

// ModelPerformance bundles the four proxies. An empty population yields
// zeros.
func ModelPerformance(probs []schema.ClassProbabilities, computedAt time.Time) schema.ModelPerformance {
	return schema.ModelPerformance{
		Accuracy:    ConfidenceBasedAccuracyProxy(probs),
		AUC:         VarianceBasedAUCProxy(probs),
		Sensitivity: ConfidenceBasedSensitivityProxy(probs),
		Specificity: ConfidenceBasedSpecificityProxy(probs),
		LastUpdated: computedAt,
	}
}
