package score

import (
	"github.com/deepheart/deepheart-api/schema"
)

// Argmax scans values in the fixed label order NORM, MI, STTC, CD, HYP and
// returns the first strictly greatest one. Exact ties resolve to the
// earliest label. If no value is above zero the result is NORM with 0.
func Argmax(values [5]float64) (schema.Label, float64) {
	label := schema.LabelNORM
	max := float64(0)
	for i, l := range schema.Labels {
		if values[i] > max {
			max = values[i]
			label = l
		}
	}
	return label, max
}

// NormalizedValues returns the probabilities of p on the 0-1 scale in the
// fixed label order.
func NormalizedValues(p schema.ClassProbabilities) [5]float64 {
	values := p.Values()
	for i, v := range values {
		values[i] = Normalize(v)
	}
	return values
}

// Classify derives a label and a 0-1 confidence from a stored probability
// set. It is total: every input yields one of the five labels.
func Classify(p schema.ClassProbabilities) (schema.Label, float64) {
	return Argmax(NormalizedValues(p))
}

// MaxProbability returns the highest normalised probability of p.
func MaxProbability(p schema.ClassProbabilities) float64 {
	_, max := Classify(p)
	return max
}
