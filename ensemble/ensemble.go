package ensemble

import (
	"errors"
	"fmt"
	"math"

	"github.com/deepheart/deepheart-api/schema"
	"github.com/deepheart/deepheart-api/score"
)

var ErrMalformedClassifierOutput = errors.New("malformed classifier output")

// SumTolerance is the relative distance a probability vector may sum away
// from 1 (unit scale) or 100 (percent scale).
const SumTolerance = 0.05

const (
	AgreeNote    = "Both models agree on primary diagnosis"
	DisagreeNote = "Models disagree on primary diagnosis - ensemble used"
)

type tierBound struct {
	min  float64
	tier schema.ConfidenceTier
	note string
}

// tiers are checked from the top. The last bound has no lower limit so every
// percentage in [0, 100] lands in exactly one tier.
var tiers = []tierBound{
	{70, schema.TierHigh, "High confidence in ensemble diagnosis"},
	{50, schema.TierMedium, "Moderate confidence - consider clinical correlation"},
	{30, schema.TierLow, "Low confidence - requires clinical evaluation"},
	{math.Inf(-1), schema.TierVeryLow, "Very low confidence - manual review recommended"},
}

// Tier returns the confidence tier and clinical recommendation for a winning
// probability given in percent.
func Tier(percent float64) (schema.ConfidenceTier, string) {
	for _, t := range tiers {
		if percent >= t.min {
			return t.tier, t.note
		}
	}
	last := tiers[len(tiers)-1]
	return last.tier, last.note
}

// percentValues validates one classifier output and returns its
// probabilities on the 0-100 scale. Any value above 1 marks the vector as
// percent, and the sum must then be close to the scale it claims.
func percentValues(which string, o schema.ClassifierOutput) ([5]float64, error) {
	if !o.Label.Valid() {
		return [5]float64{}, fmt.Errorf("%w: %s classifier reported label %q", ErrMalformedClassifierOutput, which, o.Label)
	}

	values := o.Probabilities.Values()
	percent := false
	sum := float64(0)
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 100 {
			return [5]float64{}, fmt.Errorf("%w: %s classifier probability for %s is %v",
				ErrMalformedClassifierOutput, which, schema.Labels[i], v)
		}
		if v > 1 {
			percent = true
		}
		sum += v
	}

	if sum == 0 {
		return [5]float64{}, fmt.Errorf("%w: %s classifier probabilities are all zero", ErrMalformedClassifierOutput, which)
	}

	scale := float64(1)
	if percent {
		scale = 100
	}
	if math.Abs(sum-scale) > SumTolerance*scale {
		return [5]float64{}, fmt.Errorf("%w: %s classifier probabilities sum to %v on the 0-%v scale",
			ErrMalformedClassifierOutput, which, sum, scale)
	}

	if !percent {
		for i := range values {
			values[i] *= 100
		}
	}
	return values, nil
}

// Combine merges two classifier outputs into one verdict. The averaged
// probabilities are rounded to two decimals on the percent scale and the
// label is their argmax in the fixed label order. Agreement compares the
// labels the classifiers reported themselves.
func Combine(primary, secondary schema.ClassifierOutput) (*schema.EnsembleVerdict, error) {
	a, err := percentValues("primary", primary)
	if err != nil {
		return nil, err
	}
	b, err := percentValues("secondary", secondary)
	if err != nil {
		return nil, err
	}

	var avg [5]float64
	for i := range avg {
		avg[i] = score.Round2((a[i] + b[i]) / 2)
	}

	label, confidence := score.Argmax(avg)
	tier, note := Tier(confidence)

	agreement := schema.ModelAgreement{
		PrimaryLabel:   primary.Label,
		SecondaryLabel: secondary.Label,
		Agree:          primary.Label == secondary.Label,
		Note:           DisagreeNote,
	}
	if agreement.Agree {
		agreement.Note = AgreeNote
	}

	return &schema.EnsembleVerdict{
		Label:          label,
		Confidence:     confidence,
		Probabilities:  schema.NewClassProbabilities(avg),
		Description:    label.Description(),
		ConfidenceTier: tier,
		ClinicalNote:   note,
		Agreement:      agreement,
	}, nil
}
