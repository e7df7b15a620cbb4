package schema

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedProbabilities is returned when a probability object does not
// carry exactly the five labels with numeric values.
var ErrMalformedProbabilities = errors.New("malformed class probabilities")

// ClassProbabilities is a 5-class probability vector. Values may be on the
// 0-1 or the 0-100 scale; readers normalise before doing arithmetic.
type ClassProbabilities struct {
	NORM float64 `bson:"norm_prob"`
	MI   float64 `bson:"mi_prob"`
	STTC float64 `bson:"sttc_prob"`
	CD   float64 `bson:"cd_prob"`
	HYP  float64 `bson:"hyp_prob"`
}

// NewClassProbabilities builds a vector from values given in the fixed
// label order.
func NewClassProbabilities(values [5]float64) ClassProbabilities {
	return ClassProbabilities{
		NORM: values[0],
		MI:   values[1],
		STTC: values[2],
		CD:   values[3],
		HYP:  values[4],
	}
}

// Get returns the probability of a label. Unknown labels yield 0.
func (p ClassProbabilities) Get(l Label) float64 {
	switch l {
	case LabelNORM:
		return p.NORM
	case LabelMI:
		return p.MI
	case LabelSTTC:
		return p.STTC
	case LabelCD:
		return p.CD
	case LabelHYP:
		return p.HYP
	}
	return 0
}

// Values returns the probabilities in the fixed label order.
func (p ClassProbabilities) Values() [5]float64 {
	return [5]float64{p.NORM, p.MI, p.STTC, p.CD, p.HYP}
}

// Map returns the probabilities keyed by label.
func (p ClassProbabilities) Map() map[Label]float64 {
	m := make(map[Label]float64, len(Labels))
	for _, l := range Labels {
		m[l] = p.Get(l)
	}
	return m
}

func (p ClassProbabilities) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Map())
}

func (p *ClassProbabilities) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedProbabilities, err)
	}

	var values [5]float64
	for i, l := range Labels {
		v, ok := raw[string(l)]
		if !ok {
			return fmt.Errorf("%w: missing label %s", ErrMalformedProbabilities, l)
		}
		f, ok := v.(float64)
		if !ok {
			return fmt.Errorf("%w: non-numeric value for %s", ErrMalformedProbabilities, l)
		}
		values[i] = f
		delete(raw, string(l))
	}

	for k := range raw {
		return fmt.Errorf("%w: unknown label %s", ErrMalformedProbabilities, k)
	}

	*p = NewClassProbabilities(values)
	return nil
}
