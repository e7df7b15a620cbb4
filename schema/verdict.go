package schema

// ClassifierOutput is what a single external classifier reports for one
// image. Label is the classifier's own argmax and may disagree with a
// recomputation from Probabilities.
type ClassifierOutput struct {
	Label         Label              `json:"classification"`
	Confidence    float64            `json:"confidence"`
	Probabilities ClassProbabilities `json:"probabilities"`
	Model         string             `json:"model,omitempty"`
}

type ConfidenceTier string

const (
	TierHigh    ConfidenceTier = "High"
	TierMedium  ConfidenceTier = "Medium"
	TierLow     ConfidenceTier = "Low"
	TierVeryLow ConfidenceTier = "Very Low"
)

// ModelAgreement reports whether the two classifiers named the same label.
type ModelAgreement struct {
	PrimaryLabel   Label  `json:"primary_label"`
	SecondaryLabel Label  `json:"secondary_label"`
	Agree          bool   `json:"models_agree"`
	Note           string `json:"agreement_note"`
}

// EnsembleVerdict is the combined clinical classification of one upload.
// Probabilities and Confidence are on the 0-100 scale.
type EnsembleVerdict struct {
	Label          Label              `json:"classification"`
	Confidence     float64            `json:"confidence"`
	Probabilities  ClassProbabilities `json:"probabilities"`
	Description    string             `json:"description"`
	ConfidenceTier ConfidenceTier     `json:"confidence_level"`
	ClinicalNote   string             `json:"clinical_recommendation"`
	Agreement      ModelAgreement     `json:"model_agreement"`
}

// UnitProbabilities returns the averaged probabilities on the 0-1 scale,
// which is the scale records are persisted with.
func (v EnsembleVerdict) UnitProbabilities() ClassProbabilities {
	values := v.Probabilities.Values()
	for i := range values {
		values[i] /= 100
	}
	return NewClassProbabilities(values)
}
