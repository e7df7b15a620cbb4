package schema

type Label string

const (
	LabelNORM Label = "NORM"
	LabelMI   Label = "MI"
	LabelSTTC Label = "STTC"
	LabelCD   Label = "CD"
	LabelHYP  Label = "HYP"
)

// Labels is the fixed scan order used by every argmax in the system.
var Labels = [5]Label{LabelNORM, LabelMI, LabelSTTC, LabelCD, LabelHYP}

// LabelDescriptions maps a label to its clinical description.
var LabelDescriptions = map[Label]string{
	LabelNORM: "Normal ECG - No significant abnormalities detected",
	LabelMI:   "Myocardial Infarction - Heart attack indicators present",
	LabelSTTC: "ST/T wave changes - May indicate ischemia or other cardiac conditions",
	LabelCD:   "Conduction Disorders - Abnormal electrical conduction patterns",
	LabelHYP:  "Hypertrophy - Enlarged heart chambers detected",
}

func (l Label) Valid() bool {
	switch l {
	case LabelNORM, LabelMI, LabelSTTC, LabelCD, LabelHYP:
		return true
	}
	return false
}

// Description returns the clinical description of a label, or
// "Unknown condition" for anything outside the label set.
func (l Label) Description() string {
	if d, ok := LabelDescriptions[l]; ok {
		return d
	}
	return "Unknown condition"
}
