package schema

import (
	"time"
)

const (
	EcgRecordCollection  = "ecgRecord"
	PredictionCollection = "prediction"
)

const (
	StatusProcessed      = "Processed"
	StatusSavedToPatient = "Saved to Patient Record"
)

// EcgRecord is one processed upload. Probabilities hold the ensemble
// average; new records are written on the 0-1 scale but older rows may be
// on the 0-100 scale.
type EcgRecord struct {
	ID            string             `json:"id" bson:"_id"`
	PatientID     string             `json:"patient_id" bson:"patient_id"`
	DoctorID      string             `json:"doctor_id" bson:"doctor_id"`
	Filename      string             `json:"file_name" bson:"filename"`
	Status        string             `json:"status" bson:"status"`
	Notes         string             `json:"notes,omitempty" bson:"notes,omitempty"`
	Probabilities ClassProbabilities `json:"probabilities" bson:"probabilities"`
	Timestamp     int64              `json:"ts" bson:"ts"`
}

// Time returns the upload time of the record.
func (r EcgRecord) Time() time.Time {
	return time.Unix(r.Timestamp, 0)
}

// Prediction keeps a single classifier's opinion on a record.
type Prediction struct {
	ID          string  `json:"id" bson:"_id"`
	EcgRecordID string  `json:"ecg_record_id" bson:"ecg_record_id"`
	ClassName   Label   `json:"class_name" bson:"class_name"`
	Confidence  float64 `json:"confidence" bson:"confidence"`
	ModelName   string  `json:"model_name" bson:"model_name"`
}
