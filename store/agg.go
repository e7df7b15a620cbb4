package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/deepheart/deepheart-api/schema"
)

func matchDoctor(doctorID string) bson.M {
	return bson.M{"doctor_id": doctorID}
}

func matchPatient(patientID string, savedOnly bool) bson.M {
	query := bson.M{"patient_id": patientID}
	if savedOnly {
		query["status"] = schema.StatusSavedToPatient
	}
	return query
}

// matchDoctorBetween selects a doctor's records with start <= ts < end.
func matchDoctorBetween(doctorID string, start, end time.Time) bson.M {
	return bson.M{
		"doctor_id": doctorID,
		"ts": bson.M{
			"$gte": start.Unix(),
			"$lt":  end.Unix(),
		},
	}
}

func matchDoctorSince(doctorID string, since time.Time) bson.M {
	return bson.M{
		"doctor_id": doctorID,
		"ts": bson.M{
			"$gte": since.Unix(),
		},
	}
}

// matchPendingSave selects a record that can still move to the saved
// status.
func matchPendingSave(id string) bson.M {
	return bson.M{
		"_id":    id,
		"status": schema.StatusProcessed,
	}
}

func sortByTime(order int) bson.D {
	return bson.D{{Key: "ts", Value: order}}
}
