package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/deepheart/deepheart-api/schema"
)

var (
	ErrRecordNotFound  = fmt.Errorf("ecg record not found")
	ErrRecordDuplicate = fmt.Errorf("ecg record already exists")
)

// EcgRecordStore - ecg record operations
type EcgRecordStore interface {
	CreateEcgRecord(record schema.EcgRecord) error
	GetEcgRecord(id string) (*schema.EcgRecord, error)
	ListRecordsByDoctor(doctorID string) ([]schema.EcgRecord, error)
	ListRecordsByDoctorBetween(doctorID string, start, end time.Time) ([]schema.EcgRecord, error)
	ListRecordsByPatient(patientID string, savedOnly bool) ([]schema.EcgRecord, error)
	CountRecordsByDoctorSince(doctorID string, since time.Time) (int64, error)
	MarkSavedToPatientRecord(id, notes string) (*schema.EcgRecord, error)
}

// CreateEcgRecord inserts a new record. Records are never replaced.
func (m *mongoDB) CreateEcgRecord(record schema.EcgRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if _, err := m.collection(schema.EcgRecordCollection).InsertOne(ctx, record); err != nil {
		if we, hasErr := err.(mongo.WriteException); hasErr {
			if 1 == len(we.WriteErrors) && DuplicateKeyCode == we.WriteErrors[0].Code {
				return ErrRecordDuplicate
			}
		}
		return err
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("ecg record %s created for doctor %s", record.ID, record.DoctorID)
	return nil
}

func (m *mongoDB) GetEcgRecord(id string) (*schema.EcgRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var record schema.EcgRecord
	if err := m.collection(schema.EcgRecordCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (m *mongoDB) findRecords(query bson.M, order int) ([]schema.EcgRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.EcgRecordCollection).Find(ctx, query, options.Find().SetSort(sortByTime(order)))
	if err != nil {
		return nil, err
	}

	records := make([]schema.EcgRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ListRecordsByDoctor returns every record of a doctor, oldest first
func (m *mongoDB) ListRecordsByDoctor(doctorID string) ([]schema.EcgRecord, error) {
	return m.findRecords(matchDoctor(doctorID), 1)
}

// ListRecordsByDoctorBetween returns the records of a doctor in [start, end)
func (m *mongoDB) ListRecordsByDoctorBetween(doctorID string, start, end time.Time) ([]schema.EcgRecord, error) {
	return m.findRecords(matchDoctorBetween(doctorID, start, end), 1)
}

// ListRecordsByPatient returns the records of a patient, newest first
func (m *mongoDB) ListRecordsByPatient(patientID string, savedOnly bool) ([]schema.EcgRecord, error) {
	return m.findRecords(matchPatient(patientID, savedOnly), -1)
}

func (m *mongoDB) CountRecordsByDoctorSince(doctorID string, since time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	return m.collection(schema.EcgRecordCollection).CountDocuments(ctx, matchDoctorSince(doctorID, since))
}

// MarkSavedToPatientRecord moves a processed record to the saved status.
// The move is one way. Saving an already saved record returns it unchanged.
func (m *mongoDB) MarkSavedToPatientRecord(id, notes string) (*schema.EcgRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	set := bson.M{"status": schema.StatusSavedToPatient}
	if notes != "" {
		set["notes"] = notes
	}

	var record schema.EcgRecord
	err := m.collection(schema.EcgRecordCollection).FindOneAndUpdate(ctx,
		matchPendingSave(id),
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&record)

	switch err {
	case nil:
		return &record, nil
	case mongo.ErrNoDocuments:
		return m.GetEcgRecord(id)
	default:
		return nil, err
	}
}
