package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/deepheart/deepheart-api/schema"
)

var (
	recordDay   = time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	testDoctor  = "doctor-test-ecg"
	otherDoctor = "doctor-test-other"
	testPatient = "patient-test-ecg"
)

type EcgRecordTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewEcgRecordTestSuite(connURI, dbName string) *EcgRecordTestSuite {
	return &EcgRecordTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *EcgRecordTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

func fixtureRecord(id, doctorID, patientID, status string, ts time.Time) schema.EcgRecord {
	return schema.EcgRecord{
		ID:            id,
		DoctorID:      doctorID,
		PatientID:     patientID,
		Filename:      id + ".png",
		Status:        status,
		Probabilities: schema.NewClassProbabilities([5]float64{0.7, 0.1, 0.1, 0.05, 0.05}),
		Timestamp:     ts.Unix(),
	}
}

// LoadMongoDBFixtures will preload fixtures into test mongodb
func (s *EcgRecordTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()

	if _, err := s.testDatabase.Collection(schema.EcgRecordCollection).InsertMany(ctx, []interface{}{
		fixtureRecord("record-1", testDoctor, testPatient, schema.StatusProcessed, recordDay.Add(-48*time.Hour)),
		fixtureRecord("record-2", testDoctor, testPatient, schema.StatusSavedToPatient, recordDay.Add(2*time.Hour)),
		fixtureRecord("record-3", testDoctor, "patient-other", schema.StatusProcessed, recordDay.Add(26*time.Hour)),
		fixtureRecord("record-4", otherDoctor, testPatient, schema.StatusProcessed, recordDay),
	}); err != nil {
		return err
	}

	return nil
}

// CleanMongoDB drop the whole test mongodb
func (s *EcgRecordTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *EcgRecordTestSuite) TestCreateAndGetEcgRecord() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	record := fixtureRecord("record-new", testDoctor, "patient-new", schema.StatusProcessed, recordDay.Add(-time.Hour))
	s.NoError(store.CreateEcgRecord(record))

	got, err := store.GetEcgRecord("record-new")
	s.NoError(err)
	s.Equal(record, *got)

	s.Equal(ErrRecordDuplicate, store.CreateEcgRecord(record))
}

func (s *EcgRecordTestSuite) TestGetNonExistentEcgRecord() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.GetEcgRecord("record-none")
	s.Equal(ErrRecordNotFound, err)
}

func (s *EcgRecordTestSuite) TestListRecordsByDoctorBetween() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	records, err := store.ListRecordsByDoctorBetween(testDoctor, recordDay, recordDay.AddDate(0, 0, 1))
	s.NoError(err)
	s.Len(records, 1)
	s.Equal("record-2", records[0].ID)
}

func (s *EcgRecordTestSuite) TestListRecordsByPatientSavedOnly() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	records, err := store.ListRecordsByPatient(testPatient, true)
	s.NoError(err)
	s.Len(records, 1)
	s.Equal("record-2", records[0].ID)

	records, err = store.ListRecordsByPatient(testPatient, false)
	s.NoError(err)
	s.Len(records, 3)
	s.True(records[0].Timestamp >= records[1].Timestamp)
}

func (s *EcgRecordTestSuite) TestCountRecordsByDoctorSince() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	count, err := store.CountRecordsByDoctorSince(otherDoctor, recordDay)
	s.NoError(err)
	s.Equal(int64(1), count)
}

func (s *EcgRecordTestSuite) TestMarkSavedToPatientRecord() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	record, err := store.MarkSavedToPatientRecord("record-3", "reviewed")
	s.NoError(err)
	s.Equal(schema.StatusSavedToPatient, record.Status)
	s.Equal("reviewed", record.Notes)

	// saving again keeps the first notes
	record, err = store.MarkSavedToPatientRecord("record-3", "changed")
	s.NoError(err)
	s.Equal(schema.StatusSavedToPatient, record.Status)
	s.Equal("reviewed", record.Notes)

	_, err = store.MarkSavedToPatientRecord("record-none", "")
	s.Equal(ErrRecordNotFound, err)
}

func (s *EcgRecordTestSuite) TestPredictions() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.NoError(store.SavePredictions([]schema.Prediction{
		{ID: "prediction-1", EcgRecordID: "record-1", ClassName: schema.LabelNORM, Confidence: 70, ModelName: "ResNet"},
		{ID: "prediction-2", EcgRecordID: "record-1", ClassName: schema.LabelMI, Confidence: 55, ModelName: "DenseNet121"},
	}))
	s.NoError(store.SavePredictions(nil))

	predictions, err := store.ListPredictions("record-1")
	s.NoError(err)
	s.Len(predictions, 2)
	s.Equal("DenseNet121", predictions[0].ModelName)
}

// In order for 'go test' to run this suite, we need to create
// a normal test function and pass our suite to s.Run
func TestEcgRecordTestSuite(t *testing.T) {
	connURI := os.Getenv("DEEPHEART_TEST_MONGO")
	if connURI == "" {
		t.Skip("DEEPHEART_TEST_MONGO is not set")
	}
	suite.Run(t, NewEcgRecordTestSuite(connURI, "test-db"))
}
