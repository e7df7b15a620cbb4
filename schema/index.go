package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexEcgRecordCollection())
	panicIfError(m.IndexPredictionCollection())
}

// IndexEcgRecordCollection covers the two access paths of the analytics and
// patient views: doctor by time and patient by time.
func (m *MongoDBIndexer) IndexEcgRecordCollection() error {
	if err := m.createIndex(EcgRecordCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "doctor_id", Value: 1},
			{Key: "ts", Value: 1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(EcgRecordCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "patient_id", Value: 1},
			{Key: "ts", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexPredictionCollection() error {
	return m.createIndex(PredictionCollection, mongo.IndexModel{
		Keys: bson.M{
			"ecg_record_id": 1,
		},
	})
}
