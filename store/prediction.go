package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/deepheart/deepheart-api/schema"
)

// PredictionStore - per model prediction operations
type PredictionStore interface {
	SavePredictions(predictions []schema.Prediction) error
	ListPredictions(ecgRecordID string) ([]schema.Prediction, error)
}

func (m *mongoDB) SavePredictions(predictions []schema.Prediction) error {
	if 0 == len(predictions) {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	docs := make([]interface{}, 0, len(predictions))
	for _, p := range predictions {
		docs = append(docs, p)
	}

	_, err := m.collection(schema.PredictionCollection).InsertMany(ctx, docs)
	return err
}

func (m *mongoDB) ListPredictions(ecgRecordID string) ([]schema.Prediction, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.PredictionCollection).Find(ctx,
		bson.M{"ecg_record_id": ecgRecordID},
		options.Find().SetSort(bson.M{"model_name": 1}),
	)
	if err != nil {
		return nil, err
	}

	predictions := make([]schema.Prediction, 0)
	if err := cursor.All(ctx, &predictions); err != nil {
		return nil, err
	}
	return predictions, nil
}
