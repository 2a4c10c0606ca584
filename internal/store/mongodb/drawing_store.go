// Package mongodb adapts store.* interfaces onto go.mongodb.org/mongo-driver,
// following the teacher's collection-wrapper repository shape
// (internal/repositories/mongodb/draw_repository.go).
package mongodb

import (
	"context"

	"github.com/bridgetunes/lottery-settlement/internal/models"
	"github.com/bridgetunes/lottery-settlement/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type drawingStore struct {
	collection *mongo.Collection
}

var _ store.DrawingStore = (*drawingStore)(nil)

// NewDrawingStore returns a DrawingStore backed by db's "drawings"
// collection. Callers are expected to have created a unique index on
// (date, time, house, lottery) out of band.
func NewDrawingStore(db *mongo.Database) store.DrawingStore {
	return &drawingStore{collection: db.Collection("drawings")}
}

func (s *drawingStore) UpsertDrawing(ctx context.Context, d models.Drawing) error {
	filter := bson.M{
		"date":    d.Date,
		"time":    d.Time,
		"house":   d.House,
		"lottery": d.Lottery,
	}
	update := bson.M{"$set": d}
	opts := options.Update().SetUpsert(true)
	_, err := s.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

func (s *drawingStore) ListDrawings(ctx context.Context, date string) ([]models.Drawing, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var drawings []models.Drawing
	if err := cursor.All(ctx, &drawings); err != nil {
		return nil, err
	}
	return drawings, nil
}
