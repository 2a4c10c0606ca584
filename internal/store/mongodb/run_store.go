package mongodb

import (
	"context"

	"github.com/bridgetunes/lottery-settlement/internal/models"
	"github.com/bridgetunes/lottery-settlement/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type runStore struct {
	collection *mongo.Collection
}

var _ store.RunStore = (*runStore)(nil)

func NewRunStore(db *mongo.Database) store.RunStore {
	return &runStore{collection: db.Collection("settlement_runs")}
}

func (s *runStore) RecordRun(ctx context.Context, run models.SettlementRun) error {
	if run.ID == "" {
		run.ID = primitive.NewObjectID().Hex()
	}
	_, err := s.collection.InsertOne(ctx, run)
	return err
}
