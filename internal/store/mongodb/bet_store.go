package mongodb

import (
	"context"
	"time"

	"github.com/bridgetunes/lottery-settlement/internal/models"
	"github.com/bridgetunes/lottery-settlement/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type betStore struct {
	collection *mongo.Collection
}

var _ store.BetStore = (*betStore)(nil)

func NewBetStore(db *mongo.Database) store.BetStore {
	return &betStore{collection: db.Collection("bets")}
}

func (s *betStore) ListPendingBets(ctx context.Context, dateOfPlay string, limit int) ([]models.Bet, error) {
	filter := bson.M{
		"dateOfPlay": dateOfPlay,
		"status":     models.BetPending,
	}
	opts := options.Find().SetSort(bson.M{"_id": 1}).SetLimit(int64(limit))
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bets []models.Bet
	if err := cursor.All(ctx, &bets); err != nil {
		return nil, err
	}
	return bets, nil
}

func (s *betStore) UpdateBetStatus(ctx context.Context, id string, status models.BetStatus, prizeValue *float64) error {
	filter := bson.M{"_id": id, "status": models.BetPending}
	set := bson.M{"status": status, "updatedAt": time.Now().UTC()}
	if prizeValue != nil {
		set["prizeValue"] = *prizeValue
	}
	res, err := s.collection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrConflict
	}
	return nil
}

func (s *betStore) MarkBetsLost(ctx context.Context, ids []string) error {
	filter := bson.M{"_id": bson.M{"$in": ids}, "status": models.BetPending}
	update := bson.M{"$set": bson.M{"status": models.BetLost, "updatedAt": time.Now().UTC()}}
	_, err := s.collection.UpdateMany(ctx, filter, update)
	return err
}
