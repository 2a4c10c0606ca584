package mongodb

import (
	"context"

	"github.com/bridgetunes/lottery-settlement/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type oddsStore struct {
	platformOdds *mongo.Collection
	globalOdds   *mongo.Collection
}

var _ store.OddsStore = (*oddsStore)(nil)

func NewOddsStore(db *mongo.Database) store.OddsStore {
	return &oddsStore{
		platformOdds: db.Collection("platform_odds"),
		globalOdds:   db.Collection("global_odds"),
	}
}

func (s *oddsStore) GetMultiplicador(ctx context.Context, platformID, code string) (float64, error) {
	var doc struct {
		Multiplier float64 `bson:"multiplier"`
		Active     bool    `bson:"active"`
	}
	filter := bson.M{"platformId": platformID, "modalityCode": code}
	err := s.platformOdds.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if !doc.Active {
		return 0, nil
	}
	return doc.Multiplier, nil
}

func (s *oddsStore) ListPlatformOdds(ctx context.Context, platformID string) (map[string]float64, error) {
	cursor, err := s.platformOdds.Find(ctx, bson.M{"platformId": platformID, "active": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := map[string]float64{}
	for cursor.Next(ctx) {
		var doc struct {
			ModalityCode string  `bson:"modalityCode"`
			Multiplier   float64 `bson:"multiplier"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out[doc.ModalityCode] = doc.Multiplier
	}
	return out, cursor.Err()
}

func (s *oddsStore) ListGlobalOdds(ctx context.Context) (map[string]float64, error) {
	cursor, err := s.globalOdds.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := map[string]float64{}
	for cursor.Next(ctx) {
		var doc struct {
			ModalityCode string  `bson:"modalityCode"`
			Multiplier   float64 `bson:"multiplier"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out[doc.ModalityCode] = doc.Multiplier
	}
	return out, cursor.Err()
}
