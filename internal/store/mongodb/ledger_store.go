package mongodb

import (
	"context"
	"time"

	"github.com/bridgetunes/lottery-settlement/internal/models"
	"github.com/bridgetunes/lottery-settlement/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ledgerStore struct {
	client  *mongo.Client
	wallets *mongo.Collection
	ledger  *mongo.Collection
	audit   *mongo.Collection
}

var _ store.LedgerStore = (*ledgerStore)(nil)

// NewLedgerStore returns a LedgerStore backed by db's "wallets", "ledger"
// and "audit_transactions" collections. client is the same client db was
// opened from; it is needed to start the multi-document transaction that
// makes ChangeBalance atomic (fn_change_balance's row-lock semantics).
func NewLedgerStore(client *mongo.Client, db *mongo.Database) store.LedgerStore {
	return &ledgerStore{
		client:  client,
		wallets: db.Collection("wallets"),
		ledger:  db.Collection("ledger_entries"),
		audit:   db.Collection("audit_transactions"),
	}
}

func (s *ledgerStore) ChangeBalance(ctx context.Context, req store.ChangeBalanceRequest) (store.ChangeBalanceResult, error) {
	wallet := req.Wallet
	if wallet == "" {
		wallet = "saldo"
	}

	session, err := s.client.StartSession()
	if err != nil {
		return store.ChangeBalanceResult{}, err
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		// Idempotency guard: a settlement re-run after a mid-commit crash
		// replays the same (referenceId, type) pair. If the credit already
		// landed, return the existing balance instead of paying twice.
		if req.ReferenceID != "" {
			var existing models.LedgerEntry
			err := s.ledger.FindOne(sessCtx, bson.M{
				"referenceId": req.ReferenceID,
				"type":        req.Type,
			}).Decode(&existing)
			if err == nil {
				var wdoc struct {
					Balance float64 `bson:"balance"`
				}
				if werr := s.wallets.FindOne(sessCtx, bson.M{"userId": req.UserID, "wallet": wallet}).Decode(&wdoc); werr == nil {
					return store.ChangeBalanceResult{BalanceAfter: wdoc.Balance, Idempotent: true}, nil
				}
				return store.ChangeBalanceResult{BalanceAfter: existing.Amount, Idempotent: true}, nil
			} else if err != mongo.ErrNoDocuments {
				return nil, err
			}
		}

		filter := bson.M{"userId": req.UserID, "wallet": wallet}
		if req.Amount < 0 {
			// Belt-and-braces row lock: the conditional filter below
			// also guards non-negativity for debit-type changes, which
			// this domain never issues from settlement but the ledger
			// RPC contract still enforces.
			filter["balance"] = bson.M{"$gte": -req.Amount}
		}
		update := bson.M{"$inc": bson.M{"balance": req.Amount}}
		opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

		res := s.wallets.FindOneAndUpdate(sessCtx, filter, update, opts)
		var doc struct {
			Balance float64 `bson:"balance"`
		}
		balanceBefore := 0.0
		if err := res.Decode(&doc); err != nil {
			if err == mongo.ErrNoDocuments {
				if req.Amount < 0 {
					return nil, store.ErrInsufficientFunds
				}
				// First balance change for this wallet: treat as 0 -> amount.
				if _, err := s.wallets.InsertOne(sessCtx, bson.M{
					"userId": req.UserID, "wallet": wallet, "balance": req.Amount,
				}); err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		} else {
			balanceBefore = doc.Balance
		}

		entry := models.LedgerEntry{
			ID:          primitive.NewObjectID().Hex(),
			UserID:      req.UserID,
			Amount:      req.Amount,
			Type:        req.Type,
			Wallet:      wallet,
			ReferenceID: req.ReferenceID,
			Description: req.Description,
			CreatedAt:   time.Now().UTC(),
		}
		if _, err := s.ledger.InsertOne(sessCtx, entry); err != nil {
			return nil, err
		}

		return store.ChangeBalanceResult{BalanceAfter: balanceBefore + req.Amount}, nil
	})
	if err != nil {
		return store.ChangeBalanceResult{}, err
	}
	return result.(store.ChangeBalanceResult), nil
}

func (s *ledgerStore) InsertTransaction(ctx context.Context, tx models.AuditTransaction) error {
	if tx.ID == "" {
		tx.ID = primitive.NewObjectID().Hex()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now().UTC()
	}
	_, err := s.audit.InsertOne(ctx, tx)
	return err
}
