// Package store declares the persistence operations the settlement core
// relies on (spec's external interfaces), following the teacher's
// repository-interface-then-mongodb-implementation layering.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/bridgetunes/lottery-settlement/internal/models"
)

var (
	// ErrNotFound is returned by lookups that find nothing.
	ErrNotFound = errors.New("store: not found")
	// ErrConflict is returned when a conditional write loses a race
	// (e.g. a bet is no longer pending).
	ErrConflict = errors.New("store: conflict")
	// ErrInsufficientFunds mirrors fn_change_balance's non-negativity
	// rejection for non-credit wallet changes.
	ErrInsufficientFunds = errors.New("store: insufficient funds")
)

// DrawingStore is the Result Store Gateway (C3).
type DrawingStore interface {
	// UpsertDrawing inserts or replaces on the (date, time, house, lottery) key.
	UpsertDrawing(ctx context.Context, d models.Drawing) error
	// ListDrawings returns every drawing recorded for date.
	ListDrawings(ctx context.Context, date string) ([]models.Drawing, error)
}

// BetStore exposes the pending-bet queue and terminal-status transitions.
type BetStore interface {
	// ListPendingBets returns pending bets for dateOfPlay, ordered by id,
	// capped at limit.
	ListPendingBets(ctx context.Context, dateOfPlay string, limit int) ([]models.Bet, error)
	// UpdateBetStatus performs a single-bet terminal transition, guarded
	// by a conditional write on status = 'pending'. Returns ErrConflict
	// if the bet was no longer pending.
	UpdateBetStatus(ctx context.Context, id string, status models.BetStatus, prizeValue *float64) error
	// MarkBetsLost is the bulk pending->lost RPC. Implementations must
	// tolerate partial application (some ids already non-pending).
	MarkBetsLost(ctx context.Context, ids []string) error
}

// ChangeBalanceRequest is the argument shape of fn_change_balance.
type ChangeBalanceRequest struct {
	UserID      string
	Amount      float64
	Type        models.LedgerEntryType
	Wallet      string // defaults to "saldo"
	ReferenceID string
	Description string
}

// ChangeBalanceResult is fn_change_balance's success shape.
type ChangeBalanceResult struct {
	BalanceAfter float64
	// Idempotent is true when ChangeBalance recognized a replayed
	// (ReferenceID, Type) pair and returned the prior result without
	// crediting again.
	Idempotent bool
}

// LedgerStore is the atomic wallet/ledger RPC surface (C6's payout path).
type LedgerStore interface {
	// ChangeBalance atomically updates the wallet under row lock and
	// appends a ledger entry. Rejects (ErrInsufficientFunds) if it would
	// violate non-negativity for non-credit types.
	ChangeBalance(ctx context.Context, req ChangeBalanceRequest) (ChangeBalanceResult, error)
	// InsertTransaction appends an audit row, non-atomic with the ledger.
	InsertTransaction(ctx context.Context, tx models.AuditTransaction) error
}

// OddsStore is the modality-odds precedence chain's persistence layer.
type OddsStore interface {
	// GetMultiplicador is fn_get_multiplicador: effective platform
	// multiplier, or 0 if none applies.
	GetMultiplicador(ctx context.Context, platformID, code string) (float64, error)
	ListPlatformOdds(ctx context.Context, platformID string) (map[string]float64, error)
	ListGlobalOdds(ctx context.Context) (map[string]float64, error)
}

// RunStore records SettlementRun audit rows.
type RunStore interface {
	RecordRun(ctx context.Context, run models.SettlementRun) error
}

// Now is a small helper so store implementations stamp timestamps
// consistently; settlement logic itself never calls it directly.
func Now() time.Time { return time.Now().UTC() }
