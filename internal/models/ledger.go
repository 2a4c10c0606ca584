package models

import "time"

type LedgerEntryType string

const (
	LedgerPrize  LedgerEntryType = "prize"
	LedgerRefund LedgerEntryType = "refund"
)

// LedgerEntry is an append-only record of a monetary effect on a user
// wallet. Produced only by the ledger store's atomic balance-change
// operation, never written directly by the settlement orchestrator.
type LedgerEntry struct {
	ID          string          `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      string          `bson:"userId" json:"userId"`
	Amount      float64         `bson:"amount" json:"amount"`
	Type        LedgerEntryType `bson:"type" json:"type"`
	Wallet      string          `bson:"wallet" json:"wallet"`
	ReferenceID string          `bson:"referenceId" json:"referenceId"`
	Description string          `bson:"description" json:"description"`
	CreatedAt   time.Time       `bson:"createdAt" json:"createdAt"`
}

// AuditTransaction is the append-only audit row inserted alongside a
// ledger credit, independent of the ledger itself (insert_transaction is
// non-atomic with the ledger per spec).
type AuditTransaction struct {
	ID          string          `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      string          `bson:"userId" json:"userId"`
	BetID       string          `bson:"betId" json:"betId"`
	Type        LedgerEntryType `bson:"type" json:"type"`
	Amount      float64         `bson:"amount" json:"amount"`
	Description string          `bson:"description" json:"description"`
	CreatedAt   time.Time       `bson:"createdAt" json:"createdAt"`
}

// FetchAttempt is a diagnostic trace entry recorded by a source adapter
// walk, used for paid-credit accounting.
type FetchAttempt struct {
	Source     string        `bson:"source" json:"source"`
	Outcome    string        `bson:"outcome" json:"outcome"` // ok, empty, rate_limited, error
	StatusCode int           `bson:"statusCode,omitempty" json:"statusCode,omitempty"`
	StartedAt  time.Time     `bson:"startedAt" json:"startedAt"`
	Duration   time.Duration `bson:"duration" json:"duration"`
}

// SettlementRun is a per-invocation audit record of one settlement job.
type SettlementRun struct {
	ID            string    `bson:"_id,omitempty" json:"id,omitempty"`
	Date          string    `bson:"date" json:"date"`
	StartedAt     time.Time `bson:"startedAt" json:"startedAt"`
	FinishedAt    time.Time `bson:"finishedAt,omitempty" json:"finishedAt,omitempty"`
	BetsProcessed int       `bson:"betsProcessed" json:"betsProcessed"`
	Won           int       `bson:"won" json:"won"`
	Lost          int       `bson:"lost" json:"lost"`
	Refunded      int       `bson:"refunded" json:"refunded"`
	Pending       int       `bson:"pending" json:"pending"`
	Aborted       bool      `bson:"aborted" json:"aborted"`
	AbortReason   string    `bson:"abortReason,omitempty" json:"abortReason,omitempty"`
}

// WinNotification is the payload optionally posted to an external
// notification endpoint after a bet's ledger credit lands.
type WinNotification struct {
	BetID      string  `json:"betId"`
	UserID     string  `json:"userId"`
	Modality   string  `json:"modality"`
	PrizeValue float64 `json:"prizeValue"`
}
