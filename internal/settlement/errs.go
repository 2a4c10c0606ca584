// Package settlement implements the Settlement Orchestrator (C6): the
// per-bet decision loop that drives the Modality Evaluator and applies
// payout/loss/refund via the atomic ledger operations.
package settlement

import "errors"

// Error taxonomy per spec.md §7, wrapped with %w and tested with
// errors.Is/errors.As, matching the teacher's draw_repository.go style.
var (
	ErrDrawingsLoadFailed = errors.New("settlement: drawings load failed")
	ErrBetsLoadFailed     = errors.New("settlement: bets load failed")
	ErrUnknownToken       = errors.New("settlement: unknown lottery token")
	ErrUnknownModality    = errors.New("settlement: unknown modality")
	ErrRPC                = errors.New("settlement: rpc error")
)
