package settlement

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/bridgetunes/lottery-settlement/internal/clock"
	"github.com/bridgetunes/lottery-settlement/internal/models"
	"github.com/bridgetunes/lottery-settlement/internal/notify"
	"github.com/bridgetunes/lottery-settlement/internal/resolver"
	"github.com/bridgetunes/lottery-settlement/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDrawingStore, fakeBetStore, fakeLedgerStore, fakeOddsRunStore are
// minimal in-memory stand-ins for the store interfaces, letting the
// orchestrator's decision loop run end to end without mongodb.

type fakeDrawingStore struct {
	byDate map[string][]models.Drawing
}

func (f *fakeDrawingStore) UpsertDrawing(_ context.Context, d models.Drawing) error {
	f.byDate[d.Date] = append(f.byDate[d.Date], d)
	return nil
}

func (f *fakeDrawingStore) ListDrawings(_ context.Context, date string) ([]models.Drawing, error) {
	return f.byDate[date], nil
}

type fakeBetStore struct {
	bets map[string]*models.Bet
}

func (f *fakeBetStore) ListPendingBets(_ context.Context, dateOfPlay string, limit int) ([]models.Bet, error) {
	var out []models.Bet
	for _, b := range f.bets {
		if b.DateOfPlay == dateOfPlay && b.Status == models.BetPending {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBetStore) UpdateBetStatus(_ context.Context, id string, status models.BetStatus, prizeValue *float64) error {
	b, ok := f.bets[id]
	if !ok {
		return store.ErrNotFound
	}
	if b.Status != models.BetPending {
		return store.ErrConflict
	}
	b.Status = status
	b.PrizeValue = prizeValue
	return nil
}

func (f *fakeBetStore) MarkBetsLost(_ context.Context, ids []string) error {
	for _, id := range ids {
		if b, ok := f.bets[id]; ok && b.Status == models.BetPending {
			b.Status = models.BetLost
		}
	}
	return nil
}

type fakeLedgerStore struct {
	credited map[string]bool // referenceId|type
	balances map[string]float64
	txns     []models.AuditTransaction
}

func newFakeLedgerStore() *fakeLedgerStore {
	return &fakeLedgerStore{credited: map[string]bool{}, balances: map[string]float64{}}
}

func (f *fakeLedgerStore) ChangeBalance(_ context.Context, req store.ChangeBalanceRequest) (store.ChangeBalanceResult, error) {
	key := req.ReferenceID + "|" + string(req.Type)
	if f.credited[key] {
		return store.ChangeBalanceResult{BalanceAfter: f.balances[req.UserID], Idempotent: true}, nil
	}
	f.credited[key] = true
	f.balances[req.UserID] += req.Amount
	return store.ChangeBalanceResult{BalanceAfter: f.balances[req.UserID]}, nil
}

func (f *fakeLedgerStore) InsertTransaction(_ context.Context, tx models.AuditTransaction) error {
	f.txns = append(f.txns, tx)
	return nil
}

type fakeRunStore struct {
	runs []models.SettlementRun
}

func (f *fakeRunStore) RecordRun(_ context.Context, run models.SettlementRun) error {
	f.runs = append(f.runs, run)
	return nil
}

type fakeAlerter struct {
	reports []string
}

func (f *fakeAlerter) Report(_ context.Context, title, message, source string, cause error) {
	f.reports = append(f.reports, title)
}

func newOrchestratorForTest(bets map[string]*models.Bet, drawings []models.Drawing, now time.Time) (*Orchestrator, *fakeLedgerStore, *fakeBetStore, *fakeAlerter) {
	drawingStore := &fakeDrawingStore{byDate: map[string][]models.Drawing{"2026-07-30": drawings}}
	betStore := &fakeBetStore{bets: bets}
	ledgerStore := newFakeLedgerStore()
	alerter := &fakeAlerter{}

	loc := time.UTC
	o := &Orchestrator{
		Drawings: drawingStore,
		Bets:     betStore,
		Ledger:   ledgerStore,
		Odds:     fakeOddsStore{},
		Runs:     &fakeRunStore{},
		Resolver: resolver.New(),
		Notifier: notify.NewMockNotifier(),
		Alert:    alerter,
		Clock:    clock.Fixed{At: now},
		Location: loc,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return o, ledgerStore, betStore, alerter
}

func TestOrchestratorCreditsAWinningBet(t *testing.T) {
	now := time.Date(2026, 7, 30, 15, 0, 0, 0, time.UTC)
	drawings := []models.Drawing{
		{Date: "2026-07-30", Time: "14:20", House: "RIO", Lottery: "PT", Prizes: []models.Prize{
			{Number: "1234"}, {Number: "5678"}, {Number: "9012"}, {Number: "3456"}, {Number: "7890"},
		}},
	}
	multiplier := 3500.0
	bets := map[string]*models.Bet{
		"bet-1": {
			ID: "bet-1", UserID: "user-1", DateOfPlay: "2026-07-30",
			Modality: "milhar", Placement: "1_premio", Guesses: []string{"1234"},
			LotteryTokens: []string{"rj_pt_14"}, UnitValue: 1, Multiplier: &multiplier,
			Status: models.BetPending,
		},
	}

	o, ledger, betStore, _ := newOrchestratorForTest(bets, drawings, now)

	err := o.Run(context.Background(), "2026-07-30")
	require.NoError(t, err)

	assert.Equal(t, models.BetWon, betStore.bets["bet-1"].Status)
	require.NotNil(t, betStore.bets["bet-1"].PrizeValue)
	assert.Equal(t, 3500.0, *betStore.bets["bet-1"].PrizeValue)
	assert.Equal(t, 3500.0, ledger.balances["user-1"])
	assert.Len(t, ledger.txns, 1)
}

func TestOrchestratorMarksALosingBetLost(t *testing.T) {
	now := time.Date(2026, 7, 30, 15, 0, 0, 0, time.UTC)
	drawings := []models.Drawing{
		{Date: "2026-07-30", Time: "14:20", House: "RIO", Lottery: "PT", Prizes: []models.Prize{
			{Number: "1234"}, {Number: "5678"}, {Number: "9012"}, {Number: "3456"}, {Number: "7890"},
		}},
	}
	bets := map[string]*models.Bet{
		"bet-1": {
			ID: "bet-1", UserID: "user-1", DateOfPlay: "2026-07-30",
			Modality: "milhar", Placement: "1_premio", Guesses: []string{"9999"},
			LotteryTokens: []string{"rj_pt_14"}, UnitValue: 1,
			Status: models.BetPending,
		},
	}

	o, _, betStore, _ := newOrchestratorForTest(bets, drawings, now)

	err := o.Run(context.Background(), "2026-07-30")
	require.NoError(t, err)

	assert.Equal(t, models.BetLost, betStore.bets["bet-1"].Status)
}

func TestOrchestratorRefundsAfterGraceWindowWithNoResult(t *testing.T) {
	now := time.Date(2026, 7, 31, 3, 0, 0, 0, time.UTC) // well past 14:20 + 12h grace
	bets := map[string]*models.Bet{
		"bet-1": {
			ID: "bet-1", UserID: "user-1", DateOfPlay: "2026-07-30",
			Modality: "milhar", Placement: "1_premio", Guesses: []string{"1234"},
			LotteryTokens: []string{"rj_pt_14"}, UnitValue: 5,
			Status: models.BetPending,
		},
	}

	o, ledger, betStore, _ := newOrchestratorForTest(bets, nil, now)

	err := o.Run(context.Background(), "2026-07-30")
	require.NoError(t, err)

	assert.Equal(t, models.BetRefunded, betStore.bets["bet-1"].Status)
	assert.Equal(t, 5.0, ledger.balances["user-1"])
}

func TestOrchestratorLeavesBetPendingBeforeGraceWindowElapses(t *testing.T) {
	now := time.Date(2026, 7, 30, 15, 0, 0, 0, time.UTC) // just after 14:20, grace not elapsed
	bets := map[string]*models.Bet{
		"bet-1": {
			ID: "bet-1", UserID: "user-1", DateOfPlay: "2026-07-30",
			Modality: "milhar", Placement: "1_premio", Guesses: []string{"1234"},
			LotteryTokens: []string{"rj_pt_14"}, UnitValue: 5,
			Status: models.BetPending,
		},
	}

	o, _, betStore, _ := newOrchestratorForTest(bets, nil, now)

	err := o.Run(context.Background(), "2026-07-30")
	require.NoError(t, err)

	assert.Equal(t, models.BetPending, betStore.bets["bet-1"].Status)
}

func TestOrchestratorCreditIsIdempotentOnRerun(t *testing.T) {
	now := time.Date(2026, 7, 30, 15, 0, 0, 0, time.UTC)
	drawings := []models.Drawing{
		{Date: "2026-07-30", Time: "14:20", House: "RIO", Lottery: "PT", Prizes: []models.Prize{
			{Number: "1234"}, {Number: "5678"}, {Number: "9012"}, {Number: "3456"}, {Number: "7890"},
		}},
	}
	multiplier := 3500.0
	bets := map[string]*models.Bet{
		"bet-1": {
			ID: "bet-1", UserID: "user-1", DateOfPlay: "2026-07-30",
			Modality: "milhar", Placement: "1_premio", Guesses: []string{"1234"},
			LotteryTokens: []string{"rj_pt_14"}, UnitValue: 1, Multiplier: &multiplier,
			Status: models.BetPending,
		},
	}

	o, ledger, betStore, _ := newOrchestratorForTest(bets, drawings, now)
	require.NoError(t, o.Run(context.Background(), "2026-07-30"))

	// Simulate a crash-rerun: the bet is reset to pending (as it would be
	// if the process died between credit and status flip) and the run
	// replays. The credit must not be applied twice.
	betStore.bets["bet-1"].Status = models.BetPending
	require.NoError(t, o.Run(context.Background(), "2026-07-30"))

	assert.Equal(t, 3500.0, ledger.balances["user-1"])
}

func TestOrchestratorAppliesMalucaTransformForNonBahiaHouse(t *testing.T) {
	now := time.Date(2026, 7, 30, 15, 0, 0, 0, time.UTC)
	drawings := []models.Drawing{
		{Date: "2026-07-30", Time: "14:20", House: "RIO", Lottery: "PT", Prizes: []models.Prize{
			{Number: "1234"}, {Number: "5678"}, {Number: "9012"}, {Number: "3456"}, {Number: "7890"},
		}},
	}
	bets := map[string]*models.Bet{
		// rj_pt_14_maluca transforms prize 1 (1234) by reversing -> 4321
		"bet-1": {
			ID: "bet-1", UserID: "user-1", DateOfPlay: "2026-07-30",
			Modality: "milhar", Placement: "1_premio", Guesses: []string{"4321"},
			LotteryTokens: []string{"rj_pt_14_maluca"}, UnitValue: 1,
			Status: models.BetPending,
		},
	}

	o, _, betStore, _ := newOrchestratorForTest(bets, drawings, now)
	require.NoError(t, o.Run(context.Background(), "2026-07-30"))

	assert.Equal(t, models.BetWon, betStore.bets["bet-1"].Status)
}
