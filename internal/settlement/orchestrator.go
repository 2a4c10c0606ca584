package settlement

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bridgetunes/lottery-settlement/internal/clock"
	"github.com/bridgetunes/lottery-settlement/internal/modality"
	"github.com/bridgetunes/lottery-settlement/internal/models"
	"github.com/bridgetunes/lottery-settlement/internal/notify"
	"github.com/bridgetunes/lottery-settlement/internal/resolver"
	"github.com/bridgetunes/lottery-settlement/internal/store"
)

const (
	pendingBetsCap    = 50000
	refundGraceWindow = 12 * time.Hour
	budgetFraction    = 0.8
)

// updateStatusAfterCredit flips a bet's terminal status once a ledger
// credit has already landed durably. Per spec §7, a failure here is
// retried inline exactly once before giving up; the idempotency guard
// on ChangeBalance means a subsequent settlement run self-heals either
// way, so this is a latency optimization, not a correctness requirement.
func updateStatusAfterCredit(ctx context.Context, bets store.BetStore, id string, status models.BetStatus, prizeValue *float64) error {
	err := bets.UpdateBetStatus(ctx, id, status, prizeValue)
	if err == nil {
		return nil
	}
	return bets.UpdateBetStatus(ctx, id, status, prizeValue)
}

type alerter interface {
	Report(ctx context.Context, title, message, source string, cause error)
}

// Orchestrator is the Settlement Orchestrator (C6): it drives the
// per-bet decision loop, calls the Modality Evaluator, and applies
// payout/loss/refund via the atomic ledger operations.
type Orchestrator struct {
	Drawings store.DrawingStore
	Bets     store.BetStore
	Ledger   store.LedgerStore
	Odds     store.OddsStore
	Runs     store.RunStore

	Resolver *resolver.Resolver
	Notifier notify.Notifier
	Alert    alerter
	Clock    clock.Clock
	Location *time.Location
	Logger   *slog.Logger

	// Budget is the job's wall-clock allowance; the loop stops starting
	// new bet decisions once 80% of it has elapsed (spec.md §5).
	Budget time.Duration
}

// drawingKey is the in-memory index key, distinct from models.DrawingKey
// only in that it omits Date (the whole map is already scoped to one day).
type drawingKey struct {
	Time    string
	House   string
	Lottery string
}

// Run settles all pending bets for date (YYYY-MM-DD, America/Sao_Paulo
// local calendar date), per spec.md §4.6.
func (o *Orchestrator) Run(ctx context.Context, date string) error {
	start := o.Clock.Now()
	run := models.SettlementRun{Date: date, StartedAt: start}

	drawings, err := o.Drawings.ListDrawings(ctx, date)
	if err != nil {
		run.Aborted = true
		run.AbortReason = fmt.Sprintf("%v: %v", ErrDrawingsLoadFailed, err)
		run.FinishedAt = o.Clock.Now()
		o.Alert.Report(ctx, "settlement: drawings load failed", run.AbortReason, "settlement_orchestrator", err)
		_ = o.Runs.RecordRun(ctx, run)
		return fmt.Errorf("%w: %v", ErrDrawingsLoadFailed, err)
	}

	drawingMap := indexDrawings(drawings)

	globalOdds, err := o.Odds.ListGlobalOdds(ctx)
	if err != nil {
		o.Logger.Warn("settlement: global odds load failed, proceeding with empty table", "err", err)
		globalOdds = map[string]float64{}
	}
	platformOddsCache := map[string]map[string]float64{}

	bets, err := o.Bets.ListPendingBets(ctx, date, pendingBetsCap)
	if err != nil {
		run.Aborted = true
		run.AbortReason = fmt.Sprintf("%v: %v", ErrBetsLoadFailed, err)
		run.FinishedAt = o.Clock.Now()
		o.Alert.Report(ctx, "settlement: bets load failed", run.AbortReason, "settlement_orchestrator", err)
		_ = o.Runs.RecordRun(ctx, run)
		return fmt.Errorf("%w: %v", ErrBetsLoadFailed, err)
	}

	var lostIDs []string
	budgetExceeded := false

	for _, bet := range bets {
		if o.Budget > 0 && !budgetExceeded {
			elapsed := o.Clock.Now().Sub(start)
			if float64(elapsed) >= budgetFraction*float64(o.Budget) {
				budgetExceeded = true
				o.Logger.Warn("settlement: wall-clock budget threshold crossed, switching to batch-loss-and-exit",
					"date", date, "elapsed", elapsed, "budget", o.Budget)
			}
		}
		if budgetExceeded {
			break
		}

		outcome := o.decideBet(ctx, bet, drawingMap, platformOddsCache, globalOdds, date)
		run.BetsProcessed++
		switch outcome {
		case outcomeWon:
			run.Won++
		case outcomeLost:
			run.Lost++
			lostIDs = append(lostIDs, bet.ID)
		case outcomeRefunded:
			run.Refunded++
		case outcomePending:
			run.Pending++
		}
	}

	if len(lostIDs) > 0 {
		if err := o.Bets.MarkBetsLost(ctx, lostIDs); err != nil {
			o.Logger.Warn("settlement: batch loss commit failed, falling back to per-id updates", "err", err, "count", len(lostIDs))
			for _, id := range lostIDs {
				if uerr := o.Bets.UpdateBetStatus(ctx, id, models.BetLost, nil); uerr != nil {
					o.Logger.Error("settlement: per-id loss update failed", "betId", id, "err", uerr)
				}
			}
		}
	}

	run.FinishedAt = o.Clock.Now()
	if err := o.Runs.RecordRun(ctx, run); err != nil {
		o.Logger.Error("settlement: failed to record run audit row", "err", err)
	}
	return nil
}

type betOutcome int

const (
	outcomePending betOutcome = iota
	outcomeWon
	outcomeLost
	outcomeRefunded
)

// decideBet evaluates and commits one bet's terminal decision. A panic
// here (an evaluator bug, a malformed guess) is reported to the alert
// channel rather than aborting the whole run.
func (o *Orchestrator) decideBet(
	ctx context.Context,
	bet models.Bet,
	drawingMap map[drawingKey]models.Drawing,
	platformOddsCache map[string]map[string]float64,
	globalOdds map[string]float64,
	date string,
) (outcome betOutcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = outcomePending
			o.Alert.Report(ctx, "settlement: panic in bet decision",
				fmt.Sprintf("bet %s panicked: %v", bet.ID, r), "settlement_orchestrator", nil)
		}
	}()

	if modality.IsAccumulatedDezena(bet.Modality) {
		return o.decideAccumulatedDezena(ctx, bet, drawingMap, platformOddsCache, globalOdds)
	}

	var hits []models.Drawing
	var missingLatest time.Time
	hasMissing := false
	missingTimeKnown := false

	for _, token := range bet.LotteryTokens {
		res, ok := o.Resolver.Resolve(token)
		if !ok {
			// Not resolvable: the bet is ineligible via this token, not
			// an error. It contributes neither a hit nor a "missing"
			// entry (there is no scheduled time to expire against).
			continue
		}
		key := drawingKey{Time: res.Time, House: res.House, Lottery: res.Lottery}
		d, found := drawingMap[key]
		if !found {
			hasMissing = true
			if t, perr := parseLocal(date, res.Time, o.Location); perr == nil {
				if !missingTimeKnown || t.After(missingLatest) {
					missingLatest = t
					missingTimeKnown = true
				}
			}
			continue
		}
		if res.Maluca && res.House != "BAHIA" {
			d = ApplyMaluca(res.House, d)
		}
		hits = append(hits, d)
	}

	if len(hits) == 0 && !hasMissing {
		// No token resolved at all: the bet cannot progress this run,
		// but it hasn't missed a grace window either.
		return outcomePending
	}

	var result modality.Result
	for _, d := range hits {
		result = modality.Evaluate(bet.Modality, bet.Guesses, bet.Placement, d)
		if result.Hit {
			if result.FellBackToMilhar {
				o.Logger.Warn("settlement: unknown modality fell back to milhar", "betId", bet.ID, "modality", bet.Modality)
			}
			return o.creditWin(ctx, bet, result, platformOddsCache, globalOdds)
		}
	}

	if !hasMissing {
		return outcomeLost
	}

	if missingTimeKnown && missingLatest.Before(o.Clock.Now().Add(-refundGraceWindow)) {
		return o.refundBet(ctx, bet)
	}
	return outcomePending
}

func (o *Orchestrator) decideAccumulatedDezena(
	ctx context.Context,
	bet models.Bet,
	drawingMap map[drawingKey]models.Drawing,
	platformOddsCache map[string]map[string]float64,
	globalOdds map[string]float64,
) betOutcome {
	lotteryCode := accumulatedDezenaLottery(bet.Modality)
	d, found := drawingMap[drawingKey{Time: "20:00", House: "CAIXA", Lottery: lotteryCode}]
	if !found {
		return outcomePending
	}
	guess := ""
	if len(bet.Guesses) > 0 {
		guess = bet.Guesses[0]
	}
	result := modality.EvaluateAccumulatedDezena(bet.Modality, guess, d)
	if result.Hit {
		return o.creditWin(ctx, bet, result, platformOddsCache, globalOdds)
	}
	return outcomeLost
}

func accumulatedDezenaLottery(modalityCode string) string {
	code := strings.ToLower(strings.TrimSpace(modalityCode))
	switch {
	case strings.HasPrefix(code, "lotinha_"):
		return "LOTO_FACIL"
	case strings.HasPrefix(code, "quininha_"):
		return "QUINA"
	case strings.HasPrefix(code, "seninha_"):
		return "MEGA_SENA"
	default:
		return ""
	}
}

func (o *Orchestrator) creditWin(
	ctx context.Context,
	bet models.Bet,
	result modality.Result,
	platformOddsCache map[string]map[string]float64,
	globalOdds map[string]float64,
) betOutcome {
	platformOdds := o.loadPlatformOdds(ctx, bet.PlatformID, platformOddsCache)

	multiplier, err := ResolveMultiplier(ctx, o.Odds, bet, result.PayoutModality, platformOdds, globalOdds)
	if err != nil {
		o.Logger.Error("settlement: odds rpc failed, leaving bet pending", "betId", bet.ID, "err", err)
		return outcomePending
	}
	if multiplier <= 0 {
		o.Alert.Report(ctx, "settlement: zero multiplier on a winning bet",
			fmt.Sprintf("bet %s won modality %s but resolved multiplier <= 0", bet.ID, result.PayoutModality),
			"settlement_orchestrator", nil)
	}
	payout := bet.UnitValue * multiplier

	cbResult, err := o.Ledger.ChangeBalance(ctx, store.ChangeBalanceRequest{
		UserID:      bet.UserID,
		Amount:      payout,
		Type:        models.LedgerPrize,
		ReferenceID: bet.ID,
		Description: fmt.Sprintf("prize payout: bet %s modality %s", bet.ID, result.PayoutModality),
	})
	if err != nil {
		o.Logger.Error("settlement: ledger credit failed, bet stays pending", "betId", bet.ID, "err", err)
		return outcomePending
	}
	_ = cbResult

	// Ordering is contractual: the status flip happens only after the
	// credit is durable.
	if err := updateStatusAfterCredit(ctx, o.Bets, bet.ID, models.BetWon, &payout); err != nil {
		o.Logger.Error("settlement: bet status update failed after successful credit, retried once", "betId", bet.ID, "err", err)
		return outcomePending
	}

	if err := o.Ledger.InsertTransaction(ctx, models.AuditTransaction{
		UserID:      bet.UserID,
		BetID:       bet.ID,
		Type:        models.LedgerPrize,
		Amount:      payout,
		Description: fmt.Sprintf("modality=%s", result.PayoutModality),
	}); err != nil {
		o.Logger.Error("settlement: audit transaction insert failed", "betId", bet.ID, "err", err)
	}

	if o.Notifier != nil {
		if err := o.Notifier.Notify(ctx, models.WinNotification{
			BetID: bet.ID, UserID: bet.UserID, Modality: result.PayoutModality, PrizeValue: payout,
		}); err != nil {
			o.Logger.Warn("settlement: win notification failed", "betId", bet.ID, "err", err)
		}
	}

	return outcomeWon
}

func (o *Orchestrator) refundBet(ctx context.Context, bet models.Bet) betOutcome {
	amount := bet.ValorTotal()
	_, err := o.Ledger.ChangeBalance(ctx, store.ChangeBalanceRequest{
		UserID:      bet.UserID,
		Amount:      amount,
		Type:        models.LedgerRefund,
		ReferenceID: bet.ID,
		Description: fmt.Sprintf("refund: bet %s (no result after grace window)", bet.ID),
	})
	if err != nil {
		o.Logger.Error("settlement: refund credit failed, bet stays pending", "betId", bet.ID, "err", err)
		return outcomePending
	}

	if err := updateStatusAfterCredit(ctx, o.Bets, bet.ID, models.BetRefunded, nil); err != nil {
		o.Logger.Error("settlement: bet status update failed after refund credit, retried once", "betId", bet.ID, "err", err)
		return outcomePending
	}

	if err := o.Ledger.InsertTransaction(ctx, models.AuditTransaction{
		UserID: bet.UserID, BetID: bet.ID, Type: models.LedgerRefund, Amount: amount,
		Description: "refund: grace window elapsed with no result",
	}); err != nil {
		o.Logger.Error("settlement: audit transaction insert failed", "betId", bet.ID, "err", err)
	}

	return outcomeRefunded
}

func (o *Orchestrator) loadPlatformOdds(ctx context.Context, platformID string, cache map[string]map[string]float64) map[string]float64 {
	if platformID == "" {
		return nil
	}
	if m, ok := cache[platformID]; ok {
		return m
	}
	m, err := o.Odds.ListPlatformOdds(ctx, platformID)
	if err != nil {
		o.Logger.Warn("settlement: platform odds load failed", "platformId", platformID, "err", err)
		m = map[string]float64{}
	}
	cache[platformID] = m
	return m
}

// indexDrawings builds the (time, house, lottery) lookup map and applies
// BAHIA's federal-day aliasing: a FEDERAL drawing is duplicated into
// BAHIA's GERAL slot at the same time, since BAHIA's own "GERAL" results
// are historically just the federal numbers (see DESIGN.md's Open
// Question resolution for whether this alias should persist).
func indexDrawings(drawings []models.Drawing) map[drawingKey]models.Drawing {
	out := make(map[drawingKey]models.Drawing, len(drawings)+1)
	var federal *models.Drawing
	for i := range drawings {
		d := drawings[i]
		out[drawingKey{Time: d.Time, House: d.House, Lottery: d.Lottery}] = d
		if d.Lottery == "FEDERAL" && federal == nil {
			federal = &d
		}
	}
	if federal != nil {
		key := drawingKey{Time: federal.Time, House: "BAHIA", Lottery: "GERAL"}
		if _, exists := out[key]; !exists {
			alias := *federal
			alias.House = "BAHIA"
			alias.Lottery = "GERAL"
			out[key] = alias
		}
	}
	return out
}

func parseLocal(date, hhmm string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+hhmm, loc)
}
