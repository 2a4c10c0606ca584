package settlement

// Intention names the possible outcomes of a bet's evaluation. The
// Orchestrator does not produce Intention or Decision values: it commits
// each outcome itself through the store interfaces (creditWin and
// refundBet per bet, a batched MarkBetsLost in Run), so there is no
// separate commit layer.
type Intention int

const (
	IntentPending Intention = iota
	IntentCreditPrize
	IntentMarkLost
	IntentRefund
)

// Decision is the full outcome of evaluating one bet: which intention to
// apply, and the data the commit layer needs to apply it.
type Decision struct {
	BetID      string
	Intention  Intention
	Multiplier float64
	PrizeValue float64
	Modality   string // the code whose odds were actually used (payout modality)
}
