package models

import "time"

type BetStatus string

const (
	BetPending  BetStatus = "pending"
	BetWon      BetStatus = "won"
	BetLost     BetStatus = "lost"
	BetRefunded BetStatus = "refunded"
)

// Bet is a single wager placed by a platform user against one or more
// lottery tokens. Once terminal, PrizeValue and the matching ledger entry
// are both set or both absent.
type Bet struct {
	ID            string    `bson:"_id,omitempty" json:"id,omitempty"`
	UserID        string    `bson:"userId" json:"userId"`
	PlatformID    string    `bson:"platformId,omitempty" json:"platformId,omitempty"`
	DateOfPlay    string    `bson:"dateOfPlay" json:"dateOfPlay"` // YYYY-MM-DD, local
	Modality      string    `bson:"modality" json:"modality"`
	Placement     string    `bson:"placement" json:"placement"`
	Guesses       []string  `bson:"guesses" json:"guesses"`
	LotteryTokens []string  `bson:"lotteryTokens" json:"lotteryTokens"`
	UnitValue     float64   `bson:"unitValue" json:"unitValue"`
	Multiplier    *float64  `bson:"multiplier,omitempty" json:"multiplier,omitempty"`
	Status        BetStatus `bson:"status" json:"status"`
	PrizeValue    *float64  `bson:"prizeValue,omitempty" json:"prizeValue,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ValorTotal is the amount at stake, used for refunds.
func (b Bet) ValorTotal() float64 {
	return b.UnitValue
}
