package models

// PlatformOdds is one platform's modality-code override on top of the
// global default table.
type PlatformOdds struct {
	PlatformID   string  `bson:"platformId" json:"platformId"`
	ModalityCode string  `bson:"modalityCode" json:"modalityCode"`
	Multiplier   float64 `bson:"multiplier" json:"multiplier"`
	Active       bool    `bson:"active" json:"active"`
}

// GlobalOdds is the fallback modality-code -> multiplier default.
type GlobalOdds struct {
	ModalityCode string  `bson:"modalityCode" json:"modalityCode"`
	Multiplier   float64 `bson:"multiplier" json:"multiplier"`
}

// LotteryIdToken maps an opaque bet-side identifier to a canonical
// (house, time, lottery) triple. A MalucaSuffix token resolves to the
// same key as its base token but flags the evaluator to transform the
// drawing's digits before evaluation.
type LotteryIdToken struct {
	Token   string `bson:"token" json:"token"`
	House   string `bson:"house" json:"house"`
	Time    string `bson:"time" json:"time"`
	Lottery string `bson:"lottery" json:"lottery"`
	Maluca  bool   `bson:"maluca" json:"maluca"`
}
