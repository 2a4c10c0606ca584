// Package resolver implements the Lottery Identifier Resolver (C4): a
// pure, deterministic compile-time table mapping each bet-side
// LotteryIdToken to a canonical (house, time, lottery) triple. There is
// deliberately no fuzzy matching — any token the platform issues must be
// registered here or via the seed-loader CSV overlay.
package resolver

import (
	"strings"
	"sync"

	"github.com/bridgetunes/lottery-settlement/internal/models"
)

// Resolution is the outcome of resolving a single token.
type Resolution struct {
	House   string
	Time    string
	Lottery string
	Maluca  bool
}

type Resolver struct {
	mu    sync.RWMutex
	table map[string]Resolution
}

// New builds a Resolver seeded from the embedded canonical table. The
// canonical table chosen here resolves the spec's open question
// ("multiple conflicting LotteryIdToken tables exist across source
// versions; the canonical table must be chosen explicitly") — see
// DESIGN.md for which version this follows and why.
func New() *Resolver {
	r := &Resolver{table: map[string]Resolution{}}
	for _, t := range canonicalTable {
		r.register(t)
	}
	return r
}

func (r *Resolver) register(t models.LotteryIdToken) {
	r.table[strings.ToLower(t.Token)] = Resolution{
		House: t.House, Time: t.Time, Lottery: t.Lottery, Maluca: t.Maluca,
	}
}

// Load overlays additional tokens on top of the canonical table, as
// produced by the seed loader reading an operator-supplied CSV. Later
// registrations win on token collision.
func (r *Resolver) Load(tokens []models.LotteryIdToken) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range tokens {
		r.register(t)
	}
}

// Resolve maps a token to its canonical triple. ok is false when the
// token is unregistered ("not resolvable" per spec §4.4) — the caller
// treats the associated bet as ineligible via this token, not an error.
func (r *Resolver) Resolve(token string) (Resolution, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.table[strings.ToLower(strings.TrimSpace(token))]
	return res, ok
}
