package settlement

import (
	"context"

	"github.com/bridgetunes/lottery-settlement/internal/models"
	"github.com/bridgetunes/lottery-settlement/internal/store"
)

// ResolveMultiplier walks the odds-precedence chain from spec.md §4.6
// (first non-zero wins):
//  1. the bet's own stored multiplier, if present and > 0;
//  2. the platform's modality override, if active;
//  3. fn_get_multiplicador (the platform's server-side fallback RPC);
//  4. the global modality default;
//  5. otherwise 0.
func ResolveMultiplier(
	ctx context.Context,
	odds store.OddsStore,
	bet models.Bet,
	code string,
	platformOdds map[string]float64,
	globalOdds map[string]float64,
) (float64, error) {
	if bet.Multiplier != nil && *bet.Multiplier > 0 {
		return *bet.Multiplier, nil
	}

	if bet.PlatformID != "" {
		if m, ok := platformOdds[code]; ok && m > 0 {
			return m, nil
		}

		rpcMultiplier, err := odds.GetMultiplicador(ctx, bet.PlatformID, code)
		if err != nil {
			return 0, err
		}
		if rpcMultiplier > 0 {
			return rpcMultiplier, nil
		}
	}

	if m, ok := globalOdds[code]; ok && m > 0 {
		return m, nil
	}

	return 0, nil
}
