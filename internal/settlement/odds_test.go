package settlement

import (
	"context"
	"testing"

	"github.com/bridgetunes/lottery-settlement/internal/models"
	"github.com/bridgetunes/lottery-settlement/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOddsStore struct {
	rpc map[string]float64 // key: platformID|code
}

func (f fakeOddsStore) GetMultiplicador(_ context.Context, platformID, code string) (float64, error) {
	return f.rpc[platformID+"|"+code], nil
}

func (f fakeOddsStore) ListPlatformOdds(_ context.Context, platformID string) (map[string]float64, error) {
	return nil, nil
}

func (f fakeOddsStore) ListGlobalOdds(_ context.Context) (map[string]float64, error) {
	return nil, nil
}

func float64Ptr(v float64) *float64 { return &v }

func TestResolveMultiplierBetOwnMultiplierWins(t *testing.T) {
	odds := fakeOddsStore{}
	bet := models.Bet{Multiplier: float64Ptr(3500)}

	m, err := ResolveMultiplier(context.Background(), odds, bet, "milhar", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 3500.0, m)
}

func TestResolveMultiplierPlatformOverrideBeatsRPCAndGlobal(t *testing.T) {
	odds := fakeOddsStore{rpc: map[string]float64{"platform-1|milhar": 1000}}
	bet := models.Bet{PlatformID: "platform-1"}
	platformOdds := map[string]float64{"milhar": 4000}
	globalOdds := map[string]float64{"milhar": 4500}

	m, err := ResolveMultiplier(context.Background(), odds, bet, "milhar", platformOdds, globalOdds)
	require.NoError(t, err)
	assert.Equal(t, 4000.0, m)
}

func TestResolveMultiplierFallsBackToRPCThenGlobal(t *testing.T) {
	odds := fakeOddsStore{rpc: map[string]float64{"platform-1|milhar": 1000}}
	bet := models.Bet{PlatformID: "platform-1"}
	globalOdds := map[string]float64{"milhar": 4500}

	m, err := ResolveMultiplier(context.Background(), odds, bet, "milhar", nil, globalOdds)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, m)

	// no RPC multiplier for this platform/code: falls through to global
	bet2 := models.Bet{PlatformID: "platform-2"}
	m, err = ResolveMultiplier(context.Background(), odds, bet2, "milhar", nil, globalOdds)
	require.NoError(t, err)
	assert.Equal(t, 4500.0, m)
}

func TestResolveMultiplierNoPlatformUsesGlobalOnly(t *testing.T) {
	odds := fakeOddsStore{}
	bet := models.Bet{}
	globalOdds := map[string]float64{"milhar": 4500}

	m, err := ResolveMultiplier(context.Background(), odds, bet, "milhar", nil, globalOdds)
	require.NoError(t, err)
	assert.Equal(t, 4500.0, m)
}

func TestResolveMultiplierReturnsZeroWhenNothingApplies(t *testing.T) {
	odds := fakeOddsStore{}
	bet := models.Bet{}

	m, err := ResolveMultiplier(context.Background(), odds, bet, "milhar", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, m)
}

var _ store.OddsStore = fakeOddsStore{}
