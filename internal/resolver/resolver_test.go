package resolver

import (
	"testing"

	"github.com/bridgetunes/lottery-settlement/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestResolveKnownToken(t *testing.T) {
	r := New()

	res, ok := r.Resolve("rj_pt_14")
	assert.True(t, ok)
	assert.Equal(t, "RIO", res.House)
	assert.Equal(t, "14:20", res.Time)
	assert.Equal(t, "PT", res.Lottery)
	assert.False(t, res.Maluca)
}

func TestResolveMalucaToken(t *testing.T) {
	r := New()

	res, ok := r.Resolve("rj_pt_14_maluca")
	assert.True(t, ok)
	assert.True(t, res.Maluca)
}

func TestResolveIsCaseAndWhitespaceInsensitive(t *testing.T) {
	r := New()

	res, ok := r.Resolve("  RJ_PT_14 ")
	assert.True(t, ok)
	assert.Equal(t, "RIO", res.House)
}

func TestResolveUnknownTokenFails(t *testing.T) {
	r := New()

	_, ok := r.Resolve("not_a_real_token")
	assert.False(t, ok)
}

func TestLoadOverlayOverridesCanonicalOnCollision(t *testing.T) {
	r := New()

	r.Load([]models.LotteryIdToken{
		{Token: "rj_pt_14", House: "RIO", Time: "15:00", Lottery: "PT"},
	})

	res, ok := r.Resolve("rj_pt_14")
	assert.True(t, ok)
	assert.Equal(t, "15:00", res.Time)
}

func TestLoadOverlayAddsNewTokens(t *testing.T) {
	r := New()

	r.Load([]models.LotteryIdToken{
		{Token: "custom_token", House: "CUSTOM", Time: "23:00", Lottery: "PT"},
	})

	res, ok := r.Resolve("custom_token")
	assert.True(t, ok)
	assert.Equal(t, "CUSTOM", res.House)
}

func TestBahiaHasNoMalucaTransformTokens(t *testing.T) {
	for _, tok := range canonicalTable {
		if tok.House == "BAHIA" && tok.Maluca {
			t.Fatalf("BAHIA token %q unexpectedly marked Maluca=true; BAHIA's MALUCA draws are independent drawings", tok.Token)
		}
	}
}

func TestDefaultExpectedDrawingCountsCountsDistinctSlots(t *testing.T) {
	counts := DefaultExpectedDrawingCounts()

	rio, ok := counts["RIO"]
	assert.True(t, ok)
	assert.Greater(t, rio, 0)
}
