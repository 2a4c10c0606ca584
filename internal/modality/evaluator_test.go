package modality

import (
	"testing"

	"github.com/bridgetunes/lottery-settlement/internal/models"
	"github.com/stretchr/testify/assert"
)

func drawingWithPrizes(numbers ...string) models.Drawing {
	d := models.Drawing{Date: "2026-07-30", Time: "14:00", House: "RIO", Lottery: "RIO"}
	for _, n := range numbers {
		d.Prizes = append(d.Prizes, models.Prize{Number: n})
	}
	return d
}

func TestEvaluateMilhar(t *testing.T) {
	d := drawingWithPrizes("1234", "5678", "9012", "3456", "7890")

	r := Evaluate("milhar", []string{"1234"}, "1_premio", d)
	assert.True(t, r.Hit)
	assert.Equal(t, "milhar", r.PayoutModality)

	r = Evaluate("milhar", []string{"9999"}, "1_premio", d)
	assert.False(t, r.Hit)
}

func TestEvaluateMilharCTConsolation(t *testing.T) {
	d := drawingWithPrizes("1234")

	// exact milhar hit pays at milhar_ct's own rate
	r := Evaluate("milhar_ct", []string{"1234"}, "1_premio", d)
	assert.True(t, r.Hit)
	assert.Equal(t, "milhar_ct", r.PayoutModality)

	// centena-only match falls back to the centena rate
	r = Evaluate("milhar_ct", []string{"9234"}, "1_premio", d)
	assert.True(t, r.Hit)
	assert.Equal(t, "centena", r.PayoutModality)

	r = Evaluate("milhar_ct", []string{"9999"}, "1_premio", d)
	assert.False(t, r.Hit)
}

func TestEvaluateMilharInv(t *testing.T) {
	d := drawingWithPrizes("1234")

	r := Evaluate("milhar_inv", []string{"4321"}, "1_premio", d)
	assert.True(t, r.Hit)

	r = Evaluate("milhar_inv", []string{"1111"}, "1_premio", d)
	assert.False(t, r.Hit)
}

func TestEvaluateCentenaVariants(t *testing.T) {
	d := drawingWithPrizes("1234")

	assert.True(t, Evaluate("centena", []string{"234"}, "1_premio", d).Hit)
	assert.True(t, Evaluate("centena_esq", []string{"123"}, "1_premio", d).Hit)
	assert.True(t, Evaluate("centena_inv", []string{"432"}, "1_premio", d).Hit)
	assert.True(t, Evaluate("centena_inv_esq", []string{"321"}, "1_premio", d).Hit)
}

func TestEvaluateCentena3xWindows(t *testing.T) {
	d := drawingWithPrizes("1234")

	// last-3 window
	assert.True(t, Evaluate("centena_3x", []string{"234"}, "1_premio", d).Hit)
	// first-3 window
	assert.True(t, Evaluate("centena_3x", []string{"123"}, "1_premio", d).Hit)
	assert.False(t, Evaluate("centena_3x", []string{"999"}, "1_premio", d).Hit)
}

func TestEvaluateDezenaAndGrupo(t *testing.T) {
	d := drawingWithPrizes("1234")

	assert.True(t, Evaluate("dezena", []string{"34"}, "1_premio", d).Hit)
	assert.True(t, Evaluate("dezena_esq", []string{"12"}, "1_premio", d).Hit)
	assert.True(t, Evaluate("dezena_meio", []string{"23"}, "1_premio", d).Hit)
	assert.True(t, Evaluate("unidade", []string{"4"}, "1_premio", d).Hit)

	// dezena 34 -> grupo ((34-1)/4)+1 = 9
	r := Evaluate("grupo", []string{"9"}, "1_premio", d)
	assert.True(t, r.Hit)
	r = Evaluate("grupo", []string{"1"}, "1_premio", d)
	assert.False(t, r.Hit)
}

func TestEvaluatePasseVaiAndVaiVem(t *testing.T) {
	d := drawingWithPrizes("0134", "0934") // dezenas 34 (grupo 9) and 34 (grupo 9)

	// passe_vai requires premio1 group then premio2 group, in order
	r := Evaluate("passe_vai", []string{"9", "9"}, "geral", d)
	assert.True(t, r.Hit)

	r = Evaluate("passe_vai", []string{"1", "9"}, "geral", d)
	assert.False(t, r.Hit)

	// passe_vai_vem accepts either order: dezenas 34 (grupo 9) then 04 (grupo 1)
	d2 := drawingWithPrizes("0134", "0904")
	assert.False(t, Evaluate("passe_vai", []string{"1", "9"}, "geral", d2).Hit)
	assert.True(t, Evaluate("passe_vai_vem", []string{"1", "9"}, "geral", d2).Hit)
}

func TestEvaluateUnknownModalityFallsBackToMilhar(t *testing.T) {
	d := drawingWithPrizes("1234")

	r := Evaluate("some_future_modality", []string{"1234"}, "1_premio", d)
	assert.True(t, r.Hit)
	assert.True(t, r.FellBackToMilhar)
	assert.Equal(t, "some_future_modality", r.PayoutModality)
}

func TestEvaluateSetFamilyDuqueRequiresAllGuesses(t *testing.T) {
	d := drawingWithPrizes("1234", "5678", "9012", "3456", "7890")

	// dezenas across geral: 34, 78, 12, 56, 90
	r := Evaluate("duque_dez", []string{"34", "78"}, "geral", d)
	assert.True(t, r.Hit)

	r = Evaluate("duque_dez", []string{"34", "99"}, "geral", d)
	assert.False(t, r.Hit)
}

func TestEvaluateSetFamilyQuinaNeedsFiveOfFirstFive(t *testing.T) {
	d := drawingWithPrizes("1234", "5678", "9012", "3456", "7890", "1111", "2222")

	r := Evaluate("quina_dez", []string{"34", "78", "12", "56", "90"}, "geral", d)
	assert.True(t, r.Hit)

	r = Evaluate("quina_dez", []string{"34", "78", "12", "56", "99"}, "geral", d)
	assert.False(t, r.Hit)
}

func TestIsAccumulatedDezenaAndThreshold(t *testing.T) {
	assert.True(t, IsAccumulatedDezena("lotinha_15"))
	assert.True(t, IsAccumulatedDezena("quininha_10"))
	assert.True(t, IsAccumulatedDezena("seninha_8"))
	assert.False(t, IsAccumulatedDezena("milhar"))

	assert.Equal(t, 4, AccumulatedDezenaThreshold("lotinha_15"))
	assert.Equal(t, 5, AccumulatedDezenaThreshold("quininha_10"))
	assert.Equal(t, 6, AccumulatedDezenaThreshold("seninha_8"))
}

func TestEvaluateAccumulatedDezena(t *testing.T) {
	caixa := models.Drawing{
		Date: "2026-07-30", Time: "20:00", House: "CAIXA", Lottery: "LOTO_FACIL",
		Prizes: []models.Prize{{Number: "01-02-03-04-05-06-07-08-09-10-11-12-13-14-15"}},
	}

	r := EvaluateAccumulatedDezena("lotinha_15", "01-02-03-04-20", caixa)
	assert.True(t, r.Hit)

	r = EvaluateAccumulatedDezena("lotinha_15", "16-17-18-19-20", caixa)
	assert.False(t, r.Hit)
}

func TestParsePlacementGrammar(t *testing.T) {
	assert.Equal(t, []int{1}, ParsePlacement(""))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, ParsePlacement("geral"))
	assert.Equal(t, []int{3}, ParsePlacement("3_premio"))
	assert.Equal(t, []int{2, 3, 4}, ParsePlacement("2_ao_4"))
	assert.Equal(t, []int{1, 2}, ParsePlacement("1_premio_e_2_premio"))
}

func TestGrupoZeroDezenaIsGroup25(t *testing.T) {
	assert.Equal(t, 25, Grupo("00"))
	assert.Equal(t, 1, Grupo("01"))
	assert.Equal(t, 1, Grupo("04"))
	assert.Equal(t, 2, Grupo("05"))
}

func TestIsPermutation(t *testing.T) {
	assert.True(t, IsPermutation("1234", "4321"))
	assert.False(t, IsPermutation("1234", "1235"))
	assert.False(t, IsPermutation("123", "1234"))
}
