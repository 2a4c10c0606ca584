package resolver

import "github.com/bridgetunes/lottery-settlement/internal/models"

// canonicalTable is the resolver's compile-time seed. It follows the
// newest source version's token times where versions disagreed (see
// DESIGN.md's Open Question resolution). Transform ("_maluca",
// Maluca=true) tokens exist for RIO, LOTECE, LOTEP and MINAS; BAHIA's
// "_maluca" tokens carry Maluca=false and name independent MALUCA
// drawings rather than a transform of the standard one.
var canonicalTable = []models.LotteryIdToken{
	// RIO/FEDERAL
	{Token: "rj_pt_09", House: "RIO", Time: "09:20", Lottery: "PT"},
	{Token: "rj_pt_11", House: "RIO", Time: "11:00", Lottery: "PT"},
	{Token: "rj_pt_14", House: "RIO", Time: "14:20", Lottery: "PT"},
	{Token: "rj_pt_16", House: "RIO", Time: "16:00", Lottery: "PT"},
	{Token: "rj_pt_18", House: "RIO", Time: "18:00", Lottery: "PT"},
	{Token: "rj_pt_21", House: "RIO", Time: "21:00", Lottery: "PT"},
	{Token: "rj_coruja_21", House: "RIO", Time: "21:00", Lottery: "CORUJA"},
	{Token: "rj_pt_14_maluca", House: "RIO", Time: "14:20", Lottery: "PT", Maluca: true},
	{Token: "rj_pt_21_maluca", House: "RIO", Time: "21:00", Lottery: "PT", Maluca: true},

	// BAHIA — its "_maluca" tokens are not transforms (Maluca=false):
	// they name independent drawings (lottery=MALUCA).
	{Token: "bs_09", House: "BAHIA", Time: "09:45", Lottery: "PT"},
	{Token: "bs_11", House: "BAHIA", Time: "11:30", Lottery: "PT"},
	{Token: "bs_14", House: "BAHIA", Time: "14:00", Lottery: "PT"},
	{Token: "bs_16", House: "BAHIA", Time: "16:20", Lottery: "PT"},
	{Token: "bs_18", House: "BAHIA", Time: "18:40", Lottery: "PT"},
	{Token: "bs_21", House: "BAHIA", Time: "21:20", Lottery: "PT"},
	{Token: "bs_14_maluca", House: "BAHIA", Time: "14:00", Lottery: "MALUCA"},
	{Token: "bs_21_maluca", House: "BAHIA", Time: "21:20", Lottery: "MALUCA"},

	// LOTECE (Ceará) — its MALUCA transform reverses prizes 1..7,
	// distinct from the "reverse 1..5, drop 6/7" rule every other
	// house follows (see internal/settlement maluca.go).
	{Token: "ce_08", House: "LOTECE", Time: "11:00", Lottery: "PT"},
	{Token: "ce_10", House: "LOTECE", Time: "11:00", Lottery: "PT"},
	{Token: "ce_12", House: "LOTECE", Time: "11:00", Lottery: "PT"},
	{Token: "ce_14", House: "LOTECE", Time: "14:20", Lottery: "PT"},
	{Token: "ce_16", House: "LOTECE", Time: "16:00", Lottery: "PT"},
	{Token: "ce_18", House: "LOTECE", Time: "18:00", Lottery: "PT"},
	{Token: "ce_14_maluca", House: "LOTECE", Time: "14:20", Lottery: "PT", Maluca: true},

	// LOTEP (Paraíba)
	{Token: "pb_09", House: "LOTEP", Time: "09:20", Lottery: "PT"},
	{Token: "pb_14", House: "LOTEP", Time: "14:20", Lottery: "PT"},
	{Token: "pb_18", House: "LOTEP", Time: "18:20", Lottery: "PT"},
	{Token: "pb_14_maluca", House: "LOTEP", Time: "14:20", Lottery: "PT", Maluca: true},

	// Minas Gerais
	{Token: "mg_10", House: "MINAS", Time: "10:30", Lottery: "PT"},
	{Token: "mg_14", House: "MINAS", Time: "14:30", Lottery: "PT"},
	{Token: "mg_19", House: "MINAS", Time: "19:00", Lottery: "PT"},
	{Token: "mg_14_maluca", House: "MINAS", Time: "14:30", Lottery: "PT", Maluca: true},

	// Goiás
	{Token: "go_11", House: "GOIAS", Time: "11:00", Lottery: "PT"},
	{Token: "go_14", House: "GOIAS", Time: "14:00", Lottery: "PT"},
	{Token: "go_19", House: "GOIAS", Time: "19:30", Lottery: "PT"},

	// Rio Grande do Norte
	{Token: "rn_08", House: "RN", Time: "08:30", Lottery: "PT"},
	{Token: "rn_13", House: "RN", Time: "13:00", Lottery: "PT"},
	{Token: "rn_18", House: "RN", Time: "18:30", Lottery: "PT"},

	// São Paulo
	{Token: "sp_10", House: "SAOPAULO", Time: "10:00", Lottery: "PT"},
	{Token: "sp_15", House: "SAOPAULO", Time: "15:00", Lottery: "PT"},
	{Token: "sp_20", House: "SAOPAULO", Time: "20:00", Lottery: "PT"},

	// Sergipe
	{Token: "se_11", House: "SERGIPE", Time: "11:30", Lottery: "PT"},
	{Token: "se_17", House: "SERGIPE", Time: "17:00", Lottery: "PT"},

	// Maranhão
	{Token: "ma_09", House: "MARANHAO", Time: "09:30", Lottery: "PT"},
	{Token: "ma_15", House: "MARANHAO", Time: "15:30", Lottery: "PT"},

	// Pernambuco
	{Token: "pe_12", House: "PERNAMBUCO", Time: "12:20", Lottery: "PT"},
	{Token: "pe_19", House: "PERNAMBUCO", Time: "19:20", Lottery: "PT"},

	// Pará
	{Token: "pa_10", House: "PARA", Time: "10:45", Lottery: "PT"},
	{Token: "pa_16", House: "PARA", Time: "16:45", Lottery: "PT"},

	// Espírito Santo
	{Token: "es_13", House: "ESPIRITOSANTO", Time: "13:30", Lottery: "PT"},
	{Token: "es_20", House: "ESPIRITOSANTO", Time: "20:30", Lottery: "PT"},

	// Federal listing (bespoke source — one page lists many dates)
	{Token: "federal", House: "RIO", Time: "19:00", Lottery: "FEDERAL"},

	// CAIXA accumulated-dezena games settle directly against the
	// day's 20:00 CAIXA drawing and never go through this table, but
	// the token is registered for completeness of C4's contract.
	{Token: "caixa_loto_facil", House: "CAIXA", Time: "20:00", Lottery: "LOTO_FACIL"},
	{Token: "caixa_quina", House: "CAIXA", Time: "20:00", Lottery: "QUINA"},
	{Token: "caixa_mega_sena", House: "CAIXA", Time: "20:00", Lottery: "MEGA_SENA"},
}

// DefaultExpectedDrawingCounts derives the scheduler's skip-planner map
// from the canonical table: one expected drawing per distinct
// (house, time, lottery) slot. Maluca tokens that transform an existing
// drawing share that drawing's slot and don't add a count; BAHIA's
// maluca tokens name their own independent lottery ("MALUCA") and do.
func DefaultExpectedDrawingCounts() map[string]int {
	seen := map[string]bool{}
	counts := map[string]int{}
	for _, t := range canonicalTable {
		key := t.House + "|" + t.Time + "|" + t.Lottery
		if seen[key] {
			continue
		}
		seen[key] = true
		counts[t.House]++
	}
	return counts
}
