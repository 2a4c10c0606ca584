package parser

import (
	"testing"

	"github.com/bridgetunes/lottery-settlement/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHTMLTableScanStrategy(t *testing.T) {
	html := `
<html><body>
<div>Resultado 14h20 PT</div>
<table>
<tr><td>1</td><td>1234</td><td>Cavalo</td></tr>
<tr><td>2</td><td>5678</td><td>Leão</td></tr>
<tr><td>3</td><td>9012</td><td>Urso</td></tr>
<tr><td>4</td><td>3456</td><td>Pato</td></tr>
<tr><td>5</td><td>7890</td><td>Touro</td></tr>
</table>
</body></html>`

	drawings, err := Parse("RIO", []byte(html))
	require.NoError(t, err)
	require.Len(t, drawings, 1)
	d := drawings[0]
	assert.Equal(t, "14:20", d.Time)
	assert.Equal(t, "PT", d.Lottery)
	assert.Len(t, d.Prizes, 5)
	assert.Equal(t, "1234", d.Prizes[0].Number)
	assert.Equal(t, "Cavalo", d.Prizes[0].Animal)
}

func TestParseDiscardsDrawingsUnderFivePrizes(t *testing.T) {
	html := `
<html><body>
<div>14h20 PT</div>
<table>
<tr><td>1</td><td>1234</td></tr>
<tr><td>2</td><td>5678</td></tr>
</table>
</body></html>`

	drawings, err := Parse("RIO", []byte(html))
	require.NoError(t, err)
	assert.Empty(t, drawings)
}

func TestParseLoteceTimeNormalization(t *testing.T) {
	html := `
<html><body>
<div>10h00 PT</div>
<table>
<tr><td>1234</td></tr>
<tr><td>5678</td></tr>
<tr><td>9012</td></tr>
<tr><td>3456</td></tr>
<tr><td>7890</td></tr>
</table>
</body></html>`

	drawings, err := Parse("LOTECE", []byte(html))
	require.NoError(t, err)
	require.Len(t, drawings, 1)
	assert.Equal(t, "11:00", drawings[0].Time)
}

func TestParseMarkdownFallbackWhenNotHTML(t *testing.T) {
	body := "# Resultado 14h20 PT\n" +
		"1º 1234 Cavalo\n" +
		"2º 5678 Leão\n" +
		"3º 9012 Urso\n" +
		"4º 3456 Pato\n" +
		"5º 7890 Touro\n"

	drawings, err := Parse("RIO", []byte(body))
	require.NoError(t, err)
	require.Len(t, drawings, 1)
	assert.Equal(t, "14:20", drawings[0].Time)
	assert.Len(t, drawings[0].Prizes, 5)
}

func TestClassifyLotteryPriorityOrder(t *testing.T) {
	assert.Equal(t, "CORUJA", ClassifyLottery("Resultado CORUJA PT 21h00"))
	assert.Equal(t, "MALUCA", ClassifyLottery("Resultado BAHIA MALUCA 14h00"))
	assert.Equal(t, "PT", ClassifyLottery("Resultado PT 14h20"))
	assert.Equal(t, "GERAL", ClassifyLottery("Resultado do dia"))
}

func TestDedupMergesExtendedPrefixAndKeepsDivergentDraws(t *testing.T) {
	short := models.Drawing{Time: "14:20", House: "RIO", Lottery: "PT", Prizes: []models.Prize{
		{Number: "1234"}, {Number: "5678"}, {Number: "9012"}, {Number: "3456"}, {Number: "7890"},
	}}
	long := models.Drawing{Time: "14:20", House: "RIO", Lottery: "PT", Prizes: append(
		append([]models.Prize{}, short.Prizes...),
		models.Prize{Number: "1111"}, models.Prize{Number: "2222"},
	)}
	divergent := models.Drawing{Time: "14:20", House: "RIO", Lottery: "PT", Prizes: []models.Prize{
		{Number: "0000"}, {Number: "5678"}, {Number: "9012"}, {Number: "3456"}, {Number: "7890"},
	}}

	out := Dedup([]models.Drawing{short, long, divergent})

	require.Len(t, out, 2)
	assert.Len(t, out[0].Prizes, 7) // short merged into long
	assert.Len(t, out[1].Prizes, 5) // divergent kept as a distinct draw
}
