package parser

import (
	"encoding/json"
	"strings"

	"github.com/bridgetunes/lottery-settlement/internal/models"
)

// caixaResponse is the shape of CAIXA's public API response for a
// federal-lottery drawing. encoding/json (stdlib) is sufficient here:
// the only field this system needs is the flat listaDezenas array, so
// no third-party JSON library in the retrieval pack adds anything over
// the standard decoder (see DESIGN.md).
type caixaResponse struct {
	DataApuracao  string   `json:"dataApuracao"`
	ListaDezenas  []string `json:"listaDezenas"`
	NumeroConcurso int     `json:"numeroConcurso"`
}

// ParseCaixaJSON decodes a CAIXA API response into a Drawing whose
// single prize carries a CSV of two-digit dezenas, per spec.md §4.2.
func ParseCaixaJSON(house, lottery, date string, body []byte) (models.Drawing, bool) {
	var resp caixaResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return models.Drawing{}, false
	}
	if len(resp.ListaDezenas) == 0 {
		return models.Drawing{}, false
	}
	if resp.DataApuracao != "" && !sameDate(resp.DataApuracao, date) {
		return models.Drawing{}, false
	}

	dezenas := make([]string, 0, len(resp.ListaDezenas))
	for _, d := range resp.ListaDezenas {
		d = strings.TrimSpace(d)
		if len(d) == 1 {
			d = "0" + d
		}
		dezenas = append(dezenas, d)
	}

	return models.Drawing{
		Date:    date,
		Time:    "20:00",
		House:   house,
		Lottery: lottery,
		Prizes:  []models.Prize{{Number: strings.Join(dezenas, "-")}},
	}, true
}

// sameDate compares CAIXA's DD/MM/YYYY apuracao date to our YYYY-MM-DD.
func sameDate(apuracao, isoDate string) bool {
	parts := strings.Split(apuracao, "/")
	if len(parts) != 3 {
		return true // can't compare; don't reject
	}
	return isoDate == parts[2]+"-"+parts[1]+"-"+parts[0]
}
