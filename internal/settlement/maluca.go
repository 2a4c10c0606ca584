package settlement

import "github.com/bridgetunes/lottery-settlement/internal/models"

// ApplyMaluca derives the MALUCA transform drawing per spec.md §4.5: a
// pure function over a Drawing value, never mutating the loaded map.
// Callers must only invoke this for non-BAHIA houses (BAHIA's MALUCA
// draws are independent drawings, not a transform of the standard one).
func ApplyMaluca(house string, d models.Drawing) models.Drawing {
	out := models.Drawing{Date: d.Date, Time: d.Time, House: d.House, Lottery: d.Lottery}

	if house == "LOTECE" {
		out.Prizes = make([]models.Prize, 0, len(d.Prizes))
		for _, p := range d.Prizes {
			out.Prizes = append(out.Prizes, models.Prize{Number: reverse4(p.Number), Animal: p.Animal})
		}
		return out
	}

	// All other houses: reverse prizes 1..5, drop 6 and 7 (prizes 8-9
	// from the source are never persisted, so those slots are
	// unrecoverable — per spec.md §4.5's literal note).
	limit := len(d.Prizes)
	if limit > 5 {
		limit = 5
	}
	out.Prizes = make([]models.Prize, 0, limit)
	for i := 0; i < limit; i++ {
		p := d.Prizes[i]
		out.Prizes = append(out.Prizes, models.Prize{Number: reverse4(p.Number), Animal: p.Animal})
	}
	return out
}

func reverse4(s string) string {
	s = models.PadMilhar(s)
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
