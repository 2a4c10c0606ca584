package parser

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/bridgetunes/lottery-settlement/internal/models"
)

// Parse converts raw bytes into zero or more models.Drawing records for
// the target house, applying the HTML strategies first and falling back
// to the Markdown parser when the body doesn't look like HTML at all.
// Output is deduplicated per spec.md §4.2 before returning.
func Parse(house string, body []byte) ([]models.Drawing, error) {
	if looksLikeHTML(body) {
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
		if err == nil {
			if drawings := ParseHTML(house, doc); len(drawings) > 0 {
				return keepValid(Dedup(drawings)), nil
			}
		}
	}
	drawings := ParseMarkdown(house, string(body))
	return keepValid(Dedup(drawings)), nil
}

func looksLikeHTML(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	lower := strings.ToLower(string(trimmed))
	return strings.HasPrefix(lower, "<") || strings.Contains(lower, "<html") || strings.Contains(lower, "<table")
}

// keepValid discards drawings with fewer than 5 prizes, per spec.md
// §4.3 ("Drawings with prizes.len() < 5 are discarded upstream").
func keepValid(drawings []models.Drawing) []models.Drawing {
	out := make([]models.Drawing, 0, len(drawings))
	for _, d := range drawings {
		if d.Valid() {
			out = append(out, d)
		}
	}
	return out
}
