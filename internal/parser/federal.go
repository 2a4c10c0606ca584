package parser

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/bridgetunes/lottery-settlement/internal/models"
)

// ParseFederalListing handles the federal listing special source: one
// page lists many draw dates, each with its own 5 prizes; filter down
// to the target date's row.
func ParseFederalListing(house string, doc *goquery.Document, targetDate time.Time) []models.Drawing {
	target := targetDate.Format("02/01/2006")
	var out []models.Drawing

	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		var cells []string
		row.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		if len(cells) == 0 {
			return
		}
		if !strings.Contains(strings.Join(cells, " "), target) {
			return
		}

		prizes := federalRowPrizes(cells)
		if len(prizes) < 5 {
			return
		}
		out = append(out, models.Drawing{
			Time:    "19:00",
			House:   house,
			Lottery: "FEDERAL",
			Prizes:  prizes,
		})
	})
	return out
}

// federalRowPrizes pulls out every 4-digit prize in a listing row
// (skipping the date cell itself), pairing each with a following
// animal-name cell when present.
func federalRowPrizes(cells []string) []models.Prize {
	var prizes []models.Prize
	for i := 0; i < len(cells); i++ {
		cell := cells[i]
		number := fourDigitRun.FindString(cell)
		if number == "" || strings.Contains(cell, "/") {
			continue
		}
		prize := models.Prize{Number: number}
		if i+1 < len(cells) {
			next := cells[i+1]
			if next != "" && len(next) < 20 && !hasDigit.MatchString(next) {
				prize.Animal = next
				i++
			}
		}
		prizes = append(prizes, prize)
	}
	return prizes
}
