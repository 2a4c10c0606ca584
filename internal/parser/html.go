package parser

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/bridgetunes/lottery-settlement/internal/models"
)

// timeStamp matches the loose stamp form spec.md §4.2 names: `\d{1,2}[h:]\d{2}`.
var timeStamp = regexp.MustCompile(`(\d{1,2})[h:](\d{2})`)

func extractTime(text string) (string, bool) {
	m := timeStamp.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	hh := m[1]
	if len(hh) == 1 {
		hh = "0" + hh
	}
	return hh + ":" + m[2], true
}

// ParseHTML runs the three progressive strategies in order; the first
// one yielding >=1 drawing wins, per spec.md §4.2.
func ParseHTML(house string, doc *goquery.Document) []models.Drawing {
	if drawings := structuredHeaderStrategy(house, doc); len(drawings) > 0 {
		return drawings
	}
	if drawings := looseHeaderStrategy(house, doc); len(drawings) > 0 {
		return drawings
	}
	return tableScanStrategy(house, doc)
}

// structuredHeaderStrategy locates headers decorated as lottery titles
// (the site's dedicated heading class) whose text carries a time stamp
// and lottery hint; the next table yields the prize rows.
func structuredHeaderStrategy(house string, doc *goquery.Document) []models.Drawing {
	var out []models.Drawing
	doc.Find("header.resultado-titulo, .titulo-sorteio, .resultado-header").Each(func(_ int, header *goquery.Selection) {
		text := header.Text()
		t, ok := extractTime(text)
		if !ok {
			return
		}
		table := header.NextAllFiltered("table").First()
		if table.Length() == 0 {
			table = header.Parent().Find("table").First()
		}
		if table.Length() == 0 {
			return
		}
		prizes := extractPrizes(table)
		if len(prizes) < 5 {
			return
		}
		out = append(out, models.Drawing{
			Time:    NormalizeTime(house, t),
			House:   house,
			Lottery: ClassifyLottery(text),
			Prizes:  prizes,
		})
	})
	return out
}

// looseHeaderStrategy tries any header text containing the timestamp
// pattern, not just dedicated title elements.
func looseHeaderStrategy(house string, doc *goquery.Document) []models.Drawing {
	var out []models.Drawing
	doc.Find("h1, h2, h3, h4, h5, strong, b").Each(func(_ int, header *goquery.Selection) {
		text := header.Text()
		t, ok := extractTime(text)
		if !ok {
			return
		}
		table := header.NextAllFiltered("table").First()
		if table.Length() == 0 {
			table = header.Closest("div").Find("table").First()
		}
		if table.Length() == 0 {
			return
		}
		prizes := extractPrizes(table)
		if len(prizes) < 5 {
			return
		}
		out = append(out, models.Drawing{
			Time:    NormalizeTime(house, t),
			House:   house,
			Lottery: ClassifyLottery(text),
			Prizes:  prizes,
		})
	})
	return out
}

// tableScanStrategy enumerates every table; for each with >=5 prize
// rows, it walks backwards through up to 15 preceding block elements to
// find the time and lottery hint.
func tableScanStrategy(house string, doc *goquery.Document) []models.Drawing {
	var out []models.Drawing
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		prizes := extractPrizes(table)
		if len(prizes) < 5 {
			return
		}

		hint := ""
		node := table
		for i := 0; i < 15 && hint == ""; i++ {
			node = node.Prev()
			if node.Length() == 0 {
				break
			}
			text := node.Text()
			if _, ok := extractTime(text); ok {
				hint = text
			}
		}
		t, ok := extractTime(hint)
		if !ok {
			return
		}
		out = append(out, models.Drawing{
			Time:    NormalizeTime(house, t),
			House:   house,
			Lottery: ClassifyLottery(hint),
			Prizes:  prizes,
		})
	})
	return out
}

// extractPrizes walks a table's rows, skipping non-prize annotation rows.
func extractPrizes(table *goquery.Selection) []models.Prize {
	var prizes []models.Prize
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		var cells []string
		row.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		if len(cells) == 0 {
			return
		}
		if prize, ok := parseRowCells(cells); ok {
			prizes = append(prizes, prize)
		}
	})
	return prizes
}
