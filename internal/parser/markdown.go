package parser

import (
	"regexp"
	"strings"

	"github.com/bridgetunes/lottery-settlement/internal/models"
)

var (
	sectionMarker  = regexp.MustCompile(`(?m)^(#{1,6}\s.*|---+)$`)
	mdTableRow     = regexp.MustCompile(`\|\s*\d{1,4}\s*\|`)
	ordinalRow     = regexp.MustCompile(`(?i)^\s*\d+º`)
	dateOrTimeFrag = regexp.MustCompile(`\d{1,2}[h:/]\d{2,4}|\d{4}-\d{2}-\d{2}`)
)

// ParseMarkdown applies when only rendered Markdown is available: split
// by section markers, find the time stamp, then search for prize
// numbers in table cells, "1º ..." rows, or bare 4-digit runs once known
// date/time fragments are stripped.
func ParseMarkdown(house string, body string) []models.Drawing {
	sections := splitSections(body)

	var out []models.Drawing
	for _, section := range sections {
		t, ok := extractTime(section)
		if !ok {
			continue
		}

		var prizes []models.Prize
		lines := strings.Split(section, "\n")
		for _, line := range lines {
			line = strings.TrimSpace(line)
			if line == "" || skipRow(line) {
				continue
			}

			switch {
			case mdTableRow.MatchString(line):
				cells := strings.Split(line, "|")
				trimmed := make([]string, 0, len(cells))
				for _, c := range cells {
					if c = strings.TrimSpace(c); c != "" {
						trimmed = append(trimmed, c)
					}
				}
				if p, ok := parseRowCells(trimmed); ok {
					prizes = append(prizes, p)
				}
			case ordinalRow.MatchString(line):
				if p, ok := parseRowCells([]string{line}); ok {
					prizes = append(prizes, p)
				}
			default:
				stripped := dateOrTimeFrag.ReplaceAllString(line, "")
				if n := fourDigitRun.FindString(stripped); n != "" {
					prizes = append(prizes, models.Prize{Number: n})
				}
			}
		}

		if len(prizes) < 5 {
			continue
		}
		out = append(out, models.Drawing{
			Time:    NormalizeTime(house, t),
			House:   house,
			Lottery: ClassifyLottery(section),
			Prizes:  prizes,
		})
	}
	return out
}

func splitSections(body string) []string {
	idx := sectionMarker.FindAllStringIndex(body, -1)
	if len(idx) == 0 {
		return []string{body}
	}
	var sections []string
	start := 0
	for _, loc := range idx[1:] {
		sections = append(sections, body[start:loc[0]])
		start = loc[0]
	}
	sections = append(sections, body[start:])
	return sections
}
