package parser

import (
	"regexp"
	"strings"

	"github.com/bridgetunes/lottery-settlement/internal/models"
)

var (
	fourDigitRun = regexp.MustCompile(`\d{4}`)
	hasDigit     = regexp.MustCompile(`\d`)
)

// skipRow reports whether a prize row is a sum/multiplication annotation
// rather than an actual prize ("soma" or "mult").
func skipRow(rowText string) bool {
	lower := strings.ToLower(rowText)
	return strings.Contains(lower, "soma") || strings.Contains(lower, "mult")
}

// parseRowCells extracts a Prize from a table row's cell texts: the
// first 4-digit run across cells becomes Number; if the row also carries
// a short trailing cell (<20 chars, no digits) it becomes Animal.
func parseRowCells(cells []string) (models.Prize, bool) {
	joined := strings.Join(cells, " ")
	if skipRow(joined) {
		return models.Prize{}, false
	}

	number := fourDigitRun.FindString(joined)
	if number == "" {
		return models.Prize{}, false
	}

	var animal string
	if len(cells) > 0 {
		last := strings.TrimSpace(cells[len(cells)-1])
		if last != "" && len(last) < 20 && !hasDigit.MatchString(last) {
			animal = last
		}
	}

	return models.Prize{Number: number, Animal: animal}, true
}
