// Package parser implements the Drawing Parser (C2): three progressive
// HTML strategies, a Markdown fallback, and two special-source parsers
// (federal listing, CAIXA JSON), all converging on models.Drawing.
//
// HTML tree walking uses github.com/PuerkitoBio/goquery throughout,
// grounded on the bjorndonald-contrast-adjuster example which pairs
// goquery with a Gin service in exactly this shape.
package parser

import "strings"

// classificationOrder is the priority-ordered match list; the
// classification below operates on the uppercased full header text.
var classificationOrder = []struct {
	contains string
	lottery  string
}{
	{"CORUJA", "CORUJA"},
	{"MALUCA", "MALUCA"},
	{"PT", "PT"},
	{"BAHIA", "BAHIA"},
	{"FEDERAL", "FEDERAL"},
	{"LBR", "LBR"},
}

// ClassifyLottery is a priority-ordered string match on the uppercased
// header text (CORUJA before PT, MALUCA before generic BAHIA, etc.).
// Unmatched falls back to GERAL.
func ClassifyLottery(headerText string) string {
	upper := strings.ToUpper(headerText)
	for _, rule := range classificationOrder {
		if strings.Contains(upper, rule.contains) {
			return rule.lottery
		}
	}
	return "GERAL"
}
