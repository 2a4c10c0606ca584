package parser

// timeNormalization adjusts source-specific quirks per house, e.g.
// house "LOTECE" times 10:00 and 12:00 are rewritten to 11:00 (spec.md
// §4.2's literal example).
var timeNormalization = map[string]map[string]string{
	"LOTECE": {
		"10:00": "11:00",
		"12:00": "11:00",
	},
}

// NormalizeTime rewrites a raw extracted time for house quirks, or
// returns it unchanged.
func NormalizeTime(house, raw string) string {
	if table, ok := timeNormalization[house]; ok {
		if rewritten, ok := table[raw]; ok {
			return rewritten
		}
	}
	return raw
}
