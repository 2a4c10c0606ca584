package scheduler

import "github.com/bridgetunes/lottery-settlement/internal/models"

// SkipPlanner decides which houses still need a scrape this cycle: a
// house already holding expected[house] distinct drawings for the date
// is done for today and is skipped, per spec.md §2's
// "Scheduler + skip-planner" row.
type SkipPlanner struct {
	Expected map[string]int
}

// NextHouses filters all to the subset that has not yet reached its
// expected drawing count, given drawings already recorded for the date.
func (p *SkipPlanner) NextHouses(all []string, drawings []models.Drawing) []string {
	counts := map[string]int{}
	for _, d := range drawings {
		counts[d.House]++
	}

	out := make([]string, 0, len(all))
	for _, house := range all {
		expected, ok := p.Expected[house]
		if !ok || counts[house] < expected {
			out = append(out, house)
		}
	}
	return out
}
