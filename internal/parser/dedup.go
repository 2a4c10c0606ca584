package parser

import "github.com/bridgetunes/lottery-settlement/internal/models"

// Dedup reconciles parse output for the same page, which often
// publishes the same draw twice (positions 1-5, then later 1-7). Drawings
// sharing a (time, house, lottery) key are grouped and reconciled:
// matching overlapping prefixes merge into the longer; divergent
// overlapping prefixes are distinct draws sharing a slot and both
// survive, per spec.md §4.2.
func Dedup(drawings []models.Drawing) []models.Drawing {
	var order []models.DrawingKey
	groups := map[models.DrawingKey][]models.Drawing{}

	for _, d := range drawings {
		k := d.Key()
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], d)
	}

	var out []models.Drawing
	for _, k := range order {
		out = append(out, reconcileGroup(groups[k])...)
	}
	return out
}

func reconcileGroup(group []models.Drawing) []models.Drawing {
	var kept []models.Drawing
	for _, cand := range group {
		merged := false
		for i, existing := range kept {
			if !samePrefix(cand, existing) {
				continue
			}
			if len(cand.Prizes) > len(existing.Prizes) {
				kept[i] = cand
			}
			merged = true
			break
		}
		if !merged {
			kept = append(kept, cand)
		}
	}
	return kept
}

// samePrefix reports whether two drawings agree on every prize in their
// overlapping prefix.
func samePrefix(a, b models.Drawing) bool {
	n := len(a.Prizes)
	if len(b.Prizes) < n {
		n = len(b.Prizes)
	}
	for i := 0; i < n; i++ {
		if a.Prizes[i].Number != b.Prizes[i].Number {
			return false
		}
	}
	return true
}
