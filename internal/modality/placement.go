package modality

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	rePremio   = regexp.MustCompile(`^(\d+)_premio$`)
	reRangeAo  = regexp.MustCompile(`^(\d+)_ao_(\d+)$`)
	reRangeN   = regexp.MustCompile(`^(\d+)_(\d+)_premio$`)
)

// maxPlacement is the highest prize rank a drawing ever carries.
const maxPlacement = 7

// ParsePlacement is the placement grammar isolated as its own
// table-testable parser, per the design note. Rules are tried in order;
// the first match wins.
func ParsePlacement(placement string) []int {
	placement = strings.ToLower(strings.TrimSpace(placement))

	if placement == "geral" {
		return rangePositions(1, maxPlacement)
	}

	if strings.Contains(placement, "_e_") {
		sides := strings.SplitN(placement, "_e_", 2)
		set := map[int]bool{}
		var out []int
		for _, side := range sides {
			for _, p := range ParsePlacement(side) {
				if !set[p] {
					set[p] = true
					out = append(out, p)
				}
			}
		}
		sortInts(out)
		return out
	}

	if m := rePremio.FindStringSubmatch(placement); m != nil {
		pos, _ := strconv.Atoi(m[1])
		return []int{pos}
	}

	if m := reRangeAo.FindStringSubmatch(placement); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		return rangePositions(lo, hi)
	}

	if m := reRangeN.FindStringSubmatch(placement); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		return rangePositions(lo, hi)
	}

	return []int{1}
}

func rangePositions(lo, hi int) []int {
	if hi > maxPlacement {
		hi = maxPlacement
	}
	if lo < 1 {
		lo = 1
	}
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
