// Package modality implements the settlement engine's pure modality
// evaluator: a closed set of ~40 tagged variants sharing a digit-extractor
// utility, per the design note that this family is a tagged variant, not
// an open string-matched pile of special cases.
package modality

import "sort"

// MilharDigits returns the 4-digit milhar, already zero-padded by the
// caller (models.Drawing.PrizeAt does the padding).
func MilharDigits(milhar string) string { return milhar }

// CentenaDir is the last 3 digits of a milhar.
func CentenaDir(milhar string) string { return milhar[1:] }

// CentenaEsq is the first 3 digits of a milhar.
func CentenaEsq(milhar string) string { return milhar[:3] }

// DezenaDir is the last 2 digits of a milhar.
func DezenaDir(milhar string) string { return milhar[2:] }

// DezenaEsq is the first 2 digits of a milhar.
func DezenaEsq(milhar string) string { return milhar[:2] }

// DezenaMeio is the middle 2 digits of a milhar.
func DezenaMeio(milhar string) string { return milhar[1:3] }

// Unidade is the last digit of a milhar.
func Unidade(milhar string) string { return milhar[3:] }

// Grupo derives a group number (1..25) from a 2-digit dezena string.
// grupo(00) == 25; otherwise ((n-1)/4)+1.
func Grupo(dezena string) int {
	n := atoiSafe(dezena)
	if n == 0 {
		return 25
	}
	return (n-1)/4 + 1
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}

// IsPermutation reports whether a and b contain the same multiset of
// characters (used by milhar_inv* and centena_inv* families).
func IsPermutation(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	ra, rb := []rune(a), []rune(b)
	sort.Slice(ra, func(i, j int) bool { return ra[i] < ra[j] })
	sort.Slice(rb, func(i, j int) bool { return rb[i] < rb[j] })
	return string(ra) == string(rb)
}
