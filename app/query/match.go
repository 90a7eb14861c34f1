// Package query holds the pure filter, search and ranking functions behind the
// portal's listings. Every function here is total: it never fails, never
// mutates its input and returns a non-nil slice.
package query

import (
	"strings"

	"golang.org/x/text/cases"
)

// fold returns s case-folded for comparison. A Caser is stateful so one is
// created per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

// needle prepares a free-text query. Callers treat an empty needle as an
// absent criterion.
func needle(q string) string {
	return fold(strings.TrimSpace(q))
}

func containsFolded(haystack, foldedNeedle string) bool {
	return strings.Contains(fold(haystack), foldedNeedle)
}

func anyContainsFolded(haystacks []string, foldedNeedle string) bool {
	for _, h := range haystacks {
		if containsFolded(h, foldedNeedle) {
			return true
		}
	}
	return false
}
