package selector

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// roundHalfAwayFromZero rounds x to the nearest integer, with halves going
// away from zero (2.5 -> 3, -2.5 -> -3).
func roundHalfAwayFromZero(x float64) int {
	return int(math.Round(x))
}

// elementsCount returns the combined number of elements in selected
func elementsCount[K comparable, E any](selected map[K][]E) int {
	total := 0
	for _, elements := range selected {
		total += len(elements)
	}
	return total
}

// needMultipliers ranks categories by how much they need to grow to reach
// their fraction of total, most needy first. A category's multiplier is
// fraction / share, where share is counts(category) / total; categories
// with no elements get +Inf. Ties are ordered by ascending category.
func needMultipliers[K cmp.Ordered](dist Distribution[K], categories []K, counts func(K) int) []need[K] {
	total := 0
	for _, cat := range categories {
		total += counts(cat)
	}

	needs := make([]need[K], 0, len(categories))
	for _, cat := range categories {
		n := counts(cat)
		multiplier := math.Inf(1)
		if n > 0 {
			share := float64(n) / float64(total)
			multiplier = dist[cat] / share
		}
		needs = append(needs, need[K]{category: cat, multiplier: multiplier})
	}

	slices.SortFunc(needs, func(a, b need[K]) int {
		if c := cmp.Compare(b.multiplier, a.multiplier); c != 0 {
			return c
		}
		return cmp.Compare(a.category, b.category)
	})

	return needs
}

// label renders a category for logs and metric labels
func label[K any](cat K) string {
	return fmt.Sprint(cat)
}
