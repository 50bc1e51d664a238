package selector

// trim removes elements from selected, one at a time, until it holds size
// elements. Each step pops the last element of the most over-represented
// category, the trim candidate.
func (sl *Selector[K, E]) trim(selected map[K][]E, size int) {
	for total := elementsCount(selected); total > size; total-- {
		cat, ok := sl.trimCandidate(selected)
		if !ok {
			// AssertSatisfied should make this unreachable
			sl.log.Warn("no category left to trim",
				"selected", total,
				"target", size)
			return
		}

		selected[cat] = selected[cat][:len(selected[cat])-1]

		sl.log.Debug("trimmed category",
			"category", label(cat),
			"remaining", len(selected[cat]),
			"selected", total-1)

		if sl.metrics != nil {
			sl.metrics.TrackTrim(label(cat))
		}
	}
}

// trimCandidate returns the category with the smallest need multiplier in
// selected that still has an element to remove. Between equal multipliers
// the highest category is trimmed first, so the candidate is always the
// last eligible entry of the need ranking.
func (sl *Selector[K, E]) trimCandidate(selected map[K][]E) (K, bool) {
	needs := needMultipliers(sl.dist, sl.categories, func(cat K) int {
		return len(selected[cat])
	})

	for i := len(needs) - 1; i >= 0; i-- {
		if cat := needs[i].category; len(selected[cat]) > 0 {
			return cat, true
		}
	}

	var zero K
	return zero, false
}

// topUp adds elements to selected, one at a time, until it holds size
// elements. Rounding every quota down can leave the selection short of the
// target; each step takes the next element, in order, of the neediest
// category with one left.
func (sl *Selector[K, E]) topUp(selected, order map[K][]E, size int) {
	for total := elementsCount(selected); total < size; total++ {
		cat, ok := sl.topUpCandidate(selected, order)
		if !ok {
			// AssertSatisfied should make this unreachable
			sl.log.Warn("no category left to top up",
				"selected", total,
				"target", size)
			return
		}

		selected[cat] = append(selected[cat], order[cat][len(selected[cat])])

		sl.log.Debug("topped up category",
			"category", label(cat),
			"count", len(selected[cat]),
			"selected", total+1)

		if sl.metrics != nil {
			sl.metrics.TrackTopUp(label(cat))
		}
	}
}

// topUpCandidate returns the category with the largest need multiplier in
// selected that still has unselected elements in order. It is the first
// eligible entry of the need ranking.
func (sl *Selector[K, E]) topUpCandidate(selected, order map[K][]E) (K, bool) {
	needs := needMultipliers(sl.dist, sl.categories, func(cat K) int {
		return len(selected[cat])
	})

	for _, n := range needs {
		if cat := n.category; len(selected[cat]) < len(order[cat]) {
			return cat, true
		}
	}

	var zero K
	return zero, false
}
