package selector

import (
	"errors"
	"math"
)

// IsSatisfied reports whether Select would succeed. Only
// ErrDistributionUnsatisfied is turned into false; any other error is
// returned.
func (sl *Selector[K, E]) IsSatisfied() (bool, error) {
	err := sl.AssertSatisfied()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrDistributionUnsatisfied) {
		return false, nil
	}
	return false, err
}

// AssertSatisfied returns an *UnsatisfiedError if the collected elements
// can't satisfy the distribution (and the target count, if set).
//
// The element count floor and the empty category check overlap, but are
// kept separate so the error names the specific problem.
func (sl *Selector[K, E]) AssertSatisfied() error {
	if sl.total < len(sl.categories) {
		return &UnsatisfiedError{
			Reason: ReasonTooFewElements,
			Total:  sl.total,
			Target: sl.target,
		}
	}

	var empty []string
	for _, cat := range sl.categories {
		if sl.pools[cat].IsEmpty() {
			empty = append(empty, label(cat))
		}
	}
	if len(empty) > 0 {
		return &UnsatisfiedError{
			Reason: ReasonEmptyCategories,
			Total:  sl.total,
			Target: sl.target,
			Empty:  empty,
		}
	}

	if !sl.hasTarget {
		return nil
	}

	if sl.total < sl.target {
		return &UnsatisfiedError{
			Reason: ReasonBelowTarget,
			Total:  sl.total,
			Target: sl.target,
		}
	}

	if projected := sl.EstimatedFinalCount(); projected < sl.target {
		return &UnsatisfiedError{
			Reason:    ReasonTargetUnreachable,
			Total:     sl.total,
			Target:    sl.target,
			Projected: projected,
		}
	}

	return nil
}

// EstimatedFinalCount returns the largest selection size the collected
// elements support while keeping the distribution, capped at the target
// count when one is set.
func (sl *Selector[K, E]) EstimatedFinalCount() int {
	limiter := sl.Limiter()
	count := int(math.Floor(sl.ratio(limiter)))
	if sl.hasTarget {
		count = min(count, sl.target)
	}
	return count
}

// Limiter returns the category bounding the selection size: the one with
// the smallest count/fraction ratio. Ties go to the lowest category.
func (sl *Selector[K, E]) Limiter() K {
	limiter := sl.categories[0]
	best := sl.ratio(limiter)
	for _, cat := range sl.categories[1:] {
		if r := sl.ratio(cat); r < best {
			limiter, best = cat, r
		}
	}
	return limiter
}

// ratio is the selection size the pool for cat could support on its own
func (sl *Selector[K, E]) ratio(cat K) float64 {
	return float64(sl.pools[cat].Count()) / sl.dist[cat]
}
