package selector

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"go.ntppool.org/stratify/pool"
)

// Selector collects elements per category and selects a subset matching a
// target distribution. It is not safe for concurrent use.
type Selector[K cmp.Ordered, E any] struct {
	dist       Distribution[K]
	categories []K
	pools      map[K]*pool.Pool[K, E]
	total      int

	target    int
	hasTarget bool

	log     *slog.Logger
	metrics *Metrics
	rand    pool.Rand
}

// New creates a selector for dist with one empty pool per category.
func New[K cmp.Ordered, E any](dist Distribution[K], opts ...Option) (*Selector[K, E], error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := dist.validate(); err != nil {
		return nil, err
	}
	if cfg.hasCount && cfg.count < 0 {
		return nil, fmt.Errorf("%w: count %d is negative", ErrInvalidDistribution, cfg.count)
	}

	log := cfg.log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	sl := &Selector[K, E]{
		dist:       make(Distribution[K], len(dist)),
		categories: dist.Categories(),
		pools:      make(map[K]*pool.Pool[K, E], len(dist)),
		target:     cfg.count,
		hasTarget:  cfg.hasCount,
		log:        log,
		metrics:    cfg.metrics,
		rand:       cfg.rand,
	}
	for _, cat := range sl.categories {
		sl.dist[cat] = dist[cat]
		sl.pools[cat] = pool.New[K, E](cat)
	}

	return sl, nil
}

// Add appends e to the pool for cat. It fails with ErrInvalidCategory if
// cat isn't part of the distribution.
func (sl *Selector[K, E]) Add(cat K, e E) error {
	p, ok := sl.pools[cat]
	if !ok {
		return fmt.Errorf("%w: %v is not a valid category", ErrInvalidCategory, cat)
	}

	p.Append(e)
	sl.total++

	if sl.metrics != nil {
		sl.metrics.TrackAdd(label(cat))
	}
	return nil
}

// Fill calls produce with the current total element count and adds the
// returned element to the returned category until produce returns false.
// The first Add error stops the loop and is returned.
func (sl *Selector[K, E]) Fill(produce func(total int) (K, E, bool)) error {
	for {
		cat, e, ok := produce(sl.total)
		if !ok {
			return nil
		}
		if err := sl.Add(cat, e); err != nil {
			return err
		}
	}
}

// FillCategory is like Fill with every produced element going to cat.
func (sl *Selector[K, E]) FillCategory(cat K, produce func(total int) (E, bool)) error {
	for {
		e, ok := produce(sl.total)
		if !ok {
			return nil
		}
		if err := sl.Add(cat, e); err != nil {
			return err
		}
	}
}

// Count returns the number of elements added across all categories.
func (sl *Selector[K, E]) Count() int {
	return sl.total
}

// Categories returns the configured categories in ascending order.
func (sl *Selector[K, E]) Categories() []K {
	return slices.Clone(sl.categories)
}

// Target returns the requested selection size and whether one was set.
func (sl *Selector[K, E]) Target() (int, bool) {
	return sl.target, sl.hasTarget
}

// PoolSize returns the number of elements added to cat.
func (sl *Selector[K, E]) PoolSize(cat K) int {
	p, ok := sl.pools[cat]
	if !ok {
		return 0
	}
	return p.Count()
}

// Select returns the elements chosen for each category. Without a target
// count the result has EstimatedFinalCount elements (up to rounding);
// with one it has exactly that many, trimming or topping up the rounded
// quotas as needed. The pools are not modified.
//
// If the collected elements can't satisfy the distribution the
// *UnsatisfiedError from AssertSatisfied is returned.
func (sl *Selector[K, E]) Select(opts ...SelectOption) (map[K][]E, error) {
	var cfg selectConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := sl.AssertSatisfied(); err != nil {
		if sl.metrics != nil {
			sl.metrics.TrackUnsatisfied(err)
		}
		return nil, err
	}

	finalCount := sl.EstimatedFinalCount()
	selected, order := sl.selectWanted(finalCount, cfg.mode)

	if sl.hasTarget {
		sl.trim(selected, sl.target)
		sl.topUp(selected, order, sl.target)
	}

	size := elementsCount(selected)
	sl.log.Debug("selection complete",
		"mode", cfg.mode.String(),
		"estimatedCount", finalCount,
		"selected", size)

	if sl.metrics != nil {
		sl.metrics.TrackSelection(cfg.mode.String(), size)
	}

	return selected, nil
}

// NeediestCategories returns every category ordered by how much it needs
// to grow to match the distribution, considering all added elements. The
// most under-represented category comes first.
func (sl *Selector[K, E]) NeediestCategories() []K {
	needs := needMultipliers(sl.dist, sl.categories, sl.PoolSize)

	categories := make([]K, 0, len(needs))
	for _, n := range needs {
		categories = append(categories, n.category)
	}
	return categories
}

// selectWanted takes each category's quota of finalCount from its pool.
// It also returns the order each pool is drawn in, so topUp can continue
// where the quota stopped.
func (sl *Selector[K, E]) selectWanted(finalCount int, mode selectionMode) (map[K][]E, map[K][]E) {
	selected := make(map[K][]E, len(sl.categories))
	order := make(map[K][]E, len(sl.categories))

	for _, cat := range sl.categories {
		quota := max(1, roundHalfAwayFromZero(float64(finalCount)*sl.dist[cat]))

		p := sl.pools[cat]
		switch mode {
		case modeRandom:
			order[cat] = p.RandomSample(sl.rand, -1)
		default:
			order[cat] = p.All()
		}
		quota = min(quota, len(order[cat]))
		selected[cat] = slices.Clone(order[cat][:quota])

		sl.log.Debug("category quota",
			"category", label(p.Category()),
			"fraction", sl.dist[cat],
			"available", p.Count(),
			"quota", quota)
	}

	return selected, order
}
