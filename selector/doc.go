// Package selector implements stratified selection of elements against a
// target category distribution.
//
// A Selector is configured with a Distribution, a map of category to the
// fraction of the final selection that category should make up. Elements
// are added to categories with Add or Fill, and Select returns a subset
// whose category proportions follow the distribution as closely as the
// collected elements allow.
//
// # Selection Algorithm
//
// The achievable selection size is bounded by the limiter category, the
// one with the smallest count/fraction ratio. Every category then gets a
// quota of that size times its fraction, rounded half away from zero and
// never below one element. Quotas are filled from each category in
// insertion order, or by uniform random sampling with Randomly.
//
// # Exact counts
//
// With WithCount the selection must contain exactly that many elements.
// Rounding and the one element minimum can overshoot, so the result is
// trimmed one element at a time from the category that is most
// over-represented in the current selection (the smallest need
// multiplier, fraction / share). When every quota rounds down the result
// falls short instead, and the neediest category with elements left gets
// its next element until the count is reached. Both steps are greedy and
// do not backtrack.
//
// # Feasibility
//
// Select fails with an *UnsatisfiedError when the collected elements cannot
// support the distribution: fewer elements than categories, any empty
// category, fewer elements than the requested count, or a limiter that
// bounds the achievable size below the requested count. IsSatisfied reports
// the same check as a boolean.
//
// # Concurrency
//
// A Selector does no locking. Callers that share one between goroutines
// must serialise every call, reads included.
//
// # Usage
//
//	sel, err := selector.New[string, string](
//	    selector.Distribution[string]{"a": 0.2, "b": 0.3, "c": 0.5},
//	    selector.WithCount(100),
//	)
//	if err != nil {
//	    return err
//	}
//	err = sel.Add("a", "element")
//	...
//	selected, err := sel.Select()
package selector
