package selector

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDistribution is returned by New for fractions that don't sum
	// to 1.0, fractions outside (0, 1] or a negative count.
	ErrInvalidDistribution = errors.New("invalid distribution")

	// ErrInvalidCategory is returned when adding to a category that isn't
	// part of the distribution.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrDistributionUnsatisfied matches every *UnsatisfiedError.
	ErrDistributionUnsatisfied = errors.New("distribution unsatisfied")
)

// UnsatisfiedReason identifies why the collected elements can't satisfy
// the distribution
type UnsatisfiedReason string

const (
	ReasonTooFewElements    UnsatisfiedReason = "too_few_elements"   // fewer elements than categories
	ReasonEmptyCategories   UnsatisfiedReason = "empty_categories"   // at least one category has no elements
	ReasonBelowTarget       UnsatisfiedReason = "below_target"       // fewer elements than the requested count
	ReasonTargetUnreachable UnsatisfiedReason = "target_unreachable" // limiter bounds the selection below the requested count
)

// UnsatisfiedError describes why a selection isn't possible yet. Adding
// more elements may resolve it.
type UnsatisfiedError struct {
	Reason UnsatisfiedReason

	Total     int      // elements added so far
	Target    int      // requested count, zero when none was set
	Projected int      // achievable selection size (ReasonTargetUnreachable)
	Empty     []string // empty categories (ReasonEmptyCategories)
}

func (e *UnsatisfiedError) Error() string {
	var msg string
	switch e.Reason {
	case ReasonTooFewElements:
		msg = fmt.Sprintf("not enough elements (%d)", e.Total)
	case ReasonEmptyCategories:
		msg = "the following categories are empty: " + strings.Join(e.Empty, ", ")
	case ReasonBelowTarget:
		msg = fmt.Sprintf("not enough elements (%d) to satisfy the desired count (%d)", e.Total, e.Target)
	case ReasonTargetUnreachable:
		msg = fmt.Sprintf("distribution prevents the satisfaction of the desired count (%d), at most %d can be selected",
			e.Target, e.Projected)
	default:
		msg = string(e.Reason)
	}
	return ErrDistributionUnsatisfied.Error() + ": " + msg
}

// Is makes errors.Is(err, ErrDistributionUnsatisfied) true.
func (e *UnsatisfiedError) Is(target error) bool {
	return target == ErrDistributionUnsatisfied
}
