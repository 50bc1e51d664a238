package selector

import (
	"math"
	"testing"
)

func TestRoundHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected int
	}{
		{name: "zero", input: 0, expected: 0},
		{name: "below_half", input: 0.49, expected: 0},
		{name: "half_up", input: 0.5, expected: 1},
		{name: "even_half_up", input: 2.5, expected: 3},
		{name: "odd_half_up", input: 3.5, expected: 4},
		{name: "above_half", input: 1.65, expected: 2},
		{name: "negative_half", input: -2.5, expected: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := roundHalfAwayFromZero(tt.input)
			if result != tt.expected {
				t.Errorf("roundHalfAwayFromZero(%v) = %d, expected %d", tt.input, result, tt.expected)
			}
		})
	}
}

func TestElementsCount(t *testing.T) {
	selected := map[string][]int{
		"a": {1, 2},
		"b": {},
		"c": {3, 4, 5},
	}

	if got := elementsCount(selected); got != 5 {
		t.Errorf("elementsCount() = %d, expected 5", got)
	}

	if got := elementsCount(map[string][]int{}); got != 0 {
		t.Errorf("elementsCount() on empty selection = %d, expected 0", got)
	}
}

func TestNeedMultipliers(t *testing.T) {
	dist := Distribution[string]{"a": 0.5, "b": 0.25, "c": 0.25}
	counts := map[string]int{"a": 2, "b": 2, "c": 0}

	needs := needMultipliers(dist, dist.Categories(), func(cat string) int {
		return counts[cat]
	})

	if len(needs) != 3 {
		t.Fatalf("Expected 3 needs, got %d", len(needs))
	}

	// c has no elements and must come first
	if needs[0].category != "c" || !math.IsInf(needs[0].multiplier, 1) {
		t.Errorf("Expected c with +Inf first, got %s with %v", needs[0].category, needs[0].multiplier)
	}

	// a: 0.5 / (2/4) = 1, b: 0.25 / (2/4) = 0.5
	if needs[1].category != "a" || needs[1].multiplier != 1 {
		t.Errorf("Expected a with 1 second, got %s with %v", needs[1].category, needs[1].multiplier)
	}
	if needs[2].category != "b" || needs[2].multiplier != 0.5 {
		t.Errorf("Expected b with 0.5 last, got %s with %v", needs[2].category, needs[2].multiplier)
	}
}

func TestNeedMultipliersTiesByCategory(t *testing.T) {
	dist := Distribution[string]{"z": 0.5, "y": 0.5}

	needs := needMultipliers(dist, dist.Categories(), func(string) int { return 3 })

	if needs[0].category != "y" || needs[1].category != "z" {
		t.Errorf("Expected tie ordered y, z, got %s, %s", needs[0].category, needs[1].category)
	}
}

func TestTrimCandidate(t *testing.T) {
	sl := &Selector[string, int]{
		dist:       Distribution[string]{"a": 0.33, "b": 0.33, "c": 0.34},
		categories: []string{"a", "b", "c"},
	}

	tests := []struct {
		name     string
		selected map[string][]int
		expected string
		ok       bool
	}{
		{
			name:     "tie_trims_highest_category",
			selected: map[string][]int{"a": {1, 2}, "b": {1, 2}, "c": {1, 2}},
			expected: "b",
			ok:       true,
		},
		{
			name:     "most_over_represented",
			selected: map[string][]int{"a": {1}, "b": {1}, "c": {1, 2, 3, 4}},
			expected: "c",
			ok:       true,
		},
		{
			name:     "skips_empty",
			selected: map[string][]int{"a": {}, "b": {}, "c": {1}},
			expected: "c",
			ok:       true,
		},
		{
			name:     "nothing_left",
			selected: map[string][]int{"a": {}, "b": {}, "c": {}},
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, ok := sl.trimCandidate(tt.selected)
			if ok != tt.ok {
				t.Fatalf("trimCandidate() ok = %v, expected %v", ok, tt.ok)
			}
			if cat != tt.expected {
				t.Errorf("trimCandidate() = %q, expected %q", cat, tt.expected)
			}
		})
	}
}

func TestTopUpCandidate(t *testing.T) {
	sl := &Selector[string, int]{
		dist:       Distribution[string]{"a": 0.33, "b": 0.33, "c": 0.34},
		categories: []string{"a", "b", "c"},
	}

	full := map[string][]int{"a": {1, 2, 3}, "b": {1, 2, 3}, "c": {1, 2, 3, 4, 5}}

	tests := []struct {
		name     string
		selected map[string][]int
		order    map[string][]int
		expected string
		ok       bool
	}{
		{
			name:     "most_under_represented",
			selected: map[string][]int{"a": {1}, "b": {1}, "c": {1}},
			order:    full,
			expected: "c",
			ok:       true,
		},
		{
			name:     "tie_tops_up_lowest_category",
			selected: map[string][]int{"a": {1}, "b": {1}, "c": {1, 2, 3, 4}},
			order:    full,
			expected: "a",
			ok:       true,
		},
		{
			name:     "skips_exhausted",
			selected: map[string][]int{"a": {1}, "b": {1}, "c": {1, 2, 3, 4}},
			order:    map[string][]int{"a": {1}, "b": {1, 2}, "c": {1, 2, 3, 4, 5}},
			expected: "b",
			ok:       true,
		},
		{
			name:     "nothing_left",
			selected: map[string][]int{"a": {1}, "b": {1, 2}, "c": {1}},
			order:    map[string][]int{"a": {1}, "b": {1, 2}, "c": {1}},
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, ok := sl.topUpCandidate(tt.selected, tt.order)
			if ok != tt.ok {
				t.Fatalf("topUpCandidate() ok = %v, expected %v", ok, tt.ok)
			}
			if cat != tt.expected {
				t.Errorf("topUpCandidate() = %q, expected %q", cat, tt.expected)
			}
		})
	}
}
