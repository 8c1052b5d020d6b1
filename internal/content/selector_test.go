package content

import (
	"math/rand"
	"testing"
)

func variationWithLines(lines ...string) Variation {
	return Variation{Screens: []Screen{{Lines: lines}}}
}

func TestPickDeterministicWithSeed(t *testing.T) {
	set := &Set{Variations: []Variation{
		variationWithLines("a"), variationWithLines("b"), variationWithLines("c"),
	}}

	s1 := NewSelector(rand.New(rand.NewSource(42)))
	s2 := NewSelector(rand.New(rand.NewSource(42)))

	for i := 0; i < 10; i++ {
		_, idx1 := s1.Pick(set)
		_, idx2 := s2.Pick(set)
		if idx1 != idx2 {
			t.Fatalf("draw %d diverged: %d vs %d", i, idx1, idx2)
		}
	}
}

func TestPickBiasedPrefersLeastOverlap(t *testing.T) {
	set := &Set{Variations: []Variation{
		variationWithLines("seen one", "seen two"),
		variationWithLines("fresh one", "fresh two"),
		variationWithLines("seen one", "fresh three"),
	}}
	used := map[string]struct{}{
		"seen one": {},
		"seen two": {},
	}

	s := NewSelector(rand.New(rand.NewSource(1)))
	for i := 0; i < 20; i++ {
		_, idx := s.PickBiased(set, used)
		if idx != 1 {
			t.Fatalf("draw %d picked variation %d, want 1 (zero overlap)", i, idx)
		}
	}
}

// TestPickBiasedExhaustedResets verifies that when every variation overlaps
// equally with the used set, selection falls back to uniform random instead
// of failing or pinning one variation.
func TestPickBiasedExhaustedResets(t *testing.T) {
	set := &Set{Variations: []Variation{
		variationWithLines("a"),
		variationWithLines("b"),
		variationWithLines("c"),
	}}
	used := map[string]struct{}{"a": {}, "b": {}, "c": {}}

	s := NewSelector(rand.New(rand.NewSource(7)))
	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		_, idx := s.PickBiased(set, used)
		seen[idx] = true
	}
	if len(seen) != len(set.Variations) {
		t.Errorf("exhausted pool should reset to uniform random, only saw indices %v", seen)
	}
}

func TestPickBiasedNilUsed(t *testing.T) {
	set := &Set{Variations: []Variation{variationWithLines("a"), variationWithLines("b")}}
	s := NewSelector(rand.New(rand.NewSource(3)))
	if _, idx := s.PickBiased(set, nil); idx < 0 || idx >= 2 {
		t.Errorf("index out of range: %d", idx)
	}
}

func TestPickUnique(t *testing.T) {
	pool := []string{"q1", "q2", "q3", "q4"}

	testCases := []struct {
		name      string
		used      []string
		count     int
		wantLen   int
		forbidden []string
	}{
		{
			name:      "prefers unused",
			used:      []string{"q1", "q2"},
			count:     2,
			wantLen:   2,
			forbidden: []string{"q1", "q2"},
		},
		{
			name:    "resets when pool exhausted",
			used:    []string{"q1", "q2", "q3", "q4"},
			count:   3,
			wantLen: 3,
		},
		{
			name:    "count clamped to pool size",
			used:    nil,
			count:   10,
			wantLen: 4,
		},
		{
			name:    "zero count",
			used:    nil,
			count:   0,
			wantLen: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSelector(rand.New(rand.NewSource(9)))
			got := s.PickUnique(pool, tc.used, tc.count)
			if len(got) != tc.wantLen {
				t.Fatalf("PickUnique returned %d items (%v), want %d", len(got), got, tc.wantLen)
			}
			for _, item := range got {
				for _, f := range tc.forbidden {
					if item == f {
						t.Errorf("PickUnique returned used item %q with unused items available", item)
					}
				}
			}
		})
	}
}

func TestPickUniqueEmptyPool(t *testing.T) {
	s := NewSelector(rand.New(rand.NewSource(5)))
	if got := s.PickUnique(nil, []string{"x"}, 3); len(got) != 0 {
		t.Errorf("PickUnique(empty pool) = %v, want empty", got)
	}
}
