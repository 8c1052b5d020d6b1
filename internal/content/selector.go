package content

import (
	"math/rand"
	"sync"
	"time"
)

// Selector picks variations and content fragments using an injected random
// source, so selection is deterministic under test. A nil source falls back
// to a time-seeded one.
//
// Selector is safe for concurrent use; the underlying rand.Rand is guarded.
type Selector struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSelector creates a Selector with the given random source.
// Parameters:
//   - rnd: random source; nil uses a time-seeded source.
// Returns:
//   - *Selector: initialized selector.
func NewSelector(rnd *rand.Rand) *Selector {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rnd: rnd}
}

// Pick selects one variation uniformly at random.
// Parameters:
//   - set: content set to select from; must have at least one variation.
// Returns:
//   - Variation: the selected variation.
//   - int: its index within the set.
func (s *Selector) Pick(set *Set) (Variation, int) {
	s.mu.Lock()
	idx := s.rnd.Intn(len(set.Variations))
	s.mu.Unlock()
	return set.Variations[idx], idx
}

// PickBiased selects a variation biased toward the least overlap with
// previously used fragment lines. When no used set is supplied, or when every
// variation overlaps equally (the pool is effectively exhausted), selection
// resets to uniform random over the full set.
// Parameters:
//   - set: content set to select from; must have at least one variation.
//   - used: set of previously used lines; may be nil or empty.
// Returns:
//   - Variation: the selected variation.
//   - int: its index within the set.
func (s *Selector) PickBiased(set *Set, used map[string]struct{}) (Variation, int) {
	if len(used) == 0 {
		return s.Pick(set)
	}

	scores := make([]int, len(set.Variations))
	minScore := -1
	maxScore := 0
	for i, v := range set.Variations {
		score := 0
		for _, scr := range v.Screens {
			for _, line := range scr.Lines {
				if _, ok := used[line]; ok {
					score++
				}
			}
		}
		scores[i] = score
		if minScore < 0 || score < minScore {
			minScore = score
		}
		if score > maxScore {
			maxScore = score
		}
	}

	// No variation is fresher than any other; fall back to uniform random.
	if minScore == maxScore {
		return s.Pick(set)
	}

	candidates := make([]int, 0, len(scores))
	for i, score := range scores {
		if score == minScore {
			candidates = append(candidates, i)
		}
	}

	s.mu.Lock()
	idx := candidates[s.rnd.Intn(len(candidates))]
	s.mu.Unlock()
	return set.Variations[idx], idx
}

// PickUnique returns count items from pool, preferring items absent from
// used. When fewer unused items remain than requested, the whole pool is
// shuffled and drawn from instead, effectively resetting the uniqueness
// tracking. The result always holds min(count, len(pool)) items; an empty
// pool yields an empty result.
// Parameters:
//   - pool: candidate fragments.
//   - used: previously used fragments.
//   - count: number of items requested.
// Returns:
//   - []string: the selected items.
func (s *Selector) PickUnique(pool, used []string, count int) []string {
	if count <= 0 || len(pool) == 0 {
		return []string{}
	}
	if count > len(pool) {
		count = len(pool)
	}

	usedSet := make(map[string]struct{}, len(used))
	for _, u := range used {
		usedSet[u] = struct{}{}
	}

	unused := make([]string, 0, len(pool))
	for _, item := range pool {
		if _, ok := usedSet[item]; !ok {
			unused = append(unused, item)
		}
	}

	source := unused
	if len(unused) < count {
		source = append([]string(nil), pool...)
	}

	s.mu.Lock()
	s.rnd.Shuffle(len(source), func(i, j int) {
		source[i], source[j] = source[j], source[i]
	})
	s.mu.Unlock()

	return source[:count]
}
