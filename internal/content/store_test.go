package content

import (
	"context"
	"errors"
	"testing"
)

// countingSource counts how often each key hits the backing store.
type countingSource struct {
	sets  map[string]*Set
	loads map[string]int
}

func (c *countingSource) Load(_ context.Context, key string) (*Set, error) {
	if c.loads == nil {
		c.loads = make(map[string]int)
	}
	c.loads[key]++
	if set, ok := c.sets[key]; ok {
		return set, nil
	}
	return nil, ErrNotFound
}

func TestLibraryCachesLoads(t *testing.T) {
	src := &countingSource{sets: map[string]*Set{
		"male_friend_birthday": singleVariationSet("male_friend_birthday"),
	}}
	lib := NewLibrary(src)
	key := Key{GenderMale, RelationshipFriend, OccasionBirthday}

	for i := 0; i < 3; i++ {
		set, err := lib.Get(context.Background(), key)
		if err != nil {
			t.Fatalf("Get #%d returned error: %v", i+1, err)
		}
		if set.Key != "male_friend_birthday" {
			t.Fatalf("Get #%d returned set %q", i+1, set.Key)
		}
	}

	if got := src.loads["male_friend_birthday"]; got != 1 {
		t.Errorf("backing store loaded %d times, want 1", got)
	}
}

func TestLibraryMissNotCached(t *testing.T) {
	src := &countingSource{sets: map[string]*Set{}}
	lib := NewLibrary(src)
	key := Key{GenderMale, RelationshipDad, OccasionBirthday}

	for i := 0; i < 2; i++ {
		if _, err := lib.Get(context.Background(), key); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Get #%d error = %v, want ErrNotFound", i+1, err)
		}
	}

	// Misses are not negative-cached; content may be deployed later.
	if got := src.loads["male_dad_birthday"]; got != 2 {
		t.Errorf("backing store loaded %d times, want 2", got)
	}
}

func TestShapeIssues(t *testing.T) {
	testCases := []struct {
		name       string
		set        *Set
		wantIssues int
	}{
		{
			name:       "clean set",
			set:        &Set{Variations: []Variation{{Screens: []Screen{{Lines: []string{"a", "b"}}, {Lines: []string{"c", "d"}}}}}},
			wantIssues: 0,
		},
		{
			name:       "empty set",
			set:        &Set{},
			wantIssues: 1,
		},
		{
			name: "uneven screen count",
			set: &Set{Variations: []Variation{
				{Screens: []Screen{{Lines: []string{"a"}}, {Lines: []string{"b"}}}},
				{Screens: []Screen{{Lines: []string{"c"}}}},
			}},
			wantIssues: 1,
		},
		{
			name: "uneven line count",
			set: &Set{Variations: []Variation{
				{Screens: []Screen{{Lines: []string{"a", "b"}}, {Lines: []string{"c"}}}},
			}},
			wantIssues: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.set.ShapeIssues()
			if len(got) != tc.wantIssues {
				t.Errorf("ShapeIssues() = %v (%d issues), want %d", got, len(got), tc.wantIssues)
			}
		})
	}
}
