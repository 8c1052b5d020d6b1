package content

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// fakeSource serves a fixed map of sets and records the order of lookups.
type fakeSource struct {
	sets    map[string]*Set
	lookups []string
}

func (f *fakeSource) Load(_ context.Context, key string) (*Set, error) {
	f.lookups = append(f.lookups, key)
	if set, ok := f.sets[key]; ok {
		return set, nil
	}
	return nil, fmt.Errorf("key %q: %w", key, ErrNotFound)
}

func singleVariationSet(key string) *Set {
	return &Set{
		Key: key,
		Variations: []Variation{
			{Screens: []Screen{{Lines: []string{"hello {{receiverName}}"}}}},
		},
	}
}

func TestResolveDirectHit(t *testing.T) {
	src := &fakeSource{sets: map[string]*Set{
		"male_friend_birthday": singleVariationSet("male_friend_birthday"),
	}}
	r := NewResolver(NewLibrary(src))

	set, key, err := r.Resolve(context.Background(), "male", "friend", "birthday")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if set.Key != "male_friend_birthday" {
		t.Errorf("resolved set %q, want direct key", set.Key)
	}
	if key.String() != "male_friend_birthday" {
		t.Errorf("resolved key %q, want male_friend_birthday", key.String())
	}
}

// TestResolveFallbackPriority verifies that the birthday fallback for the
// same relationship beats the friend fallback: only the relationship+birthday
// key exists, and the resolver must find it before trying friend keys.
func TestResolveFallbackPriority(t *testing.T) {
	src := &fakeSource{sets: map[string]*Set{
		"female_sister_birthday": singleVariationSet("female_sister_birthday"),
		"female_friend_birthday": singleVariationSet("female_friend_birthday"),
	}}
	r := NewResolver(NewLibrary(src))

	set, _, err := r.Resolve(context.Background(), "female", "sister", "graduation")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if set.Key != "female_sister_birthday" {
		t.Errorf("resolved set %q, want female_sister_birthday (relationship honored over friend fallback)", set.Key)
	}
}

// TestResolveParentGenderCorrection verifies that "mom" with a male gender
// retries the female key before any occasion fallback.
func TestResolveParentGenderCorrection(t *testing.T) {
	src := &fakeSource{sets: map[string]*Set{
		"female_mom_anniversary": singleVariationSet("female_mom_anniversary"),
	}}
	r := NewResolver(NewLibrary(src))

	set, key, err := r.Resolve(context.Background(), "male", "mom", "anniversary")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if set.Key != "female_mom_anniversary" {
		t.Errorf("resolved set %q, want gender-corrected key", set.Key)
	}
	if key.Gender != GenderFemale {
		t.Errorf("resolved gender %q, want female", key.Gender)
	}
}

func TestResolveChainOrder(t *testing.T) {
	src := &fakeSource{sets: map[string]*Set{}}
	r := NewResolver(NewLibrary(src))

	_, _, err := r.Resolve(context.Background(), "male", "brother", "valentine")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Resolve error = %v, want ErrNotFound", err)
	}

	want := []string{
		"male_brother_valentine",
		"male_brother_birthday",
		"male_brother_celebration",
		"male_friend_valentine",
		"male_friend_birthday",
	}
	if len(src.lookups) != len(want) {
		t.Fatalf("lookup count = %d (%v), want %d", len(src.lookups), src.lookups, len(want))
	}
	for i, key := range want {
		if src.lookups[i] != key {
			t.Errorf("lookup[%d] = %q, want %q", i, src.lookups[i], key)
		}
	}
}

// TestResolveFriendKeepsOccasion verifies the friend fallback honors the
// original occasion before collapsing to friend+birthday.
func TestResolveFriendKeepsOccasion(t *testing.T) {
	src := &fakeSource{sets: map[string]*Set{
		"male_friend_valentine": singleVariationSet("male_friend_valentine"),
		"male_friend_birthday":  singleVariationSet("male_friend_birthday"),
	}}
	r := NewResolver(NewLibrary(src))

	set, _, err := r.Resolve(context.Background(), "male", "brother", "valentine")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if set.Key != "male_friend_valentine" {
		t.Errorf("resolved set %q, want male_friend_valentine", set.Key)
	}
}
