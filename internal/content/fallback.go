package content

import (
	"context"
	"errors"

	"github.com/krishnaa-0506/always/internal/logger"
)

// Resolver finds the best available content set for normalized user input,
// walking a fixed fallback chain when the direct key has no content.
//
// The chain encodes a deliberate preference order: honor the occasion over
// the relationship first, and give up the occasion before collapsing to the
// most generic friend/birthday combination.
type Resolver struct {
	lib *Library
}

// NewResolver creates a Resolver over the given library.
// Parameters:
//   - lib: content library used for lookups.
// Returns:
//   - *Resolver: initialized resolver.
func NewResolver(lib *Library) *Resolver {
	return &Resolver{lib: lib}
}

// Resolve normalizes the raw inputs and returns the first content set found
// along the direct key and its fallback chain:
//  1. direct canonical key
//  2. logical-parent gender correction, same relationship and occasion
//  3. same relationship, occasion forced to birthday
//  4. same relationship, occasion forced to celebration
//  5. relationship forced to friend, original occasion
//  6. relationship forced to friend, occasion forced to birthday
//
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - gender: raw gender string.
//   - relationship: raw relationship label.
//   - occasion: raw occasion label.
// Returns:
//   - *Set: the resolved content set.
//   - Key: the key that actually produced the set.
//   - error: ErrNotFound if the whole chain misses, or a load error.
func (r *Resolver) Resolve(ctx context.Context, gender, relationship, occasion string) (*Set, Key, error) {
	direct := Normalize(gender, relationship, occasion)

	candidates := []Key{direct}

	if implied, ok := ParentGender(direct.Relationship); ok && implied != direct.Gender {
		candidates = append(candidates, Key{Gender: implied, Relationship: direct.Relationship, Occasion: direct.Occasion})
	}

	candidates = append(candidates,
		Key{Gender: direct.Gender, Relationship: direct.Relationship, Occasion: OccasionBirthday},
		Key{Gender: direct.Gender, Relationship: direct.Relationship, Occasion: OccasionCelebration},
		Key{Gender: direct.Gender, Relationship: RelationshipFriend, Occasion: direct.Occasion},
		Key{Gender: direct.Gender, Relationship: RelationshipFriend, Occasion: OccasionBirthday},
	)

	tried := make(map[string]bool, len(candidates))
	for _, key := range candidates {
		serialized := key.String()
		if tried[serialized] {
			continue
		}
		tried[serialized] = true

		set, err := r.lib.Get(ctx, key)
		if err == nil {
			if serialized != direct.String() {
				logger.CtxInfo(ctx, "Content fallback applied: requested=%s, resolved=%s", direct.String(), serialized)
			}
			return set, key, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, Key{}, err
		}
	}

	return nil, Key{}, ErrNotFound
}
