package content

import (
	"context"
	"errors"
	"sync"

	"github.com/krishnaa-0506/always/internal/logger"
)

// ErrNotFound is returned when no content set exists for a key. Callers are
// expected to attempt fallback resolution before treating it as user-facing.
var ErrNotFound = errors.New("content set not found")

// Source loads raw content sets from a backing store addressed by serialized
// key. Implementations return ErrNotFound (possibly wrapped) when the key has
// no entry.
type Source interface {
	Load(ctx context.Context, key string) (*Set, error)
}

// Library is a process-wide read-through cache over a Source. Content sets
// are immutable reference data, so entries live for the lifetime of the
// process with no invalidation.
//
// Concurrent first-time loads of the same key may both miss and both hit the
// Source; the load is idempotent and cheap, so the cache takes no per-key
// lock and lets the second write win.
type Library struct {
	source Source

	mu    sync.RWMutex
	cache map[string]*Set
}

// NewLibrary creates a Library over the given source.
// Parameters:
//   - source: backing content source.
// Returns:
//   - *Library: library with an empty cache.
func NewLibrary(source Source) *Library {
	return &Library{
		source: source,
		cache:  make(map[string]*Set),
	}
}

// Get returns the content set for a canonical key, reading through the cache.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - key: canonical content key.
// Returns:
//   - *Set: loaded content set.
//   - error: ErrNotFound if the backing store has no entry, or a load error.
func (l *Library) Get(ctx context.Context, key Key) (*Set, error) {
	serialized := key.String()

	l.mu.RLock()
	set, ok := l.cache[serialized]
	l.mu.RUnlock()
	if ok {
		return set, nil
	}

	set, err := l.source.Load(ctx, serialized)
	if err != nil {
		return nil, err
	}

	if issues := set.ShapeIssues(); len(issues) > 0 {
		for _, issue := range issues {
			logger.CtxWarn(ctx, "Content set shape mismatch: key=%s, issue=%s", serialized, issue)
		}
	}

	l.mu.Lock()
	l.cache[serialized] = set
	l.mu.Unlock()

	return set, nil
}

// CachedKeys returns the serialized keys currently held in the cache.
// Intended for the stats endpoint; ordering is unspecified.
func (l *Library) CachedKeys() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	keys := make([]string, 0, len(l.cache))
	for k := range l.cache {
		keys = append(keys, k)
	}
	return keys
}
