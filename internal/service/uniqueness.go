package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/krishnaa-0506/always/internal/domain"
	"github.com/krishnaa-0506/always/internal/logger"
)

// SessionStore is the persistence surface the uniqueness tracker needs.
// *repository.SessionRepository satisfies it.
type SessionStore interface {
	Get(ctx context.Context, id string) (*domain.ContentSession, error)
	Upsert(ctx context.Context, session *domain.ContentSession) error
}

// UniquenessTracker remembers which content fragments have been shown for a
// sender/receiver/relationship combination and biases future selection away
// from repeats. It is an enhancement layer: every persistence failure
// degrades to an ephemeral empty session so generation never blocks on it.
type UniquenessTracker struct {
	store SessionStore
}

// NewUniquenessTracker creates a tracker over the given session store.
// Parameters:
//   - store: session persistence; must not be nil.
// Returns:
//   - *UniquenessTracker: initialized tracker.
func NewUniquenessTracker(store SessionStore) *UniquenessTracker {
	return &UniquenessTracker{store: store}
}

// SessionKey computes the stable session ID for an identity triple: a
// one-way hash of the lower-cased concatenation of the three fields.
// Parameters:
//   - senderName: sender display name.
//   - receiverName: receiver display name.
//   - relationship: relationship label as entered.
// Returns:
//   - string: hex-encoded hash, stable across calls.
func SessionKey(senderName, receiverName, relationship string) string {
	identity := strings.ToLower(senderName) + "|" + strings.ToLower(receiverName) + "|" + strings.ToLower(relationship)
	sum := sha256.Sum256([]byte(identity))
	return hex.EncodeToString(sum[:])
}

// GetOrCreateSession returns the session for the identity triple, creating it
// with empty used-fragment sets on first use. An existing session gets its
// lastUsed timestamp and tone refreshed. Persistence failures are logged and
// produce an ephemeral session instead of an error.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - senderName, receiverName, relationship: identity triple.
//   - tone: tone tag for this generation; may be empty.
// Returns:
//   - *domain.ContentSession: the session, possibly ephemeral.
func (t *UniquenessTracker) GetOrCreateSession(ctx context.Context, senderName, receiverName, relationship, tone string) *domain.ContentSession {
	id := SessionKey(senderName, receiverName, relationship)
	now := time.Now()

	session, err := t.store.Get(ctx, id)
	if err == nil {
		session.LastUsedAt = now
		if tone != "" {
			session.Tone = tone
		}
		if upErr := t.store.Upsert(ctx, session); upErr != nil {
			logger.CtxWarn(ctx, "Failed to refresh content session: session_id=%s, error=%v", id, upErr)
		}
		return session
	}

	session = &domain.ContentSession{
		ID:              id,
		SenderName:      senderName,
		ReceiverName:    receiverName,
		Relationship:    relationship,
		Tone:            tone,
		UsedQuotes:      domain.StringArray{},
		UsedNotes:       domain.StringArray{},
		UsedTransitions: domain.StringArray{},
		CreatedAt:       now,
		LastUsedAt:      now,
	}
	if upErr := t.store.Upsert(ctx, session); upErr != nil {
		// Ephemeral session: tracking is lost for this request but
		// generation proceeds with uniform random selection.
		logger.CtxWarn(ctx, "Failed to persist content session, using ephemeral: session_id=%s, error=%v", id, upErr)
	}
	return session
}

// RecordUsage appends the given fragments (deduplicated) to the session's
// used sets and persists the session. Persistence failures are logged, never
// returned.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - session: session to update.
//   - quotes, notes, transitions: fragments shown in this generation.
// Returns: none.
func (t *UniquenessTracker) RecordUsage(ctx context.Context, session *domain.ContentSession, quotes, notes, transitions []string) {
	session.UsedQuotes = appendUnique(session.UsedQuotes, quotes)
	session.UsedNotes = appendUnique(session.UsedNotes, notes)
	session.UsedTransitions = appendUnique(session.UsedTransitions, transitions)
	session.LastUsedAt = time.Now()

	if err := t.store.Upsert(ctx, session); err != nil {
		logger.CtxWarn(ctx, "Failed to record fragment usage: session_id=%s, error=%v", session.ID, err)
	}
}

// UsedFragments flattens the session's used sets into one lookup map for
// overlap scoring during variation selection.
// Parameters:
//   - session: session to flatten; nil yields nil.
// Returns:
//   - map[string]struct{}: union of all used fragments.
func UsedFragments(session *domain.ContentSession) map[string]struct{} {
	if session == nil {
		return nil
	}
	used := make(map[string]struct{}, len(session.UsedQuotes)+len(session.UsedNotes)+len(session.UsedTransitions))
	for _, group := range [][]string{session.UsedQuotes, session.UsedNotes, session.UsedTransitions} {
		for _, item := range group {
			used[item] = struct{}{}
		}
	}
	return used
}

func appendUnique(existing domain.StringArray, items []string) domain.StringArray {
	seen := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		seen[e] = struct{}{}
	}
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		existing = append(existing, item)
	}
	return existing
}
