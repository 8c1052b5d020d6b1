package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/krishnaa-0506/always/internal/content"
)

// ErrCodeSpaceExhausted is returned when the collision-retry ceiling is hit.
// At 36^6 possible codes this indicates a configuration or data problem, not
// bad luck, and is surfaced distinctly from content not-found conditions.
var ErrCodeSpaceExhausted = errors.New("code generation exhausted retry budget")

// defaultCodeMaxAttempts bounds the collision-retry loop. An unbounded loop
// is itself a defect to guard against.
const defaultCodeMaxAttempts = 50

// CodeChecker reports whether a candidate code is already persisted.
// *repository.MessageRepository satisfies it.
type CodeChecker interface {
	CodeExists(ctx context.Context, code string) (bool, error)
}

// CodeIssuer draws shareable codes and checks them against persisted codes
// until one is unique. The check-then-insert race between two concurrent
// generations is accepted: the keyspace makes a double draw vanishingly
// unlikely, and the unique index on the code column surfaces the collision
// as a retryable insert error if it ever happens.
type CodeIssuer struct {
	checker     CodeChecker
	maxAttempts int

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewCodeIssuer creates a CodeIssuer.
// Parameters:
//   - checker: persisted-code lookup.
//   - rnd: random source; nil uses a time-seeded source.
//   - maxAttempts: retry ceiling; values < 1 use the default of 50.
// Returns:
//   - *CodeIssuer: initialized issuer.
func NewCodeIssuer(checker CodeChecker, rnd *rand.Rand, maxAttempts int) *CodeIssuer {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if maxAttempts < 1 {
		maxAttempts = defaultCodeMaxAttempts
	}
	return &CodeIssuer{
		checker:     checker,
		maxAttempts: maxAttempts,
		rnd:         rnd,
	}
}

// Issue draws codes until one is not yet persisted, up to the retry ceiling.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - string: a unique 6-character code.
//   - error: ErrCodeSpaceExhausted past the ceiling, or a lookup error.
func (i *CodeIssuer) Issue(ctx context.Context) (string, error) {
	for attempt := 0; attempt < i.maxAttempts; attempt++ {
		i.mu.Lock()
		code := content.GenerateCode(i.rnd)
		i.mu.Unlock()

		exists, err := i.checker.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check code uniqueness: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w after %d attempts", ErrCodeSpaceExhausted, i.maxAttempts)
}
