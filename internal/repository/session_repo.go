package repository

import (
	"context"

	"github.com/krishnaa-0506/always/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionRepository handles content-session data operations.
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new SessionRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *SessionRepository: repository instance bound to db.
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Get retrieves a content session by its stable hash ID.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: session ID (hash of the identity triple).
// Returns:
//   - *domain.ContentSession: session record if found.
//   - error: gorm.ErrRecordNotFound if absent, or another lookup error.
func (r *SessionRepository) Get(ctx context.Context, id string) (*domain.ContentSession, error) {
	var session domain.ContentSession
	if err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// Upsert creates the session or updates an existing one keyed by ID.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - session: session record to create or update.
// Returns:
//   - error: non-nil if the upsert fails.
func (r *SessionRepository) Upsert(ctx context.Context, session *domain.ContentSession) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(session).Error
}
