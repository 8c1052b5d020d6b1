package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/krishnaa-0506/always/internal/domain"
	"gorm.io/gorm"
)

// MessageRepository handles message and screen data operations.
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *MessageRepository: repository instance bound to db.
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts a new message record.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - msg: message record to persist.
// Returns:
//   - error: non-nil if the insert fails.
func (r *MessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// GetByID retrieves a message by its ID.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: message ID.
// Returns:
//   - *domain.Message: message record if found.
//   - error: non-nil if lookup fails.
func (r *MessageRepository) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	var msg domain.Message
	if err := r.db.WithContext(ctx).First(&msg, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// GetByCode retrieves a message by its shareable code.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - code: 6-character shareable code.
// Returns:
//   - *domain.Message: message record if found.
//   - error: non-nil if lookup fails.
func (r *MessageRepository) GetByCode(ctx context.Context, code string) (*domain.Message, error) {
	var msg domain.Message
	if err := r.db.WithContext(ctx).First(&msg, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// CodeExists checks whether a shareable code is already assigned to any message.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - code: candidate code.
// Returns:
//   - bool: true if a record holds the code.
//   - error: non-nil if the lookup fails.
func (r *MessageRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Message{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// MarkGenerated writes the code, flips the status to generated, and stamps
// the generation time. Callers are expected to pass the message's existing
// code on regeneration; the service layer owns that reuse, this update writes
// whatever it is given.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: message ID.
//   - code: shareable code to assign.
//   - generatedAt: generation timestamp.
// Returns:
//   - error: non-nil if the update fails.
func (r *MessageRepository) MarkGenerated(ctx context.Context, id, code string, generatedAt time.Time) error {
	return r.db.WithContext(ctx).Model(&domain.Message{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"code":         code,
			"status":       domain.MessageStatusGenerated,
			"generated_at": generatedAt,
		}).Error
}

// ReplaceScreens atomically replaces the persisted screen list of a message.
// Regeneration rewrites the whole ordered list in one transaction.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - messageID: owning message ID.
//   - screens: new ordered screen list.
// Returns:
//   - error: non-nil if the transaction fails.
func (r *MessageRepository) ReplaceScreens(ctx context.Context, messageID string, screens []domain.MessageScreen) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("message_id = ?", messageID).Delete(&domain.MessageScreen{}).Error; err != nil {
			return fmt.Errorf("failed to clear screens: %w", err)
		}
		if len(screens) == 0 {
			return nil
		}
		if err := tx.Create(&screens).Error; err != nil {
			return fmt.Errorf("failed to insert screens: %w", err)
		}
		return nil
	})
}

// ListScreens retrieves the ordered screen list of a message.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - messageID: owning message ID.
// Returns:
//   - []domain.MessageScreen: screens ordered by index.
//   - error: non-nil if the query fails.
func (r *MessageRepository) ListScreens(ctx context.Context, messageID string) ([]domain.MessageScreen, error) {
	var screens []domain.MessageScreen
	if err := r.db.WithContext(ctx).
		Where("message_id = ?", messageID).
		Order("screen_index ASC").
		Find(&screens).Error; err != nil {
		return nil, err
	}
	return screens, nil
}

// CountByStatus counts messages by status.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - status: message status to count.
// Returns:
//   - int64: number of matching records.
//   - error: non-nil if the query fails.
func (r *MessageRepository) CountByStatus(ctx context.Context, status domain.MessageStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Message{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
