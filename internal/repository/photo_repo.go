package repository

import (
	"context"

	"github.com/krishnaa-0506/always/internal/domain"
	"gorm.io/gorm"
)

// PhotoRepository handles message photo data operations.
type PhotoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository creates a new PhotoRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *PhotoRepository: repository instance bound to db.
func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// Create inserts a new photo record.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - photo: photo record to persist.
// Returns:
//   - error: non-nil if the insert fails.
func (r *PhotoRepository) Create(ctx context.Context, photo *domain.MessagePhoto) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

// ListByMessage retrieves a message's photos ordered by position.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - messageID: owning message ID.
// Returns:
//   - []domain.MessagePhoto: photo records ordered by position.
//   - error: non-nil if the query fails.
func (r *PhotoRepository) ListByMessage(ctx context.Context, messageID string) ([]domain.MessagePhoto, error) {
	var photos []domain.MessagePhoto
	if err := r.db.WithContext(ctx).
		Where("message_id = ?", messageID).
		Order("position ASC").
		Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

// CountByMessage counts the photos attached to a message.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - messageID: owning message ID.
// Returns:
//   - int64: number of attached photos.
//   - error: non-nil if the query fails.
func (r *PhotoRepository) CountByMessage(ctx context.Context, messageID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.MessagePhoto{}).
		Where("message_id = ?", messageID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
