package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"time"

	// Register decoders for the formats accepted at the upload boundary.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/google/uuid"
	"github.com/krishnaa-0506/always/internal/domain"
	"github.com/krishnaa-0506/always/internal/logger"
	"github.com/krishnaa-0506/always/internal/storage"
)

// ErrPhotoLimitReached is returned when a message already has the maximum
// number of photos attached.
var ErrPhotoLimitReached = errors.New("photo limit reached for message")

// ErrNotAnImage is returned when an upload cannot be decoded as a supported
// image format.
var ErrNotAnImage = errors.New("upload is not a supported image")

// PhotoWriter is the persistence surface the upload boundary needs.
// *repository.PhotoRepository satisfies it.
type PhotoWriter interface {
	Create(ctx context.Context, photo *domain.MessagePhoto) error
	CountByMessage(ctx context.Context, messageID string) (int64, error)
	ListByMessage(ctx context.Context, messageID string) ([]domain.MessagePhoto, error)
}

// PhotoService is the upload boundary: it validates and caps incoming photos
// before they ever reach assembly, stores the bytes in object storage, and
// records the CDN-facing URL.
type PhotoService struct {
	messages MessageStore
	photos   PhotoWriter
	storage  storage.ObjectStorage
}

// NewPhotoService creates a new photo upload service.
// Parameters:
//   - messages: message lookup (uploads attach to existing messages only).
//   - photos: photo persistence.
//   - objectStorage: object storage client.
// Returns:
//   - *PhotoService: initialized service.
func NewPhotoService(messages MessageStore, photos PhotoWriter, objectStorage storage.ObjectStorage) *PhotoService {
	return &PhotoService{
		messages: messages,
		photos:   photos,
		storage:  objectStorage,
	}
}

// Attach validates one uploaded photo, stores it, and records it against the
// message. At most domain.MaxPhotosPerMessage photos are accepted per
// message; excess uploads are rejected here, never silently dropped later.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - messageID: message the photo belongs to.
//   - reader: photo bytes.
//   - caption: optional caption.
// Returns:
//   - *domain.MessagePhoto: the stored photo record.
//   - error: ErrPhotoLimitReached, ErrNotAnImage, or a storage/persistence error.
func (s *PhotoService) Attach(ctx context.Context, messageID string, reader io.Reader, caption string) (*domain.MessagePhoto, error) {
	msg, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load message %s: %w", messageID, err)
	}

	count, err := s.photos.CountByMessage(ctx, msg.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count photos: %w", err)
	}
	if count >= domain.MaxPhotosPerMessage {
		return nil, ErrPhotoLimitReached
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}

	key := fmt.Sprintf("messages/%s/photos/%s.%s", msg.ID, uuid.New().String(), format)
	contentType := "image/" + format
	if err := s.storage.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return nil, fmt.Errorf("failed to upload photo: %w", err)
	}

	photo := &domain.MessagePhoto{
		ID:         uuid.New().String(),
		MessageID:  msg.ID,
		Position:   int(count),
		StorageKey: key,
		URL:        s.storage.GetURL(key),
		Caption:    caption,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Format:     format,
		FileSize:   int64(len(data)),
		CreatedAt:  time.Now(),
	}
	if err := s.photos.Create(ctx, photo); err != nil {
		return nil, fmt.Errorf("failed to persist photo record: %w", err)
	}

	logger.With(logger.Fields{
		logger.FieldSize: len(data),
	}).Info(ctx, "Photo attached: message_id=%s, position=%d, format=%s, %dx%d",
		msg.ID, photo.Position, format, cfg.Width, cfg.Height)

	return photo, nil
}

// List returns a message's photos ordered by position.
func (s *PhotoService) List(ctx context.Context, messageID string) ([]domain.MessagePhoto, error) {
	return s.photos.ListByMessage(ctx, messageID)
}
