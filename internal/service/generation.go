package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/krishnaa-0506/always/internal/content"
	"github.com/krishnaa-0506/always/internal/domain"
	"github.com/krishnaa-0506/always/internal/logger"
)

// MessageStore is the persistence surface the generation service needs.
// *repository.MessageRepository satisfies it.
type MessageStore interface {
	Create(ctx context.Context, msg *domain.Message) error
	GetByID(ctx context.Context, id string) (*domain.Message, error)
	GetByCode(ctx context.Context, code string) (*domain.Message, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	MarkGenerated(ctx context.Context, id, code string, generatedAt time.Time) error
	ReplaceScreens(ctx context.Context, messageID string, screens []domain.MessageScreen) error
	ListScreens(ctx context.Context, messageID string) ([]domain.MessageScreen, error)
	CountByStatus(ctx context.Context, status domain.MessageStatus) (int64, error)
}

// PhotoStore is the photo lookup surface the generation service needs.
// *repository.PhotoRepository satisfies it.
type PhotoStore interface {
	ListByMessage(ctx context.Context, messageID string) ([]domain.MessagePhoto, error)
}

// GenerationService orchestrates the content-assembly pipeline: resolve a
// content set for the message's normalized key, select a variation,
// substitute placeholders, interleave photos, persist the ordered screen
// list, and issue the shareable code.
type GenerationService struct {
	messages MessageStore
	photos   PhotoStore
	resolver *content.Resolver
	selector *content.Selector
	tracker  *UniquenessTracker
	codes    *CodeIssuer
	notifier *NotifyService
	logger   *logger.Logger
}

// NewGenerationService creates a new generation service.
// Parameters:
//   - messages: message persistence.
//   - photos: photo lookup.
//   - resolver: content set resolver.
//   - selector: variation selector.
//   - tracker: uniqueness tracker; nil degrades to uniform random selection.
//   - codes: code issuer.
//   - notifier: delivery notifier; nil disables notifications.
//   - log: logger instance.
// Returns:
//   - *GenerationService: initialized service.
func NewGenerationService(
	messages MessageStore,
	photos PhotoStore,
	resolver *content.Resolver,
	selector *content.Selector,
	tracker *UniquenessTracker,
	codes *CodeIssuer,
	notifier *NotifyService,
	log *logger.Logger,
) *GenerationService {
	return &GenerationService{
		messages: messages,
		photos:   photos,
		resolver: resolver,
		selector: selector,
		tracker:  tracker,
		codes:    codes,
		notifier: notifier,
		logger:   log,
	}
}

// CreateMessageRequest is the user-input contract for a new draft message.
type CreateMessageRequest struct {
	SenderName     string `json:"sender_name" binding:"required"`
	ReceiverName   string `json:"receiver_name" binding:"required"`
	Relationship   string `json:"relationship" binding:"required"`
	ReceiverGender string `json:"receiver_gender"`
	Occasion       string `json:"occasion"`
	EmotionTag     string `json:"emotion_tag"`
	TextContent    string `json:"text_content"`
	ReceiverMemory string `json:"receiver_memory"`
}

// CreateMessage persists a new draft message in status created.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - req: user input contract.
// Returns:
//   - *domain.Message: the created message.
//   - error: non-nil if the insert fails.
func (s *GenerationService) CreateMessage(ctx context.Context, req *CreateMessageRequest) (*domain.Message, error) {
	msg := &domain.Message{
		ID:             uuid.New().String(),
		SenderName:     req.SenderName,
		ReceiverName:   req.ReceiverName,
		Relationship:   req.Relationship,
		ReceiverGender: req.ReceiverGender,
		Occasion:       req.Occasion,
		EmotionTag:     req.EmotionTag,
		TextContent:    req.TextContent,
		ReceiverMemory: req.ReceiverMemory,
		Status:         domain.MessageStatusCreated,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return msg, nil
}

// GetMessage retrieves a message by ID.
func (s *GenerationService) GetMessage(ctx context.Context, id string) (*domain.Message, error) {
	return s.messages.GetByID(ctx, id)
}

// GenerateResult is the outcome of one generation run.
type GenerateResult struct {
	Message *domain.Message        `json:"message"`
	Code    string                 `json:"code"`
	Screens []domain.MessageScreen `json:"screens"`
}

// Generate runs the full pipeline for a message. The operation is idempotent
// at the message level: regenerating reuses the previously assigned code and
// rewrites the screen list.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - messageID: message to generate.
// Returns:
//   - *GenerateResult: generated screens and code.
//   - error: content.ErrNotFound when no content set matches even through
//     fallback; ErrCodeSpaceExhausted when code issuing fails; lookup and
//     persistence errors otherwise.
func (s *GenerationService) Generate(ctx context.Context, messageID string) (*GenerateResult, error) {
	start := time.Now()

	msg, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load message %s: %w", messageID, err)
	}

	ctx = logger.WithFields(ctx, logger.Fields{
		logger.FieldComponent: "generation",
		logger.FieldMessageID: msg.ID,
	})

	set, key, err := s.resolver.Resolve(ctx, msg.ReceiverGender, msg.Relationship, msg.Occasion)
	if err != nil {
		return nil, err
	}
	ctx = logger.SetContentKey(ctx, key.String())

	var session *domain.ContentSession
	if s.tracker != nil {
		session = s.tracker.GetOrCreateSession(ctx, msg.SenderName, msg.ReceiverName, msg.Relationship, msg.EmotionTag)
	}

	variation, variationIdx := s.selector.PickBiased(set, UsedFragments(session))

	photos, err := s.photos.ListByMessage(ctx, msg.ID)
	if err != nil {
		// Photos are an enhancement to the experience; generate without
		// them rather than failing the request.
		logger.CtxWarn(ctx, "Failed to load photos, generating without images: error=%v", err)
		photos = nil
	}
	images := make([]content.Image, 0, len(photos))
	for _, p := range photos {
		if len(images) == domain.MaxPhotosPerMessage {
			break
		}
		images = append(images, content.Image{URL: p.URL, Caption: p.Caption})
	}

	assembled := content.Assemble(content.AssembleInput{
		PersonalMessage: msg.TextContent,
		Variation:       variation,
		Values: content.Values{
			ReceiverName:  msg.ReceiverName,
			SpecialMemory: msg.ReceiverMemory,
		},
		Images: images,
	})

	code := msg.Code
	if code == "" {
		code, err = s.codes.Issue(ctx)
		if err != nil {
			return nil, err
		}
	}

	screens := make([]domain.MessageScreen, 0, len(assembled))
	for _, scr := range assembled {
		screens = append(screens, domain.MessageScreen{
			ID:         uuid.New().String(),
			MessageID:  msg.ID,
			Index:      scr.Index,
			Type:       scr.Type,
			Content:    scr.Content,
			Lines:      scr.Lines,
			HasImage:   scr.HasImage,
			ImageURL:   scr.ImageURL,
			ImageIndex: scr.ImageIndex,
		})
	}

	if err := s.messages.ReplaceScreens(ctx, msg.ID, screens); err != nil {
		return nil, fmt.Errorf("failed to persist screens: %w", err)
	}
	now := time.Now()
	if err := s.messages.MarkGenerated(ctx, msg.ID, code, now); err != nil {
		return nil, fmt.Errorf("failed to mark message generated: %w", err)
	}
	msg.Code = code
	msg.Status = domain.MessageStatusGenerated
	msg.GeneratedAt = &now

	if s.tracker != nil && session != nil {
		quotes, notes, transitions := classifyFragments(variation)
		s.tracker.RecordUsage(ctx, session, quotes, notes, transitions)
	}

	logger.With(logger.Fields{
		logger.FieldDurationMs: time.Since(start).Milliseconds(),
		logger.FieldCount:      len(screens),
		logger.FieldCode:       code,
	}).Info(ctx, "Message generated: content_key=%s, variation=%d, images=%d", key.String(), variationIdx, len(images))

	if s.notifier != nil {
		s.notifier.MessageGenerated(ctx, msg, len(screens))
	}

	return &GenerateResult{Message: msg, Code: code, Screens: screens}, nil
}

// classifyFragments splits a variation's raw lines into the three tracked
// fragment classes: transitions are the opening and closing screens' lines,
// notes reference the memory placeholders, everything else counts as quotes.
func classifyFragments(v content.Variation) (quotes, notes, transitions []string) {
	for i, scr := range v.Screens {
		for _, line := range scr.Lines {
			if strings.TrimSpace(line) == "" {
				continue
			}
			switch {
			case i == 0 || i == len(v.Screens)-1:
				transitions = append(transitions, line)
			case strings.Contains(line, content.TokenSpecialMemory) || strings.Contains(line, content.TokenSpecificMemory):
				notes = append(notes, line)
			default:
				quotes = append(quotes, line)
			}
		}
	}
	return quotes, notes, transitions
}

// ViewScreen is one screen in the receiver-facing output contract.
type ViewScreen struct {
	ID       string   `json:"id"`
	Index    int      `json:"index"`
	Type     string   `json:"type"`
	Content  string   `json:"content"`
	Lines    []string `json:"lines"`
	HasImage bool     `json:"has_image"`
	ImageURL string   `json:"image_url,omitempty"`
}

// ViewResponse is the receiver-facing representation of a generated message.
type ViewResponse struct {
	Code         string       `json:"code"`
	SenderName   string       `json:"sender_name"`
	ReceiverName string       `json:"receiver_name"`
	Occasion     string       `json:"occasion"`
	Screens      []ViewScreen `json:"screens"`
}

// ViewByCode resolves a shareable code to the ordered screen list consumed by
// the receiver-facing presentation layer.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - code: 6-character shareable code.
// Returns:
//   - *ViewResponse: screens and metadata.
//   - error: non-nil if the code is unknown or the lookup fails.
func (s *GenerationService) ViewByCode(ctx context.Context, code string) (*ViewResponse, error) {
	msg, err := s.messages.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, fmt.Errorf("failed to find message by code: %w", err)
	}

	screens, err := s.messages.ListScreens(ctx, msg.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load screens: %w", err)
	}

	resp := &ViewResponse{
		Code:         msg.Code,
		SenderName:   msg.SenderName,
		ReceiverName: msg.ReceiverName,
		Occasion:     msg.Occasion,
		Screens:      make([]ViewScreen, 0, len(screens)),
	}
	for _, scr := range screens {
		resp.Screens = append(resp.Screens, ViewScreen{
			ID:       scr.ID,
			Index:    scr.Index,
			Type:     string(scr.Type),
			Content:  scr.Content,
			Lines:    scr.Lines,
			HasImage: scr.HasImage,
			ImageURL: scr.ImageURL,
		})
	}
	return resp, nil
}

// Stats summarizes message counts for the ops surface.
type Stats struct {
	CreatedMessages   int64 `json:"created_messages"`
	GeneratedMessages int64 `json:"generated_messages"`
}

// GetStats returns message counts by status.
func (s *GenerationService) GetStats(ctx context.Context) (*Stats, error) {
	created, err := s.messages.CountByStatus(ctx, domain.MessageStatusCreated)
	if err != nil {
		return nil, fmt.Errorf("failed to count created messages: %w", err)
	}
	generated, err := s.messages.CountByStatus(ctx, domain.MessageStatusGenerated)
	if err != nil {
		return nil, fmt.Errorf("failed to count generated messages: %w", err)
	}
	return &Stats{CreatedMessages: created, GeneratedMessages: generated}, nil
}
