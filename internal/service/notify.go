package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/krishnaa-0506/always/internal/domain"
	"github.com/krishnaa-0506/always/internal/logger"
)

// NotifyConfig holds configuration for the delivery notification client.
type NotifyConfig struct {
	Enabled    bool
	WebhookURL string
	Timeout    time.Duration
}

// NotifyService posts a webhook to the external delivery relay (email/push is
// a collaborator; we only call its HTTP API) when a message finishes
// generating. Failures are logged and never fail generation.
type NotifyService struct {
	client     *resty.Client
	webhookURL string
	enabled    bool
}

// NewNotifyService creates a new notification client.
// Parameters:
//   - cfg: notification configuration; nil or disabled yields a no-op client.
// Returns:
//   - *NotifyService: initialized client.
func NewNotifyService(cfg *NotifyConfig) *NotifyService {
	if cfg == nil || !cfg.Enabled || cfg.WebhookURL == "" {
		return &NotifyService{enabled: false}
	}

	client := resty.New()
	client.SetHeader("Content-Type", "application/json")
	client.SetTimeout(cfg.Timeout)
	client.SetRetryCount(2)

	return &NotifyService{
		client:     client,
		webhookURL: cfg.WebhookURL,
		enabled:    true,
	}
}

// IsEnabled reports whether notifications are configured.
func (s *NotifyService) IsEnabled() bool {
	return s.enabled
}

type generatedEvent struct {
	Event        string `json:"event"`
	MessageID    string `json:"message_id"`
	Code         string `json:"code"`
	SenderName   string `json:"sender_name"`
	ReceiverName string `json:"receiver_name"`
	ScreenCount  int    `json:"screen_count"`
	GeneratedAt  string `json:"generated_at"`
}

// MessageGenerated notifies the relay that a message is ready to share.
// Best-effort: errors are logged, never returned to the generation path.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - msg: the generated message.
//   - screenCount: number of assembled screens.
// Returns: none.
func (s *NotifyService) MessageGenerated(ctx context.Context, msg *domain.Message, screenCount int) {
	if !s.enabled {
		return
	}

	event := generatedEvent{
		Event:        "message.generated",
		MessageID:    msg.ID,
		Code:         msg.Code,
		SenderName:   msg.SenderName,
		ReceiverName: msg.ReceiverName,
		ScreenCount:  screenCount,
	}
	if msg.GeneratedAt != nil {
		event.GeneratedAt = msg.GeneratedAt.UTC().Format(time.RFC3339)
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(event).
		Post(s.webhookURL)
	if err != nil {
		logger.CtxWarn(ctx, "Delivery notification failed: message_id=%s, error=%v", msg.ID, err)
		return
	}
	if resp.IsError() {
		logger.CtxWarn(ctx, "Delivery notification rejected: message_id=%s, status=%d, body=%s",
			msg.ID, resp.StatusCode(), truncate(resp.String(), 200))
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return fmt.Sprintf("%s...", s[:n])
}
