// notify.go
//
// Best-effort feedback notification fan-out. Every submission is logged to
// the console, then delivery channels are tried in order until one
// succeeds. Delivery failure never surfaces to the submitting client.

package notify

import (
	"log"

	"github.com/google/uuid"

	"github.com/pocketlawyer/pocket-lawyer-api/internal/config"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/models"
)

// Notifier delivers feedback notifications to the operators.
type Notifier interface {
	NotifyFeedback(f models.Feedback)
}

// Channel is one delivery mechanism. Send returns nil on confirmed delivery.
type Channel interface {
	Name() string
	Send(f models.Feedback) error
}

// Service runs the channel chain. Channel order is fixed at construction.
type Service struct {
	channels []Channel
}

// NewService builds the chain from configuration. Channels missing their
// configuration (webhook URL, ntfy topic, SendGrid key) are skipped.
func NewService(cfg *config.Config) *Service {
	var channels []Channel
	if cfg.FeedbackWebhookURL != "" {
		channels = append(channels, &WebhookChannel{URL: cfg.FeedbackWebhookURL})
	}
	if cfg.NtfyTopic != "" {
		channels = append(channels, &NtfyChannel{Topic: cfg.NtfyTopic})
	}
	if cfg.SendGridAPIKey != "" {
		channels = append(channels, &SendGridChannel{
			APIKey: cfg.SendGridAPIKey,
			To:     cfg.FeedbackEmail,
			From:   cfg.FeedbackEmail,
		})
	}
	return &Service{channels: channels}
}

// NotifyFeedback logs the feedback and walks the channel chain, stopping at
// the first successful delivery. Safe to call from a goroutine.
func (s *Service) NotifyFeedback(f models.Feedback) {
	attempt := uuid.NewString()

	content := ""
	if f.Content != nil {
		content = *f.Content
	}
	log.Printf("feedback received: attempt=%s id=%d type=%s content=%q", attempt, f.ID, f.Type, content)

	for _, ch := range s.channels {
		if err := ch.Send(f); err != nil {
			log.Printf("feedback notification via %s failed: attempt=%s err=%v", ch.Name(), attempt, err)
			continue
		}
		log.Printf("feedback notification delivered via %s: attempt=%s id=%d", ch.Name(), attempt, f.ID)
		return
	}

	if len(s.channels) > 0 {
		log.Printf("feedback notification undelivered on all channels: attempt=%s id=%d", attempt, f.ID)
	}
}
