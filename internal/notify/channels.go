// channels.go
//
// Concrete delivery channels: generic JSON webhook, ntfy.sh push topic,
// and SendGrid email.

package notify

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pocketlawyer/pocket-lawyer-api/internal/models"
)

const sendTimeout = 10 * time.Second

func typeLabel(t string) string {
	switch t {
	case models.FeedbackPositive:
		return "Positive (Thumbs Up)"
	case models.FeedbackNegative:
		return "Negative (Thumbs Down)"
	default:
		return "Text Feedback"
	}
}

// WebhookChannel POSTs the feedback record as JSON to a configured URL.
type WebhookChannel struct {
	URL string
}

func (w *WebhookChannel) Name() string { return "webhook" }

func (w *WebhookChannel) Send(f models.Feedback) error {
	agent := fiber.Post(w.URL)
	agent.Timeout(sendTimeout)
	agent.JSON(f)

	code, _, errs := agent.Bytes()
	if len(errs) > 0 {
		return errs[0]
	}
	if code < 200 || code >= 300 {
		return fmt.Errorf("webhook returned status %d", code)
	}
	return nil
}

// NtfyChannel publishes a plain-text push notification to an ntfy.sh topic.
type NtfyChannel struct {
	Topic string
}

func (n *NtfyChannel) Name() string { return "ntfy" }

func (n *NtfyChannel) Send(f models.Feedback) error {
	content := "No message provided"
	if f.Content != nil && *f.Content != "" {
		content = *f.Content
	}
	body := fmt.Sprintf("New feedback from Pocket Lawyer app:\n\nType: %s\nTime: %s\nID: #%d\n\n%s",
		typeLabel(f.Type), f.Timestamp.Format(time.RFC1123), f.ID, content)

	agent := fiber.Post("https://ntfy.sh/" + n.Topic)
	agent.Timeout(sendTimeout)
	agent.Set("Title", "Pocket Lawyer Feedback: "+f.Type)
	agent.Set("Priority", "high")
	agent.Set("Tags", "feedback,email")
	agent.ContentType("text/plain")
	agent.Body([]byte(body))

	code, _, errs := agent.Bytes()
	if len(errs) > 0 {
		return errs[0]
	}
	if code < 200 || code >= 300 {
		return fmt.Errorf("ntfy returned status %d", code)
	}
	return nil
}

// SendGridChannel sends the feedback as an email through the SendGrid v3 API.
type SendGridChannel struct {
	APIKey string
	To     string
	From   string
}

func (s *SendGridChannel) Name() string { return "sendgrid" }

func (s *SendGridChannel) Send(f models.Feedback) error {
	subject := "Feedback Received - Pocket Lawyer"
	switch f.Type {
	case models.FeedbackPositive:
		subject = "Positive Feedback Received - Pocket Lawyer"
	case models.FeedbackNegative:
		subject = "Negative Feedback Received - Pocket Lawyer"
	case models.FeedbackText:
		subject = "Detailed Feedback Received - Pocket Lawyer"
	}

	content := "No content provided"
	if f.Content != nil && *f.Content != "" {
		content = *f.Content
	}
	userAgent := "Unknown"
	if f.UserAgent != nil {
		userAgent = *f.UserAgent
	}
	text := fmt.Sprintf("New feedback received:\n\nType: %s\nTime: %s\nID: #%d\n\nMessage: %s\nBrowser: %s",
		typeLabel(f.Type), f.Timestamp.Format(time.RFC1123), f.ID, content, userAgent)

	payload := map[string]interface{}{
		"personalizations": []map[string]interface{}{
			{"to": []map[string]string{{"email": s.To}}},
		},
		"from":    map[string]string{"email": s.From},
		"subject": subject,
		"content": []map[string]string{
			{"type": "text/plain", "value": text},
		},
	}

	agent := fiber.Post("https://api.sendgrid.com/v3/mail/send")
	agent.Timeout(sendTimeout)
	agent.Set("Authorization", "Bearer "+s.APIKey)
	agent.JSON(payload)

	code, _, errs := agent.Bytes()
	if len(errs) > 0 {
		return errs[0]
	}
	if code < 200 || code >= 300 {
		return fmt.Errorf("sendgrid returned status %d", code)
	}
	return nil
}
