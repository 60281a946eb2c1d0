package models

import "time"

// Feedback types.
const (
	FeedbackPositive = "positive"
	FeedbackNegative = "negative"
	FeedbackText     = "text"
)

// Feedback is a user feedback record. Append-only; creation triggers a
// best-effort notification side effect.
type Feedback struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Content   *string   `json:"content,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	UserAgent *string   `json:"userAgent,omitempty"`
}

// FeedbackInput is the create payload. Content is optional even for
// type=text; the client is expected to supply it but the server does not
// enforce that.
type FeedbackInput struct {
	Type      *string `json:"type"`
	Content   *string `json:"content"`
	UserAgent *string `json:"userAgent"`
}

func (in *FeedbackInput) Validate() []FieldError {
	var errs []FieldError
	errs = requireEnum(errs, "type", in.Type, FeedbackPositive, FeedbackNegative, FeedbackText)
	return errs
}

// Feedback converts a validated input into a storable record. The store
// assigns id and timestamp.
func (in *FeedbackInput) Feedback() Feedback {
	return Feedback{Type: *in.Type, Content: in.Content, UserAgent: in.UserAgent}
}
