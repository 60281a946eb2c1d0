package models

import (
	"time"

	"github.com/pocketlawyer/pocket-lawyer-api/internal/types"
)

// User is an account record. Username uniqueness is only checked at lookup
// time (GetUserByUsername); creation does not enforce it.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserInput is the create payload for User.
type UserInput struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// Validate checks required-field presence.
func (in *UserInput) Validate() []FieldError {
	var errs []FieldError
	errs = requireString(errs, "username", in.Username)
	errs = requireString(errs, "password", in.Password)
	return errs
}

// User converts a validated input into a storable record.
func (in *UserInput) User() User {
	return User{Username: *in.Username, Password: *in.Password}
}

// Chat message types.
const (
	MessageTypeUser = "user"
	MessageTypeBot  = "bot"
)

// ChatMessage is one entry in the chat history. Append-only.
type ChatMessage struct {
	ID        int       `json:"id"`
	UserID    *int      `json:"userId"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatMessageInput is the create payload for ChatMessage. The userId may
// arrive as a JSON number or a numeric string.
type ChatMessageInput struct {
	UserID  *types.FlexInt `json:"userId"`
	Content *string        `json:"content"`
	Type    *string        `json:"type"`
}

func (in *ChatMessageInput) Validate() []FieldError {
	var errs []FieldError
	errs = requireString(errs, "content", in.Content)
	errs = requireEnum(errs, "type", in.Type, MessageTypeUser, MessageTypeBot)
	return errs
}

// Message converts a validated input into a storable record. The store
// assigns id and timestamp.
func (in *ChatMessageInput) Message() ChatMessage {
	msg := ChatMessage{Content: *in.Content, Type: *in.Type}
	if in.UserID != nil {
		id := in.UserID.Int()
		msg.UserID = &id
	}
	return msg
}
