package message

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxBodyLength bounds a single message body, counted in runes.
const MaxBodyLength = 4000

var (
	ErrEmptyBody   = errors.New("message body is required")
	ErrBodyTooLong = errors.New("message body is too long")
)

type Participant struct {
	EmployeeID uuid.UUID `json:"employee_id"`
	Name       string    `json:"name"`
}

type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       uuid.UUID `json:"sender_id"`
	SenderName     string    `json:"sender_name"`
	Body           string    `json:"body"`
	SentAt         time.Time `json:"sent_at"`
}

type Conversation struct {
	ID           string        `json:"id"`
	Subject      string        `json:"subject"`
	Participants []Participant `json:"participants"`
	LastMessage  *Message      `json:"last_message,omitempty"`
	UnreadCount  int           `json:"unread_count"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Thread is a conversation with its messages, oldest first.
type Thread struct {
	Conversation Conversation `json:"conversation"`
	Messages     []Message    `json:"messages"`
}

type SendRequest struct {
	Body string `json:"body"`
}

func (r *SendRequest) Validate() error {
	if strings.TrimSpace(r.Body) == "" {
		return ErrEmptyBody
	}
	if len([]rune(r.Body)) > MaxBodyLength {
		return ErrBodyTooLong
	}
	return nil
}

type EventType string

const (
	EventMessageCreated   EventType = "message.created"
	EventConversationRead EventType = "conversation.read"
)

// Event is pushed by the HR API over its event stream.
type Event struct {
	Type           EventType   `json:"type"`
	ConversationID string      `json:"conversation_id"`
	RecipientIDs   []uuid.UUID `json:"recipient_ids"`
	Message        *Message    `json:"message,omitempty"`
}
