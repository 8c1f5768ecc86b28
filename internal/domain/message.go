// Package domain contains core domain types for the SlashByte site backend.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Author identifies who produced a chat message.
type Author string

const (
	// AuthorBot marks messages produced by the assistant.
	AuthorBot Author = "bot"
	// AuthorUser marks messages typed or clicked by the visitor.
	AuthorUser Author = "user"
)

// ChatMessage is a single entry in a conversation transcript.
// Messages are immutable once created; the transcript is append-only.
type ChatMessage struct {
	ID           string    `json:"id"`
	Author       Author    `json:"author"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at"`
	QuickReplies []string  `json:"quick_replies,omitempty"`
}

// NewMessage creates a transcript entry with a fresh ID and timestamp.
func NewMessage(author Author, text string, quickReplies ...string) ChatMessage {
	return ChatMessage{
		ID:           uuid.NewString(),
		Author:       author,
		Text:         text,
		CreatedAt:    time.Now(),
		QuickReplies: quickReplies,
	}
}
