// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations, messages,
// and citation sources.
package model

import (
	"time"
)

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds a running transcript and the backend conversation
// identifier that threads multi-turn context across requests.
//
// The identifier is owned by the backend: it is empty until the first
// exchange completes, and each response's identifier replaces the stored
// one. The transcript lives only as long as the screen that owns it.
type Conversation struct {
	// ConversationID is the opaque token handed back by the backend after
	// the first exchange. Empty for a fresh conversation.
	ConversationID string `json:"conversation_id"`

	// Messages is the transcript in display order.
	Messages []*Message `json:"messages"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewConversation creates an empty conversation with no backend identifier.
func NewConversation() *Conversation {
	now := time.Now()
	return &Conversation{
		Messages:  make([]*Message, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// AddMessage appends a message to the transcript.
func (c *Conversation) AddMessage(msg *Message) {
	c.Messages = append(c.Messages, msg)
	c.UpdatedAt = time.Now()
}

// AddUserMessage creates and appends a user message.
func (c *Conversation) AddUserMessage(content string) *Message {
	msg := NewUserMessage(content)
	c.AddMessage(msg)
	return msg
}

// AddAssistantMessage creates and appends an assistant message with sources.
func (c *Conversation) AddAssistantMessage(content string, sources []Source) *Message {
	msg := NewAssistantMessage(content, sources)
	c.AddMessage(msg)
	return msg
}

// AddErrorMessage creates and appends an error-role message.
func (c *Conversation) AddErrorMessage(content string) *Message {
	msg := NewErrorMessage(content)
	c.AddMessage(msg)
	return msg
}

// GetLastMessage returns the most recent message, or nil if empty.
func (c *Conversation) GetLastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return c.Messages[len(c.Messages)-1]
}

// GetLastAssistantMessage returns the most recent assistant message.
func (c *Conversation) GetLastAssistantMessage() *Message {
	for i := len(c.Messages) - 1; i >= 0; i-- {
		if c.Messages[i].Role == RoleAssistant {
			return c.Messages[i]
		}
	}
	return nil
}

// MessageCount returns the number of messages in the transcript.
func (c *Conversation) MessageCount() int {
	return len(c.Messages)
}

// IsEmpty returns true if there are no messages.
func (c *Conversation) IsEmpty() bool {
	return len(c.Messages) == 0
}

// Clear discards the transcript and the backend identifier, returning the
// conversation to its fresh state. Equivalent to reloading the screen.
func (c *Conversation) Clear() {
	c.Messages = make([]*Message, 0)
	c.ConversationID = ""
	c.UpdatedAt = time.Now()
}

// =============================================================================
// IDENTIFIER THREADING
// =============================================================================

// SetConversationID replaces the stored backend identifier. Called with the
// identifier from each successful response.
func (c *Conversation) SetConversationID(id string) {
	if id == "" {
		return
	}
	c.ConversationID = id
	c.UpdatedAt = time.Now()
}
