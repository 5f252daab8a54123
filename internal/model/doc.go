// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations, messages,
// and citation sources.
//
// # Key Types
//
//   - Conversation: transcript plus the backend conversation identifier
//   - Message: single transcript entry with role, content, and sources
//   - Source: backend-supplied citation {number, title?, url}
//   - Role: message role enumeration (user, assistant, error)
//
// # Usage
//
// Create a conversation and append an exchange:
//
//	conv := model.NewConversation()
//	conv.AddUserMessage("Who wrote The Master and Margarita?")
//	conv.AddAssistantMessage("Mikhail Bulgakov.", sources)
//	conv.SetConversationID(resp.ConversationID)
//
// Messages are immutable after creation and are discarded with the
// conversation; nothing in this package is persisted.
package model
