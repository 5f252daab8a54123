// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat screen for the askwire TUI.
//
// This file defines the Bubble Tea message types used by the chat screen:
//   - Generate: completion and failure of the single outstanding request
//   - Input: the auto-submitted initial query
//   - Health: backend reachability updates for the status line
//
// All message types follow Bubble Tea conventions and are immutable.
package chat

import (
	"github.com/morganforge/askwire-tui/internal/api"
)

// =============================================================================
// GENERATE MESSAGES
// =============================================================================

// GenerateCompleteMsg delivers a successful generate response.
type GenerateCompleteMsg struct {
	Query    string
	Response *api.GenerateResponse
}

// GenerateErrorMsg delivers a failed generate request.
type GenerateErrorMsg struct {
	Query string
	Err   error
}

// =============================================================================
// INPUT MESSAGES
// =============================================================================

// InitialQueryMsg carries the query supplied at launch. It is consumed once,
// immediately after the screen mounts.
type InitialQueryMsg struct {
	Query string
}

// =============================================================================
// HEALTH MESSAGES
// =============================================================================

// HealthMsg reports backend reachability.
type HealthMsg struct {
	Reachable bool
	Err       error
}
