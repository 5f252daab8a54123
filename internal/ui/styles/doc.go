// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the askwire TUI.
//
// Colors are defined as lipgloss.AdaptiveColor pairs so the palette adapts
// to light and dark terminals automatically. The Theme aggregates every
// style the chat and login screens use; components take a *Theme instead
// of constructing styles themselves.
package styles
