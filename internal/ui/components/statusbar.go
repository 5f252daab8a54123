// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the askwire TUI.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/morganforge/askwire-tui/internal/ui/styles"
	"github.com/morganforge/askwire-tui/internal/util"
)

// =============================================================================
// STATUS BAR
// =============================================================================

// Status represents the connection/activity state shown in the bar.
type Status int

const (
	StatusIdle Status = iota
	StatusSending
	StatusFailed
)

// StatusBar is the single-line footer under the chat viewport.
type StatusBar struct {
	theme *styles.Theme
	width int

	status   Status
	turns    int
	hasConvo bool
}

// NewStatusBar creates a status bar.
func NewStatusBar(theme *styles.Theme) StatusBar {
	return StatusBar{theme: theme}
}

// SetWidth updates the bar width.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// SetStatus updates the activity state.
func (s *StatusBar) SetStatus(status Status) {
	s.status = status
}

// SetConversation updates the conversation indicators.
func (s *StatusBar) SetConversation(turns int, hasConvo bool) {
	s.turns = turns
	s.hasConvo = hasConvo
}

// View renders the status bar.
func (s StatusBar) View() string {
	width := s.width
	if width == 0 {
		width = 80
	}

	var state string
	switch s.status {
	case StatusSending:
		state = s.theme.StatusBusy.Render("● sending")
	case StatusFailed:
		state = s.theme.StatusError.Render("● error")
	default:
		state = s.theme.StatusOK.Render("● ready")
	}

	convo := "new conversation"
	if s.hasConvo {
		convo = "multi-turn"
	}
	left := state + s.theme.ShortcutDesc.Render("  "+convo)

	right := s.theme.ShortcutKey.Render("enter") + s.theme.ShortcutDesc.Render(" send  ") +
		s.theme.ShortcutKey.Render("ctrl+l") + s.theme.ShortcutDesc.Render(" clear  ") +
		s.theme.ShortcutKey.Render("esc") + s.theme.ShortcutDesc.Render(" quit")

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		// Narrow terminal: drop the shortcut hints first.
		return s.theme.StatusBar.Width(width).Render(left)
	}

	return s.theme.StatusBar.Width(width).Render(left + util.PadRight("", gap) + right)
}
