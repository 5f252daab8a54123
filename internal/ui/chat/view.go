// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat screen for the askwire TUI.
package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/morganforge/askwire-tui/internal/model"
	"github.com/morganforge/askwire-tui/internal/ui/components"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the chat screen.
func (m Model) View() string {
	width := m.width
	if width == 0 {
		width = 80
	}

	header := m.renderHeader(width)
	transcript := m.viewport.View()
	input := m.renderInput(width)
	status := m.statusBar.View()

	return lipgloss.JoinVertical(lipgloss.Left, header, transcript, input, status)
}

// renderHeader renders the one-line screen header.
func (m Model) renderHeader(width int) string {
	brand := m.theme.Brand.Render("askwire")
	sub := " · answers with sources"
	if m.backendDown {
		sub = " · " + m.theme.StatusError.Render("backend unreachable")
	}
	return m.theme.Header.Width(width).Render(brand + sub)
}

// renderInput renders the input box, or the thinking indicator while the
// request is in flight.
func (m Model) renderInput(width int) string {
	if m.state == StateSending {
		thinking := m.spin.View() + m.theme.ThinkingText.Render(" Thinking...")
		return m.theme.InputContainer.Width(width - 2).Render(thinking)
	}
	return m.theme.InputContainer.Width(width - 2).Render(m.input.View())
}

// =============================================================================
// TRANSCRIPT RENDERING
// =============================================================================

// refreshViewport re-renders the transcript and pins the viewport to the
// newest entry.
func (m *Model) refreshViewport() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

// renderTranscript renders the whole transcript in display order.
func (m Model) renderTranscript() string {
	if m.conversation.IsEmpty() {
		return m.theme.ThinkingText.Render("\n  Ask a question to get started.")
	}

	width := m.viewport.Width
	if width == 0 {
		width = 80
	}

	var b strings.Builder
	for i, msg := range m.conversation.Messages {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderMessage(msg, width))
		b.WriteString("\n")
	}
	return b.String()
}

// renderMessage renders a single transcript entry for its role.
func (m Model) renderMessage(msg *model.Message, width int) string {
	label := ""
	if m.opts.ShowTimestamps {
		label = m.theme.Timestamp.Render(msg.Timestamp.Format("15:04 "))
	}

	switch msg.Role {
	case model.RoleUser:
		head := label + m.theme.UserLabel.Render(msg.Role.DisplayName())
		body := m.theme.UserBubble.Render(msg.Content)
		return head + "\n" + body

	case model.RoleAssistant:
		head := label + m.theme.AssistantLabel.Render(msg.Role.DisplayName())
		body := m.renderAnswer(msg.Content)
		out := head + "\n" + body
		if msg.HasSources() {
			out += "\n" + components.RenderSourceList(m.theme, msg.Sources, min(width-4, 72))
		}
		return out

	case model.RoleError:
		return m.theme.ErrorBubble.Render(msg.Content)

	default:
		return msg.Content
	}
}

// renderAnswer renders answer markdown, falling back to plain text when the
// renderer is unavailable or fails.
func (m Model) renderAnswer(content string) string {
	if m.renderer == nil {
		return m.theme.AssistantText.Render(content)
	}
	rendered, err := m.renderer.Render(content)
	if err != nil {
		return m.theme.AssistantText.Render(content)
	}
	return strings.TrimRight(rendered, "\n")
}
