// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat screen for the askwire TUI.
package chat

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/askwire-tui/internal/api"
	"github.com/morganforge/askwire-tui/internal/ui/components"
)

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// GenerateCmd creates a command that submits a query to the backend.
// The conversation identifier threads multi-turn context; it is empty on the
// first call. The request is not cancellable and is never retried.
func GenerateCmd(client *api.Client, query, conversationID string) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Generate(context.Background(), query, conversationID)
		if err != nil {
			return GenerateErrorMsg{Query: query, Err: err}
		}
		return GenerateCompleteMsg{Query: query, Response: resp}
	}
}

// HealthCmd creates a command that probes backend reachability.
func HealthCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := client.Health(ctx)
		return HealthMsg{Reachable: err == nil, Err: err}
	}
}

// InitialQueryCmd creates a command that delivers the launch-time query.
func InitialQueryCmd(query string) tea.Cmd {
	return func() tea.Msg {
		return InitialQueryMsg{Query: query}
	}
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keyMap.Submit):
			return m.submit(m.input.Value())

		case key.Matches(msg, m.keyMap.Clear):
			// Equivalent to reloading the screen: transcript and the
			// conversation identifier are both reset.
			if m.state == StateIdle {
				m.conversation.Clear()
				m.refreshViewport()
			}
			return m, nil

		case key.Matches(msg, m.keyMap.ScrollUp):
			m.viewport.HalfViewUp()
			return m, nil

		case key.Matches(msg, m.keyMap.ScrollDn):
			m.viewport.HalfViewDown()
			return m, nil
		}

	case InitialQueryMsg:
		// Consumed once: the field is cleared so a reload cannot resubmit it.
		m.initialQuery = ""
		return m.submit(msg.Query)

	case GenerateCompleteMsg:
		return m.applyResponse(msg), nil

	case GenerateErrorMsg:
		return m.applyError(msg), nil

	case HealthMsg:
		m.backendDown = !msg.Reachable
		return m, nil

	case spinner.TickMsg:
		if m.state == StateSending {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// Delegate remaining messages to the focused components.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// =============================================================================
// SUBMISSION
// =============================================================================

// submit validates and sends a query. Blank input and submissions while a
// request is pending are no-ops: the pending-state check is the only guard
// against duplicate submission.
func (m Model) submit(raw string) (Model, tea.Cmd) {
	query := strings.TrimSpace(raw)
	if query == "" {
		return m, nil
	}
	if m.state == StateSending {
		return m, nil
	}

	m.conversation.AddUserMessage(query)
	m.input.Reset()
	m.state = StateSending
	m.statusBar.SetStatus(components.StatusSending)
	m.refreshViewport()

	return m, tea.Batch(
		GenerateCmd(m.client, query, m.conversation.ConversationID),
		m.spin.Tick,
	)
}

// applyResponse appends the assistant answer and threads the returned
// conversation identifier for the next request.
func (m Model) applyResponse(msg GenerateCompleteMsg) Model {
	m.state = StateIdle
	m.statusBar.SetStatus(components.StatusIdle)

	resp := msg.Response
	m.conversation.AddAssistantMessage(resp.Answer, resp.Sources())
	m.conversation.SetConversationID(resp.ConversationID)
	m.statusBar.SetConversation(m.conversation.MessageCount(), m.conversation.ConversationID != "")
	m.refreshViewport()
	return m
}

// applyError appends a humanized error-role entry. Errors are never fatal to
// the screen; the user can keep typing.
func (m Model) applyError(msg GenerateErrorMsg) Model {
	m.state = StateIdle
	m.statusBar.SetStatus(components.StatusFailed)

	m.conversation.AddErrorMessage(api.Humanize(msg.Err))
	m.refreshViewport()
	return m
}
