// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// login.go - The sign-in screen view and key handling.
package login

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/morganforge/askwire-tui/internal/ui/styles"
)

// Model is the Bubble Tea model for the sign-in screen. The screen is a
// static placeholder: the button carries no action and no credential flow
// exists behind it. Only the quit keys do anything.
type Model struct {
	theme  *styles.Theme
	width  int
	height int
}

// New creates a new sign-in screen.
func New(theme *styles.Theme) Model {
	return Model{theme: theme}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetSize updates the screen dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c", "q":
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

// View renders the sign-in box centered on screen.
func (m Model) View() string {
	title := m.theme.LoginTitle.Render("askwire")
	subtitle := m.theme.LoginSubtitle.Render("Answers with sources")
	button := m.theme.LoginButton.Render("Sign in")
	hint := m.theme.LoginHint.Render("press esc to exit")

	box := m.theme.LoginBox.Render(
		lipgloss.JoinVertical(lipgloss.Center, title, subtitle, "", button, "", hint),
	)

	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
