// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package login

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/askwire-tui/internal/ui/styles"
)

func TestViewShowsSignInButton(t *testing.T) {
	m := New(styles.NewTheme())
	m.SetSize(80, 24)

	out := m.View()
	if !strings.Contains(out, "Sign in") {
		t.Errorf("view missing sign-in button: %q", out)
	}
	if !strings.Contains(out, "askwire") {
		t.Errorf("view missing wordmark: %q", out)
	}
}

func TestOnlyQuitKeysQuit(t *testing.T) {
	m := New(styles.NewTheme())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if cmd != nil {
		t.Error("non-quit key should be ignored")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command on esc")
	}
}
