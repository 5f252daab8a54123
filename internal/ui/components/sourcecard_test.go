// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the askwire TUI.
package components

import (
	"strings"
	"testing"

	"github.com/morganforge/askwire-tui/internal/model"
	"github.com/morganforge/askwire-tui/internal/ui/styles"
)

func TestRenderSourceCard_UntitledUsesNumber(t *testing.T) {
	theme := styles.NewTheme()
	card := RenderSourceCard(theme, model.Source{Number: 4, URL: "https://example.com"}, 60)

	if !strings.Contains(card, "Source 4") {
		t.Errorf("Card should contain %q, got:\n%s", "Source 4", card)
	}
	if !strings.Contains(card, "example.com") {
		t.Errorf("Card should contain the URL, got:\n%s", card)
	}
}

func TestRenderSourceCard_TitleAndSite(t *testing.T) {
	theme := styles.NewTheme()
	src := model.Source{Number: 1, Title: "Go FAQ", URL: "https://go.dev/doc/faq", Site: "go.dev"}
	card := RenderSourceCard(theme, src, 60)

	for _, want := range []string{"[1]", "Go FAQ", "go.dev"} {
		if !strings.Contains(card, want) {
			t.Errorf("Card should contain %q, got:\n%s", want, card)
		}
	}
}

func TestRenderSourceList(t *testing.T) {
	theme := styles.NewTheme()

	if got := RenderSourceList(theme, nil, 60); got != "" {
		t.Errorf("Empty source list should render nothing, got %q", got)
	}

	sources := []model.Source{
		{Number: 1, Title: "First", URL: "https://a.example"},
		{Number: 2, URL: "https://b.example"},
	}
	out := RenderSourceList(theme, sources, 60)
	if !strings.Contains(out, "First") || !strings.Contains(out, "Source 2") {
		t.Errorf("Source list missing cards:\n%s", out)
	}
}

func TestStatusBar_States(t *testing.T) {
	theme := styles.NewTheme()
	bar := NewStatusBar(theme)
	bar.SetWidth(100)

	bar.SetStatus(StatusIdle)
	if !strings.Contains(bar.View(), "ready") {
		t.Error("Idle bar should say ready")
	}

	bar.SetStatus(StatusSending)
	if !strings.Contains(bar.View(), "sending") {
		t.Error("Sending bar should say sending")
	}

	bar.SetStatus(StatusFailed)
	if !strings.Contains(bar.View(), "error") {
		t.Error("Failed bar should say error")
	}
}
