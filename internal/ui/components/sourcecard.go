// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the askwire TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/morganforge/askwire-tui/internal/model"
	"github.com/morganforge/askwire-tui/internal/ui/styles"
	"github.com/morganforge/askwire-tui/internal/util"
)

// =============================================================================
// SOURCE CARD
// =============================================================================

// minCardWidth is the narrowest useful card; below this the URL line is
// unreadable anyway.
const minCardWidth = 24

// RenderSourceCard renders a single citation source as a bordered card.
func RenderSourceCard(theme *styles.Theme, src model.Source, width int) string {
	if width < minCardWidth {
		width = minCardWidth
	}
	// Border and padding consume 4 columns.
	inner := width - 4

	number := theme.SourceNumber.Render(fmt.Sprintf("[%d]", src.Number))
	title := theme.SourceTitle.Render(util.TruncateWidth(src.DisplayTitle(), inner-util.StringWidth(fmt.Sprintf("[%d] ", src.Number))))
	head := number + " " + title

	url := theme.SourceURL.Render(util.TruncateWidth(src.URL, inner))

	lines := []string{head, url}
	if src.Site != "" {
		lines = append(lines, theme.SourceSite.Render(util.TruncateWidth(src.Site, inner)))
	}

	return theme.SourceCard.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// RenderSourceList renders all sources of an assistant message, stacked.
func RenderSourceList(theme *styles.Theme, sources []model.Source, width int) string {
	if len(sources) == 0 {
		return ""
	}

	cards := make([]string, 0, len(sources))
	for _, src := range sources {
		cards = append(cards, RenderSourceCard(theme, src, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
