// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - Single query command handler for the askwire CLI.
//
// Handles `askwire ask "question"`: one request, one rendered answer with
// its numbered source list, then exit. The conversation identifier is not
// threaded; each invocation is a fresh conversation.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/morganforge/askwire-tui/internal/api"
	"github.com/morganforge/askwire-tui/internal/config"
	"github.com/morganforge/askwire-tui/internal/model"
	"github.com/morganforge/askwire-tui/internal/ui/styles"
)

var (
	askLabelStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true)

	askSourceNumStyle = lipgloss.NewStyle().
				Foreground(styles.Indigo).
				Bold(true)

	askSourceURLStyle = lipgloss.NewStyle().
				Foreground(styles.TextMuted)

	askErrorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose).
			Bold(true)
)

// HandleAskCommand runs a single question and prints the answer.
func HandleAskCommand(args Args) error {
	if args.Query == "" {
		return fmt.Errorf("usage: askwire ask \"question\"")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client := api.NewClient(cfg.Backend.BaseURL).
		WithAPIKey(cfg.Backend.APIKey).
		WithTimeout(cfg.Timeout())

	resp, err := client.Generate(context.Background(), args.Query, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", askErrorStyle.Render("[Error]"), api.Humanize(err))
		return err
	}

	printAnswer(resp.Answer, args)
	if !args.Quiet {
		printSources(resp.Sources())
	}
	return nil
}

// printAnswer renders the answer markdown when stdout is a terminal and
// rendering was not disabled, otherwise prints it verbatim.
func printAnswer(answer string, args Args) {
	if args.Plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(answer)
		return
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Println(answer)
		return
	}

	rendered, err := renderer.Render(answer)
	if err != nil {
		fmt.Println(answer)
		return
	}
	fmt.Print(rendered)
}

// printSources prints the numbered source list under the answer.
func printSources(sources []model.Source) {
	if len(sources) == 0 {
		return
	}

	fmt.Println(askLabelStyle.Render("Sources:"))
	for _, src := range sources {
		num := askSourceNumStyle.Render(fmt.Sprintf("[%d]", src.Number))
		line := fmt.Sprintf("  %s %s", num, src.DisplayTitle())
		if src.URL != "" {
			line += "  " + askSourceURLStyle.Render(src.URL)
		}
		fmt.Println(line)
	}
}

// formatSourceLine builds the plain-text form of one source entry, used by
// the REPL's /sources command where styling is kept minimal.
func formatSourceLine(src model.Source) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d] %s", src.Number, src.DisplayTitle())
	if src.URL != "" {
		b.WriteString("  " + src.URL)
	}
	return b.String()
}
