// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive chat command handler for the askwire CLI.
//
// Handles `askwire chat`: a plain readline-style REPL for terminals where
// the full-screen TUI is unwanted (pipes, ssh sessions, screen readers).
// The conversation identifier threads across turns exactly as in the TUI.
//
// Interactive commands:
//   /clear     Reset the conversation
//   /sources   Re-print the sources of the last answer
//   /quit      Exit chat
//   Ctrl+D     Exit chat
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/morganforge/askwire-tui/internal/api"
	"github.com/morganforge/askwire-tui/internal/config"
	"github.com/morganforge/askwire-tui/internal/model"
	"github.com/morganforge/askwire-tui/internal/ui/styles"
)

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true)

	welcomeStyle = lipgloss.NewStyle().
			Foreground(styles.Indigo).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	errorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose).
			Bold(true)
)

// historyFileName is the liner history file kept under the config directory.
const historyFileName = "history"

// chatSession holds the REPL state for one chat invocation.
type chatSession struct {
	client       *api.Client
	conversation *model.Conversation
	line         *liner.State
	historyFile  string
	args         Args
}

// newChatSession builds the REPL state and loads input history.
func newChatSession(cfg *config.Config, args Args) *chatSession {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	historyFile := ""
	if dir, err := config.ConfigDir(); err == nil {
		historyFile = filepath.Join(dir, historyFileName)
		if f, err := os.Open(historyFile); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}

	client := api.NewClient(cfg.Backend.BaseURL).
		WithAPIKey(cfg.Backend.APIKey).
		WithTimeout(cfg.Timeout())

	return &chatSession{
		client:       client,
		conversation: model.NewConversation(),
		line:         line,
		historyFile:  historyFile,
		args:         args,
	}
}

// close saves input history and releases the terminal.
func (s *chatSession) close() {
	if s.historyFile != "" {
		if f, err := os.Create(s.historyFile); err == nil {
			s.line.WriteHistory(f)
			f.Close()
		}
	}
	s.line.Close()
}

// HandleChatCommand runs the interactive chat REPL.
func HandleChatCommand(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	session := newChatSession(cfg, args)
	defer session.close()

	if !args.Quiet {
		fmt.Println(welcomeStyle.Render("askwire chat"))
		fmt.Println(infoStyle.Render("Type a question, /clear to reset, /quit or Ctrl+D to exit."))
		fmt.Println()
	}

	for {
		input, err := session.line.Prompt(promptStyle.Render("askwire> "))
		if err != nil {
			// Ctrl+C or Ctrl+D: exit gracefully.
			fmt.Println()
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		session.line.AppendHistory(input)

		if strings.HasPrefix(input, "/") {
			if done := session.handleSlashCommand(input); done {
				return nil
			}
			continue
		}

		if strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit") {
			return nil
		}

		session.processQuery(input)
	}
}

// handleSlashCommand dispatches /commands. Returns true when the REPL
// should exit.
func (s *chatSession) handleSlashCommand(input string) bool {
	switch strings.ToLower(strings.Fields(input)[0]) {
	case "/quit", "/q", "/exit":
		return true

	case "/clear", "/c":
		s.conversation.Clear()
		fmt.Println(infoStyle.Render("Conversation reset."))
		return false

	case "/sources", "/s":
		s.printLastSources()
		return false

	case "/help", "/h":
		fmt.Println(infoStyle.Render("/clear reset  /sources last sources  /quit exit"))
		return false

	default:
		fmt.Println(errorStyle.Render("Unknown command. Try /help."))
		return false
	}
}

// processQuery sends one query and prints the outcome. Errors are printed
// and the REPL continues.
func (s *chatSession) processQuery(query string) {
	s.conversation.AddUserMessage(query)

	resp, err := s.client.Generate(context.Background(), query, s.conversation.ConversationID)
	if err != nil {
		s.conversation.AddErrorMessage(api.Humanize(err))
		fmt.Fprintf(os.Stderr, "%s %s\n", errorStyle.Render("[Error]"), api.Humanize(err))
		return
	}

	s.conversation.AddAssistantMessage(resp.Answer, resp.Sources())
	s.conversation.SetConversationID(resp.ConversationID)

	printAnswer(resp.Answer, s.args)
	if !s.args.Quiet {
		printSources(resp.Sources())
	}
	fmt.Println()
}

// printLastSources re-prints the sources of the most recent answer.
func (s *chatSession) printLastSources() {
	last := s.conversation.GetLastAssistantMessage()
	if last == nil || !last.HasSources() {
		fmt.Println(infoStyle.Render("No sources yet."))
		return
	}
	for _, src := range last.Sources {
		fmt.Println("  " + formatSourceLine(src))
	}
}
