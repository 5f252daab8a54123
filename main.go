// askwire TUI - A terminal interface for question answering with sources.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/askwire-tui/internal/api"
	"github.com/morganforge/askwire-tui/internal/cli"
	"github.com/morganforge/askwire-tui/internal/config"
	"github.com/morganforge/askwire-tui/internal/ui/chat"
	"github.com/morganforge/askwire-tui/internal/ui/login"
	"github.com/morganforge/askwire-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdAsk:
		if err := cli.HandleAskCommand(args); err != nil {
			os.Exit(1)
		}
	case cli.CmdChat:
		if err := cli.HandleChatCommand(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdLogin:
		runLogin()
	case cli.CmdConfig:
		if err := cli.HandleConfigCommand(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	default:
		cli.PrintUsage()
		os.Exit(1)
	}
}

// =============================================================================
// TUI WIRING
// =============================================================================

// configReloadedMsg carries a configuration reloaded from disk.
type configReloadedMsg struct {
	cfg *config.Config
}

// appModel adapts the chat screen to the tea.Model interface and applies
// configuration reloads delivered by the file watcher.
type appModel struct {
	chat chat.Model
}

func (m appModel) Init() tea.Cmd {
	return m.chat.Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if reload, ok := msg.(configReloadedMsg); ok {
		cfg := reload.cfg
		m.chat.SetClient(api.NewClient(cfg.Backend.BaseURL).
			WithAPIKey(cfg.Backend.APIKey).
			WithTimeout(cfg.Timeout()))
		m.chat.SetOptions(chat.Options{
			Wrap:           cfg.UI.Wrap,
			ShowTimestamps: cfg.UI.ShowTimestamps,
		})
		return m, nil
	}

	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	return m.chat.View()
}

// runTUI starts the chat screen.
func runTUI(args cli.Args) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	theme := styles.NewTheme()
	client := api.NewClient(cfg.Backend.BaseURL).
		WithAPIKey(cfg.Backend.APIKey).
		WithTimeout(cfg.Timeout())

	screen := chat.New(theme, client, chat.Options{
		InitialQuery:   args.Query,
		Wrap:           cfg.UI.Wrap,
		ShowTimestamps: cfg.UI.ShowTimestamps,
	})

	p := tea.NewProgram(
		appModel{chat: screen},
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	// Reload the configuration while the TUI runs. A broken watcher is not
	// fatal; edits just require a restart.
	if path, err := config.ConfigPath(); err == nil {
		watcher, err := config.NewWatcher(path, func(cfg *config.Config) {
			p.Send(configReloadedMsg{cfg: cfg})
		})
		if err == nil {
			defer watcher.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loginModel adapts the sign-in screen to the tea.Model interface.
type loginModel struct {
	login login.Model
}

func (m loginModel) Init() tea.Cmd {
	return m.login.Init()
}

func (m loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.login, cmd = m.login.Update(msg)
	return m, cmd
}

func (m loginModel) View() string {
	return m.login.View()
}

// runLogin shows the static sign-in screen.
func runLogin() {
	p := tea.NewProgram(
		loginModel{login: login.New(styles.NewTheme())},
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
