// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for askwire.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdChat
	CmdLogin
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool
	Plain   bool // Disable markdown rendering

	// Command-specific
	Query      string
	Subcommand string
	ConfigKey  string
	ConfigVal  string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `askwire - question answering with cited sources

Askwire is a terminal client for the Askwire answers API. Every answer
comes back with numbered source citations.

Usage:
  askwire                    Start the chat TUI (default)
  askwire tui "question"     Start the TUI with an auto-submitted query
  askwire ask "question"     Ask a single question
  askwire chat               Interactive chat (plain REPL)
  askwire login              Show the sign-in screen
  askwire config [show|set]  Configuration
  askwire version            Show version information
  askwire help               Show this help

Ask Command:
  askwire ask "What is Go?"
    --plain                  Print the raw answer without markdown rendering
    -q, --quiet              Answer only, no source list

Chat Commands (during chat):
  /clear                     Reset the conversation
  /sources                   Re-print the sources of the last answer
  /quit                      Exit chat
  Ctrl+D                     Exit chat

Config Commands:
  askwire config show        Show current configuration (key redacted)
  askwire config set KEY VAL Set a configuration value
  askwire config path        Print the configuration file path

Environment:
  ASKWIRE_BASE_URL           Backend base URL
  ASKWIRE_API_KEY            API key
  ASKWIRE_TIMEOUT_SECS       Request timeout in seconds

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("askwire version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses the given arguments. Split out from Parse for tests.
func ParseArgs(argv []string) (Command, Args) {
	remaining, parsed := parseGlobalFlags(argv)

	// No arguments: launch the TUI.
	if len(remaining) == 0 {
		return CmdTUI, parsed
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsed.Raw = remaining

	switch cmd {
	case "tui":
		// An optional query auto-submits once after the screen mounts.
		parseAskArgs(&parsed, remaining)
		return CmdTUI, parsed

	case "ask":
		parseAskArgs(&parsed, remaining)
		return CmdAsk, parsed

	case "chat":
		return CmdChat, parsed

	case "login":
		return CmdLogin, parsed

	case "config":
		parseConfigArgs(&parsed, remaining)
		return CmdConfig, parsed

	case "version", "-v", "--version":
		return CmdVersion, parsed

	case "help", "-h", "--help":
		return CmdHelp, parsed

	default:
		// Unrecognized first argument is treated as an ask query, so
		// `askwire "what is go?"` works without the subcommand.
		parseAskArgs(&parsed, append([]string{cmd}, remaining...))
		return CmdAsk, parsed
	}
}

// parseGlobalFlags extracts global flags, returning the remaining args.
func parseGlobalFlags(argv []string) ([]string, Args) {
	var args Args
	remaining := make([]string, 0, len(argv))

	for _, arg := range argv {
		switch arg {
		case "-q", "--quiet":
			args.Quiet = true
		case "-v", "--verbose":
			args.Verbose = true
		case "--plain":
			args.Plain = true
		default:
			remaining = append(remaining, arg)
		}
	}
	return remaining, args
}

// parseAskArgs joins the remaining positional arguments into the query.
func parseAskArgs(args *Args, remaining []string) {
	var parts []string
	for _, arg := range remaining {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		parts = append(parts, arg)
	}
	args.Query = strings.TrimSpace(strings.Join(parts, " "))
}

// parseConfigArgs parses `config [show|set KEY VAL|path]`.
func parseConfigArgs(args *Args, remaining []string) {
	if len(remaining) == 0 {
		args.Subcommand = "show"
		return
	}
	args.Subcommand = strings.ToLower(remaining[0])
	if args.Subcommand == "set" {
		if len(remaining) > 1 {
			args.ConfigKey = remaining[1]
		}
		if len(remaining) > 2 {
			args.ConfigVal = remaining[2]
		}
	}
}
