// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the askwire command line interface: argument
// parsing and the non-TUI command handlers (ask, chat, config, version).
// The TUI commands are dispatched by package main.
package cli
