// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides string utilities for the askwire TUI.
//
// The helpers here are width-aware: they measure display columns rather
// than bytes or runes, so truncation never corrupts UTF-8 sequences and
// double-width (CJK) characters are counted as two columns.
package util
