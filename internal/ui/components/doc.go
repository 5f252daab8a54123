// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the askwire TUI.
//
// Components are small render helpers shared by the screens:
//
//   - RenderSourceCard / RenderSourceList: citation cards under answers
//   - StatusBar: the single-line footer with state and shortcuts
//
// Components never own Bubble Tea update loops; the screens feed them
// state and embed their View output.
package components
