// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the interactive chat screen.
//
// The screen is a Bubble Tea model built from a viewport transcript, a
// single-line input, a spinner, and a status bar. It holds one conversation
// at a time: a transcript of user, assistant, and error entries plus the
// opaque conversation identifier threaded through backend requests. At most
// one generate request is in flight; submissions while waiting and blank
// submissions are no-ops. Failed requests surface as error entries in the
// transcript and never terminate the screen.
package chat
