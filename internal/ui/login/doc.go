// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package login implements the static sign-in screen. It is presentation
// only: the button has no handler and no credential flow exists behind it.
package login
