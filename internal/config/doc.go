// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for askwire.
//
// Configuration lives at ~/.askwire/config.toml and is merged with
// environment overrides (ASKWIRE_BASE_URL, ASKWIRE_API_KEY,
// ASKWIRE_TIMEOUT_SECS) on top of built-in defaults. Validation rejects
// unusable base URLs and clamps timeouts into a sane range.
//
// A Watcher can observe the file for edits and hand reloaded configurations
// to the application without a restart.
package config
