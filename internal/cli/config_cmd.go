// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Configuration command handler for the askwire CLI.
//
// Handles `askwire config [show|set KEY VAL|path]`. The set command writes
// through Validate, so bad values are rejected before they reach disk.
package cli

import (
	"fmt"
	"strconv"

	"github.com/morganforge/askwire-tui/internal/config"
)

// HandleConfigCommand dispatches the config subcommands.
func HandleConfigCommand(args Args) error {
	switch args.Subcommand {
	case "", "show":
		return configShow()
	case "set":
		return configSet(args.ConfigKey, args.ConfigVal)
	case "path":
		path, err := config.ConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	default:
		return fmt.Errorf("unknown config subcommand: %s", args.Subcommand)
	}
}

// configShow prints the current configuration with the API key redacted.
func configShow() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	red := cfg.Redacted()

	fmt.Printf("base_url        %s\n", red.Backend.BaseURL)
	fmt.Printf("api_key         %s\n", orUnset(red.Backend.APIKey))
	fmt.Printf("timeout_secs    %d\n", red.Backend.TimeoutSecs)
	fmt.Printf("wrap            %d\n", red.UI.Wrap)
	fmt.Printf("show_timestamps %t\n", red.UI.ShowTimestamps)
	return nil
}

// configSet updates one key and saves the file.
func configSet(key, value string) error {
	if key == "" {
		return fmt.Errorf("usage: askwire config set KEY VALUE")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	switch key {
	case "base_url":
		cfg.Backend.BaseURL = value
	case "api_key":
		cfg.Backend.APIKey = value
	case "timeout_secs":
		secs, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("timeout_secs must be an integer: %q", value)
		}
		cfg.Backend.TimeoutSecs = secs
	case "wrap":
		wrap, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("wrap must be an integer: %q", value)
		}
		cfg.UI.Wrap = wrap
	case "show_timestamps":
		on, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("show_timestamps must be true or false: %q", value)
		}
		cfg.UI.ShowTimestamps = on
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Printf("Set %s\n", key)
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
