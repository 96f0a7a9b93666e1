// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and one-shot command
// handlers for corrbench.
//
// The interactive review TUI is launched from main; everything that
// runs without a full-screen session lives here:
//
//   - diff: compute a tagged diff between two text files
//   - export: write corrected samples to a training-data format
//   - stats: summarize review progress for a source file
//   - config: show, initialize or edit the configuration
//
// # Conventions
//
// All handlers return errors instead of exiting; main maps errors to
// exit codes. Output respects --json for machine consumption and
// NO_COLOR / TTY detection for humans.
package cli
