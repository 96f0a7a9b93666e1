// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package review implements the full-screen sample review TUI.
//
// The model walks a loaded CSV one sample at a time. For each sample
// the operator can edit the instruction or output text, then confirm
// the correction (which computes and displays the tagged diff) or
// discard the sample. Progress persists to the local database after
// every action, so quitting and reopening resumes where review
// stopped.
//
// # Layout
//
//	┌ header: source, position, status badge ─┐
//	│ instruction pane (diff once confirmed)  │
//	│ output pane (diff once confirmed)       │
//	│ chunk pane (optional source reference)  │
//	└ status bar: counts, message, key hints ─┘
//
// The editor replaces the pane stack while an edit is in progress;
// the help overlay replaces everything.
package review
