// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the corrbench
// review TUI.
//
// All colors use Lip Gloss AdaptiveColor so the same palette works on
// light and dark terminals. The two colors that matter most here are
// the diff pair: removed text renders in Rose with strikethrough,
// inserted text in Emerald. Everything else is supporting chrome.
//
// # Usage
//
//	theme := styles.NewTheme()
//	header := theme.Header.Render("corrbench")
//	del := theme.DiffDel.Render("old text")
//	add := theme.DiffAdd.Render("new text")
package styles
