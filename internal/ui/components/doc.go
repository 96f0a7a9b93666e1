// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the corrbench TUI.
//
// Components are plain render helpers: the review model owns all
// state, components turn slices of it into styled strings. None of
// them implement tea.Model.
package components
