// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package review implements the full-screen sample review TUI.
//
// This file defines keyboard bindings for the review interface along
// with the help entries shown in the overlay.
package review

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the review interface.
// Each binding supports multiple keys and includes help text for documentation.
type KeyMap struct {
	Next            key.Binding
	Prev            key.Binding
	Confirm         key.Binding
	Discard         key.Binding
	EditInstruction key.Binding
	EditOutput      key.Binding
	ToggleChunk     key.Binding
	TogglePreview   key.Binding
	Export          key.Binding
	ScrollUp        key.Binding
	ScrollDown      key.Binding
	Save            key.Binding
	Cancel          key.Binding
	Help            key.Binding
	Quit            key.Binding
}

// DefaultKeyMap returns the default key bindings for the review interface.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "n", "l"),
			key.WithHelp("n/→", "next sample"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "p", "h"),
			key.WithHelp("p/←", "previous sample"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("c", "enter"),
			key.WithHelp("c/Enter", "confirm correction"),
		),
		Discard: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "discard sample"),
		),
		EditInstruction: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "edit instruction"),
		),
		EditOutput: key.NewBinding(
			key.WithKeys("e", "o"),
			key.WithHelp("e/o", "edit output"),
		),
		ToggleChunk: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle chunk pane"),
		),
		TogglePreview: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle markdown preview"),
		),
		Export: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "export corrected samples"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "save edit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "cancel / close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/C-c", "quit"),
		),
	}
}

// ShortHelp returns a slice of key bindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Discard, k.EditOutput, k.Help, k.Quit}
}

// FullHelp returns a slice of key bindings to show in the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Moving between samples
		{k.Next, k.Prev, k.ScrollUp, k.ScrollDown},
		// Review actions
		{k.Confirm, k.Discard, k.EditInstruction, k.EditOutput},
		// View toggles
		{k.ToggleChunk, k.TogglePreview, k.Export},
		// Session
		{k.Save, k.Cancel, k.Help, k.Quit},
	}
}

// =============================================================================
// HELP TEXT DATA
// =============================================================================

// HelpItem represents a single help entry with key and description.
type HelpItem struct {
	Key  string
	Desc string
}

// HelpSection groups help items under a title for the overlay.
type HelpSection struct {
	Title string
	Items []HelpItem
}

// GetHelpSections returns the help overlay content.
func GetHelpSections() []HelpSection {
	return []HelpSection{
		{
			Title: "Navigation",
			Items: []HelpItem{
				{"n / →", "Next sample"},
				{"p / ←", "Previous sample"},
				{"k / ↑", "Scroll pane up"},
				{"j / ↓", "Scroll pane down"},
			},
		},
		{
			Title: "Review",
			Items: []HelpItem{
				{"c / Enter", "Confirm the correction and compute the diff"},
				{"x", "Discard the sample from the dataset"},
				{"i", "Edit the instruction text"},
				{"e / o", "Edit the output text"},
			},
		},
		{
			Title: "Editing",
			Items: []HelpItem{
				{"C-s", "Save the edit"},
				{"Esc", "Cancel without saving"},
			},
		},
		{
			Title: "View",
			Items: []HelpItem{
				{"t", "Show or hide the chunk pane"},
				{"m", "Toggle markdown preview"},
				{"E", "Export corrected samples"},
			},
		},
		{
			Title: "Session",
			Items: []HelpItem{
				{"?", "Toggle this help"},
				{"q / C-c", "Quit (progress is saved)"},
			},
		},
	}
}
