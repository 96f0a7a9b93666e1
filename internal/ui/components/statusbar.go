// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the corrbench TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/corrbench/internal/ui/styles"
	"github.com/jeranaias/corrbench/internal/util"
)

// =============================================================================
// STATUS BAR
// =============================================================================

// Progress is the slice of review state the status bar displays.
type Progress struct {
	Total       int
	Corrected   int
	Discarded   int
	Loaded      int
	LastMessage string
}

// StatusBar renders the bottom line of the review TUI: progress
// counters, a transient message slot, and the key hint strip.
type StatusBar struct {
	theme *styles.Theme
	width int
}

// NewStatusBar creates a status bar bound to a theme.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{theme: theme, width: 80}
}

// SetWidth sets the render width.
func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

// Render draws the status bar.
func (sb *StatusBar) Render(p Progress) string {
	counts := sb.renderCounts(p)

	var middle string
	if p.LastMessage != "" {
		msg := p.LastMessage
		maxMsg := sb.width - lipgloss.Width(counts) - 4
		if maxMsg > 0 && util.StringWidth(msg) > maxMsg {
			msg = util.TruncateWidth(msg, maxMsg)
		}
		middle = sb.theme.MutedStyle.Render(msg)
	}

	hints := sb.renderHints()

	gap1 := sb.width - lipgloss.Width(counts) - lipgloss.Width(middle) - lipgloss.Width(hints) - 4
	if gap1 < 1 {
		// Narrow terminal: drop the hints before the counters.
		hints = ""
		gap1 = sb.width - lipgloss.Width(counts) - lipgloss.Width(middle) - 2
		if gap1 < 1 {
			gap1 = 1
		}
	}

	line := counts + strings.Repeat(" ", gap1) + middle
	if hints != "" {
		line += "  " + hints
	}
	return sb.theme.StatusBar.Width(sb.width).Render(line)
}

// renderCounts renders "12✓ 3✗ of 200" style progress counters.
func (sb *StatusBar) renderCounts(p Progress) string {
	done := p.Corrected + p.Discarded
	var pct float64
	if p.Total > 0 {
		pct = float64(done) / float64(p.Total) * 100
	}

	corrected := sb.theme.SuccessStyle.Render(fmt.Sprintf("%d", p.Corrected))
	discarded := sb.theme.ErrorStyle.Render(fmt.Sprintf("%d", p.Discarded))
	return fmt.Sprintf("%s ok %s drop %s",
		corrected,
		discarded,
		sb.theme.StatusCount.Render(fmt.Sprintf("%d/%d (%.0f%%)", done, p.Total, pct)),
	)
}

// renderHints renders the abbreviated key strip.
func (sb *StatusBar) renderHints() string {
	pairs := []struct{ key, desc string }{
		{"c", "confirm"},
		{"x", "discard"},
		{"e", "edit"},
		{"?", "help"},
	}
	var parts []string
	for _, pair := range pairs {
		parts = append(parts,
			sb.theme.ShortcutKey.Render(pair.key)+sb.theme.ShortcutDesc.Render(":"+pair.desc))
	}
	return strings.Join(parts, " ")
}
