// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the corrbench TUI.
package components

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/corrbench/internal/sample"
	"github.com/jeranaias/corrbench/internal/ui/styles"
	"github.com/jeranaias/corrbench/internal/util"
)

// =============================================================================
// HEADER
// =============================================================================

// Header renders the top line of the review TUI: app name, source
// file, sample position and status badge.
type Header struct {
	theme *styles.Theme
	width int
}

// NewHeader creates a header bound to a theme.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{theme: theme, width: 80}
}

// SetWidth sets the render width.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// Render draws the header for the given position.
func (h *Header) Render(source string, index, total int, status sample.Status, edited bool) string {
	title := h.theme.HeaderTitle.Render("corrbench")

	// Long source names get truncated so the position and badge stay
	// visible. Width-based, so CJK filenames count double.
	base := filepath.Base(source)
	maxSrc := h.width/2 - util.StringWidth("corrbench") - 1
	if maxSrc > 0 && util.StringWidth(base) > maxSrc {
		base = util.TruncateWidth(base, maxSrc)
	}
	src := h.theme.HeaderSource.Render(base)
	pos := h.theme.MutedStyle.Render(fmt.Sprintf("%d/%d", index+1, total))

	badge := h.renderBadge(status, edited)

	left := title + " " + src
	right := pos + " " + badge

	gap := h.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	line := left + util.PadWidth("", gap) + right
	return h.theme.Header.Width(h.width).Render(line)
}

// renderBadge picks the status badge, with an edited marker when the
// sample has unsaved text changes.
func (h *Header) renderBadge(status sample.Status, edited bool) string {
	var badge string
	switch status {
	case sample.StatusCorrected:
		badge = h.theme.BadgeCorrected.Render(styles.StatusIndicators.Corrected + " corrected")
	case sample.StatusDiscarded:
		badge = h.theme.BadgeDiscarded.Render(styles.StatusIndicators.Discarded + " discarded")
	default:
		badge = h.theme.BadgeUnprocessed.Render(styles.StatusIndicators.Unprocessed + " pending")
	}
	if edited {
		badge = h.theme.BadgeEdited.Render(styles.StatusIndicators.Edited) + " " + badge
	}
	return badge
}
