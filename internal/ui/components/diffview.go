// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the corrbench TUI.
package components

import (
	"strconv"
	"strings"

	"github.com/jeranaias/corrbench/internal/diff"
	"github.com/jeranaias/corrbench/internal/ui/styles"
)

// =============================================================================
// DIFF VIEW
// =============================================================================

// DiffView renders tagged diff text with theme styling for display
// inside a review pane.
type DiffView struct {
	theme *styles.Theme
}

// NewDiffView creates a diff view bound to a theme.
func NewDiffView(theme *styles.Theme) *DiffView {
	return &DiffView{theme: theme}
}

// Render converts tagged text into styled terminal output. Removed
// runs get strikethrough Rose, inserted runs bold Emerald, everything
// else passes through with the body style.
func (dv *DiffView) Render(tagged string) string {
	spans := diff.ParseSpans(tagged)

	var b strings.Builder
	for _, span := range spans {
		switch span.Kind {
		case diff.SpanFalse:
			b.WriteString(dv.theme.DiffDel.Render(span.Text))
		case diff.SpanTrue:
			b.WriteString(dv.theme.DiffAdd.Render(span.Text))
		default:
			b.WriteString(dv.theme.DiffPlain.Render(span.Text))
		}
	}
	return b.String()
}

// Summary returns a short "+N -M" fragment for a tagged diff, or ""
// when nothing changed.
func (dv *DiffView) Summary(tagged string) string {
	stats := diff.ComputeStats(tagged)
	if !stats.HasChanges() {
		return ""
	}

	var parts []string
	if stats.Insertions > 0 {
		parts = append(parts, dv.theme.DiffAdd.Render("+"+strconv.Itoa(stats.Insertions)))
	}
	if stats.Deletions > 0 {
		parts = append(parts, dv.theme.DiffDel.Render("-"+strconv.Itoa(stats.Deletions)))
	}
	return strings.Join(parts, " ")
}
