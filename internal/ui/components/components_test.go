// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/corrbench/internal/sample"
	"github.com/jeranaias/corrbench/internal/ui/styles"
)

func TestDiffView_Render(t *testing.T) {
	dv := NewDiffView(styles.NewTheme())

	tagged := "hello <false>wrold</false><true>world</true>!"
	got := dv.Render(tagged)

	// Tags must never leak into the rendered output.
	if strings.Contains(got, "<false>") || strings.Contains(got, "<true>") {
		t.Errorf("rendered output contains raw tags: %q", got)
	}
	for _, want := range []string{"hello", "wrold", "world", "!"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered output missing %q: %q", want, got)
		}
	}
}

func TestDiffView_Summary(t *testing.T) {
	dv := NewDiffView(styles.NewTheme())

	if got := dv.Summary("no changes here"); got != "" {
		t.Errorf("Summary of unchanged text = %q, want empty", got)
	}

	got := dv.Summary("<false>a</false><true>b</true>")
	if !strings.Contains(got, "+1") || !strings.Contains(got, "-1") {
		t.Errorf("Summary = %q, want +1 and -1", got)
	}
}

func TestHeader_Render(t *testing.T) {
	h := NewHeader(styles.NewTheme())
	h.SetWidth(100)

	got := h.Render("/data/annotations.csv", 4, 200, sample.StatusCorrected, false)
	if !strings.Contains(got, "annotations.csv") {
		t.Errorf("header missing source name: %q", got)
	}
	if !strings.Contains(got, "5/200") {
		t.Errorf("header missing position: %q", got)
	}
	if !strings.Contains(got, "corrected") {
		t.Errorf("header missing status badge: %q", got)
	}
}

func TestHeader_TruncatesLongSource(t *testing.T) {
	h := NewHeader(styles.NewTheme())
	h.SetWidth(48)

	long := strings.Repeat("annotation-batch-", 5) + "final.csv"
	got := h.Render("/data/"+long, 0, 10, sample.StatusUnprocessed, false)
	if strings.Contains(got, long) {
		t.Errorf("long source name rendered untruncated: %q", got)
	}
	if !strings.Contains(got, "...") {
		t.Errorf("truncated source missing ellipsis: %q", got)
	}
	if !strings.Contains(got, "1/10") {
		t.Errorf("position pushed out by long source: %q", got)
	}
}

func TestStatusBar_Render(t *testing.T) {
	sb := NewStatusBar(styles.NewTheme())
	sb.SetWidth(120)

	got := sb.Render(Progress{
		Total:     200,
		Corrected: 12,
		Discarded: 3,
		Loaded:    50,
	})
	if !strings.Contains(got, "15/200") {
		t.Errorf("status bar missing progress: %q", got)
	}

	// Transient message shows up
	got = sb.Render(Progress{Total: 10, LastMessage: "exported 5 samples"})
	if !strings.Contains(got, "exported 5 samples") {
		t.Errorf("status bar missing message: %q", got)
	}
}

func TestStatusBar_TruncatesLongMessage(t *testing.T) {
	sb := NewStatusBar(styles.NewTheme())
	sb.SetWidth(50)

	long := "reload failed: " + strings.Repeat("x", 80)
	got := sb.Render(Progress{Total: 10, LastMessage: long})
	if strings.Contains(got, long) {
		t.Errorf("long message rendered untruncated: %q", got)
	}
	// The counters survive on the left.
	if !strings.Contains(got, "0/10") {
		t.Errorf("counters pushed out by long message: %q", got)
	}
}
