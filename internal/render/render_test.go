// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"strings"
	"testing"
)

func TestHTML_StylesSpans(t *testing.T) {
	got := HTML("keep <false>old</false><true>new</true>")

	if !strings.Contains(got, `<span class="diff-del">old</span>`) {
		t.Errorf("Missing deletion span in %q", got)
	}
	if !strings.Contains(got, `<span class="diff-add">new</span>`) {
		t.Errorf("Missing addition span in %q", got)
	}
	if !strings.HasPrefix(got, "keep ") {
		t.Errorf("Plain text mangled in %q", got)
	}
}

func TestHTML_EscapesContent(t *testing.T) {
	got := HTML("<false>a < b</false>")
	if strings.Contains(got, "a < b") {
		t.Errorf("Content not escaped: %q", got)
	}
	if !strings.Contains(got, "a &lt; b") {
		t.Errorf("Expected escaped content in %q", got)
	}
}

func TestHTML_PreservesFormulaDelimiters(t *testing.T) {
	got := HTML("$E=mc^2$ stays")
	if !strings.Contains(got, "$E=mc^2$") {
		t.Errorf("Formula delimiters must survive for KaTeX: %q", got)
	}
}

func TestHTML_NewlinesBecomeBreaks(t *testing.T) {
	got := HTML("line1\nline2")
	if !strings.Contains(got, "<br>") {
		t.Errorf("Expected <br> for newline in %q", got)
	}
}

func TestTerminal_KeepsAllContent(t *testing.T) {
	tagged := "keep <false>old</false><true>new</true> tail"
	got := Terminal(tagged)
	for _, want := range []string{"keep", "old", "new", "tail"} {
		if !strings.Contains(got, want) {
			t.Errorf("Terminal render lost %q: %q", want, got)
		}
	}
	if strings.Contains(got, "<false>") || strings.Contains(got, "<true>") {
		t.Errorf("Raw markers leaked into terminal render: %q", got)
	}
}
