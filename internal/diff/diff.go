// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diff

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxInputChars is the per-input length ceiling in characters. Inputs
// beyond it are rejected before tokenization begins.
const MaxInputChars = 100000

// ErrInputTooLarge is returned when either input exceeds MaxInputChars.
// The caller can recover by diffing a shorter excerpt.
var ErrInputTooLarge = errors.New("input exceeds 100,000 characters, split the text and retry")

// =============================================================================
// DIFF COMPUTATION
// =============================================================================

// Compute compares an original text with its corrected version and
// returns a tagged string: removed content wrapped in <false>...</false>,
// added content in <true>...</true>, unchanged content as-is.
//
// The output satisfies the round-trip contract: RestoreCorrected on the
// result yields corrected exactly, and RestoreOriginal yields original
// exactly except for regions where a pure whitespace change was demoted
// to unmarked text (see Merge). Identical inputs produce no markers.
//
// Compute is deterministic and stateless; retrying identical inputs can
// never change the outcome.
func Compute(original, corrected string) (string, error) {
	if utf8.RuneCountInString(original) > MaxInputChars ||
		utf8.RuneCountInString(corrected) > MaxInputChars {
		return "", ErrInputTooLarge
	}

	switch {
	case original == "" && corrected == "":
		return "", nil
	case original == "":
		return OpenTrue + corrected + CloseTrue, nil
	case corrected == "":
		return OpenFalse + original + CloseFalse, nil
	}

	a := Tokenize(original)
	b := Tokenize(corrected)
	raw := Synthesize(Align(a, b), a, b)

	return ValidateAndRepair(Merge(raw))
}

// =============================================================================
// TAG STRIPPING
// =============================================================================

// RestoreOriginal reconstructs the original text from a tagged string:
// true spans are removed, false spans are unwrapped.
func RestoreOriginal(tagged string) string {
	var sb strings.Builder
	for _, sp := range ParseSpans(tagged) {
		if sp.Kind != SpanTrue {
			sb.WriteString(sp.Text)
		}
	}
	return sb.String()
}

// RestoreCorrected reconstructs the corrected text from a tagged string:
// false spans are removed, true spans are unwrapped.
func RestoreCorrected(tagged string) string {
	var sb strings.Builder
	for _, sp := range ParseSpans(tagged) {
		if sp.Kind != SpanFalse {
			sb.WriteString(sp.Text)
		}
	}
	return sb.String()
}

// StripTags removes all markers from a tagged string, keeping the
// content of both marker kinds.
func StripTags(tagged string) string {
	var sb strings.Builder
	for _, sp := range ParseSpans(tagged) {
		sb.WriteString(sp.Text)
	}
	return sb.String()
}

// =============================================================================
// DIFF STATS
// =============================================================================

// Stats summarizes a tagged diff for display.
type Stats struct {
	Deletions  int // number of false spans
	Insertions int // number of true spans
}

// HasChanges reports whether the diff contains any marked span.
func (s Stats) HasChanges() bool {
	return s.Deletions > 0 || s.Insertions > 0
}

// ComputeStats counts the marked spans of a tagged string.
func ComputeStats(tagged string) Stats {
	var stats Stats
	for _, sp := range ParseSpans(tagged) {
		switch sp.Kind {
		case SpanFalse:
			stats.Deletions++
		case SpanTrue:
			stats.Insertions++
		}
	}
	return stats
}
