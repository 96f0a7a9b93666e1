// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diff

import (
	"errors"
	"strings"
)

// ErrTagImbalance is returned when a tagged string's markers cannot be
// repaired into a balanced, non-interleaved structure without losing
// content. For well-formed edit scripts this never happens; seeing it
// means the engine itself produced a defective string.
var ErrTagImbalance = errors.New("diff tags cannot be balanced without losing content")

// =============================================================================
// TAG VALIDATOR / REPAIRER
// =============================================================================

// ValidateTags reports whether every false and true marker in text has a
// matching closing marker of the same kind.
func ValidateTags(text string) bool {
	return strings.Count(text, OpenFalse) == strings.Count(text, CloseFalse) &&
		strings.Count(text, OpenTrue) == strings.Count(text, CloseTrue)
}

// ValidateAndRepair verifies marker balance and non-interleaving on a
// tagged string, repairing what it can:
//
//   - An interleaved pair (a marker opening while the other kind is
//     still open) is re-ordered: the outer span is closed where the
//     inner one opens, and the outer kind's dangling close marker is
//     absorbed. "<false>A<true>B</false>C</true>" becomes
//     "<false>A</false><true>BC</true>". Literal content and its order
//     are never touched, only marker boundaries move.
//   - A marker still open at end of string is auto-closed.
//
// A closing marker with no corresponding opening, or interleaving deeper
// than one pending kind, cannot be repaired without dropping content and
// yields ErrTagImbalance.
func ValidateAndRepair(text string) (string, error) {
	var (
		spans    []Span
		buf      strings.Builder
		open     = SpanPlain // currently open marker kind (SpanPlain = none)
		deferred = SpanPlain // kind closed early whose close marker is still owed
	)

	flush := func(kind SpanKind) {
		if buf.Len() > 0 {
			spans = append(spans, Span{Kind: kind, Text: buf.String()})
			buf.Reset()
		}
	}

	for i := 0; i < len(text); {
		kind, isClose, width := matchMarker(text[i:])
		if width == 0 {
			buf.WriteByte(text[i])
			i++
			continue
		}
		i += width

		switch {
		case !isClose && open == SpanPlain:
			flush(SpanPlain)
			open = kind

		case !isClose && open == kind:
			// Reopening the open kind: continue the current span

		case !isClose:
			// Interleaving: close the open span here, remember that its
			// close marker is still owed, and switch to the new kind
			if deferred != SpanPlain {
				return "", ErrTagImbalance
			}
			flush(open)
			deferred = open
			open = kind

		case open == kind:
			flush(kind)
			open = SpanPlain

		case deferred == kind:
			// The owed close marker of an early-closed span: absorb it,
			// the current span keeps accumulating
			deferred = SpanPlain

		default:
			// Closing marker with no opening to match
			return "", ErrTagImbalance
		}
	}

	// Auto-close whatever is still open at end of string
	flush(open)

	return renderSpans(coalesceSpans(spans)), nil
}
