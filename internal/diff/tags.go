// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diff

import "strings"

// Diff markers. Removed original content is wrapped in false tags, added
// corrected content in true tags.
const (
	OpenFalse  = "<false>"
	CloseFalse = "</false>"
	OpenTrue   = "<true>"
	CloseTrue  = "</true>"
)

// =============================================================================
// SPAN TYPES
// =============================================================================

// SpanKind classifies a piece of tagged output.
type SpanKind int

const (
	// SpanPlain is unmarked literal text
	SpanPlain SpanKind = iota
	// SpanFalse is removed original text
	SpanFalse
	// SpanTrue is added corrected text
	SpanTrue
)

// Span is a contiguous piece of a tagged string: either plain text or
// text wrapped in exactly one marker kind. Spans never nest.
type Span struct {
	Kind SpanKind
	Text string
}

// renderSpans concatenates spans back into a tagged string, dropping
// empty spans.
func renderSpans(spans []Span) string {
	var sb strings.Builder
	for _, sp := range spans {
		if sp.Text == "" {
			continue
		}
		switch sp.Kind {
		case SpanFalse:
			sb.WriteString(OpenFalse)
			sb.WriteString(sp.Text)
			sb.WriteString(CloseFalse)
		case SpanTrue:
			sb.WriteString(OpenTrue)
			sb.WriteString(sp.Text)
			sb.WriteString(CloseTrue)
		default:
			sb.WriteString(sp.Text)
		}
	}
	return sb.String()
}

// =============================================================================
// TAG SYNTHESIZER
// =============================================================================

// Synthesize renders an edit script into a raw tagged string. Equal
// regions are emitted unmarked, deletions wrapped in false tags,
// insertions in true tags, and replacements as a false span immediately
// followed by a true span. Emission strictly follows opcode order.
func Synthesize(ops []Opcode, original, corrected []Token) string {
	var sb strings.Builder
	for _, op := range ops {
		switch op.Kind {
		case OpEqual:
			sb.WriteString(Join(original[op.I1:op.I2]))
		case OpDelete:
			sb.WriteString(OpenFalse)
			sb.WriteString(Join(original[op.I1:op.I2]))
			sb.WriteString(CloseFalse)
		case OpInsert:
			sb.WriteString(OpenTrue)
			sb.WriteString(Join(corrected[op.J1:op.J2]))
			sb.WriteString(CloseTrue)
		case OpReplace:
			sb.WriteString(OpenFalse)
			sb.WriteString(Join(original[op.I1:op.I2]))
			sb.WriteString(CloseFalse)
			sb.WriteString(OpenTrue)
			sb.WriteString(Join(corrected[op.J1:op.J2]))
			sb.WriteString(CloseTrue)
		}
	}
	return sb.String()
}

// =============================================================================
// TAG MERGER
// =============================================================================

// Merge normalizes a raw tagged string: adjacent spans of the same
// marker kind are coalesced into one, and whitespace-only replacements
// (a false span and its paired true span both containing nothing but
// whitespace) are demoted to unmarked text, keeping the corrected
// whitespace. Merge is idempotent.
func Merge(raw string) string {
	spans := ParseSpans(raw)
	spans = demoteWhitespacePairs(spans)
	spans = coalesceSpans(spans)
	return renderSpans(spans)
}

// ParseSpans splits a tagged string into its spans. The scanner keeps a
// single open-marker state: reopening the kind that is already open
// continues the current span, and any other marker boundary closes it.
// Marker text never appears inside a span's Text.
func ParseSpans(s string) []Span {
	var spans []Span
	open := SpanPlain
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			spans = append(spans, Span{Kind: open, Text: buf.String()})
			buf.Reset()
		}
	}

	for i := 0; i < len(s); {
		kind, isClose, width := matchMarker(s[i:])
		if width == 0 {
			buf.WriteByte(s[i])
			i++
			continue
		}
		i += width
		switch {
		case !isClose && open == kind:
			// Same-kind reopen: keep accumulating into the open span
		case !isClose:
			flush()
			open = kind
		case open == kind:
			flush()
			open = SpanPlain
		default:
			// Stray close: drop the marker, keep the content
			flush()
			open = SpanPlain
		}
	}
	flush()
	return spans
}

// matchMarker reports whether s starts with a diff marker, returning the
// marker's span kind, whether it is a closing marker, and its width in
// bytes (0 when s does not start with a marker).
func matchMarker(s string) (kind SpanKind, isClose bool, width int) {
	switch {
	case strings.HasPrefix(s, OpenFalse):
		return SpanFalse, false, len(OpenFalse)
	case strings.HasPrefix(s, CloseFalse):
		return SpanFalse, true, len(CloseFalse)
	case strings.HasPrefix(s, OpenTrue):
		return SpanTrue, false, len(OpenTrue)
	case strings.HasPrefix(s, CloseTrue):
		return SpanTrue, true, len(CloseTrue)
	default:
		return SpanPlain, false, 0
	}
}

// demoteWhitespacePairs rewrites replacements where both sides are pure
// whitespace into unmarked text. A whitespace-count or whitespace-type
// change is cosmetic noise in review; the corrected side's whitespace is
// kept so the corrected text always survives a round trip.
func demoteWhitespacePairs(spans []Span) []Span {
	out := spans[:0]
	for i := 0; i < len(spans); i++ {
		sp := spans[i]
		if sp.Kind == SpanFalse && i+1 < len(spans) &&
			spans[i+1].Kind == SpanTrue &&
			isWhitespace(sp.Text) && isWhitespace(spans[i+1].Text) {
			out = append(out, Span{Kind: SpanPlain, Text: spans[i+1].Text})
			i++
			continue
		}
		out = append(out, sp)
	}
	return out
}

// coalesceSpans merges textually adjacent spans of the same kind.
func coalesceSpans(spans []Span) []Span {
	var out []Span
	for _, sp := range spans {
		n := len(out)
		if n > 0 && out[n-1].Kind == sp.Kind {
			out[n-1].Text += sp.Text
			continue
		}
		out = append(out, sp)
	}
	return out
}

// isWhitespace reports whether s is non-empty and contains only
// whitespace characters.
func isWhitespace(s string) bool {
	return s != "" && strings.TrimSpace(s) == ""
}
