// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff computes reviewable tagged diffs between an original text
// and its human-corrected version.
//
// The engine is a linear pipeline: semantic tokenization, LCS-based
// alignment, tag synthesis, tag merging, and tag balance validation.
// Removed content is wrapped in <false>...</false>, added content in
// <true>...</true>; everything else is emitted untouched.
//
// # Key Types
//
//   - Token / TokenKind: minimal semantic units (CJK character, word,
//     number with unit, formula span, whitespace run, punctuation)
//   - Opcode / OpKind: typed equal/delete/insert/replace region pairs
//     over token indices
//   - Span / SpanKind: a contiguous piece of tagged output
//
// # Usage
//
// Compute a tagged diff between two strings:
//
//	tagged, err := diff.Compute("证据水平是A。", "证据水平是B。")
//	// tagged == "证据水平是<false>A</false><true>B</true>。"
//
// Recover either side from a tagged diff:
//
//	original := diff.RestoreOriginal(tagged)
//	corrected := diff.RestoreCorrected(tagged)
//
// The engine holds no state and performs no I/O; independent calls may
// run concurrently without coordination.
package diff
