// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diff

import "sort"

// =============================================================================
// OPCODE TYPES
// =============================================================================

// OpKind is the type of an edit operation.
type OpKind int

const (
	// OpEqual covers tokens present in both sequences
	OpEqual OpKind = iota
	// OpDelete covers tokens only in the original sequence
	OpDelete
	// OpInsert covers tokens only in the corrected sequence
	OpInsert
	// OpReplace covers an original range substituted by a corrected range
	OpReplace
)

// String returns the string representation of an opcode kind.
func (k OpKind) String() string {
	switch k {
	case OpEqual:
		return "equal"
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	case OpReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Opcode pairs a half-open original token range [I1,I2) with a corrected
// token range [J1,J2). Aligned opcodes are emitted left to right, without
// gaps or overlaps, covering both token sequences entirely.
type Opcode struct {
	Kind           OpKind
	I1, I2, J1, J2 int
}

// =============================================================================
// ALIGNER
// =============================================================================

// matchBlock is a run of size tokens equal between a[A:] and b[B:].
type matchBlock struct {
	A, B, Size int
}

// span is a rectangle of the alignment problem still to be matched.
type span struct {
	alo, ahi, blo, bhi int
}

// Align computes a minimal edit script between two token sequences.
// Token equality compares both kind and covered text.
//
// Matching follows the longest-leftmost-block policy: within each region
// the longest run of equal tokens wins, ties broken by the earliest
// original position, then the earliest corrected position. Matching
// blocks are found iteratively with an explicit work stack, so deeply
// alternating inputs cannot exhaust goroutine stack space. Consecutive
// opcodes of the same kind are merged before returning, and adjacent
// opcodes are never both equal.
//
// Worst case is O(n*m) time over the token counts.
func Align(a, b []Token) []Opcode {
	blocks := matchingBlocks(a, b)

	var ops []Opcode
	ai, bj := 0, 0
	for _, blk := range blocks {
		switch {
		case ai < blk.A && bj < blk.B:
			ops = append(ops, Opcode{OpReplace, ai, blk.A, bj, blk.B})
		case ai < blk.A:
			ops = append(ops, Opcode{OpDelete, ai, blk.A, bj, blk.B})
		case bj < blk.B:
			ops = append(ops, Opcode{OpInsert, ai, blk.A, bj, blk.B})
		}
		if blk.Size > 0 {
			ops = append(ops, Opcode{OpEqual, blk.A, blk.A + blk.Size, blk.B, blk.B + blk.Size})
		}
		ai, bj = blk.A+blk.Size, blk.B+blk.Size
	}

	return mergeOpcodes(ops)
}

// matchingBlocks returns the non-overlapping matching blocks between a
// and b in ascending order, terminated by a zero-size sentinel at
// (len(a), len(b)).
func matchingBlocks(a, b []Token) []matchBlock {
	// Index of every b token's positions, for O(1) candidate lookup
	b2j := make(map[Token][]int, len(b))
	for j, t := range b {
		b2j[t] = append(b2j[t], j)
	}

	var blocks []matchBlock
	stack := []span{{0, len(a), 0, len(b)}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		m := longestMatch(a, b2j, s)
		if m.Size == 0 {
			continue
		}
		blocks = append(blocks, m)
		stack = append(stack,
			span{s.alo, m.A, s.blo, m.B},
			span{m.A + m.Size, s.ahi, m.B + m.Size, s.bhi},
		)
	}

	sortBlocks(blocks)

	// Coalesce blocks that touch, then close with the sentinel
	merged := blocks[:0]
	for _, blk := range blocks {
		n := len(merged)
		if n > 0 && merged[n-1].A+merged[n-1].Size == blk.A && merged[n-1].B+merged[n-1].Size == blk.B {
			merged[n-1].Size += blk.Size
			continue
		}
		merged = append(merged, blk)
	}
	return append(merged, matchBlock{len(a), len(b), 0})
}

// longestMatch finds the longest run of equal tokens within the given
// region. When several runs share the maximal length, the one starting
// earliest in a wins, then earliest in b.
func longestMatch(a []Token, b2j map[Token][]int, s span) matchBlock {
	best := matchBlock{s.alo, s.blo, 0}

	// j2len[j] is the length of the longest match ending at a[i-1], b[j]
	j2len := make(map[int]int)
	for i := s.alo; i < s.ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < s.blo {
				continue
			}
			if j >= s.bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > best.Size {
				best = matchBlock{i - k + 1, j - k + 1, k}
			}
		}
		j2len = newj2len
	}
	return best
}

// sortBlocks orders matching blocks by original position. Blocks never
// overlap, so comparing the a side is sufficient.
func sortBlocks(blocks []matchBlock) {
	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].A < blocks[j].A
	})
}

// mergeOpcodes coalesces consecutive opcodes of equal kind so every
// returned opcode is maximal.
func mergeOpcodes(ops []Opcode) []Opcode {
	var out []Opcode
	for _, op := range ops {
		n := len(out)
		if n > 0 && out[n-1].Kind == op.Kind && out[n-1].I2 == op.I1 && out[n-1].J2 == op.J1 {
			out[n-1].I2 = op.I2
			out[n-1].J2 = op.J2
			continue
		}
		out = append(out, op)
	}
	return out
}
