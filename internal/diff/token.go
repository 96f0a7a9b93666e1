// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diff

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// =============================================================================
// TOKEN TYPES
// =============================================================================

// TokenKind classifies a token for alignment purposes.
type TokenKind int

const (
	// KindWord is a run of letters with embedded digits/hyphens/apostrophes
	KindWord TokenKind = iota
	// KindCJK is a single CJK ideograph or kana/hangul character
	KindCJK
	// KindNumber is a digit run with optional decimal point and unit suffix
	KindNumber
	// KindFormula is a $...$ or $$...$$ delimited math span
	KindFormula
	// KindSpace is a run of whitespace characters
	KindSpace
	// KindPunct is a single punctuation or symbol character
	KindPunct
)

// String returns the string representation of a token kind.
func (k TokenKind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindCJK:
		return "cjk"
	case KindNumber:
		return "number"
	case KindFormula:
		return "formula"
	case KindSpace:
		return "space"
	case KindPunct:
		return "punct"
	default:
		return "unknown"
	}
}

// Token is an immutable slice of source text with its kind. Tokens never
// overlap and concatenating a token sequence in order reproduces the
// source string exactly.
type Token struct {
	Kind TokenKind
	Text string
}

// Join concatenates token texts in order. The result is byte-identical to
// the string the tokens were produced from.
func Join(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(t.Text)
	}
	return sb.String()
}

// =============================================================================
// TOKENIZER
// =============================================================================

// Tokenize splits text into semantic tokens by longest-match precedence
// at each scan position: formula spans, CJK characters, words, numbers
// with units, whitespace runs, then single punctuation characters.
//
// Unterminated $ / $$ delimiters fall through to single-character
// punctuation rather than being dropped, so the lossless re-join
// invariant holds for every input.
func Tokenize(text string) []Token {
	var tokens []Token

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])

		switch {
		case r == '$':
			if end, ok := scanFormula(text, i); ok {
				tokens = append(tokens, Token{Kind: KindFormula, Text: text[i:end]})
				i = end
				continue
			}
			// Unterminated delimiter: plain punctuation
			tokens = append(tokens, Token{Kind: KindPunct, Text: text[i : i+size]})
			i += size

		case isCJK(r):
			// One token per character: each ideograph is its own unit
			tokens = append(tokens, Token{Kind: KindCJK, Text: text[i : i+size]})
			i += size

		case unicode.IsLetter(r):
			end := scanWord(text, i+size)
			tokens = append(tokens, Token{Kind: KindWord, Text: text[i:end]})
			i = end

		case unicode.IsDigit(r):
			end := scanNumber(text, i+size)
			tokens = append(tokens, Token{Kind: KindNumber, Text: text[i:end]})
			i = end

		case unicode.IsSpace(r):
			end := i + size
			for end < len(text) {
				r2, s2 := utf8.DecodeRuneInString(text[end:])
				if !unicode.IsSpace(r2) {
					break
				}
				end += s2
			}
			tokens = append(tokens, Token{Kind: KindSpace, Text: text[i:end]})
			i = end

		default:
			tokens = append(tokens, Token{Kind: KindPunct, Text: text[i : i+size]})
			i += size
		}
	}

	return tokens
}

// scanFormula returns the end offset of a formula span starting at the
// '$' at offset start, or ok=false when no matching closing delimiter
// exists before the end of the line.
func scanFormula(text string, start int) (end int, ok bool) {
	display := strings.HasPrefix(text[start:], "$$")
	delim := "$"
	body := start + 1
	if display {
		delim = "$$"
		body = start + 2
	}

	line := text[body:]
	if nl := strings.IndexByte(line, '\n'); nl >= 0 {
		line = line[:nl]
	}

	idx := strings.Index(line, delim)
	if idx < 0 {
		return 0, false
	}
	return body + idx + len(delim), true
}

// scanWord consumes word-continuation characters after an initial letter:
// non-CJK letters, digits, hyphens and apostrophes. Keeps tokens like
// "machine-learning" and "don't" atomic.
func scanWord(text string, pos int) int {
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if r == '-' || r == '\'' || unicode.IsDigit(r) || (unicode.IsLetter(r) && !isCJK(r)) {
			pos += size
			continue
		}
		break
	}
	return pos
}

// scanNumber consumes the remainder of a number token after its first
// digit: more digits, at most one decimal point (only when followed by a
// digit), then an optional unit suffix of letters and/or percent signs.
// Examples kept atomic: "24h", "3.14cm", "95.6%".
func scanNumber(text string, pos int) int {
	sawDot := false
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if unicode.IsDigit(r) {
			pos += size
			continue
		}
		if r == '.' && !sawDot {
			nr, _ := utf8.DecodeRuneInString(text[pos+size:])
			if unicode.IsDigit(nr) {
				sawDot = true
				pos += size
				continue
			}
		}
		break
	}
	// Unit suffix
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if r == '%' || (unicode.IsLetter(r) && !isCJK(r)) {
			pos += size
			continue
		}
		break
	}
	return pos
}

// cjkRanges covers Han ideographs plus kana and hangul. Each character
// in these scripts is a standalone semantic unit for alignment.
var cjkRanges = []*unicode.RangeTable{
	unicode.Han,
	unicode.Hiragana,
	unicode.Katakana,
	unicode.Hangul,
}

// isCJK reports whether r belongs to a CJK script.
func isCJK(r rune) bool {
	for _, rt := range cjkRanges {
		if unicode.Is(rt, r) {
			return true
		}
	}
	return false
}
