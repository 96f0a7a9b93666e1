// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render turns tagged diff strings into styled output.
//
// Two targets are supported: HTML spans for the standalone review page
// (removed text struck through in red, added text in green, formulas
// left intact for KaTeX), and ANSI-styled text for the TUI.
package render

import (
	"html"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/corrbench/internal/diff"
)

// =============================================================================
// HTML RENDERING
// =============================================================================

// KaTeXHeader is the CDN header block the HTML export embeds so
// $...$ and $$...$$ spans render as math notation in the browser.
const KaTeXHeader = `    <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/katex@0.16.9/dist/katex.min.css">
    <script defer src="https://cdn.jsdelivr.net/npm/katex@0.16.9/dist/katex.min.js"></script>
    <script defer src="https://cdn.jsdelivr.net/npm/katex@0.16.9/dist/contrib/auto-render.min.js"
            onload="renderMathInElement(document.body, {delimiters: [
                {left: '$$', right: '$$', display: true},
                {left: '$', right: '$', display: false}
            ]});"></script>
`

// HTML renders a tagged string as HTML: false spans become red
// strikethrough, true spans become green, plain text is escaped
// untouched. Dollar-delimited formulas survive escaping verbatim, so
// the KaTeX auto-renderer picks them up client-side.
func HTML(tagged string) string {
	var sb strings.Builder
	for _, sp := range diff.ParseSpans(tagged) {
		text := escapeKeepingBreaks(sp.Text)
		switch sp.Kind {
		case diff.SpanFalse:
			sb.WriteString(`<span class="diff-del">`)
			sb.WriteString(text)
			sb.WriteString(`</span>`)
		case diff.SpanTrue:
			sb.WriteString(`<span class="diff-add">`)
			sb.WriteString(text)
			sb.WriteString(`</span>`)
		default:
			sb.WriteString(text)
		}
	}
	return sb.String()
}

// escapeKeepingBreaks escapes HTML metacharacters and converts newlines
// to <br> so multi-line answers keep their shape.
func escapeKeepingBreaks(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "\n", "<br>\n")
}

// =============================================================================
// TERMINAL RENDERING
// =============================================================================

var (
	delStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}).
			Strikethrough(true)
	addStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"})
)

// Terminal renders a tagged string with ANSI styling: removed text
// struck through in red, added text in green. When the terminal does
// not support color the markers degrade to [-...-] and [+...+] so the
// diff stays readable in logs and pipes.
func Terminal(tagged string) string {
	plainFallback := termenv.EnvColorProfile() == termenv.Ascii

	var sb strings.Builder
	for _, sp := range diff.ParseSpans(tagged) {
		switch sp.Kind {
		case diff.SpanFalse:
			if plainFallback {
				sb.WriteString("[-")
				sb.WriteString(sp.Text)
				sb.WriteString("-]")
			} else {
				sb.WriteString(delStyle.Render(sp.Text))
			}
		case diff.SpanTrue:
			if plainFallback {
				sb.WriteString("[+")
				sb.WriteString(sp.Text)
				sb.WriteString("+]")
			} else {
				sb.WriteString(addStyle.Render(sp.Text))
			}
		default:
			sb.WriteString(sp.Text)
		}
	}
	return sb.String()
}
