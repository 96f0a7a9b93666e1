// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/jeranaias/corrbench/internal/render"
	"github.com/jeranaias/corrbench/internal/sample"
)

// =============================================================================
// HTML EXPORTER
// =============================================================================

// HTMLExporter writes a standalone review page: every confirmed sample
// with its tagged diffs styled for reading, formulas rendered by KaTeX.
type HTMLExporter struct {
	options *Options
}

// NewHTMLExporter creates a new HTML exporter.
func NewHTMLExporter(opts *Options) *HTMLExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &HTMLExporter{options: opts}
}

// FileExtension returns the file extension for HTML.
func (e *HTMLExporter) FileExtension() string {
	return ".html"
}

// MimeType returns the MIME type for HTML.
func (e *HTMLExporter) MimeType() string {
	return "text/html"
}

// Export converts a batch to a self-contained HTML page.
func (e *HTMLExporter) Export(batch *Batch) ([]byte, error) {
	if batch == nil || len(batch.Samples) == 0 {
		return nil, ErrNothingToExport
	}

	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html lang=\"zh\">\n")
	sb.WriteString("<head>\n")
	sb.WriteString("    <meta charset=\"UTF-8\">\n")
	sb.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	sb.WriteString(fmt.Sprintf("    <title>Review: %s</title>\n", html.EscapeString(batch.Source)))
	sb.WriteString("    <meta name=\"generator\" content=\"corrbench\">\n")
	sb.WriteString(fmt.Sprintf("    <meta name=\"date\" content=\"%s\">\n", batch.CreatedAt.Format(time.RFC3339)))
	sb.WriteString(render.KaTeXHeader)
	sb.WriteString(e.getCSS())
	sb.WriteString("</head>\n")
	sb.WriteString(fmt.Sprintf("<body class=\"%s-theme\">\n", e.options.Theme))
	sb.WriteString("    <div class=\"container\">\n")

	if e.options.IncludeMetadata {
		sb.WriteString(e.renderHeader(batch))
	}

	sb.WriteString("        <main class=\"samples\">\n")
	for _, s := range batch.Samples {
		sb.WriteString(e.renderSample(s))
	}
	sb.WriteString("        </main>\n")

	sb.WriteString("        <footer class=\"footer\">\n")
	sb.WriteString(fmt.Sprintf("            <p>Exported by <strong>corrbench</strong> on %s</p>\n",
		time.Now().Format("January 2, 2006 at 3:04 PM")))
	sb.WriteString("        </footer>\n")
	sb.WriteString("    </div>\n")
	sb.WriteString("</body>\n")
	sb.WriteString("</html>\n")

	return []byte(sb.String()), nil
}

// renderHeader renders the page header with batch metadata.
func (e *HTMLExporter) renderHeader(batch *Batch) string {
	var sb strings.Builder
	sb.WriteString("        <header class=\"header\">\n")
	sb.WriteString(fmt.Sprintf("            <h1>%s</h1>\n", html.EscapeString(batch.Source)))
	sb.WriteString("            <div class=\"metadata\">\n")
	sb.WriteString(fmt.Sprintf("                <span class=\"meta-item\"><strong>Batch:</strong> %s</span>\n", html.EscapeString(batch.ID)))
	sb.WriteString(fmt.Sprintf("                <span class=\"meta-item\"><strong>Created:</strong> %s</span>\n", batch.CreatedAt.Format("2006-01-02 15:04")))
	sb.WriteString(fmt.Sprintf("                <span class=\"meta-item\"><strong>Samples:</strong> %d</span>\n", len(batch.Samples)))
	sb.WriteString("            </div>\n")
	sb.WriteString("        </header>\n")
	return sb.String()
}

// renderSample renders one sample card with its diffs. The tagged diff
// is preferred; when a field was never diffed the confirmed text is
// shown plain.
func (e *HTMLExporter) renderSample(s *sample.Sample) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("            <article class=\"sample\" id=\"sample-%s\">\n", html.EscapeString(s.ID)))
	sb.WriteString(fmt.Sprintf("                <h2>#%s <span class=\"status status-%s\">%s</span></h2>\n",
		html.EscapeString(s.ID), s.Status, s.Status))

	sb.WriteString("                <section class=\"field\">\n")
	sb.WriteString("                    <h3>Instruction</h3>\n")
	sb.WriteString("                    <div class=\"content\">")
	sb.WriteString(e.fieldHTML(s.InstructionDiff, s.CurrentInstruction()))
	sb.WriteString("</div>\n")
	sb.WriteString("                </section>\n")

	sb.WriteString("                <section class=\"field\">\n")
	sb.WriteString("                    <h3>Output</h3>\n")
	sb.WriteString("                    <div class=\"content\">")
	sb.WriteString(e.fieldHTML(s.OutputDiff, s.CurrentOutput()))
	sb.WriteString("</div>\n")
	sb.WriteString("                </section>\n")

	if s.Chunk != "" {
		sb.WriteString("                <details class=\"chunk\">\n")
		sb.WriteString("                    <summary>Source chunk</summary>\n")
		sb.WriteString("                    <div class=\"content\">")
		sb.WriteString(render.HTML(s.Chunk))
		sb.WriteString("</div>\n")
		sb.WriteString("                </details>\n")
	}

	sb.WriteString("            </article>\n")
	return sb.String()
}

// fieldHTML renders the tagged diff when present, the plain text
// otherwise.
func (e *HTMLExporter) fieldHTML(tagged, plain string) string {
	if tagged != "" {
		return render.HTML(tagged)
	}
	return render.HTML(plain)
}

// getCSS returns the embedded stylesheet.
func (e *HTMLExporter) getCSS() string {
	return `    <style>
        :root { --del: #e11d48; --add: #059669; --border: #e5e5e5; --muted: #6b7280; }
        .dark-theme { --del: #fb7185; --add: #34d399; --border: #313244; --muted: #a6adc8;
                      background: #1e1e2e; color: #cdd6f4; }
        body { font-family: -apple-system, "Segoe UI", "Noto Sans CJK SC", sans-serif;
               margin: 0; line-height: 1.6; }
        .container { max-width: 860px; margin: 0 auto; padding: 2rem 1rem; }
        .header h1 { margin-bottom: 0.25rem; }
        .metadata { color: var(--muted); font-size: 0.9rem; }
        .meta-item { margin-right: 1.25rem; }
        .sample { border: 1px solid var(--border); border-radius: 8px;
                  padding: 1rem 1.25rem; margin: 1.25rem 0; }
        .sample h2 { font-size: 1.05rem; margin: 0 0 0.5rem; }
        .field h3 { font-size: 0.85rem; text-transform: uppercase;
                    color: var(--muted); margin: 0.75rem 0 0.25rem; }
        .status { font-size: 0.75rem; padding: 0.1rem 0.5rem; border-radius: 999px; }
        .status-corrected { background: var(--add); color: white; }
        .status-discarded { background: var(--del); color: white; }
        .diff-del { color: var(--del); text-decoration: line-through; }
        .diff-add { color: var(--add); }
        .chunk summary { cursor: pointer; color: var(--muted); margin-top: 0.75rem; }
        .footer { color: var(--muted); font-size: 0.85rem; text-align: center; margin-top: 2rem; }
    </style>
`
}
