// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package review implements the full-screen sample review TUI.
package review

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/corrbench/internal/sample"
)

// =============================================================================
// LAYOUT
// =============================================================================

// chrome rows: header, status bar, and pane borders.
const chromeHeight = 4

func (m *Model) contentWidth() int {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) contentHeight() int {
	h := m.height - chromeHeight
	if h < 5 {
		h = 5
	}
	return h
}

// resize propagates a terminal size change to every component.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)
	m.header.SetWidth(width)
	m.statusBar.SetWidth(width)
	m.viewport.Width = m.contentWidth()
	m.viewport.Height = m.contentHeight()
	m.editor.SetWidth(m.contentWidth())
	m.editor.SetHeight(m.contentHeight() - 2)
	m.refreshViewport()
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the full screen for the current state.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	smp := m.current()
	if smp == nil {
		return m.theme.MutedStyle.Render("No samples loaded. Press q to quit.")
	}

	var b strings.Builder
	b.WriteString(m.header.Render(m.source, m.cursor, m.loader.TotalRows(), smp.Status, hasUnsavedEdits(smp)))
	b.WriteString("\n")

	switch m.state {
	case StateEditing:
		b.WriteString(m.renderEditor())
	case StateHelp:
		b.WriteString(m.renderHelp())
	default:
		b.WriteString(m.viewport.View())
	}

	b.WriteString("\n")
	b.WriteString(m.statusBar.Render(m.progress()))
	return b.String()
}

// hasUnsavedEdits reports whether the sample carries edits that are not
// yet confirmed into a diff.
func hasUnsavedEdits(smp *sample.Sample) bool {
	return smp.Status != sample.StatusCorrected &&
		(smp.EditedInstruction != "" || smp.EditedOutput != "")
}

// refreshViewport rebuilds the pane stack for the current sample.
func (m *Model) refreshViewport() {
	smp := m.current()
	if smp == nil {
		m.viewport.SetContent("")
		return
	}

	var b strings.Builder
	b.WriteString(m.renderPane("Instruction", m.fieldView(smp.InstructionDiff, smp.CurrentInstruction())))
	b.WriteString("\n")
	b.WriteString(m.renderPane("Output", m.fieldView(smp.OutputDiff, smp.CurrentOutput())))

	if m.showChunk && smp.Chunk != "" {
		b.WriteString("\n")
		b.WriteString(m.renderPane("Chunk", m.theme.ChunkPane.Render(smp.Chunk)))
	}

	m.viewport.SetContent(b.String())
	m.viewport.GotoTop()
}

// fieldView renders a sample field: the styled diff once one exists,
// otherwise the plain (optionally markdown-rendered) text.
func (m *Model) fieldView(tagged, plain string) string {
	if tagged != "" {
		return m.diffView.Render(tagged)
	}
	if m.markdownPreview && m.markdown != nil {
		if out, err := m.markdown.Render(plain); err == nil {
			return strings.TrimRight(out, "\n")
		}
	}
	return m.theme.PaneContent.Render(plain)
}

// renderPane wraps content with a title and border.
func (m *Model) renderPane(title, content string) string {
	header := m.theme.PaneTitle.Render(title)
	body := lipgloss.NewStyle().Width(m.contentWidth() - 2).Render(content)
	return m.theme.PaneBorder.Width(m.contentWidth()).Render(header + "\n" + body)
}

// renderEditor draws the edit mode screen.
func (m *Model) renderEditor() string {
	title := "Edit Instruction"
	if m.target == editOutput {
		title = "Edit Output"
	}

	var b strings.Builder
	b.WriteString(m.theme.EditorTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(m.editor.View())
	b.WriteString("\n")
	b.WriteString(m.theme.EditorHint.Render("C-s save · Esc cancel"))
	return m.theme.EditorContainer.Width(m.contentWidth()).Render(b.String())
}

// renderHelp draws the help overlay.
func (m *Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.theme.HelpTitle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	for i, section := range GetHelpSections() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.theme.PaneTitle.Render(section.Title))
		b.WriteString("\n")
		for _, item := range section.Items {
			b.WriteString(m.theme.HelpKey.Render(item.Key))
			b.WriteString(m.theme.HelpDesc.Render(item.Desc))
			b.WriteString("\n")
		}
	}

	return m.theme.HelpBox.Render(b.String())
}
