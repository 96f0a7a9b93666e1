// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package review implements the full-screen sample review TUI.
package review

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/corrbench/internal/diff"
	"github.com/jeranaias/corrbench/internal/export"
	"github.com/jeranaias/corrbench/internal/sample"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update handles all incoming messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateEditing:
			return m.updateEditing(msg)
		case StateHelp:
			return m.updateHelp(msg)
		default:
			return m.updateViewing(msg)
		}

	case sampleSavedMsg:
		if msg.err != nil {
			return m, m.setStatus("save failed: " + msg.err.Error())
		}
		return m, nil

	case sourceChangedMsg:
		cmd := m.reloadSource()
		return m, tea.Batch(cmd, watchCmd(m.watcher))

	case watcherClosedMsg:
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			return m, m.setStatus("export failed: " + msg.err.Error())
		}
		return m, m.setStatus(fmt.Sprintf("exported %d samples to %s", msg.samples, msg.path))

	case clearStatusMsg:
		// Only clear if no newer message replaced this one.
		if msg.seq == m.statusSeq {
			m.statusMsg = ""
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, m.setStatus(msg.err.Error())
	}

	return m, nil
}

// =============================================================================
// VIEWING MODE
// =============================================================================

func (m *Model) updateViewing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.quitting = true
		return m, tea.Sequence(
			saveSessionCmd(m.store, m.source, m.cursor),
			tea.Quit,
		)

	case key.Matches(msg, m.keyMap.Help):
		m.state = StateHelp
		return m, nil

	case key.Matches(msg, m.keyMap.Next):
		return m, m.move(1)

	case key.Matches(msg, m.keyMap.Prev):
		return m, m.move(-1)

	case key.Matches(msg, m.keyMap.Confirm):
		return m, m.confirm()

	case key.Matches(msg, m.keyMap.Discard):
		return m, m.discard()

	case key.Matches(msg, m.keyMap.EditInstruction):
		m.openEditor(editInstruction)
		return m, nil

	case key.Matches(msg, m.keyMap.EditOutput):
		m.openEditor(editOutput)
		return m, nil

	case key.Matches(msg, m.keyMap.ToggleChunk):
		m.showChunk = !m.showChunk
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, m.keyMap.TogglePreview):
		m.markdownPreview = !m.markdownPreview
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, m.keyMap.Export):
		return m, m.export()

	case key.Matches(msg, m.keyMap.ScrollUp):
		m.viewport.LineUp(1)
		return m, nil

	case key.Matches(msg, m.keyMap.ScrollDown):
		m.viewport.LineDown(1)
		return m, nil
	}

	return m, nil
}

// move shifts the cursor, persisting the position and loading the
// next batch when the read-ahead margin is reached.
func (m *Model) move(delta int) tea.Cmd {
	next := m.cursor + delta
	if next < 0 {
		return m.setStatus("at the first sample")
	}

	if next >= m.loader.Loaded() {
		loaded, err := m.loadBatch()
		if err != nil {
			return m.setStatus("load failed: " + err.Error())
		}
		if !loaded || next >= m.loader.Loaded() {
			return m.setStatus("at the last sample")
		}
	}

	m.cursor = next
	m.refreshViewport()
	return saveSessionCmd(m.store, m.source, m.cursor)
}

// confirm computes the tagged diffs for the current sample, marks it
// corrected, and persists it.
func (m *Model) confirm() tea.Cmd {
	smp := m.current()
	if smp == nil {
		return nil
	}

	instr := smp.CurrentInstruction()
	out := smp.CurrentOutput()
	if err := sample.ValidateContent(out); err != nil {
		return m.setStatus("cannot confirm: " + err.Error())
	}

	instrDiff, err := diff.Compute(smp.OriginalInstruction, instr)
	if err != nil {
		return m.setStatus("diff failed: " + err.Error())
	}
	outDiff, err := diff.Compute(smp.OriginalOutput, out)
	if err != nil {
		return m.setStatus("diff failed: " + err.Error())
	}

	smp.FinalInstruction = instr
	smp.FinalOutput = out
	smp.InstructionDiff = instrDiff
	smp.OutputDiff = outDiff
	smp.Status = sample.StatusCorrected

	m.refreshViewport()
	return tea.Batch(
		saveSampleCmd(m.store, m.source, smp),
		m.setStatus("confirmed"),
	)
}

// discard rejects the current sample from the dataset.
func (m *Model) discard() tea.Cmd {
	smp := m.current()
	if smp == nil {
		return nil
	}

	smp.Status = sample.StatusDiscarded
	m.refreshViewport()
	return tea.Batch(
		saveSampleCmd(m.store, m.source, smp),
		m.setStatus("discarded"),
	)
}

// export writes all corrected samples in the configured format.
func (m *Model) export() tea.Cmd {
	format, err := export.ParseFormat(m.cfg.Export.Format)
	if err != nil {
		return m.setStatus(err.Error())
	}
	opts := &export.Options{
		OutputDir:       m.cfg.Export.OutputDir,
		Lines:           m.cfg.Export.Lines,
		IncludeMetadata: true,
		Theme:           m.cfg.UI.Theme,
	}
	return tea.Batch(
		exportCmd(m.source, m.loader.Samples(), format, opts),
		m.setStatus("exporting..."),
	)
}

// reloadSource re-reads the CSV after an on-disk change. Review state
// for already-seen rows is restored from the database.
func (m *Model) reloadSource() tea.Cmd {
	if err := m.loader.Reload(); err != nil {
		return m.setStatus("reload failed: " + err.Error())
	}
	for _, s := range m.loader.Samples() {
		if _, err := m.store.LoadInto(m.source, s); err != nil {
			return m.setStatus("reload failed: " + err.Error())
		}
	}
	if m.cursor >= m.loader.Loaded() {
		m.cursor = m.loader.Loaded() - 1
		if m.cursor < 0 {
			m.cursor = 0
		}
	}
	m.refreshViewport()
	return m.setStatus("source file reloaded")
}

// =============================================================================
// EDITING MODE
// =============================================================================

// openEditor switches to the editor, preloading the target text.
func (m *Model) openEditor(target editTarget) {
	smp := m.current()
	if smp == nil {
		return
	}

	m.target = target
	if target == editInstruction {
		m.editor.SetValue(smp.CurrentInstruction())
	} else {
		m.editor.SetValue(smp.CurrentOutput())
	}
	m.editor.SetWidth(m.contentWidth())
	m.editor.SetHeight(m.contentHeight() - 2)
	m.editor.Focus()
	m.state = StateEditing
}

func (m *Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Save):
		return m, m.saveEdit()

	case key.Matches(msg, m.keyMap.Cancel):
		m.editor.Blur()
		m.state = StateViewing
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// saveEdit stores the editor content on the sample. A confirmed sample
// drops back to unprocessed, since its diff no longer reflects the text.
func (m *Model) saveEdit() tea.Cmd {
	smp := m.current()
	if smp == nil {
		m.state = StateViewing
		return nil
	}

	text := m.editor.Value()
	if err := sample.ValidateContent(text); err != nil {
		return m.setStatus("not saved: " + err.Error())
	}

	if m.target == editInstruction {
		smp.EditedInstruction = text
	} else {
		smp.EditedOutput = text
	}
	if smp.Status == sample.StatusCorrected {
		smp.Status = sample.StatusUnprocessed
		smp.FinalInstruction = ""
		smp.FinalOutput = ""
		smp.InstructionDiff = ""
		smp.OutputDiff = ""
	}

	m.editor.Blur()
	m.state = StateViewing
	m.refreshViewport()
	return tea.Batch(
		saveSampleCmd(m.store, m.source, smp),
		m.setStatus("edit saved"),
	)
}

// =============================================================================
// HELP MODE
// =============================================================================

func (m *Model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Help), key.Matches(msg, m.keyMap.Cancel):
		m.state = StateViewing
		return m, nil
	case key.Matches(msg, m.keyMap.Quit):
		m.quitting = true
		return m, tea.Sequence(
			saveSessionCmd(m.store, m.source, m.cursor),
			tea.Quit,
		)
	}
	return m, nil
}
