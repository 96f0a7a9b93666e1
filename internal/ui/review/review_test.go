// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package review

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/corrbench/internal/config"
	"github.com/jeranaias/corrbench/internal/data"
	"github.com/jeranaias/corrbench/internal/sample"
	"github.com/jeranaias/corrbench/internal/storage"
)

// newTestModel builds a model over a three-row CSV and a throwaway
// database.
func newTestModel(t *testing.T) *Model {
	t.Helper()
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "samples.csv")
	content := "instruction,output,chunk\n" +
		"q one,a one,c one\n" +
		"q two,a two,c two\n" +
		"q three,a three,c three\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(content), 0o644))

	loader, err := data.NewLoader(csvPath, 50)
	require.NoError(t, err)

	store, err := storage.Open(filepath.Join(dir, "review.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := config.Default()
	cfg.UI.MarkdownPreview = false

	m, err := New(Options{Config: cfg, Loader: loader, Store: store})
	require.NoError(t, err)
	m.resize(100, 40)
	return m
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNew_LoadsFirstBatch(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, 0, m.Cursor())
	require.NotNil(t, m.current())
	assert.Equal(t, "q one", m.current().Instruction)
}

func TestMove_Bounds(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyMsg("n"))
	assert.Equal(t, 1, m.Cursor())

	m.Update(keyMsg("p"))
	assert.Equal(t, 0, m.Cursor())

	// Backing off the first sample stays put
	m.Update(keyMsg("p"))
	assert.Equal(t, 0, m.Cursor())

	// Walking past the last sample stays put
	m.Update(keyMsg("n"))
	m.Update(keyMsg("n"))
	m.Update(keyMsg("n"))
	assert.Equal(t, 2, m.Cursor())
}

func TestConfirm_ComputesDiffAndMarksCorrected(t *testing.T) {
	m := newTestModel(t)

	smp := m.current()
	smp.EditedOutput = "a 1"

	m.Update(keyMsg("c"))

	assert.Equal(t, sample.StatusCorrected, smp.Status)
	assert.Equal(t, "a 1", smp.FinalOutput)
	assert.Contains(t, smp.OutputDiff, "<false>")
	assert.Contains(t, smp.OutputDiff, "<true>")
	// Instruction untouched: diff must be tag-free
	assert.Equal(t, "q one", smp.InstructionDiff)
}

func TestDiscard(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyMsg("x"))
	assert.Equal(t, sample.StatusDiscarded, m.current().Status)
}

func TestEditSaveInvalidatesConfirmation(t *testing.T) {
	m := newTestModel(t)
	smp := m.current()

	// Confirm first
	m.Update(keyMsg("c"))
	require.Equal(t, sample.StatusCorrected, smp.Status)

	// Open the output editor, change the text, save
	m.Update(keyMsg("e"))
	require.Equal(t, StateEditing, m.state)
	m.editor.SetValue("a different answer")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, StateViewing, m.state)
	assert.Equal(t, sample.StatusUnprocessed, smp.Status)
	assert.Empty(t, smp.OutputDiff)
	assert.Equal(t, "a different answer", smp.EditedOutput)
}

func TestEditCancelKeepsText(t *testing.T) {
	m := newTestModel(t)
	smp := m.current()

	m.Update(keyMsg("e"))
	m.editor.SetValue("discarded edit")
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, StateViewing, m.state)
	assert.Empty(t, smp.EditedOutput)
}

func TestEditRejectsEmptyText(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyMsg("e"))
	m.editor.SetValue("   ")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	// Editor stays open and nothing was saved
	assert.Equal(t, StateEditing, m.state)
	assert.Empty(t, m.current().EditedOutput)
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyMsg("?"))
	assert.Equal(t, StateHelp, m.state)

	view := m.View()
	assert.Contains(t, view, "Keyboard Shortcuts")

	m.Update(keyMsg("?"))
	assert.Equal(t, StateViewing, m.state)
}

func TestView_ShowsSampleText(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	assert.Contains(t, view, "q one")
	assert.Contains(t, view, "a one")
	assert.Contains(t, view, "samples.csv")
	// Raw tags must not appear even after confirmation
	m.current().EditedOutput = "a changed"
	m.Update(keyMsg("c"))
	view = m.View()
	assert.False(t, strings.Contains(view, "<false>"), "raw tags leaked into view")
}

func TestChunkToggle(t *testing.T) {
	m := newTestModel(t)

	assert.Contains(t, m.View(), "c one")
	m.Update(keyMsg("t"))
	assert.NotContains(t, m.View(), "c one")
}
