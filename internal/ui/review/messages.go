// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package review implements the full-screen sample review TUI.
//
// This file defines the Bubble Tea messages and commands that connect
// the model to storage, export and the source file watcher.
package review

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/corrbench/internal/data"
	"github.com/jeranaias/corrbench/internal/export"
	"github.com/jeranaias/corrbench/internal/sample"
	"github.com/jeranaias/corrbench/internal/storage"
)

// =============================================================================
// MESSAGES
// =============================================================================

// sampleSavedMsg reports a completed database write for one sample.
type sampleSavedMsg struct {
	id  string
	err error
}

// sourceChangedMsg reports that the watched CSV changed on disk.
type sourceChangedMsg struct{}

// watcherClosedMsg reports that the watcher channel closed.
type watcherClosedMsg struct{}

// exportDoneMsg reports the outcome of an export triggered from the TUI.
type exportDoneMsg struct {
	path    string
	samples int
	err     error
}

// clearStatusMsg expires the transient status bar message.
type clearStatusMsg struct{ seq int }

// errMsg carries an operation error into the update loop.
type errMsg struct{ err error }

// =============================================================================
// COMMANDS
// =============================================================================

// saveSampleCmd persists one sample's review state.
func saveSampleCmd(store *storage.Store, source string, smp *sample.Sample) tea.Cmd {
	return func() tea.Msg {
		err := store.SaveSample(source, smp)
		return sampleSavedMsg{id: smp.ID, err: err}
	}
}

// saveSessionCmd persists the cursor position for resume.
func saveSessionCmd(store *storage.Store, source string, index int) tea.Cmd {
	return func() tea.Msg {
		if err := store.SaveSession(source, index); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

// watchCmd waits for the next change event from the source watcher.
// It re-arms itself from Update after each event.
func watchCmd(w *data.Watcher) tea.Cmd {
	return func() tea.Msg {
		_, ok := <-w.Events()
		if !ok {
			return watcherClosedMsg{}
		}
		return sourceChangedMsg{}
	}
}

// exportCmd writes the corrected samples in the configured format.
func exportCmd(source string, samples []*sample.Sample, format export.Format, opts *export.Options) tea.Cmd {
	return func() tea.Msg {
		batch, err := export.NewBatch(source, samples)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		exporter, err := export.ForFormat(format, opts)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		path, err := export.ExportToFile(batch, exporter, opts)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path, samples: len(batch.Samples)}
	}
}

// clearStatusAfter expires the status message once seq is stale.
func clearStatusAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
