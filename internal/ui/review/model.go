// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package review implements the full-screen sample review TUI.
package review

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/corrbench/internal/config"
	"github.com/jeranaias/corrbench/internal/data"
	"github.com/jeranaias/corrbench/internal/sample"
	"github.com/jeranaias/corrbench/internal/storage"
	"github.com/jeranaias/corrbench/internal/ui/components"
	"github.com/jeranaias/corrbench/internal/ui/styles"
)

// =============================================================================
// REVIEW STATE
// =============================================================================

// State represents the current mode of the review view.
type State int

const (
	StateViewing State = iota // Walking samples
	StateEditing              // Text editor open
	StateHelp                 // Help overlay visible
)

// editTarget identifies which field the editor is bound to.
type editTarget int

const (
	editInstruction editTarget = iota
	editOutput
)

// statusMessageTTL is how long transient status bar messages stay up.
const statusMessageTTL = 4 * time.Second

// =============================================================================
// REVIEW MODEL
// =============================================================================

// Model is the Bubble Tea model for the review view.
type Model struct {
	// State
	state State

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Data
	cfg     *config.Config
	loader  *data.Loader
	store   *storage.Store
	watcher *data.Watcher // nil when watching is disabled
	source  string

	// Position
	cursor int

	// UI components
	viewport  viewport.Model
	editor    textarea.Model
	header    *components.Header
	statusBar *components.StatusBar
	diffView  *components.DiffView
	markdown  *glamour.TermRenderer

	// Editing
	target editTarget

	// View toggles
	showChunk       bool
	markdownPreview bool

	// Key bindings
	keyMap KeyMap

	// Transient status message
	statusMsg string
	statusSeq int

	// Last unrecoverable error
	err error

	quitting bool
}

// Options configures a review session.
type Options struct {
	Config    *config.Config
	Loader    *data.Loader
	Store     *storage.Store
	Watcher   *data.Watcher // optional
	StartFrom int           // resume index, 0 for a fresh session
}

// New creates a review model over a loaded source file.
func New(opts Options) (*Model, error) {
	if opts.Loader == nil {
		return nil, fmt.Errorf("review: loader is required")
	}
	if opts.Store == nil {
		return nil, fmt.Errorf("review: store is required")
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	theme := styles.NewTheme()

	editor := textarea.New()
	editor.CharLimit = 0
	editor.ShowLineNumbers = false

	vp := viewport.New(80, 20)

	var markdown *glamour.TermRenderer
	if cfg.UI.MarkdownPreview {
		style := "dark"
		if cfg.UI.Theme == "light" {
			style = "light"
		}
		// Preview is best-effort; a nil renderer just disables it.
		markdown, _ = glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(76),
		)
	}

	m := &Model{
		state:           StateViewing,
		theme:           theme,
		cfg:             cfg,
		loader:          opts.Loader,
		store:           opts.Store,
		watcher:         opts.Watcher,
		source:          opts.Loader.Path(),
		cursor:          opts.StartFrom,
		viewport:        vp,
		editor:          editor,
		header:          components.NewHeader(theme),
		statusBar:       components.NewStatusBar(theme),
		diffView:        components.NewDiffView(theme),
		markdown:        markdown,
		showChunk:       cfg.UI.ShowChunk,
		markdownPreview: cfg.UI.MarkdownPreview,
		keyMap:          DefaultKeyMap(),
	}

	// Make sure the resume position is inside the loaded window.
	for m.cursor >= m.loader.Loaded() {
		loaded, err := m.loadBatch()
		if err != nil {
			return nil, err
		}
		if !loaded {
			break
		}
	}
	if m.cursor >= m.loader.Loaded() {
		m.cursor = 0
	}
	m.refreshViewport()

	return m, nil
}

// Init starts the watcher listener when one is configured.
func (m *Model) Init() tea.Cmd {
	if m.watcher != nil {
		return watchCmd(m.watcher)
	}
	return nil
}

// Err returns the last unrecoverable error, for reporting after exit.
func (m *Model) Err() error {
	return m.err
}

// Cursor returns the current sample index.
func (m *Model) Cursor() int {
	return m.cursor
}

// loadBatch pulls the next batch from the loader and restores review
// state for its samples from the database. Returns false when the
// source is exhausted.
func (m *Model) loadBatch() (bool, error) {
	batch := m.loader.LoadNextBatch()
	if batch == nil {
		return false, nil
	}
	for _, s := range batch {
		if _, err := m.store.LoadInto(m.source, s); err != nil {
			return false, err
		}
	}
	return true, nil
}

// current returns the sample under the cursor, or nil when the source
// is empty.
func (m *Model) current() *sample.Sample {
	return m.loader.Get(m.cursor)
}

// setStatus replaces the transient status bar message.
func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	m.statusSeq++
	return clearStatusAfter(statusMessageTTL, m.statusSeq)
}

// progress snapshots the counters for the status bar.
func (m *Model) progress() components.Progress {
	var corrected, discarded int
	for _, s := range m.loader.Samples() {
		switch s.Status {
		case sample.StatusCorrected:
			corrected++
		case sample.StatusDiscarded:
			discarded++
		}
	}
	return components.Progress{
		Total:       m.loader.TotalRows(),
		Corrected:   corrected,
		Discarded:   discarded,
		Loaded:      m.loader.Loaded(),
		LastMessage: m.statusMsg,
	}
}
