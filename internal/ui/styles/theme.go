// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the corrbench TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header       lipgloss.Style
	HeaderTitle  lipgloss.Style
	HeaderSource lipgloss.Style

	// ==========================================================================
	// PANE STYLES
	// ==========================================================================

	PaneTitle      lipgloss.Style
	PaneBorder     lipgloss.Style
	PaneBorderFocus lipgloss.Style
	PaneContent    lipgloss.Style
	ChunkPane      lipgloss.Style

	// ==========================================================================
	// DIFF STYLES
	// ==========================================================================

	DiffDel  lipgloss.Style
	DiffAdd  lipgloss.Style
	DiffPlain lipgloss.Style

	// ==========================================================================
	// STATUS BADGE STYLES
	// ==========================================================================

	BadgeCorrected   lipgloss.Style
	BadgeDiscarded   lipgloss.Style
	BadgeUnprocessed lipgloss.Style
	BadgeEdited      lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	StatusCount  lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// EDITOR STYLES
	// ==========================================================================

	EditorContainer lipgloss.Style
	EditorTitle     lipgloss.Style
	EditorHint      lipgloss.Style

	// ==========================================================================
	// HELP OVERLAY STYLES
	// ==========================================================================

	HelpBox   lipgloss.Style
	HelpTitle lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style

	// ==========================================================================
	// FEEDBACK STYLES
	// ==========================================================================

	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	MutedStyle   lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		Padding(0, 1)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.HeaderSource = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Panes
	t.PaneTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple).
		Padding(0, 1)

	t.PaneBorder = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.PaneBorderFocus = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(FocusRing).
		Padding(0, 1)

	t.PaneContent = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.ChunkPane = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Overlay).
		Foreground(TextSecondary).
		PaddingLeft(1)

	// Diff rendering
	t.DiffDel = lipgloss.NewStyle().
		Foreground(Rose).
		Strikethrough(true)

	t.DiffAdd = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.DiffPlain = lipgloss.NewStyle().
		Foreground(TextPrimary)

	// Status badges
	t.BadgeCorrected = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(EmeraldDeep).
		Bold(true).
		Padding(0, 1)

	t.BadgeDiscarded = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(RoseDeep).
		Bold(true).
		Padding(0, 1)

	t.BadgeUnprocessed = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(Overlay).
		Padding(0, 1)

	t.BadgeEdited = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.StatusCount = lipgloss.NewStyle().
		Bold(true)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Editor
	t.EditorContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Amber).
		Padding(0, 1)

	t.EditorTitle = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)

	t.EditorHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Help overlay
	t.HelpBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(1, 2)

	t.HelpTitle = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true).
		Underline(true)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true).
		Width(12)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Feedback
	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(Amber)

	t.MutedStyle = lipgloss.NewStyle().
		Foreground(TextMuted)
}

// SetSize updates the theme's layout dimensions.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}
