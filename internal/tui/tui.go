// Package tui hosts a split pane in a bubbletea program: key presses resize
// the split and move focus, and every frame is painted through the pane's
// render adapter.
package tui

import (
	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/xonecas/panes/internal/splitpane"
	"github.com/xonecas/panes/internal/theme"
)

const statusRows = 1

// Model is the application model.
type Model struct {
	width  int
	height int

	pane *splitpane.SplitPane
	step int // resize delta per key press

	keys   keyMap
	help   help.Model
	styles styles

	// Transient status message; statusSeq invalidates stale clear timers.
	status    string
	statusErr bool
	statusSeq int
}

// New creates a model driving pane. step is the resize delta bound to the
// grow and shrink keys.
func New(pane *splitpane.SplitPane, step int, palette theme.Palette) Model {
	if step <= 0 {
		step = 1
	}
	return Model{
		pane:   pane,
		step:   step,
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: newStyles(palette),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Pane returns the split pane driven by the model.
func (m Model) Pane() *splitpane.SplitPane {
	return m.pane
}
