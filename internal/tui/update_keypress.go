package tui

import (
	"strconv"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
)

// handleKeyPress processes key events. Returns (model, cmd, true) if handled.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return *m, tea.Quit, true
	case key.Matches(msg, m.keys.Grow):
		return *m, m.resize(m.step), true
	case key.Matches(msg, m.keys.Shrink):
		return *m, m.resize(-m.step), true
	case key.Matches(msg, m.keys.Toggle):
		m.pane.ToggleFocus()
		log.Debug().Int("pane", m.pane.FocusedPane()).Msg("focus toggled")
		return *m, nil, true
	case key.Matches(msg, m.keys.Focus):
		return *m, m.focusDigit(msg.String()), true
	}
	return Model{}, nil, false
}

// resize applies delta to the split. A rejected resize leaves the pane as it
// was and is reported in the status line only.
func (m *Model) resize(delta int) tea.Cmd {
	if err := m.pane.Resize(delta); err != nil {
		log.Debug().Err(err).Int("delta", delta).Stringer("size", m.pane.SplitSize()).Msg("resize rejected")
		return m.flashError(err.Error())
	}
	log.Debug().Int("delta", delta).Stringer("size", m.pane.SplitSize()).Msg("resized")
	return nil
}

// focusDigit focuses the pane named by a 1-based digit key.
func (m *Model) focusDigit(s string) tea.Cmd {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	if err := m.pane.SetFocusedPane(n - 1); err != nil {
		log.Debug().Err(err).Msg("focus rejected")
		return m.flashError(err.Error())
	}
	log.Debug().Int("pane", m.pane.FocusedPane()).Msg("focus set")
	return nil
}
