package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

const statusTTL = 2 * time.Second

// clearStatusMsg expires the status message set with the same seq.
type clearStatusMsg struct{ seq int }

// flashError shows msg in the status line until statusTTL passes or another
// message replaces it.
func (m *Model) flashError(msg string) tea.Cmd {
	m.statusSeq++
	m.status = msg
	m.statusErr = true
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
