package tui

import (
	"fmt"
	"image"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/xonecas/panes/internal/frame"
	"github.com/xonecas/panes/internal/splitpane"
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() tea.View {
	v := tea.NewView(m.renderContent())
	v.AltScreen = true
	return v
}

// renderContent produces the string content for the view.
func (m Model) renderContent() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	f := m.paint()
	lines := strings.Split(f.Render(), "\n")
	lines = append(lines[:max(m.height-statusRows, 0)], m.renderStatus())
	return strings.Join(lines, "\n")
}

// paint draws both panes into a frame covering everything above the status
// line.
func (m Model) paint() *frame.Frame {
	f := frame.New(m.width, m.height)
	area := image.Rect(0, 0, m.width, max(m.height-statusRows, 0))
	m.pane.Render(f, area,
		func(r image.Rectangle) { m.drawPane(f, r, 0) },
		func(r image.Rectangle) { m.drawPane(f, r, 1) },
	)
	return f
}

// drawPane writes a pane's title and geometry. The unfocused pane also draws
// the separator along its edge facing the split when enabled.
func (m Model) drawPane(f *frame.Frame, r image.Rectangle, idx int) {
	focused := m.pane.FocusedPane() == idx
	if !focused && m.pane.ShowSeparator() {
		r = m.drawSeparator(f, r, idx)
	}
	if r.Empty() {
		return
	}

	title := fmt.Sprintf("pane %d", idx+1)
	if focused {
		title += " *"
	}
	lines := []string{
		title,
		fmt.Sprintf("%d×%d", r.Dx(), r.Dy()),
	}
	if idx == 0 {
		lines = append(lines, "split "+m.pane.SplitSize().String())
	}
	for i, line := range lines {
		if r.Min.Y+i >= r.Max.Y {
			break
		}
		f.SetStringIn(r, r.Min.X, r.Min.Y+i, line, m.styles.Text)
	}
}

// drawSeparator draws a divider on the edge of r that touches the other pane
// and returns what is left of r.
func (m Model) drawSeparator(f *frame.Frame, r image.Rectangle, idx int) image.Rectangle {
	if r.Empty() {
		return r
	}
	if m.pane.Direction() == splitpane.Horizontal {
		x := r.Min.X
		if idx == 0 {
			x = r.Max.X - 1
		}
		f.Fill(image.Rect(x, r.Min.Y, x+1, r.Max.Y), "│", m.styles.Separator)
		if idx == 0 {
			r.Max.X--
		} else {
			r.Min.X++
		}
		return r
	}
	y := r.Min.Y
	if idx == 0 {
		y = r.Max.Y - 1
	}
	f.Fill(image.Rect(r.Min.X, y, r.Max.X, y+1), "─", m.styles.Separator)
	if idx == 0 {
		r.Max.Y--
	} else {
		r.Min.Y++
	}
	return r
}

// renderStatus renders the bottom line: the split state or the pending error
// on the left, key help on the right.
func (m Model) renderStatus() string {
	left := m.styles.Status.Render(fmt.Sprintf(" %s  pane %d", m.pane.SplitSize(), m.pane.FocusedPane()+1))
	if m.status != "" {
		style := m.styles.Status
		if m.statusErr {
			style = m.styles.Error
		}
		left = style.Render(" " + m.status)
	}
	right := m.styles.Help.Render(m.help.ShortHelpView(m.keys.ShortHelp()) + " ")

	gap := m.width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		return ansi.Truncate(left, m.width, "")
	}
	return left + strings.Repeat(" ", gap) + right
}
