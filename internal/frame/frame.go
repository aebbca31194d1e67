// Package frame is a fixed-size cell buffer that panes paint into before the
// whole screen is turned into a single string for the terminal.
package frame

import (
	"image"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Cell is one terminal cell. An empty Content marks the trailing half of a
// wide character.
type Cell struct {
	Content string
	Fg      color.Color
}

var blank = Cell{Content: " "}

// Frame is a width × height grid of cells.
type Frame struct {
	width  int
	height int
	cells  []Cell
}

// New returns a frame filled with spaces. Negative sizes are treated as zero.
func New(width, height int) *Frame {
	width, height = max(width, 0), max(height, 0)
	f := &Frame{width: width, height: height, cells: make([]Cell, width*height)}
	for i := range f.cells {
		f.cells[i] = blank
	}
	return f
}

// Bounds returns the frame rectangle anchored at the origin.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// Cell returns the cell at (x, y), or a blank cell outside the frame.
func (f *Frame) Cell(x, y int) Cell {
	if !f.in(x, y) {
		return blank
	}
	return f.cells[y*f.width+x]
}

// SetCell writes a single cell; writes outside the frame are dropped.
func (f *Frame) SetCell(x, y int, content string, fg color.Color) {
	if !f.in(x, y) {
		return
	}
	f.cells[y*f.width+x] = Cell{Content: content, Fg: fg}
}

// SetString writes s starting at (x, y) and returns the number of columns
// written. Output is clipped at the right edge; a wide character that does not
// fit is dropped.
func (f *Frame) SetString(x, y int, s string, fg color.Color) int {
	return f.SetStringIn(f.Bounds(), x, y, s, fg)
}

// SetStringIn is SetString clipped to clip as well as the frame.
func (f *Frame) SetStringIn(clip image.Rectangle, x, y int, s string, fg color.Color) int {
	clip = clip.Intersect(f.Bounds())
	if y < clip.Min.Y || y >= clip.Max.Y {
		return 0
	}
	col := x
	for _, r := range s {
		ch := string(r)
		w := ansi.StringWidth(ch)
		if w == 0 {
			if col > x && col-1 >= clip.Min.X && f.in(col-1, y) {
				f.cells[y*f.width+col-1].Content += ch
			}
			continue
		}
		if col+w > clip.Max.X {
			break
		}
		if col >= clip.Min.X {
			f.SetCell(col, y, ch, fg)
			for i := 1; i < w; i++ {
				f.SetCell(col+i, y, "", fg)
			}
		}
		col += w
	}
	return col - x
}

// Fill paints every cell of area with content.
func (f *Frame) Fill(area image.Rectangle, content string, fg color.Color) {
	area = area.Intersect(f.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			f.SetCell(x, y, content, fg)
		}
	}
}

// DrawBorder outlines area with the glyphs of b. Areas one cell thick get a
// single edge line; empty areas are left alone.
func (f *Frame) DrawBorder(area image.Rectangle, b lipgloss.Border, fg color.Color) {
	area = area.Canon()
	if area.Empty() {
		return
	}
	minX, minY := area.Min.X, area.Min.Y
	maxX, maxY := area.Max.X-1, area.Max.Y-1

	switch {
	case area.Dy() == 1:
		for x := minX; x <= maxX; x++ {
			f.SetCell(x, minY, b.Top, fg)
		}
		return
	case area.Dx() == 1:
		for y := minY; y <= maxY; y++ {
			f.SetCell(minX, y, b.Left, fg)
		}
		return
	}

	for x := minX + 1; x < maxX; x++ {
		f.SetCell(x, minY, b.Top, fg)
		f.SetCell(x, maxY, b.Bottom, fg)
	}
	for y := minY + 1; y < maxY; y++ {
		f.SetCell(minX, y, b.Left, fg)
		f.SetCell(maxX, y, b.Right, fg)
	}
	f.SetCell(minX, minY, b.TopLeft, fg)
	f.SetCell(maxX, minY, b.TopRight, fg)
	f.SetCell(minX, maxY, b.BottomLeft, fg)
	f.SetCell(maxX, maxY, b.BottomRight, fg)
}

// Lines returns the frame as plain text, one string per row.
func (f *Frame) Lines() []string {
	lines := make([]string, f.height)
	var b strings.Builder
	for y := 0; y < f.height; y++ {
		b.Reset()
		for x := 0; x < f.width; x++ {
			b.WriteString(f.cells[y*f.width+x].Content)
		}
		lines[y] = b.String()
	}
	return lines
}

// String returns the plain text of the frame with rows joined by newlines.
func (f *Frame) String() string {
	return strings.Join(f.Lines(), "\n")
}

// Render returns the frame with foreground colors applied. Consecutive cells
// sharing a color are styled as one run.
func (f *Frame) Render() string {
	var out strings.Builder
	var run strings.Builder
	for y := 0; y < f.height; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		var runFg color.Color
		for x := 0; x < f.width; x++ {
			c := f.cells[y*f.width+x]
			if x > 0 && !sameColor(c.Fg, runFg) {
				flush(&out, &run, runFg)
			}
			runFg = c.Fg
			run.WriteString(c.Content)
		}
		flush(&out, &run, runFg)
	}
	return out.String()
}

func flush(out, run *strings.Builder, fg color.Color) {
	if run.Len() == 0 {
		return
	}
	if fg == nil {
		out.WriteString(run.String())
	} else {
		out.WriteString(lipgloss.NewStyle().Foreground(fg).Render(run.String()))
	}
	run.Reset()
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func (f *Frame) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.width && y < f.height
}
