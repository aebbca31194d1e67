// Package splitpane divides a rectangle into two resizable, focus-aware panes,
// side by side or stacked.
//
// A SplitPane is plain data owned by whatever UI state embeds it. It is not
// safe for concurrent use; callers mutate it between frames and read it while
// rendering, all on the same goroutine.
package splitpane

import (
	"image"
	"image/color"
	"math"

	"github.com/xonecas/panes/internal/layout"
)

// Direction is the axis panes are laid out along.
type Direction = layout.Direction

const (
	// Horizontal places the panes left and right.
	Horizontal = layout.Horizontal
	// Vertical places the panes top and bottom.
	Vertical = layout.Vertical
)

const (
	defaultPercentage = Percentage(50)
	defaultMinSize    = 10
)

// SplitPane holds the state of a single two-way split.
type SplitPane struct {
	direction        Direction
	size             SplitSize
	resizable        bool
	focused          int
	showSeparator    bool
	minSize          uint16
	borders          PaneBorderStyle
	unfocusedBorders bool
}

// New returns a resizable 50/50 split with the first pane focused.
func New(direction Direction) *SplitPane {
	return &SplitPane{
		direction:     direction,
		size:          defaultPercentage,
		resizable:     true,
		showSeparator: true,
		minSize:       defaultMinSize,
		borders:       DefaultBorderStyle(),
	}
}

// The With methods configure a pane before first use. They never fail and do
// not check the result against the other settings; an out-of-range size is
// only rejected by the next Resize.

func (p *SplitPane) WithSplitSize(s SplitSize) *SplitPane {
	if s != nil {
		p.size = s
	}
	return p
}

func (p *SplitPane) WithResizable(resizable bool) *SplitPane {
	p.resizable = resizable
	return p
}

func (p *SplitPane) WithSeparator(show bool) *SplitPane {
	p.showSeparator = show
	return p
}

func (p *SplitPane) WithMinSize(n uint16) *SplitPane {
	p.minSize = n
	return p
}

func (p *SplitPane) WithBorderStyle(s PaneBorderStyle) *SplitPane {
	p.borders = s
	return p
}

func (p *SplitPane) WithBorders(show bool) *SplitPane {
	p.borders.ShowBorders = show
	return p
}

func (p *SplitPane) WithFocusedColor(c color.Color) *SplitPane {
	p.borders.FocusedBorderColor = c
	return p
}

func (p *SplitPane) WithUnfocusedColor(c color.Color) *SplitPane {
	p.borders.UnfocusedBorderColor = c
	return p
}

// WithUnfocusedBorders makes Render outline the unfocused pane too, using the
// unfocused border type and color. By default only the focused pane is
// outlined.
func (p *SplitPane) WithUnfocusedBorders(show bool) *SplitPane {
	p.unfocusedBorders = show
	return p
}

func (p *SplitPane) Direction() Direction         { return p.direction }
func (p *SplitPane) SplitSize() SplitSize         { return p.size }
func (p *SplitPane) Resizable() bool              { return p.resizable }
func (p *SplitPane) FocusedPane() int             { return p.focused }
func (p *SplitPane) ShowSeparator() bool          { return p.showSeparator }
func (p *SplitPane) MinSize() uint16              { return p.minSize }
func (p *SplitPane) BorderStyle() PaneBorderStyle { return p.borders }
func (p *SplitPane) UnfocusedBorders() bool       { return p.unfocusedBorders }

// Resize moves the split by delta. For percentage splits the result must stay
// within [min size, 100 - min size]; fixed splits must stay at or above the
// min size; min splits must not go negative. A resize that would overshoot
// fails with an *InvalidSizeError carrying the rejected value and leaves the
// pane untouched. Resizing a non-resizable pane succeeds without effect.
func (p *SplitPane) Resize(delta int) error {
	if !p.resizable {
		return nil
	}

	lo := int(p.minSize)
	switch s := p.size.(type) {
	case Percentage:
		n := shift(int(s), delta)
		if n < lo || n > 100-lo {
			return &InvalidSizeError{Size: n}
		}
		p.size = Percentage(n)
	case Fixed:
		n := shift(int(s), delta)
		if n < lo || n > maxExtent {
			return &InvalidSizeError{Size: n}
		}
		p.size = Fixed(n)
	case Min:
		n := shift(int(s), delta)
		if n < 0 || n > maxExtent {
			return &InvalidSizeError{Size: n}
		}
		p.size = Min(n)
	}
	return nil
}

// shift adds delta to n, saturating at the int range.
func shift(n, delta int) int {
	switch {
	case delta > 0 && n > math.MaxInt-delta:
		return math.MaxInt
	case delta < 0 && n < math.MinInt-delta:
		return math.MinInt
	}
	return n + delta
}

// maxExtent is the largest extent a SplitSize can hold.
const maxExtent = 1<<16 - 1

// ToggleFocus moves focus to the other pane.
func (p *SplitPane) ToggleFocus() {
	p.focused = 1 - p.focused
}

// SetFocusedPane focuses pane 0 or 1. Any other index fails with an
// *InvalidPaneError and focus is unchanged.
func (p *SplitPane) SetFocusedPane(pane int) error {
	if pane != 0 && pane != 1 {
		return &InvalidPaneError{Pane: pane}
	}
	p.focused = pane
	return nil
}

// CalculatePanes splits area into the first and second pane rectangles. The
// result comes straight from the layout solver, rounding included.
func (p *SplitPane) CalculatePanes(area image.Rectangle) (image.Rectangle, image.Rectangle) {
	rects := layout.Split(area, p.direction, p.size.Constraint(), complement(p.size))
	return rects[0], rects[1]
}
