package splitpane

import (
	"image"
	"image/color"

	"charm.land/lipgloss/v2"
)

// Canvas is the surface Render draws pane borders on. *frame.Frame
// implements it.
type Canvas interface {
	DrawBorder(area image.Rectangle, b lipgloss.Border, fg color.Color)
}

// DrawFunc paints one pane's content into area.
type DrawFunc func(area image.Rectangle)

// Render lays out area and hands each pane's rectangle to its draw function.
// The focused pane is outlined with the focused border style and its draw
// function receives the rectangle inside the border. The unfocused pane gets
// its raw rectangle unless WithUnfocusedBorders is set.
func (p *SplitPane) Render(c Canvas, area image.Rectangle, drawFirst, drawSecond DrawFunc) {
	first, second := p.CalculatePanes(area)
	draw := [2]DrawFunc{drawFirst, drawSecond}
	for i, r := range [2]image.Rectangle{first, second} {
		r = p.decorate(c, r, i == p.focused)
		if draw[i] != nil {
			draw[i](r)
		}
	}
}

// decorate draws the border for one pane, if any, and returns the rectangle
// left for its content.
func (p *SplitPane) decorate(c Canvas, r image.Rectangle, focused bool) image.Rectangle {
	if !p.borders.ShowBorders || r.Empty() {
		return r
	}
	switch {
	case focused:
		c.DrawBorder(r, p.borders.FocusedBorderType.Border(), p.borders.FocusedBorderColor)
	case p.unfocusedBorders:
		c.DrawBorder(r, p.borders.UnfocusedBorderType.Border(), p.borders.UnfocusedBorderColor)
	default:
		return r
	}
	return inset(r)
}

// inset shrinks r by one cell on every side. Rectangles too small to have an
// inside collapse to an empty rectangle at their top-left corner.
func inset(r image.Rectangle) image.Rectangle {
	if r.Dx() < 2 || r.Dy() < 2 {
		return image.Rectangle{Min: r.Min, Max: r.Min}
	}
	return r.Inset(1)
}
