// Package layout splits a rectangle into ordered sub-rectangles along one axis
// from a list of size constraints.
package layout

import (
	"fmt"
	"image"
)

// Direction is the axis a rectangle is split along.
type Direction int

const (
	// Horizontal lays segments out left to right (splits columns).
	Horizontal Direction = iota
	// Vertical lays segments out top to bottom (splits rows).
	Vertical
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Kind identifies how a Constraint sizes its segment.
type Kind int

const (
	KindPercentage Kind = iota
	KindLength
	KindMin
	KindFill
)

// Constraint sizes one segment of a split.
type Constraint struct {
	Kind  Kind
	Value int
}

// Percentage sizes a segment to p percent of the axis length, rounded down.
func Percentage(p int) Constraint { return Constraint{Kind: KindPercentage, Value: p} }

// Length sizes a segment to exactly n cells when space allows.
func Length(n int) Constraint { return Constraint{Kind: KindLength, Value: n} }

// Min sizes a segment to at least n cells; it may grow into leftover space.
func Min(n int) Constraint { return Constraint{Kind: KindMin, Value: n} }

// Fill takes leftover space, shared between fill segments by weight.
func Fill(weight int) Constraint { return Constraint{Kind: KindFill, Value: weight} }

func (c Constraint) String() string {
	switch c.Kind {
	case KindPercentage:
		return fmt.Sprintf("Percentage(%d)", c.Value)
	case KindLength:
		return fmt.Sprintf("Length(%d)", c.Value)
	case KindMin:
		return fmt.Sprintf("Min(%d)", c.Value)
	case KindFill:
		return fmt.Sprintf("Fill(%d)", c.Value)
	}
	return fmt.Sprintf("Constraint(%d, %d)", int(c.Kind), c.Value)
}

// Split divides area along dir into one rectangle per constraint. The
// rectangles tile the area in order and never extend past it. Degenerate
// input (empty area, negative values) yields zero-sized rectangles.
func Split(area image.Rectangle, dir Direction, cs ...Constraint) []image.Rectangle {
	area = area.Canon()
	total := area.Dx()
	if dir == Vertical {
		total = area.Dy()
	}

	sizes := solve(total, cs)

	rects := make([]image.Rectangle, len(cs))
	offset := 0
	for i, n := range sizes {
		if dir == Vertical {
			rects[i] = image.Rect(area.Min.X, area.Min.Y+offset, area.Max.X, area.Min.Y+offset+n)
		} else {
			rects[i] = image.Rect(area.Min.X+offset, area.Min.Y, area.Min.X+offset+n, area.Max.Y)
		}
		offset += n
	}
	return rects
}

// solve returns the segment sizes for an axis of the given length. The sizes
// always sum to at most total.
func solve(total int, cs []Constraint) []int {
	sizes := make([]int, len(cs))
	if total <= 0 {
		return sizes
	}

	used := 0
	for i, c := range cs {
		sizes[i] = clamp(base(total, c), 0, total)
		used += sizes[i]
	}

	// Overflow: later segments give way first.
	for i := len(sizes) - 1; i >= 0 && used > total; i-- {
		take := min(sizes[i], used-total)
		sizes[i] -= take
		used -= take
	}

	if left := total - used; left > 0 {
		distribute(sizes, cs, left)
	}
	return sizes
}

func base(total int, c Constraint) int {
	switch c.Kind {
	case KindPercentage:
		return total * c.Value / 100
	case KindLength, KindMin:
		return c.Value
	}
	return 0
}

// distribute hands leftover cells to fill segments by weight, otherwise to
// min segments, otherwise to the last percentage segment.
func distribute(sizes []int, cs []Constraint, left int) {
	if idx := indexes(cs, KindFill); len(idx) > 0 {
		weights := 0
		for _, i := range idx {
			weights += max(cs[i].Value, 1)
		}
		given := 0
		for _, i := range idx {
			share := left * max(cs[i].Value, 1) / weights
			sizes[i] += share
			given += share
		}
		sizes[idx[len(idx)-1]] += left - given
		return
	}
	if idx := indexes(cs, KindMin); len(idx) > 0 {
		share := left / len(idx)
		for _, i := range idx {
			sizes[i] += share
		}
		sizes[idx[len(idx)-1]] += left - share*len(idx)
		return
	}
	if idx := indexes(cs, KindPercentage); len(idx) > 0 {
		sizes[idx[len(idx)-1]] += left
	}
}

func indexes(cs []Constraint, k Kind) []int {
	var out []int
	for i, c := range cs {
		if c.Kind == k {
			out = append(out, i)
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
