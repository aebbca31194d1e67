package splitpane

import (
	"errors"
	"fmt"
)

// Options is the full configuration of a SplitPane, checked once by
// FromOptions.
type Options struct {
	Direction        Direction
	Size             SplitSize
	Resizable        bool
	ShowSeparator    bool
	MinSize          uint16
	BorderStyle      PaneBorderStyle
	UnfocusedBorders bool
}

// DefaultOptions matches the settings of New.
func DefaultOptions(direction Direction) Options {
	return Options{
		Direction:     direction,
		Size:          defaultPercentage,
		Resizable:     true,
		ShowSeparator: true,
		MinSize:       defaultMinSize,
		BorderStyle:   DefaultBorderStyle(),
	}
}

// FromOptions builds a SplitPane, rejecting a size that Resize could never
// have produced under the same min size. Unlike the With methods it catches
// inconsistent settings up front.
func FromOptions(o Options) (*SplitPane, error) {
	if o.Direction != Horizontal && o.Direction != Vertical {
		return nil, fmt.Errorf("unknown direction %v", o.Direction)
	}
	if o.Size == nil {
		return nil, errors.New("split size is required")
	}
	if err := checkSize(o.Size, o.MinSize); err != nil {
		return nil, err
	}

	return New(o.Direction).
		WithSplitSize(o.Size).
		WithResizable(o.Resizable).
		WithSeparator(o.ShowSeparator).
		WithMinSize(o.MinSize).
		WithBorderStyle(o.BorderStyle).
		WithUnfocusedBorders(o.UnfocusedBorders), nil
}

func checkSize(s SplitSize, minSize uint16) error {
	lo := int(minSize)
	switch s := s.(type) {
	case Percentage:
		if n := int(s); n < lo || n > 100-lo {
			return fmt.Errorf("percentage must be within [%d, %d]: %w", lo, 100-lo, &InvalidSizeError{Size: n})
		}
	case Fixed:
		if n := int(s); n < lo {
			return fmt.Errorf("fixed size must be at least %d: %w", lo, &InvalidSizeError{Size: n})
		}
	}
	return nil
}
