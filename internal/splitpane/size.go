package splitpane

import (
	"fmt"

	"github.com/xonecas/panes/internal/layout"
)

// SplitSize determines the extent of the first pane along the split axis.
// It is one of Percentage, Fixed or Min.
type SplitSize interface {
	// Constraint converts the size into a layout constraint.
	Constraint() layout.Constraint
	String() string

	isSplitSize()
}

// Percentage sizes the first pane as a percentage of the split axis.
type Percentage uint16

// Fixed sizes the first pane to an absolute number of cells (columns for a
// horizontal split, rows for a vertical one).
type Fixed uint16

// Min gives the first pane at least this many cells; it grows to fill space.
type Min uint16

func (p Percentage) Constraint() layout.Constraint { return layout.Percentage(int(p)) }
func (n Fixed) Constraint() layout.Constraint      { return layout.Length(int(n)) }
func (n Min) Constraint() layout.Constraint        { return layout.Min(int(n)) }

func (p Percentage) String() string { return fmt.Sprintf("%d%%", uint16(p)) }
func (n Fixed) String() string      { return fmt.Sprintf("fixed(%d)", uint16(n)) }
func (n Min) String() string        { return fmt.Sprintf("min(%d)", uint16(n)) }

func (Percentage) isSplitSize() {}
func (Fixed) isSplitSize()      {}
func (Min) isSplitSize()        {}

// complement is the constraint for the second pane: the rest of the
// percentage for percentage splits, whatever space is left otherwise.
func complement(s SplitSize) layout.Constraint {
	if p, ok := s.(Percentage); ok {
		return layout.Percentage(100 - int(p))
	}
	return layout.Fill(1)
}
