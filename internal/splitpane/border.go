package splitpane

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/xonecas/panes/internal/theme"
)

// BorderType selects a border glyph set.
type BorderType int

const (
	BorderPlain BorderType = iota
	BorderRounded
	BorderDouble
	BorderThick
)

var borderNames = map[BorderType]string{
	BorderPlain:   "plain",
	BorderRounded: "rounded",
	BorderDouble:  "double",
	BorderThick:   "thick",
}

// Border returns the lipgloss glyph set for the type.
func (b BorderType) Border() lipgloss.Border {
	switch b {
	case BorderRounded:
		return lipgloss.RoundedBorder()
	case BorderDouble:
		return lipgloss.DoubleBorder()
	case BorderThick:
		return lipgloss.ThickBorder()
	}
	return lipgloss.NormalBorder()
}

func (b BorderType) String() string {
	if name, ok := borderNames[b]; ok {
		return name
	}
	return fmt.Sprintf("BorderType(%d)", int(b))
}

// MarshalText implements encoding.TextMarshaler.
func (b BorderType) MarshalText() ([]byte, error) {
	if _, ok := borderNames[b]; !ok {
		return nil, fmt.Errorf("unknown border type %d", int(b))
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BorderType) UnmarshalText(text []byte) error {
	for t, name := range borderNames {
		if name == string(text) {
			*b = t
			return nil
		}
	}
	return fmt.Errorf("unknown border type %q (want plain, rounded, double or thick)", text)
}

// PaneBorderStyle decides whether pane borders are drawn and how the focused
// and unfocused panes look. Any value is accepted.
type PaneBorderStyle struct {
	ShowBorders          bool
	FocusedBorderType    BorderType
	UnfocusedBorderType  BorderType
	FocusedBorderColor   color.Color
	UnfocusedBorderColor color.Color
}

// DefaultBorderStyle shows borders: thick in the accent color for the focused
// pane, plain and muted for the other.
func DefaultBorderStyle() PaneBorderStyle {
	p := theme.Default()
	return PaneBorderStyle{
		ShowBorders:          true,
		FocusedBorderType:    BorderThick,
		UnfocusedBorderType:  BorderPlain,
		FocusedBorderColor:   p.AccentColor(),
		UnfocusedBorderColor: p.MutedColor(),
	}
}
