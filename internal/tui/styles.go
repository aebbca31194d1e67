package tui

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/xonecas/panes/internal/theme"
)

type styles struct {
	Text      color.Color
	Separator color.Color
	Status    lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	return styles{
		Text:      p.FgColor(),
		Separator: p.BorderColor(),
		Status:    lipgloss.NewStyle().Foreground(p.FgColor()).Background(p.BgColor()),
		Error:     lipgloss.NewStyle().Foreground(p.ErrorColor()).Bold(true),
		Help:      lipgloss.NewStyle().Foreground(p.DimColor()),
	}
}
