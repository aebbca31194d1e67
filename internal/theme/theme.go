// Package theme derives the pane chrome colors from a Chroma syntax theme so
// borders match whatever palette the user already runs in their terminal.
package theme

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultTheme is used when no theme is configured.
const DefaultTheme = "github-dark"

// Palette holds UI chrome colors derived deterministically from a Chroma theme.
// The grayscale ramp is a linear interpolation from bg to fg; the accent is the
// most saturated token color in the palette.
type Palette struct {
	Bg     string // Theme background
	Fg     string // Theme foreground (primary text)
	Border string // 10% bg→fg, separator
	Dim    string // 25% bg→fg
	Muted  string // 45% bg→fg, unfocused borders
	Accent string // Most saturated token color, focused borders
	Error  string // From chroma Error token, lerped 45% toward fg
}

// Default returns the palette of DefaultTheme.
func Default() Palette {
	return ThemePalette(DefaultTheme)
}

// Exists reports whether Chroma knows the named theme.
func Exists(name string) bool {
	_, ok := styles.Registry[name]
	return ok
}

// ThemePalette derives a full palette from a Chroma theme name. Unknown
// themes fall back to a fixed dark palette.
func ThemePalette(name string) Palette {
	if !Exists(name) {
		return fallbackPalette()
	}
	sty := styles.Get(name)
	entry := sty.Get(chroma.Background)
	bg := "#000000"
	fg := "#c8c8c8"
	if entry.Background.IsSet() {
		bg = entry.Background.String()
	}
	if entry.Colour.IsSet() {
		fg = entry.Colour.String()
	}

	return Palette{
		Bg:     bg,
		Fg:     fg,
		Border: lerpHex(bg, fg, 0.10),
		Dim:    lerpHex(bg, fg, 0.25),
		Muted:  lerpHex(bg, fg, 0.45),
		Accent: pickAccent(sty, fg),
		Error:  pickError(sty, bg, fg),
	}
}

func fallbackPalette() Palette {
	return Palette{
		Bg: "#000000", Fg: "#c8c8c8",
		Border: "#141414", Dim: "#323232", Muted: "#5a5a5a",
		Accent: "#00dfff", Error: "#932e2e",
	}
}

// AccentColor is the focused border color.
func (p Palette) AccentColor() color.Color { return lipgloss.Color(p.Accent) }

// MutedColor is the unfocused border color.
func (p Palette) MutedColor() color.Color { return lipgloss.Color(p.Muted) }

// FgColor is the primary text color.
func (p Palette) FgColor() color.Color { return lipgloss.Color(p.Fg) }

// BgColor is the theme background, used behind the status line.
func (p Palette) BgColor() color.Color { return lipgloss.Color(p.Bg) }

// BorderColor is the faint chrome color used for the pane separator.
func (p Palette) BorderColor() color.Color { return lipgloss.Color(p.Border) }

// DimColor is used for secondary text such as key help.
func (p Palette) DimColor() color.Color { return lipgloss.Color(p.Dim) }

// ErrorColor is used for transient error messages.
func (p Palette) ErrorColor() color.Color { return lipgloss.Color(p.Error) }

// pickAccent returns the most saturated foreground color across all tokens.
func pickAccent(sty *chroma.Style, fallback string) string {
	best := fallback
	bestSat := 0.0
	for tt := chroma.TokenType(0); tt < 2000; tt++ {
		e := sty.Get(tt)
		if !e.Colour.IsSet() {
			continue
		}
		hex := e.Colour.String()
		r, g, b := hexToRGBf(hex)
		mx := max(r, g, b)
		mn := min(r, g, b)
		if mx == 0 {
			continue
		}
		if sat := (mx - mn) / mx; sat > bestSat {
			bestSat = sat
			best = hex
		}
	}
	return best
}

// pickError extracts the Error token color and lerps it 45% toward bg.
func pickError(sty *chroma.Style, bg, fg string) string {
	e := sty.Get(chroma.Error)
	if !e.Colour.IsSet() {
		return lerpHex(bg, fg, 0.45)
	}
	return lerpHex(bg, e.Colour.String(), 0.45)
}

// lerpHex linearly interpolates between two hex colors at fraction t.
func lerpHex(a, b string, t float64) string {
	ar, ag, ab := hexToRGBf(a)
	br, bg, bb := hexToRGBf(b)
	return fmt.Sprintf("#%02x%02x%02x",
		clampByte(ar+(br-ar)*t),
		clampByte(ag+(bg-ag)*t),
		clampByte(ab+(bb-ab)*t),
	)
}

func hexToRGBf(hex string) (float64, float64, float64) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0
	}
	return float64(hexByte(hex[1], hex[2])),
		float64(hexByte(hex[3], hex[4])),
		float64(hexByte(hex[5], hex[6]))
}

func hexByte(hi, lo byte) int {
	return hexNibble(hi)<<4 | hexNibble(lo)
}

func hexNibble(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 0
}

func clampByte(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return int(v + 0.5)
}
