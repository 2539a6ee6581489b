package tty

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/paneterm/ttyout/caps"
	"github.com/paneterm/ttyout/screen"
)

// ansi16RGB is the classic VGA-style palette backing colours 0-15,
// used as the search space when downgrading 256-colour or RGB cells on
// a terminal that only declares 8 or 16 colours.
var ansi16RGB = [16][3]uint8{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// get256RGB reproduces xterm's 256-colour cube/grayscale layout: 0-15
// basic, 16-231 a 6x6x6 colour cube, 232-255 a 24-step grayscale ramp.
func get256RGB(idx int) (uint8, uint8, uint8) {
	if idx < 16 {
		c := ansi16RGB[idx]
		return c[0], c[1], c[2]
	}
	if idx >= 232 {
		v := uint8(8 + (idx-232)*10)
		return v, v, v
	}
	idx -= 16
	steps := [6]uint8{0, 95, 135, 175, 215, 255}
	r := steps[(idx/36)%6]
	g := steps[(idx/6)%6]
	b := steps[idx%6]
	return r, g, b
}

func nearest256(r, g, b uint8) int {
	target := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	best, bestDist := 0, -1.0
	for i := 0; i < 256; i++ {
		cr, cg, cb := get256RGB(i)
		cand := colorful.Color{R: float64(cr) / 255, G: float64(cg) / 255, B: float64(cb) / 255}
		d := target.DistanceCIE94(cand)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

func nearest16(r, g, b uint8) int {
	target := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	best, bestDist := 0, -1.0
	for i := 0; i < 16; i++ {
		c := ansi16RGB[i]
		cand := colorful.Color{R: float64(c[0]) / 255, G: float64(c[1]) / 255, B: float64(c[2]) / 255}
		d := target.DistanceCIE94(cand)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// downgradeResult is the outcome of checking one colour against the
// terminal's declared depth: a possibly-rewritten colour plus any
// attribute bits the downgrade requires (aixterm bright folded to the
// base colour needs screen.AttrBright added by the caller).
type downgradeResult struct {
	Color     screen.Color
	AddBright bool
}

// checkColor implements tty_check_fg/tty_check_bg: downgrade an RGB or
// 256-palette colour to whatever depth the terminal actually declares.
// isBackground controls whether the aixterm-bright bit is preserved
// (foreground) or folded away (background, per spec: "not portable").
func (t *Tty) checkColor(c screen.Color, isBackground bool) downgradeResult {
	colors := t.caps.Number(caps.CapColors)
	trueColor := t.flags.ForceTrueColor || t.hasTrueColor()

	if c.Flag == screen.ColorRGB {
		if trueColor {
			return downgradeResult{Color: c}
		}
		idx := nearest256(c.R, c.G, c.B)
		c = screen.Palette256(idx)
		// fall through to the 256-colour path below
	}

	if c.Flag == screen.Color256 {
		if colors >= 256 || t.flags.Force256 {
			return downgradeResult{Color: c}
		}
		r, g, b := get256RGB(c.Value)
		idx := nearest16(r, g, b)
		return t.fold16(idx, isBackground, colors)
	}

	if c.Flag == screen.ColorANSI && c.Value >= 8 && c.Value <= 15 {
		return t.fold16(c.Value, isBackground, colors)
	}

	return downgradeResult{Color: c}
}

// fold16 maps a 0-15 palette index down to what an 8- or 16-colour
// terminal can actually display: values 8-15 become aixterm bright
// (literal 90-97/100-107) when the terminal declares >=16 colours,
// otherwise the base 0-7 colour with AttrBright added -- except for
// backgrounds, where the bright bit has no portable encoding and is
// simply discarded (per the spec's documented fix to the historical
// tty_check_bg colour-field typo).
func (t *Tty) fold16(idx int, isBackground bool, colors int) downgradeResult {
	if idx < 8 {
		return downgradeResult{Color: screen.ANSI(idx)}
	}
	if colors >= 16 {
		return downgradeResult{Color: screen.ANSI(idx)}
	}
	if isBackground {
		return downgradeResult{Color: screen.ANSI(idx - 8)}
	}
	return downgradeResult{Color: screen.ANSI(idx - 8), AddBright: true}
}

func (t *Tty) hasTrueColor() bool {
	// The built-in table never sets a "Tc"-equivalent extended flag;
	// callers assert true colour explicitly via Flags.ForceTrueColor.
	return false
}
