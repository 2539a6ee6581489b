package tty

import (
	"strconv"
	"strings"

	"github.com/paneterm/ttyout/caps"
	"github.com/paneterm/ttyout/screen"
)

// Attributes reconciles desired against the shadow cell, emitting SGR
// codes for whatever differs, and updates the shadow to match. pane and
// win may be nil (tests exercising the engine without a screen model).
func (t *Tty) Attributes(desired screen.Cell, pane *screen.Pane, win *screen.Window) {
	desired = ResolveDefaults(desired, pane, win)

	fg, bg := desired.FG, desired.BG
	attr := desired.Attr

	// Reverse-as-background fallback: no SETAB means the only portable
	// way to show a non-default background is REV with fg/bg swapped.
	if _, hasSetab := t.caps.String(caps.CapSetab); !hasSetab {
		fgIsWhite := fg.IsDefault() || (fg.Flag == screen.ColorANSI && fg.Value == 7)
		bgIsBlack := bg.IsDefault() || (bg.Flag == screen.ColorANSI && bg.Value == 0)
		if attr&screen.AttrReverse != 0 && !fgIsWhite {
			attr &^= screen.AttrReverse
		}
		if !bgIsBlack {
			attr |= screen.AttrReverse
		}
	}

	fgResult := t.checkColor(fg, false)
	bgResult := t.checkColor(bg, true)
	fg = fgResult.Color
	bg = bgResult.Color
	if fgResult.AddBright {
		attr |= screen.AttrBright
	}

	// Any attribute bit dropping relative to the shadow forces SGR0:
	// it's the only portable primitive that can erase attributes.
	if t.attr&^attr != 0 {
		if s, ok := t.caps.Expand(caps.CapSgr0); ok {
			t.sink.WriteString(s)
		}
		t.attr = 0
		t.fg = screen.Default
		t.bg = screen.Default
	}

	t.emitColors(fg, bg)
	t.emitAttrs(attr)

	t.attr = attr
	t.fg = fg
	t.bg = bg
}

// emitColors reconciles fg/bg against the shadow. Either colour being
// default is handled first as its own cascade -- AX gives a direct
// SGR 39/49, otherwise a bare OP capability is unsafe to use (it is
// sometimes identical to SGR0 and sometimes isn't) so a real SGR0 reset
// stands in for it, and only when neither is available does the
// fallback SETAF(7)/SETAB(0) apply. Non-default colours are then set
// per channel as usual.
func (t *Tty) emitColors(fg, bg screen.Color) {
	if colorsEqual(fg, t.fg) && colorsEqual(bg, t.bg) {
		return
	}

	curFG, curBG := t.fg, t.bg

	if fg.IsDefault() || bg.IsDefault() {
		hasAX := t.caps.Has(caps.CapAX)
		_, hasOp := t.caps.String(caps.CapOp)
		if !hasAX && hasOp {
			if s, ok := t.caps.Expand(caps.CapSgr0); ok {
				t.sink.WriteString(s)
			}
			curFG, curBG = screen.Default, screen.Default
			// SGR0 also cleared every attribute bit on the terminal, so
			// emitAttrs must re-emit whatever the desired cell still has.
			t.attr = 0
		} else {
			if fg.IsDefault() && !curFG.IsDefault() {
				if hasAX {
					t.sink.WriteString("\x1b[39m")
				} else if !(curFG.Flag == screen.ColorANSI && curFG.Value == 7) {
					if s, ok := t.caps.Expand(caps.CapSetaf, 7); ok {
						t.sink.WriteString(s)
					}
				}
				curFG = screen.Default
			}
			if bg.IsDefault() && !curBG.IsDefault() {
				if hasAX {
					t.sink.WriteString("\x1b[49m")
				} else if !(curBG.Flag == screen.ColorANSI && curBG.Value == 0) {
					if s, ok := t.caps.Expand(caps.CapSetab, 0); ok {
						t.sink.WriteString(s)
					}
				}
				curBG = screen.Default
			}
		}
	}

	if !fg.IsDefault() && !colorsEqual(fg, curFG) {
		t.emitOneColor(fg, true)
	}
	if !bg.IsDefault() && !colorsEqual(bg, curBG) {
		t.emitOneColor(bg, false)
	}
}

// emitOneColor sets a single non-default colour channel; callers must
// resolve the default-colour cascade themselves before reaching here.
func (t *Tty) emitOneColor(c screen.Color, isFG bool) {
	switch c.Flag {
	case screen.ColorRGB:
		if isFG {
			t.sink.WriteString("\x1b[38;2;" + strconv.Itoa(int(c.R)) + ";" + strconv.Itoa(int(c.G)) + ";" + strconv.Itoa(int(c.B)) + "m")
		} else {
			t.sink.WriteString("\x1b[48;2;" + strconv.Itoa(int(c.R)) + ";" + strconv.Itoa(int(c.G)) + ";" + strconv.Itoa(int(c.B)) + "m")
		}
	case screen.Color256:
		cap := caps.CapSetaf
		if !isFG {
			cap = caps.CapSetab
		}
		if s, ok := t.caps.Expand(cap, c.Value&0xFF); ok {
			t.sink.WriteString(s)
		} else if isFG {
			t.sink.WriteString("\x1b[38;5;" + strconv.Itoa(c.Value) + "m")
		} else {
			t.sink.WriteString("\x1b[48;5;" + strconv.Itoa(c.Value) + "m")
		}
	case screen.ColorANSI:
		if c.Value >= 8 && c.Value <= 15 {
			base := 90 + (c.Value - 8)
			if !isFG {
				base += 10
			}
			t.sink.WriteString("\x1b[" + strconv.Itoa(base) + "m")
			return
		}
		cap := caps.CapSetaf
		if !isFG {
			cap = caps.CapSetab
		}
		if s, ok := t.caps.Expand(cap, c.Value); ok {
			t.sink.WriteString(s)
		}
	}
}

func (t *Tty) emitAttrs(attr screen.Attr) {
	newBits := attr &^ t.attr

	type attrCap struct {
		bit screen.Attr
		cap caps.Cap
	}
	table := []attrCap{
		{screen.AttrBright, caps.CapBold},
		{screen.AttrDim, caps.CapDim},
		{screen.AttrUnderscore, caps.CapSmul},
		{screen.AttrBlink, caps.CapBlink},
		{screen.AttrHidden, caps.CapInvis},
	}
	for _, e := range table {
		if newBits&e.bit != 0 {
			if s, ok := t.caps.Expand(e.cap); ok {
				t.sink.WriteString(s)
			}
		}
	}

	if newBits&screen.AttrItalics != 0 {
		if strings.HasPrefix(t.caps.Name(), "screen") {
			if s, ok := t.caps.Expand(caps.CapSmso); ok {
				t.sink.WriteString(s)
			}
		} else if s, ok := t.caps.Expand(caps.CapSitm); ok {
			t.sink.WriteString(s)
		}
	}

	if newBits&screen.AttrReverse != 0 {
		if s, ok := t.caps.Expand(caps.CapRev); ok {
			t.sink.WriteString(s)
		} else if s, ok := t.caps.Expand(caps.CapSmso); ok {
			t.sink.WriteString(s)
		}
	}

	if t.useACS() {
		wantCharset := attr&screen.AttrCharset != 0
		if wantCharset && !t.acsActive {
			if s, ok := t.caps.Expand(caps.CapSmacs); ok {
				t.sink.WriteString(s)
			}
			t.acsActive = true
		} else if !wantCharset && t.acsActive {
			if s, ok := t.caps.Expand(caps.CapRmacs); ok {
				t.sink.WriteString(s)
			}
			t.acsActive = false
		}
	}
}

// useACS reports whether the alternate character set is worth using at
// all: the terminal must carry a real acsc mapping, and UTF-8 output
// mode already draws line-drawing glyphs directly as runes.
func (t *Tty) useACS() bool {
	_, ok := t.caps.String(caps.CapAcsc)
	return ok && !t.utf8Mode
}

func colorsEqual(a, b screen.Color) bool { return a == b }

