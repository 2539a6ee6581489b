package tty

import (
	"unicode/utf8"

	"github.com/paneterm/ttyout/screen"
)

// EarlyWrap marks a terminal that wraps at column sx-1 rather than
// after a write into it (TERM_EARLYWRAP in the source this is
// grounded on). It is a per-Tty override since it is not something the
// capability table encodes.
func (t *Tty) SetEarlyWrap(v bool) { t.earlyWrap = v }

// CellPut writes one styled cell at the current shadow cursor position,
// applying attributes first, then advancing the shadow column (wrapping
// into the next row, bounded by the scroll region's lower edge).
func (t *Tty) CellPut(cell screen.Cell, pane *screen.Pane, win *screen.Window) {
	if cell.Padding {
		return
	}
	if t.earlyWrap && t.cursor.Known && t.cursor.X == t.sx-1 && t.cursor.Y == t.sy-1 {
		return
	}

	t.Attributes(cell, pane, win)

	width := cell.Width
	if width < 1 {
		width = 1
	}

	charset := cell.Attr&screen.AttrCharset != 0

	if !t.utf8Mode && width > 1 {
		for i := 0; i < width; i++ {
			t.putByte('_', false)
		}
		return
	}

	if cell.Rune < utf8.RuneSelf {
		t.putByte(byte(cell.Rune), charset)
		return
	}

	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], cell.Rune)
	t.sink.Write(buf[:n])
	t.advanceCursor(width)
}

// putByte writes a single byte carrying a cell's rune, translating
// vt100 line-drawing codes when the cell is charset-tagged but the
// terminal has no real alternate-charset support to lean on (SMACS
// already did the translation on the wire in that case, so the raw
// byte goes through as-is). advances the shadow column by one.
func (t *Tty) putByte(b byte, charset bool) {
	if charset && !t.acsActive {
		if glyph, ok := acsFallback[b]; ok {
			t.sink.WriteString(glyph)
			t.advanceCursor(1)
			return
		}
	}
	t.sink.Write([]byte{b})
	t.advanceCursor(1)
}

func (t *Tty) advanceCursor(width int) {
	if !t.cursor.Known {
		return
	}
	x := t.cursor.X + width
	y := t.cursor.Y
	if x >= t.sx {
		x = 0
		lower := t.sy - 1
		if t.region.Known {
			lower = t.region.Lower
		}
		if y < lower {
			y++
		}
	}
	t.cursor = KnownPosition(x, y)
}

// acsFallback substitutes Unicode box-drawing runes for the vt100
// line-drawing byte codes when useACS is false (no acsc capability, or
// UTF-8 mode where SMACS is never emitted). When real ACS mode is
// active this table is bypassed entirely: SMACS already put the
// terminal into shift-out mode, so the plain ASCII byte itself is what
// the terminal expects to see.
var acsFallback = map[byte]string{
	'q': "─", // horizontal line
	'x': "│", // vertical line
	'l': "┌", // upper-left corner
	'k': "┐", // upper-right corner
	'm': "└", // lower-left corner
	'j': "┘", // lower-right corner
}
