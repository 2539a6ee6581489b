package tty

import (
	"github.com/paneterm/ttyout/caps"
	"github.com/paneterm/ttyout/screen"
)

// DrawLine renders row py of pane's grid at terminal row oy, column ox,
// mirroring tty_draw_line. prevWrapped reports whether the previous
// line ended in a natural terminal wrap; when it did and the shadow
// cursor already sits past the pane's right edge with the pane flush
// against the terminal's left edge, positioning the cursor before
// painting this line is redundant -- the terminal already wrapped onto
// it -- so the wrap-preservation predicate skips that emission.
func (t *Tty) DrawLine(pane *screen.Pane, win *screen.Window, py, ox, oy int, prevWrapped bool) {
	wasVisible := t.mode&ModeCursor != 0
	if wasVisible {
		t.mode &^= ModeCursor
	}

	sx := pane.SX
	if pane.Grid != nil && pane.Grid.Cols < sx {
		sx = pane.Grid.Cols
	}
	if t.sx-ox < sx {
		sx = t.sx - ox
	}
	if sx < 0 {
		sx = 0
	}

	skipPosition := py > 0 && prevWrapped && t.cursor.Known &&
		t.cursor.X >= sx && ox == 0

	if !skipPosition {
		t.CursorTo(ox, oy+py)
	}

	for i := 0; i < sx; i++ {
		cell := pane.Grid.CellAt(i, py)
		if cell.Attr&screen.AttrSelected != 0 {
			cell = mixSelection(cell, win)
		}
		t.CellPut(cell, pane, win)
	}

	fullWidth := ox+sx >= t.sx
	if pane.Grid != nil && sx < pane.Grid.Cols {
		blank := screen.Empty()
		fake := t.FakeBCE(blank, pane, win)
		if fullWidth && !fake {
			t.Attributes(blank, pane, win)
			if s, ok := t.caps.Expand(caps.CapEl); ok {
				t.sink.WriteString(s)
			}
		} else {
			t.spacePaint(blank, pane, win, pane.Grid.Cols-sx)
		}
	}

	if wasVisible {
		t.mode |= ModeCursor
	}
}

// mixSelection paints a copy-mode/mouse-selection highlight over cell,
// using the window's configured selection colours when it has any, and
// falling back to a plain reverse-video swap otherwise (tmux's
// mode-style default).
func mixSelection(cell screen.Cell, win *screen.Window) screen.Cell {
	if win != nil && (!win.SelectionStyle.FG.IsDefault() || !win.SelectionStyle.BG.IsDefault()) {
		if !win.SelectionStyle.FG.IsDefault() {
			cell.FG = win.SelectionStyle.FG
		}
		if !win.SelectionStyle.BG.IsDefault() {
			cell.BG = win.SelectionStyle.BG
		}
		return cell
	}
	cell.Attr |= screen.AttrReverse
	return cell
}

// spacePaint writes n space characters styled as cell, used everywhere
// a bulk-erase primitive would be unsafe (fake-BCE) or simply absent.
func (t *Tty) spacePaint(cell screen.Cell, pane *screen.Pane, win *screen.Window, n int) {
	blank := cell
	blank.Rune = ' '
	blank.Width = 1
	for i := 0; i < n; i++ {
		t.CellPut(blank, pane, win)
	}
}

// RedrawRegion decides, per tty_redraw_region, whether the affected
// span is large enough that the caller should just redraw the whole
// pane; it returns the row range to redraw when a partial redraw
// suffices, and ok=false when the caller should redraw everything.
func RedrawRegion(orUpper, orLower, ocy, screenHeight int) (start, end int, ok bool) {
	span := orLower - orUpper + 1
	if screenHeight > 0 && span*2 > screenHeight {
		return 0, 0, false
	}
	if ocy < orUpper || ocy > orLower {
		return ocy, screenHeight - 1, true
	}
	return orUpper, orLower, true
}
