package tty

import "github.com/paneterm/ttyout/caps"

// RegionSet programs the scroll region via CSR, idempotent against the
// shadow. If CSR is unavailable this is a no-op: dispatch has already
// decided to fall back to a redraw in that case.
func (t *Tty) RegionSet(upper, lower int) {
	if t.region.Known && t.region.Upper == upper && t.region.Lower == lower {
		return
	}
	// PuTTY workaround: if the shadow cursor sits past the right edge
	// (ambiguous post-wrap state), home the column before touching CSR.
	if t.cursor.Known && t.cursor.X >= t.sx {
		t.CursorTo(0, t.cursor.Y)
	}

	s, ok := t.caps.Expand(caps.CapCsr, upper, lower)
	if !ok {
		return
	}
	t.sink.WriteString(s)
	t.region = KnownRegion(upper, lower)
	// CSR reparks the cursor at the terminal origin on every terminal
	// this engine targets.
	t.cursor = UnknownPosition
	t.CursorTo(0, 0)
}
