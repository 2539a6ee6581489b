package tty

import "github.com/paneterm/ttyout/caps"

// cmdInsertLine inserts ctx.Num blank lines at the cursor's row within
// the scroll region via IL/IL1, requiring the pane to be full-width and
// the region to actually enclose the cursor row.
func (t *Tty) cmdInsertLine(ctx *Ctx) {
	if !ctx.FullWidth || t.FakeBCE(ctx.Cell, ctx.Pane, ctx.Window) ||
		ctx.OCY < ctx.ORUpper || ctx.OCY > ctx.ORLower {
		ctx.NeedsRedraw = true
		return
	}
	t.RegionSet(ctx.ORUpper, ctx.ORLower)
	t.Attributes(ctx.Cell, ctx.Pane, ctx.Window)
	t.CursorTo(ctx.XOff, ctx.YOff+ctx.OCY)
	if ctx.Num == 1 {
		if s, ok := t.caps.Expand(caps.CapIl1); ok {
			t.sink.WriteString(s)
			return
		}
	}
	if s, ok := t.caps.Expand(caps.CapIl, ctx.Num); ok {
		t.sink.WriteString(s)
		return
	}
	ctx.NeedsRedraw = true
}

// cmdDeleteLine is insertline's mirror image via DL/DL1.
func (t *Tty) cmdDeleteLine(ctx *Ctx) {
	if !ctx.FullWidth || t.FakeBCE(ctx.Cell, ctx.Pane, ctx.Window) ||
		ctx.OCY < ctx.ORUpper || ctx.OCY > ctx.ORLower {
		ctx.NeedsRedraw = true
		return
	}
	t.RegionSet(ctx.ORUpper, ctx.ORLower)
	t.Attributes(ctx.Cell, ctx.Pane, ctx.Window)
	t.CursorTo(ctx.XOff, ctx.YOff+ctx.OCY)
	if ctx.Num == 1 {
		if s, ok := t.caps.Expand(caps.CapDl1); ok {
			t.sink.WriteString(s)
			return
		}
	}
	if s, ok := t.caps.Expand(caps.CapDl, ctx.Num); ok {
		t.sink.WriteString(s)
		return
	}
	ctx.NeedsRedraw = true
}

// cmdClearLine erases the entire cursor row via EL, or space-painting.
func (t *Tty) cmdClearLine(ctx *Ctx) {
	t.CursorTo(ctx.XOff, ctx.YOff+ctx.OCY)
	if ctx.FullWidth && !t.FakeBCE(ctx.Cell, ctx.Pane, ctx.Window) {
		t.Attributes(ctx.Cell, ctx.Pane, ctx.Window)
		if s, ok := t.caps.Expand(caps.CapEl); ok {
			t.sink.WriteString(s)
			return
		}
	}
	width := 80
	if ctx.Pane != nil {
		width = ctx.Pane.SX
	}
	t.repeatSpace(ctx.Cell, ctx.Pane, ctx.Window, width)
}

// cmdClearEndOfLine erases from the cursor to the end of the row.
func (t *Tty) cmdClearEndOfLine(ctx *Ctx) {
	t.CursorTo(ctx.XOff+ctx.OCX, ctx.YOff+ctx.OCY)
	if ctx.FullWidth && !t.FakeBCE(ctx.Cell, ctx.Pane, ctx.Window) {
		t.Attributes(ctx.Cell, ctx.Pane, ctx.Window)
		if s, ok := t.caps.Expand(caps.CapEl); ok {
			t.sink.WriteString(s)
			return
		}
	}
	width := t.sx
	if ctx.Pane != nil {
		width = ctx.Pane.SX
	}
	t.repeatSpace(ctx.Cell, ctx.Pane, ctx.Window, width-ctx.OCX)
}

// cmdClearStartOfLine erases from the pane's left edge to the cursor,
// via EL1 only when the pane itself starts at terminal column 0.
func (t *Tty) cmdClearStartOfLine(ctx *Ctx) {
	t.CursorTo(ctx.XOff+ctx.OCX, ctx.YOff+ctx.OCY)
	if ctx.XOff == 0 && !t.FakeBCE(ctx.Cell, ctx.Pane, ctx.Window) {
		t.Attributes(ctx.Cell, ctx.Pane, ctx.Window)
		if s, ok := t.caps.Expand(caps.CapEl1); ok {
			t.sink.WriteString(s)
			return
		}
	}
	t.CursorTo(ctx.XOff, ctx.YOff+ctx.OCY)
	t.repeatSpace(ctx.Cell, ctx.Pane, ctx.Window, ctx.OCX+1)
}

// cmdReverseIndex scrolls the region down one line via RI, only valid
// when the cursor sits on the region's top row.
func (t *Tty) cmdReverseIndex(ctx *Ctx) {
	if ctx.OCY != ctx.ORUpper || !ctx.FullWidth {
		ctx.NeedsRedraw = true
		return
	}
	t.RegionSet(ctx.ORUpper, ctx.ORLower)
	t.CursorTo(ctx.XOff, ctx.YOff+ctx.OCY)
	if s, ok := t.caps.Expand(caps.CapRi); ok {
		t.sink.WriteString(s)
		return
	}
	ctx.NeedsRedraw = true
}

// cmdLinefeed emits a literal newline when the cursor is on the
// region's bottom row and the pane is full-width; ctx.Num != 0 marks a
// natural terminal wrap the caller already knows occurred, in which
// case nothing needs to be emitted at all unless the terminal is
// early-wrap (which forces an explicit linefeed instead of trusting the
// glitch).
func (t *Tty) cmdLinefeed(ctx *Ctx) {
	if ctx.Num != 0 && !t.earlyWrap {
		t.cursor = UnknownPosition
		return
	}
	if ctx.OCY != ctx.ORLower || !ctx.FullWidth {
		ctx.NeedsRedraw = true
		return
	}
	t.RegionSet(ctx.ORUpper, ctx.ORLower)
	t.CursorTo(ctx.XOff+ctx.OCX, ctx.YOff+ctx.OCY)
	t.sink.WriteString("\n")
	t.cursor = KnownPosition(ctx.XOff+ctx.OCX, ctx.YOff+ctx.OCY)
}
