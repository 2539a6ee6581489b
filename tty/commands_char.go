package tty

import "github.com/paneterm/ttyout/caps"

// cmdInsertCharacter inserts ctx.Num blank cells at the cursor, shifting
// the rest of the line right, via ICH/ICH1 when the pane spans the full
// terminal width and fake-BCE doesn't forbid it; otherwise the caller's
// redraw fallback (signalled through ctx.NeedsRedraw) is the only correct option
// since there is no portable insert-without-shift-loss primitive.
func (t *Tty) cmdInsertCharacter(ctx *Ctx) {
	if !ctx.FullWidth || t.FakeBCE(ctx.Cell, ctx.Pane, ctx.Window) {
		ctx.NeedsRedraw = true
		return
	}
	t.Attributes(ctx.Cell, ctx.Pane, ctx.Window)
	t.CursorTo(ctx.XOff+ctx.OCX, ctx.YOff+ctx.OCY)
	if ctx.Num == 1 {
		if s, ok := t.caps.Expand(caps.CapIch1); ok {
			t.sink.WriteString(s)
			return
		}
	}
	if s, ok := t.caps.Expand(caps.CapIch, ctx.Num); ok {
		t.sink.WriteString(s)
		return
	}
	ctx.NeedsRedraw = true
}

// cmdDeleteCharacter is insertcharacter's mirror image via DCH/DCH1.
func (t *Tty) cmdDeleteCharacter(ctx *Ctx) {
	if !ctx.FullWidth || t.FakeBCE(ctx.Cell, ctx.Pane, ctx.Window) {
		ctx.NeedsRedraw = true
		return
	}
	t.Attributes(ctx.Cell, ctx.Pane, ctx.Window)
	t.CursorTo(ctx.XOff+ctx.OCX, ctx.YOff+ctx.OCY)
	if ctx.Num == 1 {
		if s, ok := t.caps.Expand(caps.CapDch1); ok {
			t.sink.WriteString(s)
			return
		}
	}
	if s, ok := t.caps.Expand(caps.CapDch, ctx.Num); ok {
		t.sink.WriteString(s)
		return
	}
	ctx.NeedsRedraw = true
}

// cmdClearCharacter erases ctx.Num cells in place via ECH, or by
// space-painting when fake-BCE applies or ECH is absent.
func (t *Tty) cmdClearCharacter(ctx *Ctx) {
	t.CursorTo(ctx.XOff+ctx.OCX, ctx.YOff+ctx.OCY)
	t.eraseCells(ctx, ctx.Num)
}
