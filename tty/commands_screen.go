package tty

import "github.com/paneterm/ttyout/caps"

// cmdClearEndOfScreen erases from the cursor to the bottom-right of the
// pane, one row at a time: EL on the cursor's own row's tail, EL (or
// space-painting) on every row below it.
func (t *Tty) cmdClearEndOfScreen(ctx *Ctx) {
	t.cmdClearEndOfLine(ctx)
	height := ctx.Pane.SY
	for y := ctx.OCY + 1; y < height; y++ {
		t.CursorTo(ctx.XOff, ctx.YOff+y)
		t.clearRow(ctx)
	}
}

// cmdClearStartOfScreen mirrors cmdClearEndOfScreen upward.
func (t *Tty) cmdClearStartOfScreen(ctx *Ctx) {
	t.cmdClearStartOfLine(ctx)
	for y := 0; y < ctx.OCY; y++ {
		t.CursorTo(ctx.XOff, ctx.YOff+y)
		t.clearRow(ctx)
	}
}

// cmdClearScreen erases every row of the pane.
func (t *Tty) cmdClearScreen(ctx *Ctx) {
	height := ctx.Pane.SY
	for y := 0; y < height; y++ {
		t.CursorTo(ctx.XOff, ctx.YOff+y)
		t.clearRow(ctx)
	}
}

func (t *Tty) clearRow(ctx *Ctx) {
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

// cmdAlignmentTest fills every cell of the pane with 'E', unconditionally
// space-painting (there is no bulk primitive to abuse for a fill
// pattern other than blanks).
func (t *Tty) cmdAlignmentTest(ctx *Ctx) {
	height, width := 24, 80
	if ctx.Pane != nil {
		height, width = ctx.Pane.SY, ctx.Pane.SX
	}
	fill := ctx.Cell
	fill.Rune = 'E'
	fill.Width = 1
	for y := 0; y < height; y++ {
		t.CursorTo(ctx.XOff, ctx.YOff+y)
		for x := 0; x < width; x++ {
			t.CellPut(fill, ctx.Pane, ctx.Window)
		}
	}
}
