package tty

import (
	"github.com/paneterm/ttyout/caps"
	"github.com/paneterm/ttyout/screen"
)

// cmdCell places the cursor and emits one styled cell, applying the
// tail-of-line wrap protocol: if this emission would land past the
// pane's usable width, either the pane is narrower than the terminal
// (the caller already issued the linefeed for this row) or the cursor
// hasn't reached the terminal's own last column yet, in which case the
// previous tail cell is re-emitted one width short of the edge so the
// terminal's own natural wrap carries the cursor onto the next row
// instead of an explicit cursor-positioning sequence.
func (t *Tty) cmdCell(ctx *Ctx) {
	width := ctx.Cell.Width
	if width < 1 {
		width = 1
	}

	rightEdge := ctx.XOff + ctx.OCX + width > t.sx
	if rightEdge && ctx.FullWidth && !t.earlyWrap {
		t.CursorTo(t.sx-width, ctx.YOff+ctx.OCY)
		t.CellPut(ctx.LastCell, ctx.Pane, ctx.Window)
	} else {
		t.CursorTo(ctx.XOff+ctx.OCX, ctx.YOff+ctx.OCY)
	}

	t.CellPut(ctx.Cell, ctx.Pane, ctx.Window)
}

// cmdUTF8Character always falls back to a full-line redraw: a partial
// multibyte codepoint might already be buffered on the real terminal
// and there is no way to know its decode state from here.
func (t *Tty) cmdUTF8Character(ctx *Ctx) {
	ctx.NeedsRedraw = true
}

// cmdRawString writes ctx.Ptr verbatim -- used for capability strings
// the higher layer has already resolved itself (e.g. a full-screen
// bell/title sequence) -- and invalidates every piece of shadow state
// that string could plausibly have disturbed.
func (t *Tty) cmdRawString(ctx *Ctx) {
	t.sink.Write(ctx.Ptr)
	t.cursor = UnknownPosition
	t.region = UnknownRegion
	if s, ok := t.caps.Expand(caps.CapSgr0); ok {
		t.sink.WriteString(s)
	}
	t.attr = 0
	t.fg = screen.Default
	t.bg = screen.Default
	t.CursorTo(0, 0)
}

// cmdSetSelection copies ctx.Ptr to the host clipboard via OSC 52,
// base64-encoded, when the terminal advertises the Ms capability;
// otherwise it is a silent no-op, matching the design contract that a
// missing capability is never an error here.
func (t *Tty) cmdSetSelection(ctx *Ctx) {
	if !t.caps.Has(caps.CapMS) {
		return
	}
	payload := base64Encode(ctx.Ptr)
	t.sink.WriteString("\x1b]52;c;" + payload + "\x07")
}
