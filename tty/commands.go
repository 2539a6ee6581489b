package tty

import (
	"encoding/base64"

	"github.com/paneterm/ttyout/caps"
	"github.com/paneterm/ttyout/screen"
)

// Command identifies one logical screen operation a higher layer can
// dispatch through Tty.Write.
type Command int

const (
	CmdInsertCharacter Command = iota
	CmdDeleteCharacter
	CmdClearCharacter
	CmdInsertLine
	CmdDeleteLine
	CmdClearLine
	CmdClearEndOfLine
	CmdClearStartOfLine
	CmdReverseIndex
	CmdLinefeed
	CmdClearEndOfScreen
	CmdClearStartOfScreen
	CmdClearScreen
	CmdAlignmentTest
	CmdCell
	CmdUTF8Character
	CmdRawString
	CmdSetSelection
)

// emulateRepeat uses the terminal's REP capability if present to repeat
// b n times, falling back to writing b n times verbatim -- the
// "tty_emulate_repeat" pattern several handlers below share.
func (t *Tty) emulateRepeat(b byte, n int) {
	if n <= 0 {
		return
	}
	if s, ok := t.caps.Expand(caps.CapRepeat, int(b), n); ok {
		t.sink.WriteString(s)
		return
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = b
	}
	t.sink.Write(buf)
}

// repeatSpace paints n space characters styled per cell -- used by
// every fallback path that can't rely on a bulk-erase primitive.
func (t *Tty) repeatSpace(cell screen.Cell, pane *screen.Pane, win *screen.Window, n int) {
	t.spacePaint(cell, pane, win, n)
}

// eraseCells clears n cells starting at the current cursor with the
// given blank styling, preferring ECH when it's safe to use, then the
// REP-capability repeat, then a per-cell space-paint loop.
func (t *Tty) eraseCells(ctx *Ctx, n int) {
	if !t.FakeBCE(ctx.Cell, ctx.Pane, ctx.Window) {
		if s, ok := t.caps.Expand(caps.CapEch, n); ok {
			t.Attributes(ctx.Cell, ctx.Pane, ctx.Window)
			t.sink.WriteString(s)
			return
		}
	}
	if !t.acsActive {
		t.Attributes(ctx.Cell, ctx.Pane, ctx.Window)
		t.emulateRepeat(' ', n)
		if t.cursor.Known {
			t.cursor = KnownPosition(t.cursor.X+n, t.cursor.Y)
		}
		return
	}
	t.repeatSpace(ctx.Cell, ctx.Pane, ctx.Window, n)
}

// Write dispatches one command, mirroring the single-threaded,
// run-to-completion command handlers in the source this is grounded on.
// Callers ready a pane/client pair via WriteToClients (component J);
// this method is the per-client handler entry point.
func (t *Tty) Write(cmd Command, ctx *Ctx) {
	switch cmd {
	case CmdInsertCharacter:
		t.cmdInsertCharacter(ctx)
	case CmdDeleteCharacter:
		t.cmdDeleteCharacter(ctx)
	case CmdClearCharacter:
		t.cmdClearCharacter(ctx)
	case CmdInsertLine:
		t.cmdInsertLine(ctx)
	case CmdDeleteLine:
		t.cmdDeleteLine(ctx)
	case CmdClearLine:
		t.cmdClearLine(ctx)
	case CmdClearEndOfLine:
		t.cmdClearEndOfLine(ctx)
	case CmdClearStartOfLine:
		t.cmdClearStartOfLine(ctx)
	case CmdReverseIndex:
		t.cmdReverseIndex(ctx)
	case CmdLinefeed:
		t.cmdLinefeed(ctx)
	case CmdClearEndOfScreen:
		t.cmdClearEndOfScreen(ctx)
	case CmdClearStartOfScreen:
		t.cmdClearStartOfScreen(ctx)
	case CmdClearScreen:
		t.cmdClearScreen(ctx)
	case CmdAlignmentTest:
		t.cmdAlignmentTest(ctx)
	case CmdCell:
		t.cmdCell(ctx)
	case CmdUTF8Character:
		t.cmdUTF8Character(ctx)
	case CmdRawString:
		t.cmdRawString(ctx)
	case CmdSetSelection:
		t.cmdSetSelection(ctx)
	}
}

// base64Encode is used by cmdSetSelection for the OSC 52 payload.
func base64Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
