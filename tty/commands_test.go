package tty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paneterm/ttyout/caps"
	"github.com/paneterm/ttyout/screen"
)

func TestLinefeedInScrollRegionEmitsRegionCursorThenNewline(t *testing.T) {
	tt, buf, _ := newTestTty(t, "xterm-256color")
	tt.cursor = KnownPosition(0, 0)

	ctx := &Ctx{
		OCX: 0, OCY: 23,
		ORUpper: 0, ORLower: 23,
		FullWidth: true,
		Cell:      screen.Empty(),
	}
	tt.cmdLinefeed(ctx)

	out := buf.String()
	require.Contains(t, out, "\n")
	require.False(t, ctx.NeedsRedraw)
}

func TestInsertCharacterFallsBackWhenNotFullWidth(t *testing.T) {
	tt, buf, _ := newTestTty(t, "xterm-256color")
	tt.cursor = KnownPosition(0, 0)

	ctx := &Ctx{
		OCX: 5, OCY: 0,
		Num:       3,
		FullWidth: false,
		Cell:      screen.Empty(),
	}
	tt.cmdInsertCharacter(ctx)

	require.True(t, ctx.NeedsRedraw)
	require.Empty(t, buf.String())
}

func TestClearCharacterUsesECHWhenSafe(t *testing.T) {
	tt, buf, _ := newTestTty(t, "xterm-256color")
	tt.cursor = KnownPosition(0, 0)

	ctx := &Ctx{OCX: 0, OCY: 0, Cell: screen.Empty()}
	tt.cmdClearCharacter(ctx)

	require.Contains(t, buf.String(), "X")
}

func TestSetSelectionNoOpWithoutMS(t *testing.T) {
	tt, buf, fx := newTestTty(t, "vt100")
	_ = fx

	ctx := &Ctx{Ptr: []byte("hello")}
	tt.cmdSetSelection(ctx)

	require.Empty(t, buf.String())
}

func TestCellWrapBoundaryEmitsLastCellThenNewCell(t *testing.T) {
	tt, buf, _ := newTestTty(t, "xterm-256color")
	tt.sx = 5
	tt.cursor = KnownPosition(4, 0)

	last := screen.Empty()
	last.Rune = 'A'
	cell := screen.Empty()
	cell.Rune = 'B'

	ctx := &Ctx{
		OCX: 5, OCY: 0,
		FullWidth: true,
		LastCell:  last,
		Cell:      cell,
	}
	tt.cmdCell(ctx)

	out := buf.String()
	ai := strings.IndexByte(out, 'A')
	bi := strings.IndexByte(out, 'B')
	require.GreaterOrEqual(t, ai, 0)
	require.GreaterOrEqual(t, bi, 0)
	require.Less(t, ai, bi)
}

func TestLinefeedKeepsShadowCursorAtEmittedColumn(t *testing.T) {
	tt, _, _ := newTestTty(t, "xterm-256color")
	tt.cursor = KnownPosition(0, 0)

	ctx := &Ctx{
		OCX: 5, OCY: 23,
		ORUpper: 0, ORLower: 23,
		FullWidth: true,
		Cell:      screen.Empty(),
	}
	tt.cmdLinefeed(ctx)

	require.Equal(t, KnownPosition(5, 23), tt.Cursor())
}

func TestFakeBCESuppressesBulkErase(t *testing.T) {
	tt, buf, fx := newTestTty(t, "xterm-256color")
	fx.SetFlag(caps.CapBCE, false)
	tt.cursor = KnownPosition(0, 0)

	cell := screen.Empty()
	cell.BG = screen.ANSI(4)
	ctx := &Ctx{OCX: 0, OCY: 0, FullWidth: true, Cell: cell}
	tt.cmdClearLine(ctx)

	out := buf.String()
	require.NotContains(t, out, "\x1b[K")
}
