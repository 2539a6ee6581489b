package tty

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paneterm/ttyout/caps"
	"github.com/paneterm/ttyout/screen"
)

func TestAttributesEmitsNothingWhenUnchanged(t *testing.T) {
	tt, buf, _ := newTestTty(t, "xterm-256color")

	tt.Attributes(screen.Empty(), nil, nil)
	require.Empty(t, buf.String())
}

func TestAttributesEmitsSGR0WhenDroppingAttr(t *testing.T) {
	tt, buf, _ := newTestTty(t, "xterm-256color")
	tt.attr = screen.AttrBright

	buf.Reset()
	tt.Attributes(screen.Empty(), nil, nil)
	require.Contains(t, buf.String(), "\x1b[m")
}

func TestReverseAsBackgroundFallbackWhenNoSetab(t *testing.T) {
	tt, buf, fx := newTestTty(t, "xterm-256color")
	fx.Unset(caps.CapSetab)

	cell := screen.Empty()
	cell.FG = screen.ANSI(7)
	cell.BG = screen.ANSI(4)

	tt.Attributes(cell, nil, nil)
	require.Contains(t, buf.String(), "7m") // REV/SMSO landed somewhere in the sequence
	require.Equal(t, screen.Attr(screen.AttrReverse), tt.attr&screen.AttrReverse)
}

func TestDefaultColourUsesAXWhenFlagSet(t *testing.T) {
	tt, buf, _ := newTestTty(t, "xterm-256color")
	tt.fg = screen.ANSI(2)
	tt.bg = screen.ANSI(4)

	tt.Attributes(screen.Empty(), nil, nil)
	require.Contains(t, buf.String(), "\x1b[39m")
	require.Contains(t, buf.String(), "\x1b[49m")
}

func TestDefaultColourFallsBackToResetWithoutAX(t *testing.T) {
	tt, buf, fx := newTestTty(t, "xterm-256color")
	fx.SetFlag(caps.CapAX, false)
	tt.fg = screen.ANSI(2)
	tt.bg = screen.ANSI(4)

	tt.Attributes(screen.Empty(), nil, nil)
	require.Contains(t, buf.String(), "\x1b[m")
	require.NotContains(t, buf.String(), "\x1b[39m")
}

func TestDefaultColourUsesSetafSetabWithoutAXOrOp(t *testing.T) {
	tt, buf, fx := newTestTty(t, "xterm-256color")
	fx.SetFlag(caps.CapAX, false)
	fx.Unset(caps.CapOp)
	tt.fg = screen.ANSI(2)
	tt.bg = screen.ANSI(4)

	tt.Attributes(screen.Empty(), nil, nil)
	out := buf.String()
	require.NotContains(t, out, "\x1b[39m")
	require.NotContains(t, out, "\x1b[m")
	require.Contains(t, out, "37m")
	require.Contains(t, out, "40m")
}

func TestCharsetAttributeEmitsSmacsAndRmacs(t *testing.T) {
	tt, buf, _ := newTestTty(t, "xterm-256color")

	on := screen.Empty()
	on.Attr = screen.AttrCharset
	tt.Attributes(on, nil, nil)
	require.Contains(t, buf.String(), "\x0e")
	require.True(t, tt.acsActive)

	buf.Reset()
	tt.Attributes(screen.Empty(), nil, nil)
	require.Contains(t, buf.String(), "\x0f")
	require.False(t, tt.acsActive)
}

func TestCharsetAttributeSkipsSmacsInUTF8Mode(t *testing.T) {
	tt, buf, _ := newTestTty(t, "xterm-256color")
	tt.SetUTF8Mode(true)

	on := screen.Empty()
	on.Attr = screen.AttrCharset
	tt.Attributes(on, nil, nil)
	require.NotContains(t, buf.String(), "\x0e")
	require.False(t, tt.acsActive)
}

func TestPalette256DowngradeEmitsBoldPlusSetaf(t *testing.T) {
	tt, buf, fx := newTestTty(t, "xterm-256color")
	fx.SetNumber(caps.CapColors, 8)

	cell := screen.Empty()
	cell.FG = screen.Palette256(196)

	tt.Attributes(cell, nil, nil)
	out := buf.String()
	require.Contains(t, out, "\x1b[1m")
	require.Contains(t, out, "\x1b[31m")
}
