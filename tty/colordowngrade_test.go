package tty

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paneterm/ttyout/caps"
	"github.com/paneterm/ttyout/screen"
)

func Test8ColorTerminalDowngradesPalette256(t *testing.T) {
	tt, _, fx := newTestTty(t, "xterm-256color")
	fx.SetNumber(caps.CapColors, 8)

	result := tt.checkColor(screen.Palette256(196), false)
	require.Equal(t, screen.ColorANSI, result.Color.Flag)
	require.True(t, result.Color.Value <= 7)
}

func TestDowngradeIsIdempotent(t *testing.T) {
	tt, _, fx := newTestTty(t, "xterm-256color")
	fx.SetNumber(caps.CapColors, 8)

	once := tt.checkColor(screen.Palette256(196), false)
	twice := tt.checkColor(once.Color, false)
	require.Equal(t, once.Color, twice.Color)
}

func TestAixtermBrightBackgroundDropsBrightBit(t *testing.T) {
	tt, _, fx := newTestTty(t, "xterm-256color")
	fx.SetNumber(caps.CapColors, 8)

	result := tt.checkColor(screen.ANSI(12), true)
	require.False(t, result.AddBright)
	require.Equal(t, 4, result.Color.Value)
}

func TestAixtermBrightForegroundOnLowColorAddsBrightAttr(t *testing.T) {
	tt, _, fx := newTestTty(t, "xterm-256color")
	fx.SetNumber(caps.CapColors, 8)

	result := tt.checkColor(screen.ANSI(12), false)
	require.True(t, result.AddBright)
	require.Equal(t, 4, result.Color.Value)
}
