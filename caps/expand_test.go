package caps

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandCup(t *testing.T) {
	tbl, found := Lookup("xterm-256color")
	require.True(t, found)

	s, ok := tbl.Expand(CapCup, 5, 10)
	require.True(t, ok)
	require.Equal(t, "\x1b[6;11H", s)
}

func TestExpandSetafLowColors(t *testing.T) {
	tbl, _ := Lookup("xterm-256color")

	s, ok := tbl.Expand(CapSetaf, 3)
	require.True(t, ok)
	require.Equal(t, "\x1b[33m", s)
}

func TestExpandSetafAixtermBright(t *testing.T) {
	tbl, _ := Lookup("xterm-256color")

	s, ok := tbl.Expand(CapSetaf, 12)
	require.True(t, ok)
	require.Equal(t, "\x1b[94m", s)
}

func TestExpandSetaf256(t *testing.T) {
	tbl, _ := Lookup("xterm-256color")

	s, ok := tbl.Expand(CapSetaf, 200)
	require.True(t, ok)
	require.Equal(t, "\x1b[38;5;200m", s)
}

func TestLookupUnknownFallsBackToVT100(t *testing.T) {
	tbl, found := Lookup("some-made-up-terminal")
	require.False(t, found)
	require.Equal(t, "vt100", tbl.Name())
}

func TestFixtureUnsetCapability(t *testing.T) {
	f := NewFixture("xterm-256color")
	f.Unset(CapSetab)

	_, ok := f.String(CapSetab)
	require.False(t, ok)
}
