package tty

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paneterm/ttyout/caps"
)

// flushBuf wraps a bytes.Buffer and flushes the Tty's internal sink
// before exposing the buffer's contents, since Sink buffers writes via
// bufio and tests need to observe bytes that haven't crossed a flush
// boundary yet.
type flushBuf struct {
	buf *bytes.Buffer
	tt  *Tty
}

func (f *flushBuf) String() string {
	f.tt.sink.Flush()
	return f.buf.String()
}

func (f *flushBuf) Reset() { f.buf.Reset() }

func newTestTty(t *testing.T, termType string) (*Tty, *flushBuf, *caps.Fixture) {
	t.Helper()
	raw := &bytes.Buffer{}
	fx := caps.NewFixture(termType)
	tt := New(raw, fx, 80, 24, Flags{}, nil)
	return tt, &flushBuf{buf: raw, tt: tt}, fx
}

func TestCursorToIdempotent(t *testing.T) {
	tt, buf, _ := newTestTty(t, "xterm-256color")
	tt.cursor = KnownPosition(10, 5)

	tt.CursorTo(10, 5)
	require.Empty(t, buf.String())
}

func TestCursorToHomeAtOrigin(t *testing.T) {
	tt, buf, _ := newTestTty(t, "xterm-256color")
	tt.cursor = KnownPosition(10, 5)

	tt.CursorTo(0, 0)
	require.Equal(t, "\x1b[H", buf.String())
	require.Equal(t, KnownPosition(0, 0), tt.cursor)
}

func TestCursorToSameRowPrefersSingleStep(t *testing.T) {
	tt, buf, _ := newTestTty(t, "xterm-256color")
	tt.cursor = KnownPosition(5, 3)

	tt.CursorTo(6, 3)
	require.Equal(t, "\x1b[C", buf.String())
}

func TestCursorToSameRowLeftStep(t *testing.T) {
	tt, buf, _ := newTestTty(t, "xterm-256color")
	tt.cursor = KnownPosition(6, 3)

	tt.CursorTo(5, 3)
	require.Equal(t, "\x08", buf.String())
}

func TestCursorToAbsoluteFallback(t *testing.T) {
	tt, buf, _ := newTestTty(t, "xterm-256color")
	tt.cursor = UnknownPosition

	tt.CursorTo(4, 2)
	require.Equal(t, "\x1b[3;5H", buf.String())
	require.Equal(t, KnownPosition(4, 2), tt.cursor)
}

func TestCursorToClampsToRightEdge(t *testing.T) {
	tt, _, _ := newTestTty(t, "xterm-256color")
	tt.cursor = UnknownPosition

	tt.CursorTo(1000, 0)
	require.Equal(t, KnownPosition(tt.sx-1, 0), tt.cursor)
}

func TestRegionSetIdempotent(t *testing.T) {
	tt, buf, _ := newTestTty(t, "xterm-256color")
	tt.cursor = KnownPosition(0, 0)

	tt.RegionSet(0, 23)
	first := buf.String()
	require.NotEmpty(t, first)

	buf.Reset()
	tt.RegionSet(0, 23)
	require.Empty(t, buf.String())
}
