package tty

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteRawRetryDoesNotTeeToDebugLog(t *testing.T) {
	dir := t.TempDir()
	buf := &bytes.Buffer{}
	s := NewSink(buf)
	require.NoError(t, s.Tee(filepath.Join(dir, "debug.log")))

	s.WriteString("rendered")
	s.WriteRawRetry([]byte("\x1b[!p"))
	require.NoError(t, s.Close())

	logged, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	require.NoError(t, err)
	require.Contains(t, string(logged), "rendered")
	require.NotContains(t, string(logged), "\x1b[!p")
}

// partialWriter returns a short write with a nil error on its first call,
// then accepts the remainder, exercising the n>0/err==nil retry branch.
type partialWriter struct {
	calls int
	out   bytes.Buffer
}

func (p *partialWriter) Write(b []byte) (int, error) {
	p.calls++
	if p.calls == 1 && len(b) > 1 {
		n, _ := p.out.Write(b[:1])
		return n, nil
	}
	return p.out.Write(b)
}

func TestRawRetryWriteRetriesAfterPartialWrite(t *testing.T) {
	pw := &partialWriter{}
	RawRetryWrite(pw, []byte("hello"))

	require.Equal(t, "hello", pw.out.String())
	require.GreaterOrEqual(t, pw.calls, 2)
}

func TestRawRetryWriteGivesUpAfterMaxAttempts(t *testing.T) {
	RawRetryWrite(io.Discard, nil)

	failing := &alwaysErrWriter{}
	RawRetryWrite(failing, []byte("x"))
	require.Equal(t, 5, failing.calls)
}

type alwaysErrWriter struct{ calls int }

func (w *alwaysErrWriter) Write(b []byte) (int, error) {
	w.calls++
	return 0, os.ErrClosed
}
