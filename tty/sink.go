package tty

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"
)

// Sink is the output buffering layer: every escape sequence and cell
// byte the engine produces funnels through here before reaching the
// terminal fd. It optionally tees everything written to a debug log
// file, matching tmux's -v output-log support.
type Sink struct {
	w   *bufio.Writer
	raw io.Writer // unwrapped, for the panic-tolerant raw path used at teardown
	tee *os.File
}

// NewSink wraps w in a buffered writer.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: bufio.NewWriter(w), raw: w}
}

// Tee opens (creating/truncating) a debug log file at path and begins
// mirroring every write to it, matching tmux's tmux-out-<pid>.log. The
// file is opened with 0644 permissions; it is not marked close-on-exec
// here since Go's os.OpenFile already sets O_CLOEXEC by default on unix.
func (s *Sink) Tee(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("tty: open debug log: %w", err)
	}
	s.tee = f
	return nil
}

// Write buffers p, flushing lazily. Command dispatch calls this for
// every emitted byte sequence; nothing reaches the terminal until Flush,
// or until the buffer fills and bufio.Writer writes it out.
func (s *Sink) Write(p []byte) (int, error) {
	if s.tee != nil {
		s.tee.Write(p) //nolint:errcheck // debug log failures must never block rendering
	}
	return s.w.Write(p)
}

// WriteString is the string-argument convenience most callers use.
func (s *Sink) WriteString(str string) (int, error) {
	return s.Write([]byte(str))
}

// Flush pushes any buffered bytes out to the terminal fd.
func (s *Sink) Flush() error {
	return s.w.Flush()
}

// Close flushes and closes the debug log tee, if any.
func (s *Sink) Close() error {
	err := s.Flush()
	if s.tee != nil {
		if cerr := s.tee.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// WriteRawRetry bypasses the buffered writer and pushes p straight to
// the underlying writer via RawRetryWrite. Teardown sequences use this
// instead of Write/Flush: by the time Stop runs, the buffered writer's
// short-write/retry behavior is no longer trustworthy, so the final
// reset bytes need the bounded raw retry loop instead. It does not tee
// to the debug log -- that log records rendering output, not the raw
// bytes a panic-tolerant teardown path forces out.
func (s *Sink) WriteRawRetry(p []byte) {
	RawRetryWrite(s.raw, p)
}

// RawRetryWrite bypasses the buffer entirely and writes p directly to
// the underlying writer, retrying a handful of times on short or
// interrupted writes. It exists for the teardown path (stop/close),
// where the engine must get its terminal-reset sequence out even if the
// buffered writer's state is unreliable, and must never block
// indefinitely doing so.
func RawRetryWrite(w io.Writer, p []byte) {
	const maxAttempts = 5
	for attempt := 0; attempt < maxAttempts && len(p) > 0; attempt++ {
		n, err := w.Write(p)
		if n > 0 {
			p = p[n:]
		}
		if err == nil && len(p) == 0 {
			return
		}
		time.Sleep(100 * time.Microsecond)
	}
}
