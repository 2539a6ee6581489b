//go:build unix

package tty

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/paneterm/ttyout/caps"
)

// Lifecycle owns a real terminal file descriptor across
// init/open/start/stop/resize/close, saving and restoring termios the
// way tty_init_termios/tty_raw do in the source this is grounded on.
type Lifecycle struct {
	tty *Tty
	fd  int
	f   *os.File

	saved *unix.Termios
}

// Init validates fd is a terminal and returns a Lifecycle wrapping it.
// It does not touch the terminal's mode; that happens in Start.
func Init(f *os.File, termType string, sx, sy int, flags Flags, logger *slog.Logger) (*Lifecycle, *Tty, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, nil, ErrNotATTY
	}
	c, _ := caps.Lookup(termType)
	tt := New(f, c, sx, sy, flags, logger)
	return &Lifecycle{tty: tt, fd: fd, f: f}, tt, nil
}

// Open resolves capabilities (already done in Init here, since this
// package's capability source is static) and starts the terminal.
func (l *Lifecycle) Open() error {
	if _, ok := caps.Lookup(l.tty.caps.Name()); !ok && l.tty.caps.Name() == "vt100" {
		l.tty.log.Warn("unknown terminal type, falling back to vt100")
	}
	return l.Start()
}

// Start saves the current termios, applies tmux's exact raw-mode flag
// mask, and puts the terminal into alternate-screen mode ready to
// receive output.
func (l *Lifecycle) Start() error {
	saved, err := unix.IoctlGetTermios(l.fd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("tty: get termios: %w", err)
	}
	l.saved = saved

	raw := *saved
	raw.Iflag &^= unix.IXON | unix.IXOFF | unix.ICRNL | unix.INLCR | unix.IGNCR | unix.ISTRIP
	raw.Iflag |= unix.IGNBRK
	raw.Oflag &^= unix.OPOST | unix.ONLCR | unix.OCRNL | unix.ONLRET
	raw.Lflag &^= unix.IEXTEN | unix.ICANON | unix.ECHO | unix.ECHOE | unix.ECHONL | unix.ECHOCTL | unix.ECHOKE | unix.ISIG
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(l.fd, unix.TCSETS, &raw); err != nil {
		return fmt.Errorf("tty: set termios: %w", err)
	}

	t := l.tty
	t.sink.WriteString(mustExpand(t, caps.CapSmcup))
	t.sink.WriteString(mustExpand(t, caps.CapSgr0))
	t.sink.WriteString(mustExpand(t, caps.CapRmkx))
	if _, ok := t.caps.String(caps.CapEnacs); ok {
		t.sink.WriteString(mustExpand(t, caps.CapEnacs))
	}
	t.sink.WriteString(mustExpand(t, caps.CapClear))
	t.sink.WriteString(mustExpand(t, caps.CapCnorm))
	t.transitionMouse(t.mode&(ModeMouseStandard|ModeMouseButton|ModeMouseAny|ModeMouseSGR), 0)
	t.sink.Flush()

	t.resetShadow()
	t.started = true
	t.opened = true
	t.log.Debug("tty started", "fd", l.fd)
	return nil
}

// Stop reverses Start: it restores line discipline and emits the exact
// teardown sequence, tolerating ioctl failures since the fd may already
// be half-gone by the time this runs. The reset bytes are assembled
// into one buffer and pushed out via Sink.WriteRawRetry rather than the
// normal buffered Write/Flush path, since by teardown time the buffered
// writer's short-write handling is no longer something this code can
// rely on.
func (l *Lifecycle) Stop() {
	t := l.tty
	sy := t.sy

	var b strings.Builder
	b.WriteString(mustExpandN(t, caps.CapCsr, 0, sy-1))
	if s, ok := t.caps.String(caps.CapRmacs); ok {
		b.WriteString(s)
	}
	b.WriteString(mustExpand(t, caps.CapSgr0))
	b.WriteString(mustExpand(t, caps.CapRmkx))
	b.WriteString(mustExpand(t, caps.CapClear))
	if s, ok := t.caps.String(caps.CapSe); ok {
		b.WriteString(s)
	} else if s, ok := t.caps.Expand(caps.CapSs, 0); ok {
		b.WriteString(s)
	}
	b.WriteString("\x1b[?2004l")
	b.WriteString("\r")
	b.WriteString(mustExpand(t, caps.CapCnorm))
	t.transitionMouseTo(t.mode&(ModeMouseStandard|ModeMouseButton|ModeMouseAny|ModeMouseSGR), 0, &b)
	b.WriteString("\x1b[?1004l")
	b.WriteString(mustExpand(t, caps.CapRmcup))

	t.sink.Flush()
	t.sink.WriteRawRetry([]byte(b.String()))

	if l.saved != nil {
		if err := unix.IoctlSetTermios(l.fd, unix.TCSETS, l.saved); err != nil {
			t.log.Warn("restore termios failed", "error", err)
		}
	}
	t.started = false
	t.log.Debug("tty stopped", "fd", l.fd)
}

// Resize re-queries the window size via TIOCGWINSZ, falling back to
// 80x24 on ioctl failure, and resyncs the shadow the way tty_resize
// does when the terminal was already started.
func (l *Lifecycle) Resize() {
	sx, sy := 80, 24
	if ws, err := unix.IoctlGetWinsize(l.fd, unix.TIOCGWINSZ); err == nil && ws.Col > 0 && ws.Row > 0 {
		sx, sy = int(ws.Col), int(ws.Row)
	}
	l.tty.sx, l.tty.sy = sx, sy
	l.tty.cursor = UnknownPosition
	l.tty.region = UnknownRegion
	if l.tty.started {
		l.tty.CursorTo(0, 0)
		l.tty.RegionSet(0, sy-1)
	}
	l.tty.log.Debug("tty resized", "sx", sx, "sy", sy)
}

// Close flushes and releases the debug log tee, if any. It does not
// close the underlying file descriptor: ownership of that belongs to
// whoever passed it to Init.
func (l *Lifecycle) Close() error {
	return l.tty.sink.Close()
}

// SetTitle sets the terminal window title via TSL/FSL.
func (t *Tty) SetTitle(s string) {
	tsl, ok := t.caps.String(caps.CapTsl)
	if !ok {
		return
	}
	fsl, _ := t.caps.String(caps.CapFsl)
	t.sink.WriteString(tsl)
	t.sink.WriteString(s)
	t.sink.WriteString(fsl)
}

// SetCursorColour forces the text cursor colour via OSC 12, using a
// literal escape since no terminfo capability covers it portably.
func (t *Tty) SetCursorColour(name string) {
	if name == "" {
		t.sink.WriteString("\x1b]112\x07")
		return
	}
	t.sink.WriteString("\x1b]12;" + name + "\x07")
}

func mustExpand(t *Tty, c caps.Cap) string {
	s, _ := t.caps.Expand(c)
	return s
}

func mustExpandN(t *Tty, c caps.Cap, params ...int) string {
	s, _ := t.caps.Expand(c, params...)
	return s
}
