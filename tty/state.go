// Package tty is the output engine: it renders screen.Cell grids to a
// real terminal fd through terminfo-parameterized escape sequences,
// tracking a shadow of the terminal's observable state so it only ever
// emits the bytes needed to reconcile the two.
package tty

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/paneterm/ttyout/caps"
	"github.com/paneterm/ttyout/screen"
)

// ErrNotATTY is returned by Open when the underlying file descriptor is
// not a terminal.
var ErrNotATTY = errors.New("tty: not a terminal")

// ErrClosed is returned by operations attempted after Close.
var ErrClosed = errors.New("tty: closed")

// Position is the shadow cursor location. Known is false whenever the
// engine cannot prove where the real cursor sits (right after open,
// after a resize, or after any operation whose outcome on cursor
// position is ambiguous) -- callers must never substitute a magic
// coordinate for "unknown" since that has silently caused wrong-diff
// bugs in comparable engines.
type Position struct {
	Known bool
	X, Y  int
}

// UnknownPosition is the sentinel "don't know where the cursor is" position.
var UnknownPosition = Position{}

// KnownPosition constructs a known cursor position.
func KnownPosition(x, y int) Position { return Position{Known: true, X: x, Y: y} }

// Region is the shadow scroll region (DECSTBM). Known false means the
// engine has not established a region since open/resize and must issue
// one before relying on region-relative primitives.
type Region struct {
	Known        bool
	Upper, Lower int
}

var UnknownRegion = Region{}

func KnownRegion(upper, lower int) Region { return Region{Known: true, Upper: upper, Lower: lower} }

// Mode is a bitmask of active terminal modes the engine tracks, mirroring
// tmux's MODE_* bits (cursor visibility, mouse tracking variants, focus
// events, bracketed paste, keypad).
type Mode uint32

const (
	ModeCursor Mode = 1 << iota
	ModeInsert
	ModeKeypadXmit
	ModeMouseStandard
	ModeMouseButton
	ModeMouseAny
	ModeMouseSGR
	ModeFocusEvents
	ModeBracketPaste
)

// Tty is the shadow state and entry point for the output engine: one
// instance per real terminal file descriptor, matching tmux's struct tty.
type Tty struct {
	sink *Sink
	caps caps.Capabilities
	log  *slog.Logger

	sx, sy int // terminal size in cells

	cursor Position
	region Region

	fg, bg screen.Color
	attr   screen.Attr

	mode Mode

	cursorStyleSet bool
	cursorStyle    int

	started bool
	opened  bool

	earlyWrap bool
	utf8Mode  bool
	acsActive bool

	flags Flags
}

// Flags mirrors tmux's term_flags: engine-level overrides that don't
// come from the terminfo database itself.
type Flags struct {
	Force256       bool
	ForceTrueColor bool
	NoFakeBCE      bool   // disable the fake-BCE space-painting fallback
	DebugLog       bool   // tee every emitted byte to a tmux-out-<pid>.log-style file
	DebugLogPath   string // overrides the default tmux-out-<pid>.log path when DebugLog is set
}

// FlagsFromOptions maps the caller-facing screen.Options onto the
// engine's own Flags, so New's callers don't have to duplicate the
// translation at every call site.
func FlagsFromOptions(o screen.Options) Flags {
	return Flags{
		Force256:       o.Force256,
		ForceTrueColor: o.ForceTrueColor,
		DebugLog:       o.DebugLogging,
	}
}

// New constructs a Tty around an already-open writer and a resolved
// capability set. The writer is normally the terminal's os.File, passed
// in by Init; tests pass an in-memory buffer directly. When flags.DebugLog
// is set, every emitted byte is additionally teed to a debug log file,
// matching tmux's -v output-log support; a failure to open it is logged
// and otherwise ignored, since it must never block rendering.
func New(w io.Writer, c caps.Capabilities, sx, sy int, flags Flags, logger *slog.Logger) *Tty {
	if logger == nil {
		logger = slog.Default()
	}
	sink := NewSink(w)
	if flags.DebugLog {
		path := flags.DebugLogPath
		if path == "" {
			path = fmt.Sprintf("tmux-out-%d.log", os.Getpid())
		}
		if err := sink.Tee(path); err != nil {
			logger.Warn("debug log tee failed", "path", path, "error", err)
		}
	}
	return &Tty{
		sink:   sink,
		caps:   c,
		log:    logger,
		sx:     sx,
		sy:     sy,
		cursor: UnknownPosition,
		region: UnknownRegion,
		fg:     screen.Default,
		bg:     screen.Default,
		flags:  flags,
	}
}

// SetUTF8Mode toggles whether wide-character cells are emitted as raw
// UTF-8 bytes (true) or as "_" placeholders (false, for terminals with
// no multibyte support).
func (t *Tty) SetUTF8Mode(v bool) { t.utf8Mode = v }

// Size returns the current shadow terminal size.
func (t *Tty) Size() (int, int) { return t.sx, t.sy }

// Caps exposes the resolved capability set, mainly for tests.
func (t *Tty) Caps() caps.Capabilities { return t.caps }

// Cursor returns the shadow cursor position.
func (t *Tty) Cursor() Position { return t.cursor }

// ScrollRegion returns the shadow scroll region.
func (t *Tty) ScrollRegion() Region { return t.region }

// resetShadow clears all shadow state to "unknown"/default, used by
// Lifecycle.Start, matching tty_reset/tty_invalidate. Resize resets only
// the cursor and region itself.
func (t *Tty) resetShadow() {
	t.cursor = UnknownPosition
	t.region = UnknownRegion
	t.fg = screen.Default
	t.bg = screen.Default
	t.attr = 0
	t.mode = ModeCursor
}
