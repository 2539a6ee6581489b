package tty

import (
	"io"

	"github.com/paneterm/ttyout/caps"
)

const (
	capCnorm = caps.CapCnorm
	capCivis = caps.CapCivis
	capSmkx  = caps.CapSmkx
	capRmkx  = caps.CapRmkx
)

// emitCapString writes the (no-argument) expansion of cap if present.
func (t *Tty) emitCapString(c caps.Cap) {
	if s, ok := t.caps.Expand(c); ok {
		t.sink.WriteString(s)
	}
}

// UpdateMode reconciles the shadow mode bitset against want, emitting
// the sequences needed to transition. Mouse-mode ordering is the one
// place this matters: enabling SGR (1006) always happens before the
// selected tracking mode, since some terminals let "last enable wins"
// pick the decoder and SGR is universally preferred; disabling reverses
// the order, tracking mode first, then SGR.
func (t *Tty) UpdateMode(want Mode) {
	if want&ModeCursor != t.mode&ModeCursor {
		if want&ModeCursor != 0 {
			t.emitCapString(capCnorm)
		} else {
			t.emitCapString(capCivis)
		}
	}

	wantMouse := want & (ModeMouseStandard | ModeMouseButton | ModeMouseAny | ModeMouseSGR)
	curMouse := t.mode & (ModeMouseStandard | ModeMouseButton | ModeMouseAny | ModeMouseSGR)
	if wantMouse != curMouse {
		t.transitionMouse(curMouse, wantMouse)
	}

	if want&ModeFocusEvents != t.mode&ModeFocusEvents {
		if want&ModeFocusEvents != 0 {
			t.sink.WriteString("\x1b[?1004h")
		} else {
			t.sink.WriteString("\x1b[?1004l")
		}
	}

	if want&ModeBracketPaste != t.mode&ModeBracketPaste {
		if want&ModeBracketPaste != 0 {
			t.sink.WriteString("\x1b[?2004h")
		} else {
			t.sink.WriteString("\x1b[?2004l")
		}
	}

	if want&ModeKeypadXmit != t.mode&ModeKeypadXmit {
		if want&ModeKeypadXmit != 0 {
			t.emitCapString(capSmkx)
		} else {
			t.emitCapString(capRmkx)
		}
	}

	t.mode = want
}

// transitionMouse implements the ordered enable/disable table described
// in the design notes this engine follows: SGR before tracking mode on
// enable, tracking mode before SGR on disable. It writes through the
// Tty's own sink.
func (t *Tty) transitionMouse(cur, want Mode) {
	t.transitionMouseTo(cur, want, t.sink)
}

// transitionMouseTo is transitionMouse against an arbitrary
// io.StringWriter, letting teardown assemble the sequence into a
// buffer instead of the buffered sink.
func (t *Tty) transitionMouseTo(cur, want Mode, w io.StringWriter) {
	enablingSGR := want&ModeMouseSGR != 0 && cur&ModeMouseSGR == 0
	disablingSGR := cur&ModeMouseSGR != 0 && want&ModeMouseSGR == 0

	if enablingSGR {
		w.WriteString("\x1b[?1006h")
	}

	toggle := func(bit Mode, code string) {
		if want&bit != 0 && cur&bit == 0 {
			w.WriteString("\x1b[?" + code + "h")
		} else if cur&bit != 0 && want&bit == 0 {
			w.WriteString("\x1b[?" + code + "l")
		}
	}
	toggle(ModeMouseStandard, "1000")
	toggle(ModeMouseButton, "1002")
	toggle(ModeMouseAny, "1003")

	if disablingSGR {
		w.WriteString("\x1b[?1006l")
	}
}
