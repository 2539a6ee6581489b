package tty

import "github.com/paneterm/ttyout/caps"

// CursorTo moves the shadow (and, by emission, the real) cursor to
// (cx, cy), choosing the cheapest sequence the terminal's capabilities
// allow. See the decision tree this follows in order: HOME, CR+LF,
// same-row single-step/HPA/CUB/CUF, same-column single-step/VPA/CUU/CUD,
// and finally absolute CUP.
func (t *Tty) CursorTo(cx, cy int) {
	if cx > t.sx-1 {
		cx = t.sx - 1
	}
	if cx < 0 {
		cx = 0
	}

	if t.cursor.Known && t.cursor.X == cx && t.cursor.Y == cy {
		return
	}

	// A shadow cx sitting past the right edge means the terminal's
	// cursor position after the last emission is ambiguous (natural
	// wrap may or may not have occurred yet) -- force absolute.
	forceAbsolute := t.cursor.Known && t.cursor.X > t.sx-1

	if !forceAbsolute {
		if cx == 0 && cy == 0 {
			if s, ok := t.caps.Expand(caps.CapHome); ok {
				t.sink.WriteString(s)
				t.cursor = KnownPosition(0, 0)
				return
			}
		}

		if t.cursor.Known && cx == 0 && cy == t.cursor.Y+1 &&
			!(t.region.Known && t.cursor.Y == t.region.Lower) {
			t.sink.WriteString("\r\n")
			t.cursor = KnownPosition(0, cy)
			return
		}

		if t.cursor.Known && cy == t.cursor.Y {
			if t.moveSameRow(cx, cy) {
				return
			}
		}

		if t.cursor.Known && cx == t.cursor.X {
			if t.moveSameCol(cx, cy) {
				return
			}
		}
	}

	if s, ok := t.caps.Expand(caps.CapCup, cy, cx); ok {
		t.sink.WriteString(s)
		t.cursor = KnownPosition(cx, cy)
		return
	}

	// No CUP at all: nothing more we can do without an absolute
	// primitive; leave the shadow unknown so the next call retries.
	t.cursor = UnknownPosition
}

func (t *Tty) moveSameRow(cx, cy int) bool {
	cur := t.cursor.X
	if cx == 0 {
		t.sink.WriteString("\r")
		t.cursor = KnownPosition(0, cy)
		return true
	}
	delta := cx - cur // positive: moving right; negative: moving left
	if delta == 1 {
		if s, ok := t.caps.Expand(caps.CapCuf1); ok {
			t.sink.WriteString(s)
			t.cursor = KnownPosition(cx, cy)
			return true
		}
	}
	if delta == -1 {
		if s, ok := t.caps.Expand(caps.CapCub1); ok {
			t.sink.WriteString(s)
			t.cursor = KnownPosition(cx, cy)
			return true
		}
	}
	absDelta := delta
	if absDelta < 0 {
		absDelta = -absDelta
	}
	if absDelta > cx {
		if s, ok := t.caps.Expand(caps.CapHpa, cx); ok {
			t.sink.WriteString(s)
			t.cursor = KnownPosition(cx, cy)
			return true
		}
	}
	if delta < 0 {
		if absDelta == 2 {
			if s, ok := t.caps.Expand(caps.CapCub1); ok {
				t.sink.WriteString(s + s)
				t.cursor = KnownPosition(cx, cy)
				return true
			}
		}
		if s, ok := t.caps.Expand(caps.CapCub, absDelta); ok {
			t.sink.WriteString(s)
			t.cursor = KnownPosition(cx, cy)
			return true
		}
	}
	if delta > 0 {
		if s, ok := t.caps.Expand(caps.CapCuf, delta); ok {
			t.sink.WriteString(s)
			t.cursor = KnownPosition(cx, cy)
			return true
		}
	}
	return false
}

func (t *Tty) moveSameCol(cx, cy int) bool {
	cur := t.cursor.Y
	delta := cy - cur // positive: moving down; negative: moving up

	crossesRegion := t.region.Known && (cy < t.region.Upper || cy > t.region.Lower ||
		cur < t.region.Upper || cur > t.region.Lower)

	if !crossesRegion {
		if delta == 1 {
			if s, ok := t.caps.Expand(caps.CapCud1); ok {
				t.sink.WriteString(s)
				t.cursor = KnownPosition(cx, cy)
				return true
			}
		}
		if delta == -1 {
			if s, ok := t.caps.Expand(caps.CapCuu1); ok {
				t.sink.WriteString(s)
				t.cursor = KnownPosition(cx, cy)
				return true
			}
		}
	}

	absDelta := delta
	if absDelta < 0 {
		absDelta = -absDelta
	}
	if absDelta > cy || crossesRegion {
		if s, ok := t.caps.Expand(caps.CapVpa, cy); ok {
			t.sink.WriteString(s)
			t.cursor = KnownPosition(cx, cy)
			return true
		}
	}
	if delta < 0 {
		if s, ok := t.caps.Expand(caps.CapCuu, absDelta); ok {
			t.sink.WriteString(s)
			t.cursor = KnownPosition(cx, cy)
			return true
		}
	}
	if delta > 0 {
		if s, ok := t.caps.Expand(caps.CapCud, delta); ok {
			t.sink.WriteString(s)
			t.cursor = KnownPosition(cx, cy)
			return true
		}
	}
	return false
}
