package tty

import (
	"github.com/paneterm/ttyout/caps"
	"github.com/paneterm/ttyout/screen"
)

// Ctx is the per-operation payload command handlers receive, mirroring
// tmux's struct tty_ctx: target pane, its offset within the client's
// terminal, the cursor/region the higher layer observed before issuing
// the command, a repeat count, an opaque byte payload (raw strings,
// OSC52 selections), and the cell(s) involved.
type Ctx struct {
	Pane   *screen.Pane
	Window *screen.Window

	XOff, YOff int

	OCX, OCY         int
	ORUpper, ORLower int

	Num int
	Ptr []byte

	Cell     screen.Cell
	LastCell screen.Cell

	// FullWidth reports whether the pane spans the entire physical
	// terminal width, a precondition several native primitives require.
	FullWidth bool

	// NeedsRedraw is set by a command handler when no native primitive
	// applied; the caller (component J / the higher layer) is
	// responsible for actually redrawing via DrawLine/RedrawRegion,
	// since only it holds the grid contents needed to do so.
	NeedsRedraw bool
}

// FakeBCE reports whether bulk-erase primitives are unsafe for the
// given cell: its effective background (after style resolution) is
// non-default and the terminal lacks real background-colour erase.
func (t *Tty) FakeBCE(cell screen.Cell, pane *screen.Pane, win *screen.Window) bool {
	if t.flags.NoFakeBCE {
		return false
	}
	resolved := ResolveDefaults(cell, pane, win)
	if resolved.BG.IsDefault() {
		return false
	}
	return !t.caps.Has(caps.CapBCE)
}
