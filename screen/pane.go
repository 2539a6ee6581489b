package screen

// Style is a partial fg/bg override, matching tmux's "style" option:
// either component may be the Default sentinel, meaning "don't
// override at this level".
type Style struct {
	FG, BG Color
}

// Line is one row of a pane's grid, exposed read-only to the painter.
type Line struct {
	Cells []Cell
}

// Grid is the rectangular cell buffer a pane renders from.
type Grid struct {
	Lines []Line
	Cols  int
}

// CellAt returns the cell at (x,y), or a blank default cell if out of
// bounds -- callers never need to bounds-check themselves.
func (g *Grid) CellAt(x, y int) Cell {
	if y < 0 || y >= len(g.Lines) {
		return Empty()
	}
	line := g.Lines[y]
	if x < 0 || x >= len(line.Cells) {
		return Empty()
	}
	return line.Cells[x]
}

// Pane is one rendering surface: a grid plus its position within a
// client's terminal and an optional per-pane colour override
// (tmux's "colgc", assigned by e.g. `set -p window-style`).
type Pane struct {
	ID               int
	OffsetX, OffsetY int
	SX, SY           int
	Grid             *Grid
	StyleOverride    *Style
	CursorX, CursorY int
	CursorVisible    bool
}

// Window groups panes and carries the window-level style defaults that
// apply when a pane has no StyleOverride of its own.
type Window struct {
	Style          Style
	ActiveStyle    Style
	SelectionStyle Style // mode-style override painted over AttrSelected cells
	ActivePane     int
	Panes          []*Pane
}

// Options is the small subset of tmux's global/session options this
// engine's lifecycle and command layers consult directly.
type Options struct {
	Force256       bool
	ForceTrueColor bool
	DebugLogging   bool
	SetClipboard   bool // enables OSC52 setselection passthrough
}

// Client represents one attached terminal this engine drives; each
// tty.ClientTarget carries a *Client so multi-client write can compute
// each client's per-pane offset independently.
type Client struct {
	Name             string
	Window           *Window
	OffsetX, OffsetY int
}
