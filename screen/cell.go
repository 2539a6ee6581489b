package screen

// Attr is a bitmask of grid cell attributes, matching tmux's
// GRID_ATTR_* bits closely enough for the attribute engine to reason
// about them the same way.
type Attr uint16

const (
	AttrBright Attr = 1 << iota
	AttrDim
	AttrUnderscore
	AttrBlink
	AttrReverse
	AttrHidden
	AttrItalics
	AttrStrikethrough
	AttrDoubleUnderscore
	AttrCurlyUnderscore
	AttrDottedUnderscore
	AttrDashedUnderscore
	AttrCharset  // cell's Rune is a vt100 line-drawing code, not literal text
	AttrSelected // cell falls within an active copy-mode/mouse selection
)

// UnderlineStyle distinguishes the underline variant when AttrUnderscore
// (or one of the extended underline attrs) is set; SGR 4:n on terminals
// that support it.
type UnderlineStyle int

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

// Cell is one grid position: a single displayed character (which may be
// wide, occupying the following cell as a padding continuation) plus its
// full style. This mirrors tmux's struct grid_cell closely; wide-glyph
// combining marks and sprite/graphics payloads are intentionally not
// modeled since command dispatch treats them as opaque runes.
type Cell struct {
	Rune       rune
	Width      int // 1 or 2; 0 marks a padding cell following a wide rune
	Attr       Attr
	Underline  UnderlineStyle
	UnderlineColor Color
	FG, BG     Color
	Padding    bool // true for the second cell of a wide character
}

// Empty returns the default blank cell: a space, no attributes, default
// colours.
func Empty() Cell {
	return Cell{Rune: ' ', Width: 1, FG: Default, BG: Default}
}

// EmptyWithColors returns a blank cell carrying the given fg/bg, used
// when painting bulk-erase regions with a non-default background.
func EmptyWithColors(fg, bg Color) Cell {
	return Cell{Rune: ' ', Width: 1, FG: fg, BG: bg}
}

// Equal reports whether two cells are visually identical (same glyph and
// style). The line painter does not use it: DrawLine retransmits every
// cell of the row.
func (c Cell) Equal(o Cell) bool {
	return c.Rune == o.Rune && c.Width == o.Width && c.Attr == o.Attr &&
		c.Underline == o.Underline && c.UnderlineColor == o.UnderlineColor &&
		c.FG == o.FG && c.BG == o.BG && c.Padding == o.Padding
}
