// Package screen provides the minimal, read-only grid/pane data model that
// the output engine renders from. Populating this model (running a shell,
// parsing escape sequences typed by the user, keeping scrollback) is out
// of scope; only the shapes the engine needs to read are defined here,
// grounded in the layout of the teacher's cell/color model.
package screen

// ColorFlag tags how a Color's Value is encoded, mirroring tmux's
// grid_cell colour flags (COLOUR_FLAG_256, COLOUR_FLAG_RGB) plus the
// plain 8/16-colour case.
type ColorFlag int

const (
	// ColorDefault means "use the pane/window default colour", encoded
	// in tmux as value 8 with no flags.
	ColorDefault ColorFlag = iota
	// ColorANSI is a classic 0-7 colour, or an aixterm bright 90-97
	// colour represented as 8-15 (paired with AttrBright when the
	// terminal lacks native aixterm codes).
	ColorANSI
	// Color256 is an indexed palette colour 0-255.
	Color256
	// ColorRGB is a 24-bit truecolor value.
	ColorRGB
)

// Color is a single foreground or background colour value as stored in a
// grid cell, before any terminal-capability-driven downgrade.
type Color struct {
	Flag    ColorFlag
	Value   int // ANSI: 0-15, Color256: 0-255, unused for RGB
	R, G, B uint8
}

// Default is the sentinel "use terminal default" colour.
var Default = Color{Flag: ColorDefault}

// ANSI constructs a classic or aixterm-bright colour (0-15).
func ANSI(v int) Color { return Color{Flag: ColorANSI, Value: v} }

// Palette256 constructs an indexed 256-colour palette entry.
func Palette256(v int) Color { return Color{Flag: Color256, Value: v} }

// RGB constructs a 24-bit truecolor value.
func RGB(r, g, b uint8) Color { return Color{Flag: ColorRGB, R: r, G: g, B: b} }

// IsDefault reports whether this is the "use terminal default" sentinel.
func (c Color) IsDefault() bool { return c.Flag == ColorDefault }
