package tty

import "github.com/paneterm/ttyout/screen"

// ResolveDefaults folds a pane's style options into cell, replacing any
// fg/bg that is still the "default" sentinel with, in priority order:
// the pane's own style override, the window's active-pane style (if
// pane is the active pane), or the window's base style.
func ResolveDefaults(cell screen.Cell, pane *screen.Pane, win *screen.Window) screen.Cell {
	if pane == nil {
		return cell
	}

	resolve := func(c screen.Color, pick func(screen.Style) screen.Color) screen.Color {
		if !c.IsDefault() {
			return c
		}
		if pane.StyleOverride != nil {
			if v := pick(*pane.StyleOverride); !v.IsDefault() {
				return v
			}
		}
		if win != nil {
			isActive := win.ActivePane == pane.ID
			if isActive {
				if v := pick(win.ActiveStyle); !v.IsDefault() {
					return v
				}
			}
			if v := pick(win.Style); !v.IsDefault() {
				return v
			}
		}
		return c
	}

	cell.FG = resolve(cell.FG, func(s screen.Style) screen.Color { return s.FG })
	cell.BG = resolve(cell.BG, func(s screen.Style) screen.Color { return s.BG })
	return cell
}
