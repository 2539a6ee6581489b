package tty

import "github.com/paneterm/ttyout/screen"

// ClientTarget is one attached terminal eligible to receive a pane
// update: its Tty plus enough of screen.Client to compute the per-pane
// offset and readiness.
type ClientTarget struct {
	Tty    *Tty
	Client *screen.Client
	// Ready mirrors the higher layer's session/suspend/frozen/window
	// checks; WriteToClients skips any target where this is false.
	Ready bool
	// StatusLineOnTop shifts every pane's yoff down by one row to make
	// room for a status line rendered above the pane area.
	StatusLineOnTop bool
}

// WriteToClients is the entry point a higher layer calls once per pane
// update: for every ready client showing the affected pane's window, it
// computes that client's pane offset and invokes cmd on that client's
// Tty. Handlers that set ctx.NeedsRedraw leave it set in the per-client
// copy of ctx so the caller can react per client.
func WriteToClients(targets []ClientTarget, pane *screen.Pane, win *screen.Window, cmd Command, base Ctx) []Ctx {
	results := make([]Ctx, 0, len(targets))
	for _, target := range targets {
		if !target.Ready {
			continue
		}
		ctx := base
		ctx.Pane = pane
		ctx.Window = win
		ctx.XOff = target.Client.OffsetX + pane.OffsetX
		ctx.YOff = target.Client.OffsetY + pane.OffsetY
		if target.StatusLineOnTop {
			ctx.YOff++
		}
		sx, _ := target.Tty.Size()
		ctx.FullWidth = ctx.XOff == 0 && pane.SX >= sx

		target.Tty.Write(cmd, &ctx)
		results = append(results, ctx)
	}
	return results
}
