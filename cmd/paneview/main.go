// Command paneview is a minimal demonstration harness for the output
// engine: it opens the controlling terminal, draws a single full-screen
// pane of blank cells with a title on its first row, waits for a
// keypress, and tears everything down cleanly.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/paneterm/ttyout/screen"
	"github.com/paneterm/ttyout/tty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "paneview:", err)
		os.Exit(1)
	}
}

func run() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	sx, sy, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		sx, sy = 80, 24
	}

	opts := screen.Options{DebugLogging: os.Getenv("PANEVIEW_DEBUG_LOG") != ""}
	lc, tt, err := tty.Init(os.Stdout, os.Getenv("TERM"), sx, sy, tty.FlagsFromOptions(opts), logger)
	if err != nil {
		return err
	}
	if err := lc.Start(); err != nil {
		return err
	}
	defer lc.Stop()

	win := &screen.Window{}
	grid := demoGrid(sx, sy)
	pane := &screen.Pane{ID: 0, SX: sx, SY: sy, Grid: grid}
	win.Panes = []*screen.Pane{pane}

	for py := 0; py < sy; py++ {
		tt.DrawLine(pane, win, py, 0, 0, false)
	}
	tt.CursorTo(0, sy-1)

	reader := bufio.NewReader(os.Stdin)
	reader.ReadByte()
	return nil
}

func demoGrid(sx, sy int) *screen.Grid {
	g := &screen.Grid{Cols: sx, Lines: make([]screen.Line, sy)}
	title := []rune("paneterm/ttyout demo -- press any key to exit")
	for y := 0; y < sy; y++ {
		cells := make([]screen.Cell, sx)
		for x := 0; x < sx; x++ {
			cells[x] = screen.Empty()
		}
		if y == 0 {
			for i, r := range title {
				if i >= sx {
					break
				}
				c := screen.Empty()
				c.Rune = r
				c.Attr = screen.AttrBright
				c.FG = screen.ANSI(6)
				cells[i] = c
			}
		}
		g.Lines[y] = screen.Line{Cells: cells}
	}
	return g
}
