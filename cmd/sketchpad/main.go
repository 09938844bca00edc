// Command sketchpad is a terminal drawing program. Drag with the mouse to
// place control points; the points are joined by uniform cubic B-splines
// drawn in braille characters.
//
// Keys:
//
//	b, space  break the curve
//	c         clear everything
//	+, -      more or fewer line segments per curve
//	p, l      toggle points and lines
//	m         toggle between curves and raw points
//	s         export the drawing as PNG and SVG
//	q, Esc    quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

func main() {
	os.Exit(run(os.Args, os.Stderr, tcell.NewScreen))
}

// run runs the program and returns its exit status. Every resource it
// acquires is released before it returns, including when drawing panics.
func run(args []string, stderr io.Writer, newScreen func() (tcell.Screen, error)) (code int) {
	cfg, err := parseFlags(args[0], args[1:], stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "sketchpad: %v\n", err)
		return 2
	}

	logFile, err := setupLogging(cfg.Debug)
	if err != nil {
		fmt.Fprintf(stderr, "sketchpad: %v\n", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := newScreen()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to initialize: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(stderr, "Failed to initialize: %v\n", err)
		return 1
	}
	// The terminal must be usable again before a crash report is printed.
	defer func() {
		r := recover()
		screen.Fini()
		if r != nil {
			fmt.Fprintf(stderr, "sketchpad crashed: %v\n%s", r, debug.Stack())
			code = 1
		}
	}()
	screen.EnableMouse(tcell.MouseDragEvents)

	clk := newClicker(cfg.Sound)
	defer clk.close()

	newApp(screen, cfg, clk).run()
	return 0
}
