package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"honnef.co/go/sketch"
	"honnef.co/go/sketch/raster"
)

const (
	frameInterval = 16 * time.Millisecond
	exportSize    = 1024
)

// app owns the screen, the session and everything derived from them. All
// methods run on the main loop goroutine.
type app struct {
	screen  tcell.Screen
	ctrl    *sketch.Controller
	canvas  *canvas
	clicker *clicker
	cfg     Config

	reqs    []sketch.DrawRequest
	pressed bool
	start   time.Time
	message string
}

func newApp(screen tcell.Screen, cfg Config, clk *clicker) *app {
	a := &app{
		screen:  screen,
		ctrl:    sketch.NewController(cfg.Session(), sketch.Viewport{}),
		canvas:  newCanvas(0, 0),
		clicker: clk,
		cfg:     cfg,
		start:   time.Now(),
	}
	a.ctrl.View = cfg.View()
	a.resize()
	return a
}

// resize fits the canvas to the screen, leaving the last row for the status
// line.
func (a *app) resize() {
	w, h := a.screen.Size()
	a.canvas.resize(w, h-1)
	dw, dh := a.canvas.size()
	a.ctrl.Viewport = sketch.Viewport{Width: float64(dw), Height: float64(dh)}
	slog.Debug("resized", "cols", w, "rows", h)
}

// dot returns the center of the dot grid under the cell at (x, y).
func dot(x, y int) (float64, float64) {
	return float64(x*dotsX) + dotsX/2.0, float64(y*dotsY) + dotsY/2.0
}

func keyAction(ev *tcell.EventKey) (sketch.Action, bool) {
	if ev.Key() != tcell.KeyRune {
		return 0, false
	}
	switch ev.Rune() {
	case 'b', ' ':
		return sketch.ActionBreak, true
	case 'c':
		return sketch.ActionReset, true
	case '+', '=':
		return sketch.ActionMoreSegments, true
	case '-':
		return sketch.ActionFewerSegments, true
	case 'p':
		return sketch.ActionTogglePoints, true
	case 'l':
		return sketch.ActionToggleLines, true
	case 'm':
		return sketch.ActionToggleMode, true
	case ']':
		return sketch.ActionFaster, true
	case '[':
		return sketch.ActionSlower, true
	}
	return 0, false
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// handle applies ev and reports whether the program should keep running.
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 's' {
			a.export()
			return true
		}
		act, ok := keyAction(ev)
		if !ok {
			return true
		}
		if a.ctrl.Handle(sketch.Key(act)) && act == sketch.ActionBreak {
			a.clicker.click()
		}
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
	}
	return true
}

func (a *app) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0
	switch {
	case down && !a.pressed:
		// Presses on the status line don't start a gesture.
		if y >= a.canvas.rows {
			return
		}
		a.pressed = true
		px, py := dot(x, y)
		a.ctrl.Handle(sketch.PointerDown{X: px, Y: py})
	case down:
		px, py := dot(x, y)
		a.ctrl.Handle(sketch.PointerMove{X: px, Y: py})
	case a.pressed:
		a.pressed = false
		a.ctrl.Handle(sketch.PointerUp{})
	}
}

// markerAt returns the point a fraction phase of the way along the polyline
// pts, measured in vertices.
func markerAt(pts []sketch.Point, phase float64) sketch.Point {
	switch len(pts) {
	case 0:
		return sketch.Point{}
	case 1:
		return pts[0]
	}
	phase -= math.Floor(phase)
	f := phase * float64(len(pts)-1)
	i := int(f)
	if i >= len(pts)-1 {
		return pts[len(pts)-1]
	}
	return pts[i].Lerp(pts[i+1], f-float64(i))
}

func color(c sketch.RGBA) tcell.Color {
	r, g, b, _ := c.RGBA8()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// render rasterizes the current frame onto the canvas. elapsed drives the
// markers travelling along each curve.
func (a *app) render(elapsed time.Duration) {
	a.reqs = sketch.AppendFrame(a.reqs[:0], a.ctrl.Session, a.ctrl.View)
	vp := a.ctrl.Viewport
	toDot := func(pt sketch.Point) (int, int) {
		x, y := vp.FromNDC(pt)
		return int(math.Floor(x)), int(math.Floor(y))
	}

	a.canvas.clear()
	for _, req := range a.reqs {
		col := color(req.Color)
		if req.ShowLines {
			for i := 1; i < len(req.Points); i++ {
				x0, y0 := toDot(req.Points[i-1])
				x1, y1 := toDot(req.Points[i])
				a.canvas.line(x0, y0, x1, y1, col)
			}
		}
		if req.ShowPoints {
			r := int(req.PointSize / 4)
			for _, pt := range req.Points {
				x, y := toDot(pt)
				a.canvas.disc(x, y, r, col)
			}
		}
		if len(req.Points) > 1 {
			x, y := toDot(markerAt(req.Points, elapsed.Seconds()*req.Speed))
			a.canvas.disc(x, y, 1, tcell.ColorWhite)
		}
	}
}

func (a *app) status() string {
	s := a.ctrl.Session
	v := a.ctrl.View
	flag := func(on bool, name string) string {
		if on {
			return "+" + name
		}
		return "-" + name
	}
	line := fmt.Sprintf(" points %d  segments %d  runs %d  N=%d  %s  %s %s",
		s.Len(), len(s.Segments()), len(s.Runs()), v.Segments, v.Mode,
		flag(v.ShowPoints, "points"), flag(v.ShowLines, "lines"))
	if a.message != "" {
		line += "  " + a.message
	}
	return line
}

func (a *app) draw(now time.Time) {
	a.render(now.Sub(a.start))
	a.screen.Clear()
	a.canvas.draw(a.screen)

	w, h := a.screen.Size()
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range a.status() {
		if x >= w {
			break
		}
		a.screen.SetContent(x, h-1, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		a.screen.SetContent(x, h-1, ' ', nil, style)
	}
	a.screen.Show()
}

// export writes the current frame as PNG and SVG into the export directory.
func (a *app) export() {
	base, err := a.exportFiles(time.Now())
	if err != nil {
		slog.Error("export failed", "err", err)
		a.message = "export failed: " + err.Error()
		return
	}
	slog.Info("exported", "base", base)
	a.message = "saved " + base + ".{png,svg}"
}

func (a *app) exportFiles(now time.Time) (string, error) {
	if err := os.MkdirAll(a.cfg.ExportDir, 0o755); err != nil {
		return "", err
	}
	reqs := sketch.Frame(a.ctrl.Session, a.ctrl.View)
	if r, ok := sketch.Bounds(reqs); ok {
		slog.Debug("exporting", "requests", len(reqs), "bounds", r)
	}
	base := filepath.Join(a.cfg.ExportDir, "sketch-"+now.Format("20060102-150405.000"))
	bg := sketch.RGBA{A: 1}

	err := raster.SavePNG(base+".png", reqs, raster.Options{
		Width:      exportSize,
		Height:     exportSize,
		LineWidth:  2,
		Background: bg,
	})
	if err != nil {
		return "", err
	}

	f, err := os.Create(base + ".svg")
	if err != nil {
		return "", err
	}
	err = sketch.WriteSVGDocument(f, reqs, sketch.SVGDocumentOptions{
		SVGOptions: sketch.SVGOptions{MaxPrecision: 3},
		Width:      exportSize,
		Height:     exportSize,
		LineWidth:  2,
		Background: bg,
	})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", err
	}
	return base, nil
}

func (a *app) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	go a.screen.ChannelEvents(events, quit)

	a.draw(time.Now())
	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handle(ev) {
				close(quit)
				return
			}
		case now := <-ticker.C:
			a.draw(now)
		}
	}
}
