package sketch

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

func (opts SVGOptions) format(n float64) string {
	if opts.MaxPrecision <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	f := opts.format
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			writef(" ")
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", f(el.P0.X), f(el.P0.Y))
		case LineToKind:
			writef("L%s,%s", f(el.P0.X), f(el.P0.Y))
		case CubicToKind:
			writef("C%s,%s %s,%s %s,%s",
				f(el.P0.X), f(el.P0.Y),
				f(el.P1.X), f(el.P1.Y),
				f(el.P2.X), f(el.P2.Y))
		default:
			panic("unreachable")
		}
	}
	return err
}

// SVGDocumentOptions specifies settings for [WriteSVGDocument].
type SVGDocumentOptions struct {
	SVGOptions
	// Width and Height are the size of the document in pixels. The device
	// square [-1, 1]² is stretched to fill it. Zero means 512.
	Width, Height int
	// LineWidth is the stroke width in pixels. Zero means 1.
	LineWidth float64
	// Background is the fill color of the document. The zero value leaves
	// the background transparent.
	Background RGBA
}

// WriteSVGDocument writes a standalone SVG document drawing reqs in order:
// a path per request with lines enabled and a circle per point for requests
// with points enabled. A request's Curve, when present, is written as exact
// cubics in place of its sampled points.
func WriteSVGDocument(w io.Writer, reqs []DrawRequest, opts SVGDocumentOptions) error {
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = 512
	}
	if height <= 0 {
		height = 512
	}
	lineWidth := opts.LineWidth
	if lineWidth <= 0 {
		lineWidth = 1
	}
	vp := Viewport{Width: float64(width), Height: float64(height)}
	toPixels := vp.Transform().Invert()
	f := opts.format

	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}

	writef(`<svg viewBox="0 0 %d %d" width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n",
		width, height, width, height)
	if opts.Background.A > 0 {
		writef(`<rect width="%d" height="%d" fill="%s" fill-opacity="%s" />`+"\n",
			width, height, opts.Background.Hex(), f(opts.Background.A))
	}
	for _, req := range reqs {
		color, alpha := req.Color.Hex(), f(req.Color.A)
		if req.ShowLines && (len(req.Curve) > 0 || len(req.Points) > 1) {
			path := Polyline(req.Points)
			if len(req.Curve) > 0 {
				path = req.Curve.Elements()
			}
			writef(`<path d="`)
			if err == nil {
				err = WriteSVG(w, Transform(path, toPixels), opts.SVGOptions)
			}
			writef(`" fill="none" stroke="%s" stroke-opacity="%s" stroke-width="%s" />`+"\n",
				color, alpha, f(lineWidth))
		}
		if req.ShowPoints {
			r := f(req.PointSize / 2)
			for _, pt := range req.Points {
				x, y := vp.FromNDC(pt)
				writef(`<circle cx="%s" cy="%s" r="%s" fill="%s" fill-opacity="%s" />`+"\n",
					f(x), f(y), r, color, alpha)
			}
		}
	}
	writef("</svg>\n")
	return err
}
