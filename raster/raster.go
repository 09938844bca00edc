// Package raster renders sketch frames to images.
package raster

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"

	"honnef.co/go/sketch"
)

// Options control how frames are rasterized.
type Options struct {
	// Width and Height are the image size in pixels. Zero means 512.
	Width, Height int
	// LineWidth is the stroke width in pixels. Zero means 1.
	LineWidth float64
	// Background fills the image before drawing. The zero value leaves it
	// transparent.
	Background sketch.RGBA
}

func (opts Options) size() (int, int) {
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = 512
	}
	if h <= 0 {
		h = 512
	}
	return w, h
}

// Render draws reqs in order into a new context. Requests with lines
// enabled are stroked as polylines; requests with points enabled get a
// filled circle of diameter PointSize per point.
//
// The caller owns the returned context and should Close it.
func Render(reqs []sketch.DrawRequest, opts Options) (*gg.Context, error) {
	w, h := opts.size()
	lineWidth := opts.LineWidth
	if lineWidth <= 0 {
		lineWidth = 1
	}
	vp := sketch.Viewport{Width: float64(w), Height: float64(h)}

	dc := gg.NewContext(w, h)
	if bg := opts.Background; bg.A > 0 {
		dc.ClearWithColor(gg.RGBA2(bg.R, bg.G, bg.B, bg.A))
	}
	dc.SetLineWidth(lineWidth)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	for i, req := range reqs {
		c := req.Color
		dc.SetRGBA(c.R, c.G, c.B, c.A)
		if req.ShowLines && len(req.Points) > 1 {
			for j, pt := range req.Points {
				x, y := vp.FromNDC(pt)
				if j == 0 {
					dc.MoveTo(x, y)
				} else {
					dc.LineTo(x, y)
				}
			}
			if err := dc.Stroke(); err != nil {
				dc.Close()
				return nil, fmt.Errorf("stroking request %d: %w", i, err)
			}
		}
		if req.ShowPoints && req.PointSize > 0 {
			for _, pt := range req.Points {
				x, y := vp.FromNDC(pt)
				dc.DrawCircle(x, y, req.PointSize/2)
			}
			if err := dc.Fill(); err != nil {
				dc.Close()
				return nil, fmt.Errorf("filling points of request %d: %w", i, err)
			}
		}
	}
	return dc, nil
}

// WritePNG renders reqs and encodes the result as PNG to w.
func WritePNG(w io.Writer, reqs []sketch.DrawRequest, opts Options) error {
	dc, err := Render(reqs, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}

// SavePNG renders reqs and writes the result to a PNG file at path.
func SavePNG(path string, reqs []sketch.DrawRequest, opts Options) error {
	dc, err := Render(reqs, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
