package sketch

import "slices"

// Mode selects what a frame draws.
type Mode int

const (
	// ModeCurves draws every committed segment as a sampled B-spline.
	ModeCurves Mode = iota
	// ModeRaw draws the control points of every run as points and a line
	// strip.
	ModeRaw
)

func (m Mode) String() string {
	switch m {
	case ModeCurves:
		return "curves"
	case ModeRaw:
		return "raw"
	default:
		return "Mode(?)"
	}
}

// ParseMode parses the result of [Mode.String].
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "curves", "curve", "":
		return ModeCurves, true
	case "raw":
		return ModeRaw, true
	default:
		return 0, false
	}
}

// View holds the presentation settings a frame is built with.
type View struct {
	Mode Mode
	// Segments is the number of line segments per B-spline segment. It is
	// clamped to [MinSegments, MaxSegments].
	Segments   int
	ShowPoints bool
	ShowLines  bool
}

// DefaultView draws curves with [DefaultSegments] line segments, points and
// lines visible.
func DefaultView() View {
	return View{
		Mode:       ModeCurves,
		Segments:   DefaultSegments,
		ShowPoints: true,
		ShowLines:  true,
	}
}

// DrawRequest is one unit of work for a renderer: a list of points drawn as
// dots, as a connected line strip, or both.
//
// Curve holds the exact Bézier form of a curve segment. It is nil for raw
// control point requests.
type DrawRequest struct {
	Points     []Point
	Curve      BezPath
	Color      RGBA
	PointSize  float64
	Speed      float64
	ShowPoints bool
	ShowLines  bool
}

// Frame returns the draw requests for s in draw order.
//
// In [ModeCurves] there is one request per committed segment, holding
// v.Segments+1 samples. In [ModeRaw] there is one request per run that holds
// at least four points, holding the run's control points.
func Frame(s *Session, v View) []DrawRequest {
	return AppendFrame(nil, s, v)
}

// AppendFrame is like [Frame] but appends to dst.
func AppendFrame(dst []DrawRequest, s *Session, v View) []DrawRequest {
	switch v.Mode {
	case ModeRaw:
		for _, run := range s.runs {
			if run.Len() < SegmentPoints {
				continue
			}
			dst = append(dst, request(run.Attrs, v, s.RunPoints(run)))
		}
	default:
		n := clampSegments(v.Segments)
		for seg := range s.AllSegments() {
			pts := make([]Point, 0, n+1)
			sp := seg.Spline()
			pts = slices.AppendSeq(pts, sp.Samples(n))
			req := request(seg.Attrs, v, pts)
			req.Curve = slices.Collect(sp.Bez().PathElements())
			dst = append(dst, req)
		}
	}
	return dst
}

func request(attrs Attributes, v View, pts []Point) DrawRequest {
	return DrawRequest{
		Points:     pts,
		Color:      attrs.Color,
		PointSize:  attrs.PointSize,
		Speed:      attrs.Speed,
		ShowPoints: v.ShowPoints,
		ShowLines:  v.ShowLines,
	}
}

// Bounds returns the bounding box of reqs. Requests carrying a Curve
// contribute the curve's exact extents in addition to their points. It
// returns false if there is nothing to enclose.
func Bounds(reqs []DrawRequest) (Rect, bool) {
	var r Rect
	found := false
	add := func(o Rect) {
		if found {
			r = r.Union(o)
		} else {
			r, found = o, true
		}
	}
	for _, req := range reqs {
		for _, pt := range req.Points {
			add(NewRectFromPoints(pt, pt))
		}
		if cr, ok := req.Curve.BoundingBox(); ok {
			add(cr)
		}
	}
	return r, found
}
