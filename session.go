package sketch

import (
	"iter"
	"slices"
)

const (
	// DefaultThreshold is the minimum distance, in normalized device units,
	// between consecutive control points added while dragging.
	DefaultThreshold = 0.075
	// DefaultMaxPoints is the default capacity of a session's point buffer.
	DefaultMaxPoints = 60000
)

// Segment is a committed B-spline segment: four consecutive control points of
// one run and the attributes of that run.
type Segment struct {
	Points [SegmentPoints]Point
	Attrs  Attributes
	// Run is the index of the run the segment belongs to.
	Run int
}

// Spline returns the B-spline segment defined by the control points.
func (seg Segment) Spline() BSpline {
	return BSpline{seg.Points[0], seg.Points[1], seg.Points[2], seg.Points[3]}
}

// Run is the half-open range [Start, End) of a session's points between two
// breaks, together with the attributes of its segments.
type Run struct {
	Start, End int
	Attrs      Attributes
}

// Len returns the number of points in the run.
func (r Run) Len() int { return r.End - r.Start }

// SessionOption configures a [Session].
type SessionOption func(*Session)

// WithAttributeSource sets the source of per-run attributes. The default
// draws random attributes from [DefaultAttributeRanges].
func WithAttributeSource(src AttributeSource) SessionOption {
	return func(s *Session) {
		if src != nil {
			s.source = src
		}
	}
}

// WithMaxPoints sets the capacity of the point buffer. Values below one are
// ignored.
func WithMaxPoints(n int) SessionOption {
	return func(s *Session) {
		if n > 0 {
			s.maxPoints = n
		}
	}
}

// WithThreshold sets the sampling distance used while dragging. Negative
// values are ignored.
func WithThreshold(d float64) SessionOption {
	return func(s *Session) {
		if d >= 0 {
			s.threshold = d
		}
	}
}

// Session samples pointer input into control points and commits a B-spline
// segment for every sliding window of four points in a run.
//
// Each point added to a run that already holds three or more points commits
// the segment formed by the run's last four points, so consecutive segments
// share three control points. A break starts a new run; segments never span
// runs.
//
// A Session is not safe for concurrent use. All methods run to completion and
// never block.
type Session struct {
	source    AttributeSource
	maxPoints int
	threshold float64

	points   []Point
	segments []Segment
	runs     []Run
	attrs    Attributes
	dragging bool
}

// NewSession returns an empty session.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		maxPoints: DefaultMaxPoints,
		threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.source == nil {
		s.source = NewRandomAttributes(nil)
	}
	return s
}

// PointerDown starts a drag gesture at pos. If the session holds no points,
// fresh attributes are drawn first. pos is added regardless of its distance
// to the previous point.
func (s *Session) PointerDown(pos Point) {
	s.dragging = true
	if len(s.points) == 0 {
		s.attrs = s.source.Next()
	}
	s.add(pos)
}

// PointerMove adds pos if a gesture is in progress and pos is farther than
// the sampling threshold from the last point.
func (s *Session) PointerMove(pos Point) {
	if !s.dragging {
		return
	}
	if n := len(s.points); n > 0 && s.points[n-1].Distance(pos) <= s.threshold {
		return
	}
	s.add(pos)
}

// PointerUp ends the current gesture.
func (s *Session) PointerUp() {
	s.dragging = false
}

// Break ends the current run and draws new attributes for the next one. It
// does nothing and returns false if the current run has fewer than four
// points.
func (s *Session) Break() bool {
	if len(s.runs) == 0 || s.runs[len(s.runs)-1].Len() < SegmentPoints {
		return false
	}
	s.attrs = s.source.Next()
	s.runs = append(s.runs, Run{Start: len(s.points), End: len(s.points), Attrs: s.attrs})
	Logger().Debug("run break", "at", len(s.points), "runs", len(s.runs))
	return true
}

// Reset discards all points, segments, and breaks, and ends any gesture in
// progress.
func (s *Session) Reset() {
	s.points = s.points[:0]
	s.segments = s.segments[:0]
	s.runs = s.runs[:0]
	s.attrs = Attributes{}
	s.dragging = false
	Logger().Debug("session reset")
}

func (s *Session) add(pos Point) {
	if len(s.points) >= s.maxPoints {
		Logger().Debug("point dropped at capacity", "max", s.maxPoints)
		return
	}
	if len(s.runs) == 0 {
		s.runs = append(s.runs, Run{Attrs: s.attrs})
	}
	s.points = append(s.points, pos)
	run := &s.runs[len(s.runs)-1]
	run.End = len(s.points)
	if run.Len() < SegmentPoints {
		return
	}
	seg := Segment{Attrs: run.Attrs, Run: len(s.runs) - 1}
	copy(seg.Points[:], s.points[run.End-SegmentPoints:run.End])
	s.segments = append(s.segments, seg)
	Logger().Debug("segment committed", "segment", len(s.segments)-1, "run", seg.Run)
}

// Dragging reports whether a gesture is in progress.
func (s *Session) Dragging() bool { return s.dragging }

// Len returns the number of points in the session.
func (s *Session) Len() int { return len(s.points) }

// Attributes returns the attributes the current run uses.
func (s *Session) Attributes() Attributes { return s.attrs }

// Points returns a copy of all points, in insertion order.
func (s *Session) Points() []Point { return slices.Clone(s.points) }

// Segments returns a copy of the committed segments in draw order.
func (s *Session) Segments() []Segment { return slices.Clone(s.segments) }

// AllSegments returns an iterator over the committed segments in draw order
// without copying them.
func (s *Session) AllSegments() iter.Seq[Segment] { return slices.Values(s.segments) }

// Runs returns a copy of the session's runs. The last run is the one new
// points are added to; it may be empty right after a break.
func (s *Session) Runs() []Run { return slices.Clone(s.runs) }

// RunPoints returns a copy of the points of run r. It returns nil if r does
// not lie within the session's points, as happens with a run kept from before
// a reset.
func (s *Session) RunPoints(r Run) []Point {
	if r.Start < 0 || r.End > len(s.points) || r.Start > r.End {
		return nil
	}
	return slices.Clone(s.points[r.Start:r.End])
}

// Breaks returns the point indices at which runs were broken, in increasing
// order.
func (s *Session) Breaks() []int {
	if len(s.runs) < 2 {
		return nil
	}
	out := make([]int, 0, len(s.runs)-1)
	for _, r := range s.runs[1:] {
		out = append(out, r.Start)
	}
	return out
}
