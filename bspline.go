package sketch

import (
	"errors"
	"fmt"
	"iter"
)

const (
	// SegmentPoints is the number of control points of one B-spline segment.
	SegmentPoints = 4

	// DefaultSegments is the default number of line segments used to
	// approximate one B-spline segment.
	DefaultSegments = 5
	// MinSegments and MaxSegments bound the number of line segments per
	// B-spline segment.
	MinSegments = 1
	MaxSegments = 50
)

var (
	// ErrPointCount is returned when a B-spline segment is requested from
	// anything other than exactly four control points.
	ErrPointCount = errors.New("sketch: B-spline segment needs exactly 4 control points")
	// ErrSegmentCount is returned when the number of line segments is outside
	// [MinSegments, MaxSegments].
	ErrSegmentCount = errors.New("sketch: segment count out of range")
)

// Basis returns the four uniform cubic B-spline blending weights at t:
//
//	b0(t) = (1-t)³ / 6
//	b1(t) = (3t³ - 6t² + 4) / 6
//	b2(t) = (-3t³ + 3t² + 3t + 1) / 6
//	b3(t) = t³ / 6
//
// The weights sum to one for every t.
func Basis(t float64) [4]float64 {
	mt := 1 - t
	t2 := t * t
	t3 := t2 * t
	return [4]float64{
		mt * mt * mt / 6,
		(3*t3 - 6*t2 + 4) / 6,
		(-3*t3 + 3*t2 + 3*t + 1) / 6,
		t3 / 6,
	}
}

// BSpline is one segment of a uniform cubic B-spline, defined by four
// control points.
//
// The curve does not pass through P0 or P3. It starts at (P0 + 4P1 + P2) / 6
// and ends at (P1 + 4P2 + P3) / 6, which is what makes consecutive segments
// of a sliding window join with C² continuity.
type BSpline struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// NewBSpline returns the segment defined by pts, which must hold exactly
// four points.
func NewBSpline(pts []Point) (BSpline, error) {
	if len(pts) != SegmentPoints {
		return BSpline{}, fmt.Errorf("%w: got %d", ErrPointCount, len(pts))
	}
	return BSpline{pts[0], pts[1], pts[2], pts[3]}, nil
}

// Eval evaluates the segment at parameter t, which is generally in [0, 1].
func (b BSpline) Eval(t float64) Point {
	w := Basis(t)
	v := Vec2(b.P0).Mul(w[0]).
		Add(Vec2(b.P1).Mul(w[1])).
		Add(Vec2(b.P2).Mul(w[2])).
		Add(Vec2(b.P3).Mul(w[3]))
	return Point(v)
}

func (b BSpline) Start() Point { return b.Eval(0) }
func (b BSpline) End() Point   { return b.Eval(1) }

// Samples returns an iterator over n+1 points of the segment, evaluated at
// t = i/n for i = 0, …, n. The last sample is evaluated at exactly t = 1.
//
// n is clamped to [MinSegments, MaxSegments]. The iterator can be ranged
// over any number of times.
func (b BSpline) Samples(n int) iter.Seq[Point] {
	n = clampSegments(n)
	return func(yield func(Point) bool) {
		for i := range n + 1 {
			// Dividing instead of accumulating a step keeps t = 1 exact.
			t := float64(i) / float64(n)
			if !yield(b.Eval(t)) {
				return
			}
		}
	}
}

// Bez returns the cubic Bézier that traces exactly the same curve as b.
func (b BSpline) Bez() CubicBez {
	p0, p1, p2, p3 := Vec2(b.P0), Vec2(b.P1), Vec2(b.P2), Vec2(b.P3)
	return CubicBez{
		P0: Point(p0.Add(p1.Mul(4)).Add(p2).Mul(1.0 / 6.0)),
		P1: Point(p1.Mul(2).Add(p2).Mul(1.0 / 3.0)),
		P2: Point(p1.Add(p2.Mul(2)).Mul(1.0 / 3.0)),
		P3: Point(p1.Add(p2.Mul(4)).Add(p3).Mul(1.0 / 6.0)),
	}
}

// Evaluate is the checked form of [BSpline.Samples]. It returns an error
// wrapping [ErrPointCount] unless pts holds exactly four points, and one
// wrapping [ErrSegmentCount] unless n is in [MinSegments, MaxSegments].
func Evaluate(pts []Point, n int) (iter.Seq[Point], error) {
	b, err := NewBSpline(pts)
	if err != nil {
		return nil, err
	}
	if n < MinSegments || n > MaxSegments {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrSegmentCount, n, MinSegments, MaxSegments)
	}
	return b.Samples(n), nil
}

func clampSegments(n int) int {
	return min(max(n, MinSegments), MaxSegments)
}
