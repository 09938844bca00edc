package sketch

import "testing"

func TestRectFromPoints(t *testing.T) {
	diff(t, Rect{-1, -2, 1, 2}, NewRectFromPoints(Pt(1, 2), Pt(-1, -2)))
	diff(t, Rect{-1, -2, 1, 2}, Rect{1, 2, -1, -2}.Abs())
	diff(t, Rect{0.5, 0.5, 0.5, 0.5}, NewRectFromPoints(Pt(0.5, 0.5), Pt(0.5, 0.5)))
}

func TestRectUnion(t *testing.T) {
	r := Rect{0, 0, 1, 1}
	diff(t, Rect{0, -1, 2, 1}, r.Union(Rect{1, -1, 2, 0}))

	// A succession of UnionPoint calls from a zero-area rect encloses all points.
	pts := []Point{Pt(0.5, 0.5), Pt(-0.25, 1), Pt(0.75, -0.5)}
	b := NewRectFromPoints(pts[0], pts[0])
	for _, pt := range pts[1:] {
		b = b.UnionPoint(pt)
	}
	diff(t, Rect{-0.25, -0.5, 0.75, 1}, b)
}
