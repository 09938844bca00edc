package sketch

import (
	"fmt"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
)

// PathElement is one drawing command of a [BezPath].
//
// A valid path has a MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", el.P0, el.P1, el.P2)
	default:
		return "InvalidPathElement"
	}
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	default:
		return PathElement{}
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

// BezPath is a sequence of path elements.
type BezPath []PathElement

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Polyline returns the path elements of an open polyline through pts. It
// yields nothing for an empty slice.
func Polyline(pts []Point) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for i, pt := range pts {
			el := LineTo(pt)
			if i == 0 {
				el = MoveTo(pt)
			}
			if !yield(el) {
				return
			}
		}
	}
}

// BoundingBox returns the smallest rectangle enclosing the path. Cubic
// elements contribute their exact extents rather than their control points.
// It returns false for an empty path.
func (p BezPath) BoundingBox() (Rect, bool) {
	var (
		bbox  Rect
		found bool
		cur   Point
	)
	add := func(r Rect) {
		if found {
			bbox = bbox.Union(r)
		} else {
			bbox, found = r, true
		}
	}
	for _, el := range p {
		switch el.Kind {
		case MoveToKind, LineToKind:
			add(NewRectFromPoints(el.P0, el.P0))
			cur = el.P0
		case CubicToKind:
			add(CubicBez{cur, el.P0, el.P1, el.P2}.BoundingBox())
			cur = el.P2
		}
	}
	return bbox, found
}
