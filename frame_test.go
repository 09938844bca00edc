package sketch

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestFrameCurves(t *testing.T) {
	src := &countingSource{}
	s := NewSession(WithAttributeSource(src))
	drag(s, line(-0.9, 6)...)
	s.Break()
	drag(s, line(0, 4)...)

	v := DefaultView()
	v.Segments = 8
	reqs := Frame(s, v)
	segs := s.Segments()
	if len(reqs) != len(segs) {
		t.Fatalf("got %d requests, want one per segment (%d)", len(reqs), len(segs))
	}
	for i, req := range reqs {
		if len(req.Points) != v.Segments+1 {
			t.Errorf("request %d has %d points, want %d", i, len(req.Points), v.Segments+1)
		}
		diff(t, slices.Collect(segs[i].Spline().Samples(v.Segments)), req.Points)
		if req.Color != segs[i].Attrs.Color || req.PointSize != segs[i].Attrs.PointSize || req.Speed != segs[i].Attrs.Speed {
			t.Errorf("request %d does not carry its segment's attributes", i)
		}
		if !req.ShowPoints || !req.ShowLines {
			t.Errorf("request %d lost the view's visibility flags", i)
		}
	}
}

func TestFrameRaw(t *testing.T) {
	s := NewSession(WithAttributeSource(&countingSource{}))
	first := line(-0.9, 5)
	drag(s, first...)
	s.Break()
	// Too short to draw in raw mode.
	drag(s, line(0, 2)...)

	v := DefaultView()
	v.Mode = ModeRaw
	v.ShowPoints = false
	reqs := Frame(s, v)
	if len(reqs) != 1 {
		t.Fatalf("got %d requests, want 1", len(reqs))
	}
	diff(t, first, reqs[0].Points)
	if reqs[0].ShowPoints || !reqs[0].ShowLines {
		t.Error("request does not carry the view's visibility flags")
	}
	diff(t, s.Runs()[0].Attrs.PointSize, reqs[0].PointSize)
}

func TestFrameEmpty(t *testing.T) {
	s := NewSession()
	if reqs := Frame(s, DefaultView()); len(reqs) != 0 {
		t.Errorf("got %d requests for an empty session", len(reqs))
	}
	drag(s, line(0, 3)...)
	if reqs := Frame(s, DefaultView()); len(reqs) != 0 {
		t.Errorf("got %d requests for three points", len(reqs))
	}
}

func TestAppendFrameReuse(t *testing.T) {
	s := NewSession(WithAttributeSource(&countingSource{}))
	drag(s, line(-0.5, 5)...)
	buf := make([]DrawRequest, 0, 8)
	reqs := AppendFrame(buf[:0], s, DefaultView())
	if len(reqs) != 2 {
		t.Fatalf("got %d requests, want 2", len(reqs))
	}
	if &reqs[0] != &buf[:1][0] {
		t.Error("AppendFrame did not reuse the buffer")
	}
}

func TestBounds(t *testing.T) {
	if _, ok := Bounds(nil); ok {
		t.Error("Bounds of no requests reported a box")
	}
	reqs := []DrawRequest{
		{Points: []Point{Pt(-0.5, 0.25)}},
		{},
		{Points: []Point{Pt(0.75, -0.5), Pt(0, 0.5)}},
	}
	r, ok := Bounds(reqs)
	if !ok {
		t.Fatal("Bounds found no points")
	}
	diff(t, Rect{X0: -0.5, Y0: -0.5, X1: 0.75, Y1: 0.5}, r)
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeCurves, ModeRaw} {
		got, ok := ParseMode(m.String())
		if !ok || got != m {
			t.Errorf("ParseMode(%q) = %v, %t", m.String(), got, ok)
		}
	}
	if _, ok := ParseMode("bezier"); ok {
		t.Error("ParseMode accepted an unknown mode")
	}
}

func TestBoundsCurveExtents(t *testing.T) {
	// The arch peaks between its end samples, so only the exact curve
	// reaches the top.
	s := NewSession(WithAttributeSource(&countingSource{}))
	drag(s, Pt(-0.3, 0), Pt(-0.1, 0.9), Pt(0.1, 0.9), Pt(0.3, 0))

	v := DefaultView()
	v.Segments = 1
	reqs := Frame(s, v)
	if len(reqs) != 1 {
		t.Fatalf("got %d requests, want 1", len(reqs))
	}
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, []Point{Pt(-0.1, 0.75), Pt(0.1, 0.75)}, reqs[0].Points, approx)

	r, ok := Bounds(reqs)
	if !ok {
		t.Fatal("Bounds found nothing")
	}
	diff(t, Rect{X0: -0.1, Y0: 0.75, X1: 0.1, Y1: 0.8625}, r, approx)
}
