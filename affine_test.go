package sketch

import (
	"math"
	"slices"
	"testing"
)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Distance(p0); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Scale(1, 1)), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Scale(1, 1).ThenTranslate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(Scale(1, -1)), Pt(3, -4), epsilon)
	assertNear(t, p.Transform(Scale(2, 3).ThenTranslate(Vec(1, 1))), Pt(7, 13), epsilon)
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	a := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	aInv := a.Invert()

	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1)} {
		assertNear(t, p.Transform(aInv).Transform(a), p, epsilon)
		assertNear(t, p.Transform(a).Transform(aInv), p, epsilon)
	}

	if x, _ := Pt(1, 1).Transform(Scale(0, 1).Invert()).Splat(); !math.IsInf(x, 0) && !math.IsNaN(x) {
		t.Errorf("inverting a singular transform produced the finite value %v", x)
	}
}

func TestTransformSeq(t *testing.T) {
	in := []Point{Pt(1, 2), Pt(-3, 4)}
	got := slices.Collect(Transform(slices.Values(in), Scale(1, -1)))
	diff(t, []Point{Pt(1, -2), Pt(-3, -4)}, got)

	// Stopping early must be honored.
	var n int
	for range Transform(slices.Values(in), Scale(1, -1)) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("iterated %d times after break", n)
	}
}
