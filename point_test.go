package sketch

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(1, 2).Sub(Pt(4, 6)), Vec(-3, -4))
	diff(t, Pt(0, 0).Lerp(Pt(2, 4), 0.25), Pt(0.5, 1))
	diff(t, Vec(1, 2).Add(Vec(0.5, -1)).Mul(2), Vec(3, 2))
	if x, y := Pt(-1, 0.5).Splat(); x != -1 || y != 0.5 {
		t.Errorf("got (%v, %v), want (-1, 0.5)", x, y)
	}
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointClamp(t *testing.T) {
	diff(t, Pt(-3, 0.5).Clamp(), Pt(-1, 0.5))
	diff(t, Pt(2, -1.5).Clamp(), Pt(1, -1))
	diff(t, Pt(0.25, -0.75).Clamp(), Pt(0.25, -0.75))
}
