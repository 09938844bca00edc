package sketch

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestViewportToNDC(t *testing.T) {
	vp := Viewport{Width: 800, Height: 400}
	tests := []struct {
		x, y float64
		want Point
	}{
		{0, 0, Pt(-1, 1)},
		{800, 400, Pt(1, -1)},
		{400, 200, Pt(0, 0)},
		{200, 300, Pt(-0.5, -0.5)},
	}
	opt := cmpopts.EquateApprox(0, 1e-12)
	for _, tt := range tests {
		diff(t, tt.want, vp.ToNDC(tt.x, tt.y), opt)
		x, y := vp.FromNDC(tt.want)
		diff(t, [2]float64{tt.x, tt.y}, [2]float64{x, y}, opt)
	}
}

func TestViewportValid(t *testing.T) {
	if (Viewport{}).Valid() {
		t.Error("zero viewport is valid")
	}
	if !(Viewport{Width: 1, Height: 1}).Valid() {
		t.Error("unit viewport is invalid")
	}
}

func TestControllerPointer(t *testing.T) {
	s := NewSession(WithAttributeSource(&countingSource{}))
	c := NewController(s, Viewport{Width: 200, Height: 200})

	if !c.Handle(PointerDown{X: 100, Y: 100}) {
		t.Error("pointer down reported no change")
	}
	// 5 pixels is 0.05 in device units, under the threshold.
	if c.Handle(PointerMove{X: 105, Y: 100}) {
		t.Error("small move reported a change")
	}
	if !c.Handle(PointerMove{X: 120, Y: 100}) {
		t.Error("large move reported no change")
	}
	c.Handle(PointerUp{})
	if s.Dragging() {
		t.Error("pointer up did not end the gesture")
	}
	diff(t, []Point{Pt(0, 0), Pt(0.2, 0)}, s.Points(), cmpopts.EquateApprox(0, 1e-12))

	c.Viewport = Viewport{}
	if c.Handle(PointerDown{X: 1, Y: 1}) || s.Len() != 2 {
		t.Error("pointer event with an empty viewport changed the session")
	}
}

func TestControllerClampsOffViewport(t *testing.T) {
	s := NewSession(WithAttributeSource(&countingSource{}))
	c := NewController(s, Viewport{Width: 80, Height: 40})

	c.Handle(PointerDown{X: 41, Y: 22})
	// Below the bottom edge, then far past the right edge.
	c.Handle(PointerMove{X: 41, Y: 42})
	c.Handle(PointerMove{X: 200, Y: 42})
	c.Handle(PointerUp{})

	want := []Point{Pt(0.025, -0.1), Pt(0.025, -1), Pt(1, -1)}
	diff(t, want, s.Points(), cmpopts.EquateApprox(0, 1e-12))
	for _, pt := range s.Points() {
		if pt.X < -1 || pt.X > 1 || pt.Y < -1 || pt.Y > 1 {
			t.Errorf("point %v lies outside the device square", pt)
		}
	}

	// Negative host coordinates clamp to the top left corner.
	c.Handle(PointerDown{X: -30, Y: -5})
	pts := s.Points()
	diff(t, Pt(-1, 1), pts[len(pts)-1])
}

func TestControllerNilEvent(t *testing.T) {
	s := NewSession()
	c := NewController(s, Viewport{Width: 10, Height: 10})
	if c.Handle(nil) {
		t.Error("nil event reported a change")
	}
	if s.Len() != 0 {
		t.Error("nil event changed the session")
	}
}

func TestControllerKeys(t *testing.T) {
	s := NewSession(WithAttributeSource(&countingSource{}))
	c := NewController(s, Viewport{Width: 100, Height: 100})

	if c.Handle(Key(ActionBreak)) {
		t.Error("break on an empty session reported a change")
	}
	if c.Handle(Key(ActionReset)) {
		t.Error("reset on an empty session reported a change")
	}

	c.Handle(Key(ActionTogglePoints))
	c.Handle(Key(ActionToggleLines))
	c.Handle(Key(ActionToggleMode))
	diff(t, View{Mode: ModeRaw, Segments: DefaultSegments}, c.View)
	c.Handle(Key(ActionToggleMode))
	if c.View.Mode != ModeCurves {
		t.Error("mode did not toggle back")
	}

	before := c.View
	if c.Handle(Key(ActionFaster)) || c.Handle(Key(ActionSlower)) {
		t.Error("speed keys reported a change")
	}
	diff(t, before, c.View)

	for _, pt := range []PointerDown{{10, 10}, {30, 10}, {50, 10}, {70, 10}} {
		c.Handle(pt)
	}
	attrs := s.Attributes()
	if !c.Handle(Key(ActionBreak)) {
		t.Error("break with four points reported no change")
	}
	if s.Attributes() == attrs {
		t.Error("break kept the run's attributes")
	}
	if !c.Handle(Key(ActionReset)) || s.Len() != 0 {
		t.Error("reset did not clear the session")
	}
}

func TestControllerSegments(t *testing.T) {
	c := NewController(NewSession(), Viewport{Width: 1, Height: 1})
	for range 100 {
		c.Handle(Key(ActionMoreSegments))
	}
	if c.View.Segments != MaxSegments {
		t.Errorf("got %d segments, want %d", c.View.Segments, MaxSegments)
	}
	if c.Handle(Key(ActionMoreSegments)) {
		t.Error("incrementing past the maximum reported a change")
	}
	for range 100 {
		c.Handle(Key(ActionFewerSegments))
	}
	if c.View.Segments != MinSegments {
		t.Errorf("got %d segments, want %d", c.View.Segments, MinSegments)
	}
	if !c.Handle(Key(ActionMoreSegments)) || c.View.Segments != MinSegments+1 {
		t.Error("incrementing from the minimum failed")
	}
}

func TestActionString(t *testing.T) {
	if s := ActionBreak.String(); s != "break" {
		t.Errorf("got %q, want %q", s, "break")
	}
	if s := Action(99).String(); s != "Action(99)" {
		t.Errorf("got %q, want %q", s, "Action(99)")
	}
}
