package sketch

import "fmt"

// Viewport maps host pixel coordinates, with the origin in the top left
// corner and y pointing down, to normalized device coordinates in [-1, 1]²
// with y pointing up.
type Viewport struct {
	Width, Height float64
}

// Valid reports whether the viewport has a positive area.
func (vp Viewport) Valid() bool {
	return vp.Width > 0 && vp.Height > 0
}

// Transform returns the transform from host pixels to device coordinates.
func (vp Viewport) Transform() Affine {
	return Scale(2/vp.Width, -2/vp.Height).ThenTranslate(Vec(-1, 1))
}

// ToNDC maps the host position (x, y) to device coordinates. Positions
// outside the viewport map outside [-1, 1]².
func (vp Viewport) ToNDC(x, y float64) Point {
	return Pt(x, y).Transform(vp.Transform())
}

// FromNDC maps a device point back to host coordinates.
func (vp Viewport) FromNDC(pt Point) (x, y float64) {
	return pt.Transform(vp.Transform().Invert()).Splat()
}

// Event is an input event consumed by a [Controller].
type Event interface {
	isEvent()
}

// PointerDown is a button press at host position (X, Y).
type PointerDown struct{ X, Y float64 }

// PointerMove is a pointer motion to host position (X, Y).
type PointerMove struct{ X, Y float64 }

// PointerUp is a button release.
type PointerUp struct{}

// Key is a key press bound to an action.
type Key Action

func (PointerDown) isEvent() {}
func (PointerMove) isEvent() {}
func (PointerUp) isEvent()   {}
func (Key) isEvent()         {}

// Action is a keyboard command.
type Action int

const (
	ActionBreak Action = iota + 1
	ActionReset
	ActionMoreSegments
	ActionFewerSegments
	ActionTogglePoints
	ActionToggleLines
	ActionToggleMode
	// ActionFaster and ActionSlower are accepted but change nothing.
	ActionFaster
	ActionSlower
)

var actionNames = map[Action]string{
	ActionBreak:         "break",
	ActionReset:         "reset",
	ActionMoreSegments:  "more-segments",
	ActionFewerSegments: "fewer-segments",
	ActionTogglePoints:  "toggle-points",
	ActionToggleLines:   "toggle-lines",
	ActionToggleMode:    "toggle-mode",
	ActionFaster:        "faster",
	ActionSlower:        "slower",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Controller routes input events to a session and its view.
type Controller struct {
	Session  *Session
	View     View
	Viewport Viewport
}

// NewController returns a controller for s using [DefaultView].
func NewController(s *Session, vp Viewport) *Controller {
	return &Controller{
		Session:  s,
		View:     DefaultView(),
		Viewport: vp,
	}
}

// Handle applies ev and reports whether it changed anything a frame depends
// on. Pointer events are ignored while the viewport has no area. Positions
// outside the viewport are clamped to its edge. A nil event changes nothing.
func (c *Controller) Handle(ev Event) bool {
	switch ev := ev.(type) {
	case PointerDown:
		if !c.Viewport.Valid() {
			return false
		}
		n := c.Session.Len()
		c.Session.PointerDown(c.Viewport.ToNDC(ev.X, ev.Y).Clamp())
		return c.Session.Len() != n
	case PointerMove:
		if !c.Viewport.Valid() {
			return false
		}
		n := c.Session.Len()
		c.Session.PointerMove(c.Viewport.ToNDC(ev.X, ev.Y).Clamp())
		return c.Session.Len() != n
	case PointerUp:
		c.Session.PointerUp()
		return false
	case Key:
		return c.action(Action(ev))
	case nil:
		return false
	default:
		panic(fmt.Sprintf("unhandled event %T", ev))
	}
}

func (c *Controller) action(a Action) bool {
	switch a {
	case ActionBreak:
		return c.Session.Break()
	case ActionReset:
		changed := c.Session.Len() > 0
		c.Session.Reset()
		return changed
	case ActionMoreSegments:
		return c.setSegments(c.View.Segments + 1)
	case ActionFewerSegments:
		return c.setSegments(c.View.Segments - 1)
	case ActionTogglePoints:
		c.View.ShowPoints = !c.View.ShowPoints
		return true
	case ActionToggleLines:
		c.View.ShowLines = !c.View.ShowLines
		return true
	case ActionToggleMode:
		if c.View.Mode == ModeRaw {
			c.View.Mode = ModeCurves
		} else {
			c.View.Mode = ModeRaw
		}
		return true
	case ActionFaster, ActionSlower:
		Logger().Debug("speed key ignored", "action", a)
		return false
	default:
		return false
	}
}

func (c *Controller) setSegments(n int) bool {
	n = clampSegments(n)
	if n == c.View.Segments {
		return false
	}
	c.View.Segments = n
	return true
}
