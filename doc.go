// Package sketch turns pointer input into control points and draws uniform
// cubic B-splines through them. It is the core of an interactive drawing
// program: the host feeds it pointer and key events and renders the draw
// requests it produces.
//
// # Sessions
//
// A [Session] samples a stream of pointer positions into control points.
// Positions are in normalized device coordinates, [-1, 1] on both axes with y
// pointing up; a [Viewport] maps host pixels to that space. While dragging,
// a position is only kept if it is farther than [DefaultThreshold] from the
// previous one, which spaces points evenly no matter how slowly the pointer
// moves.
//
// Points are grouped into runs separated by breaks ([Session.Break]). Every
// point that brings a run to four or more points commits a [Segment] made of
// the run's last four points. Long gestures thus produce a sliding window of
// overlapping segments, each sharing three points with its predecessor, which
// join into one continuous curve. Every run has its own randomly drawn
// [Attributes]: color, point size, and speed.
//
// # B-splines
//
// [BSpline] is one segment of a uniform cubic B-spline. [Basis] computes its
// blending weights, [BSpline.Samples] approximates it with line segments,
// and [BSpline.Bez] converts it to the equivalent cubic Bézier. The curve
// does not pass through its first and last control points.
//
// # Frames
//
// [Frame] turns a session and a [View] into [DrawRequest] values, one per
// segment in [ModeCurves] or one per run in [ModeRaw]. A [Controller]
// applies input [Event] values to a session and its view.
//
// Frames can be exported with [WriteSVGDocument]; the raster subpackage
// renders them to PNG.
//
// # Iterators
//
// Functions that produce points or path elements one at a time return
// iterators instead of slices. Use [slices.Collect] to turn them into
// slices.
package sketch
