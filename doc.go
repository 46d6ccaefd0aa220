// Package draft provides a small engine for parametric 2D technical drawings,
// such as guitar body and headstock outlines, pickup routing templates and
// jigs.
//
// # Primitives
//
// Drawings are made of four kinds of primitives: [Point], [Segment],
// [CircularArc] and [SpiralArc], a variable-radius arc whose radius is an
// arbitrary function of the angle. All of them implement [Primitive].
//
// Angles are always in degrees, measured counter-clockwise from the positive
// x axis, with y pointing up. Lengths are in whatever unit the caller
// chooses; the part catalogs use millimeters.
//
// # Connecting primitives
//
// Segments and arcs have a direction of travel, and implement [Connectable].
// ConnectLine and ConnectArc create a new primitive that starts where the
// previous one ended and leaves in the same direction, so that the combined
// path is differentiable all the way through. An outline is thus described by
// a sequence of lengths, radii and spans instead of by coordinates:
//
//	s, _ := draft.NewSegment(draft.Pt(0, 0), draft.Pt(10, 0))
//	a, _ := s.ConnectArc(2, 90) // turn left by 90°
//	l, _ := a.ConnectLine(6)
//
// A positive radius places the center of the new arc on the left of the
// direction of travel, a negative radius on the right. A positive span sweeps
// counter-clockwise, a negative one clockwise. Radius and span must have the
// same sign, so that the path keeps going forward.
//
// # Templates and graphs
//
// A [Template] declares a table of default parameters and a construction
// routine. [Build] resolves caller overrides against the defaults and runs
// the routine, which registers each primitive it creates with a [Builder]
// under a name. The result is an immutable [Graph] that can be queried by
// name, traversed in construction order, and asked for its deduplicated
// reference points.
//
// Construction either succeeds completely or fails with an error that names
// the failing step; partially built graphs are never returned.
//
// # Rendering
//
// Primitives convert themselves to [PathElement]s, approximating circular
// arcs with cubic Béziers. [WriteSVG] formats path elements as SVG path
// data; package svg wraps that into complete documents.
package draft
