package parts

import "honnef.co/go/draft"

// RoundedRect is a rectangle centered on the origin, with rounded corners.
// The outline is traced clockwise, starting at the bottom of the left side.
var RoundedRect = draft.Blueprint{
	Params: draft.Params{
		{Name: "width", Value: 40},
		{Name: "height", Value: 20},
		{Name: "r", Value: 3},
	},
	Func: func(b *draft.Builder) {
		w := b.Param("width")
		h := b.Param("height")
		r := b.Param("r")
		checkCorner(b, "r", min(w, h))

		p := b.Anchor().Translate(draft.Vec(-w/2, -h/2+r))
		var prev draft.Connectable = b.SegmentFrom("left", p, h-2*r, 90)
		prev = corner(b, "corner1", prev, r)
		prev = line(b, "top", prev, w-2*r)
		prev = corner(b, "corner2", prev, r)
		prev = line(b, "right", prev, h-2*r)
		prev = corner(b, "corner3", prev, r)
		prev = line(b, "bottom", prev, w-2*r)
		corner(b, "corner4", prev, r)
	},
}

// Cap is an open, U-like outline: a side leaving the origin at the given
// slope, two left turns joined by the base, and a parallel side coming back.
var Cap = draft.Blueprint{
	Params: draft.Params{
		{Name: "base", Value: 30},
		{Name: "height", Value: 20},
		{Name: "r", Value: 5},
		{Name: "slope", Value: -90},
	},
	Func: func(b *draft.Builder) {
		base := b.Param("base")
		r := b.Param("r")
		checkCorner(b, "r", base)
		h := b.Param("height") - r

		side1 := b.SegmentFrom("side1", b.Anchor(), h, b.Param("slope"))
		var prev draft.Connectable = b.ConnectArc("corner1", side1, r, 90)
		prev = line(b, "base", prev, base-2*r)
		prev = b.ConnectArc("corner2", prev, r, 90)
		b.ConnectLine("side2", prev, h)
	},
}

// Pillow is a stadium shape: two horizontal sides joined by half circles.
var Pillow = draft.Blueprint{
	Params: draft.Params{
		{Name: "width", Value: 75},
		{Name: "height", Value: 25},
	},
	Func: func(b *draft.Builder) {
		w := b.Param("width")
		hh := b.Param("height") / 2

		p := b.Anchor().Translate(draft.Vec(-w/2, hh))
		top := b.Segment("top", p, p.HMove(w))
		right := b.Arc("right", top.P1.VMove(-hh), hh, 90, -180)
		bottom := b.ConnectLine("bottom", right, w)
		b.ConnectArc("left", bottom, -hh, -180)
	},
}
