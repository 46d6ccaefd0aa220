package parts

import (
	"strconv"

	"honnef.co/go/draft"
)

// SingleCoilRouting is the routing template for a single-coil pickup: a
// rounded rectangle w wide and h high, centered on the origin. A hole the
// size of the router bit is marked at every corner.
//
// With the default parameters the short sides are half circles.
var SingleCoilRouting = draft.Blueprint{
	Params: draft.Params{
		{Name: "w", Value: 20},
		{Name: "h", Value: 88},
		{Name: "r", Value: 10},
	},
	Func: func(b *draft.Builder) {
		w := b.Param("w")
		h := b.Param("h")
		r := b.Param("r")
		checkCorner(b, "r", min(w, h))
		d1 := h - 2*r
		d2 := w - 2*r

		c := b.Anchor().Translate(draft.Vec(w/2-r, h/2-r))
		arc1 := b.Arc("arc1", c, r, 90, -90)
		Hole(b, "hole1", arc1.Center, 2*r)
		var prev draft.Connectable = line(b, "line1", arc1, d1)
		for i, d := range []float64{d2, d1, d2} {
			n := strconv.Itoa(i + 2)
			arc := corner(b, "arc"+n, prev, r)
			Hole(b, "hole"+n, arc.Center, 2*r)
			prev = line(b, "line"+n, arc, d)
		}
	},
}

// HumbuckerRouting is the routing template for a humbucking pickup: a
// rounded rectangle w2 wide and h1 high, with ears w1 wide extending it to a
// total height of h2 for the mounting screws. The outline is traced
// clockwise, starting at the top right corner.
var HumbuckerRouting = draft.Blueprint{
	Params: draft.Params{
		{Name: "w1", Value: 17},
		{Name: "w2", Value: 41},
		{Name: "h1", Value: 72},
		{Name: "h2", Value: 88},
		{Name: "r", Value: 3},
	},
	Func: func(b *draft.Builder) {
		w1 := b.Param("w1")
		w2 := b.Param("w2")
		h1 := b.Param("h1")
		h2 := b.Param("h2")
		r := b.Param("r")
		checkCorner(b, "r", min(w1, h1))
		// Side of the main body next to an ear.
		d1 := (w2-w1)/2 - r
		// Straight part of an ear's side.
		d2 := (h2-h1)/2 - r
		// Straight part of an ear's end.
		d3 := w1 - 2*r

		holes := 1
		turn := func(name string, prev draft.Connectable) draft.CircularArc {
			arc := corner(b, name, prev, r)
			holes++
			Hole(b, "hole"+strconv.Itoa(holes), arc.Center, 2*r)
			return arc
		}

		c := b.Anchor().Translate(draft.Vec(w2/2-r, h1/2-r))
		arc1 := b.Arc("arc1", c, r, 90, -90)
		Hole(b, "hole1", arc1.Center, 2*r)
		line1 := b.ConnectLine("line1", arc1, h1-2*r)
		arc2 := turn("arc2", line1)
		line2 := b.ConnectLine("line2", arc2, d1)

		// Lower ear.
		line3 := b.SegmentFrom("line3", line2.P1, d2, -90)
		arc3 := turn("arc3", line3)
		line4 := b.ConnectLine("line4", arc3, d3)
		arc4 := turn("arc4", line4)
		line5 := b.ConnectLine("line5", arc4, d2)

		line6 := b.SegmentFrom("line6", line5.P1, d1, 180)
		arc5 := turn("arc5", line6)
		line7 := b.ConnectLine("line7", arc5, h1-2*r)
		arc6 := turn("arc6", line7)
		line8 := b.ConnectLine("line8", arc6, d1)

		// Upper ear.
		line9 := b.SegmentFrom("line9", line8.P1, d2, 90)
		arc7 := turn("arc7", line9)
		line10 := b.ConnectLine("line10", arc7, d3)
		arc8 := turn("arc8", line10)
		line11 := b.ConnectLine("line11", arc8, d2)

		b.SegmentFrom("line12", line11.P1, d1, 0)
	},
}
