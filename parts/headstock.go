package parts

import "honnef.co/go/draft"

// FenderHeadstock is the upper outline of a Fender style headstock, from
// the nut to the tip.
//
// The anchor is on the neck axis, at the middle of the nut. The outline
// leaves the nut at half the nut width w, runs straight for d1, bends up
// (r1, phi1) and back (r2, phi2) into the long straight edge d2, then turns
// around the tip (r3, phi3) and finishes with a short opposite bend
// (r4, phi4).
var FenderHeadstock = draft.Blueprint{
	Params: draft.Params{
		{Name: "w", Value: 41.91},
		{Name: "d1", Value: 8.06},
		{Name: "r1", Value: 15.23},
		{Name: "phi1", Value: 70},
		{Name: "r2", Value: 7.20},
		{Name: "phi2", Value: 87},
		{Name: "d2", Value: 143},
		{Name: "r3", Value: 25.5},
		{Name: "phi3", Value: 233},
		{Name: "r4", Value: 8.45},
		{Name: "phi4", Value: 62.5},
	},
	Func: func(b *draft.Builder) {
		anchor := b.Point("anchor", b.Anchor())
		line1 := b.SegmentFrom("line1", anchor.VMove(b.Param("w")/2), b.Param("d1"), 0)
		arc1 := b.ConnectArc("arc1", line1, b.Param("r1"), b.Param("phi1"))
		arc2 := b.ConnectArc("arc2", arc1, -b.Param("r2"), -b.Param("phi2"))
		line2 := b.ConnectLine("line2", arc2, b.Param("d2"))
		arc3 := b.ConnectArc("arc3", line2, -b.Param("r3"), -b.Param("phi3"))
		arc4 := b.ConnectArc("arc4", arc3, b.Param("r4"), b.Param("phi4"))

		b.Point("c1", arc1.Center)
		b.Point("c2", arc2.Center)
		b.Point("c3", arc3.Center)
		b.Point("c4", arc4.Center)
	},
}
