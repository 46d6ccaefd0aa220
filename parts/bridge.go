package parts

import "honnef.co/go/draft"

// HardtailBridge is the footprint of a hardtail bridge base plate, with its
// four mounting holes. The origin is on the saddle line: the plate extends d
// towards the tail and w−d towards the neck, and h across the strings.
var HardtailBridge = draft.Blueprint{
	Params: draft.Params{
		{Name: "w", Value: 41},
		{Name: "d", Value: 16},
		{Name: "h", Value: 65},
		{Name: "r", Value: 5},
		// Spacing, diameter and inset of the screw holes.
		{Name: "hs", Value: 42},
		{Name: "hd", Value: 4},
		{Name: "hp", Value: 6},
	},
	Func: func(b *draft.Builder) {
		w := b.Param("w")
		d := b.Param("d")
		h := b.Param("h")
		r := b.Param("r")
		checkCorner(b, "r", min(w, h))

		p1 := b.Anchor().Translate(draft.Vec(-w+d, h/2))
		line1 := b.SegmentFrom("line1", p1, w-r, 0)
		arc1 := corner(b, "arc1", line1, r)
		line2 := line(b, "line2", arc1, h-2*r)
		arc2 := corner(b, "arc2", line2, r)
		line3 := b.ConnectLine("line3", arc2, w-r)
		b.Segment("line4", line3.P1, p1)

		hs := b.Param("hs")
		hd := b.Param("hd")
		hp := b.Param("hp")
		Hole(b, "h1", draft.Pt(d-hp, hs/2), hd)
		Hole(b, "h2", draft.Pt(d-hp, -hs/2), hd)
		Hole(b, "h3", draft.Pt(-w+d+hp, hs/2), hd)
		Hole(b, "h4", draft.Pt(-w+d+hp, -hs/2), hd)
	},
}
