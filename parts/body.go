package parts

import (
	"math"

	"honnef.co/go/draft"
)

// MusicManAxisBody is the lower bout of a Music Man Axis style body.
//
// The bout is a spiral around c1, d1 along the neck axis from the anchor,
// whose radius grows from q1 towards q1+m1 following a stretched exponential
// with scale scale1 and shape gamma1. The radius is symmetric around 180°.
// A circular arc around (c2x, c2y) continues the outline.
var MusicManAxisBody = draft.Blueprint{
	Params: draft.Params{
		{Name: "d1", Value: 240},
		{Name: "m1", Value: 151.07},
		{Name: "q1", Value: 89.54},
		{Name: "scale1", Value: 120.97},
		{Name: "gamma1", Value: 5.4759},
		{Name: "phi1", Value: 100},
		{Name: "phi2", Value: 240},
		{Name: "c2x", Value: 280},
		{Name: "c2y", Value: 250},
		{Name: "r2", Value: 140},
		{Name: "phi3", Value: 240},
		{Name: "phi4", Value: 320},
	},
	Func: func(b *draft.Builder) {
		anchor := b.Point("anchor", b.Anchor())
		c1 := b.Point("c1", anchor.HMove(b.Param("d1")))
		radius := boutRadius(b.Param("m1"), b.Param("q1"), b.Param("scale1"), b.Param("gamma1"))
		b.Spiral("arc1", c1, radius, b.Param("phi1"), b.Param("phi2"))

		c2 := b.Point("c2", draft.Pt(b.Param("c2x"), b.Param("c2y")))
		phi3 := b.Param("phi3")
		b.Arc("arc2", c2, b.Param("r2"), phi3, b.Param("phi4")-phi3)
	},
}

// boutRadius returns q + m·(1 − exp(−(φ/scale)^gamma)), with φ mirrored
// around 180°.
func boutRadius(m, q, scale, gamma float64) draft.RadiusFunc {
	return func(phi float64) float64 {
		if phi > 180 {
			phi = 360 - phi
		}
		return q + m*(1-math.Exp(-math.Pow(phi/scale, gamma)))
	}
}
