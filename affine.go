package draft

import "iter"

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v).
//
// Primitives are never transformed directly, since a non-uniform scale
// turns a circular arc into something else. Renderers instead transform the
// path elements of a drawing, see [TransformElements].
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// FlipY negates y coordinates, converting between the y-up drafting plane and
// y-down output formats such as SVG.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// Scaling creates an affine transform representing non-uniform scaling.
func Scaling(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Shift creates an affine transform representing translation by v.
func Shift(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotation creates an affine transform representing a counter-clockwise
// rotation about the origin, by an angle in degrees.
func Rotation(angle float64) Affine {
	sin, cos := sincosDeg(angle)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotationAbout creates an affine transform representing a rotation about
// center.
func RotationAbout(angle float64, center Point) Affine {
	c := Vec2(center)
	return Rotation(angle).Mul(Shift(c.Negate())).ThenTranslate(c)
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenScale creates aff followed by a scale of (x, y).
//
// Equivalent to "Scaling(x, y) * aff"
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scaling(x, y).Mul(aff)
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Shift(v) * aff"
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// TransformRect computes the bounding box of a transformed rectangle. The
// result is tight for transforms that keep the axes aligned, such as
// [FlipY] followed by a translation.
func (aff Affine) TransformRect(r Rect) Rect {
	if r.IsEmpty() {
		return r
	}
	return boundingBoxOf(
		Pt(r.X0, r.Y0).Transform(aff),
		Pt(r.X0, r.Y1).Transform(aff),
		Pt(r.X1, r.Y0).Transform(aff),
		Pt(r.X1, r.Y1).Transform(aff),
	)
}

// Transform applies aff to pt.
func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Transform applies aff to all points of el.
func (el PathElement) Transform(aff Affine) PathElement {
	el.P0 = el.P0.Transform(aff)
	el.P1 = el.P1.Transform(aff)
	el.P2 = el.P2.Transform(aff)
	return el
}

// TransformElements applies aff to every element of seq.
func TransformElements(seq iter.Seq[PathElement], aff Affine) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for el := range seq {
			if !yield(el.Transform(aff)) {
				break
			}
		}
	}
}
