package draft

import "testing"

func TestRectUnion(t *testing.T) {
	r := boundingBoxOf(Pt(3, -1), Pt(-2, 4), Pt(0, 0))
	diff(t, r, Rect{-2, -1, 3, 4})
	if r.Width() != 5 || r.Height() != 5 {
		t.Errorf("got %g×%g, want 5×5", r.Width(), r.Height())
	}
	diff(t, r.Center(), Pt(0.5, 1.5))

	if !emptyRect.IsEmpty() {
		t.Error("empty rectangle isn't empty")
	}
	diff(t, emptyRect.Union(r), r)
	diff(t, r.Union(emptyRect), r)
	diff(t, r.Union(Rect{10, 10, 11, 11}), Rect{-2, -1, 11, 11})

	single := boundingBoxOf(Pt(1, 1))
	if single.IsEmpty() {
		t.Error("a single point's bounding box is empty")
	}
}

func TestRectInflate(t *testing.T) {
	r := NewRectFromPoints(Pt(4, 4), Pt(0, 0))
	diff(t, r, Rect{0, 0, 4, 4})
	diff(t, r.Inflate(1, 2), Rect{-1, -2, 5, 6})
}

func TestAffine(t *testing.T) {
	pt := Pt(2, 3)
	diff(t, pt.Transform(FlipY), Pt(2, -3))
	diff(t, pt.Transform(Rotation(90)), Pt(-3, 2))
	diff(t, pt.Transform(RotationAbout(180, Pt(1, 1))), Pt(0, -1))
	diff(t, pt.Transform(Shift(Vec(1, 1)).ThenScale(2, 3)), Pt(6, 12))

	// Shift to (7, 1), rotate to (-1, 7), then scale.
	aff := Rotation(90).Mul(Shift(Vec(5, -2))).ThenScale(2, 2)
	diff(t, pt.Transform(aff), Pt(-2, 14))
	diff(t, pt.Transform(Scaling(-1, 0.5)), Pt(-2, 1.5))

	r := Rect{0, 1, 4, 3}
	diff(t, FlipY.ThenTranslate(Vec(0, 10)).TransformRect(r), Rect{0, 7, 4, 9})
	if !FlipY.TransformRect(emptyRect).IsEmpty() {
		t.Error("transformed empty rectangle isn't empty")
	}
}
