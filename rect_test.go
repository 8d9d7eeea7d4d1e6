package squircle

import (
	"testing"
)

func TestRectAbs(t *testing.T) {
	r := NewRectFromPoints(Pt(10, 20), Pt(0, 5))
	diff(t, Rect{0, 5, 10, 20}, r)
	diff(t, Pt(0, 5), r.Origin())
	diff(t, Sz(10, 15), r.Size())
	diff(t, Pt(5, 12.5), r.Center())

	flipped := Rect{10, 20, 0, 5}
	if w, h := flipped.Width(), flipped.Height(); w != -10 || h != -15 {
		t.Errorf("got %v×%v, want -10×-15", w, h)
	}
	diff(t, r, flipped.Abs())
}

func TestRectFromSize(t *testing.T) {
	diff(t, Rect{0, 0, 30, 20}, NewRectFromSize(Sz(30, 20)))
	diff(t, Rect{-30, 0, 0, 20}, NewRectFromSize(Sz(-30, 20)))
}

func TestRectContainsClosed(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	for _, pt := range []Point{Pt(0, 0), Pt(10, 10), Pt(5, 0), Pt(3, 7)} {
		if !r.ContainsClosed(pt) {
			t.Errorf("%v should contain %v", r, pt)
		}
	}
	for _, pt := range []Point{Pt(-0.01, 0), Pt(10, 10.01), Pt(20, 5)} {
		if r.ContainsClosed(pt) {
			t.Errorf("%v shouldn't contain %v", r, pt)
		}
	}
}

func TestRectUnionPoint(t *testing.T) {
	r := NewRectFromPoints(Pt(1, 1), Pt(1, 1))
	for _, pt := range []Point{Pt(3, 0), Pt(-2, 4), Pt(0, 2)} {
		r = r.UnionPoint(pt)
	}
	diff(t, Rect{-2, 0, 3, 4}, r)
}

func TestRectExpand(t *testing.T) {
	diff(t, Rect{1, -2, 4, 5}, Rect{1.2, -1.5, 3.01, 5}.Expand())
	diff(t, Rect{0, 0, 10, 10}, Rect{0, 0, 10, 10}.Expand())
}
