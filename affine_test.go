package squircle

import (
	"math"
	"testing"
)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(RotateAbout(math.Pi, Pt(5, 5))), Pt(7, 6), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)
	assertNear(t, px.Transform(a1).Transform(a2), px.Transform(a2.Mul(a1)), epsilon)
	assertNear(t, py.Transform(a1).Transform(a2), py.Transform(a2.Mul(a1)), epsilon)
	assertNear(t, pxy.Transform(a1).Transform(a2), pxy.Transform(a2.Mul(a1)), epsilon)
}

func TestAffineThen(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)
	aff := Translate(Vec(1, 1)).ThenScale(2, 3).ThenRotate(math.Pi / 2)
	assertNear(t, p.Transform(aff), Pt(-15, 8), epsilon)
}

func TestAffineDeterminant(t *testing.T) {
	tests := []struct {
		aff  Affine
		want float64
	}{
		{Identity, 1},
		{Scale(2, 3), 6},
		{Scale(1, -1), -1},
		{Rotate(1.234), 1},
		{Translate(Vec(5, 6)), 1},
	}
	for _, tt := range tests {
		if got := tt.aff.Determinant(); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%v: got determinant %v, want %v", tt.aff, got, tt.want)
		}
	}
}
