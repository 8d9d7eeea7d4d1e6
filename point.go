package squircle

import (
	"fmt"
	"math"
)

type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// RoundTo returns a new point with x and y rounded to the given number of
// decimal places. Negative zero is normalized to zero so that formatted output
// never shows "-0".
func (pt Point) RoundTo(places int) Point {
	return Point{
		X: roundTo(pt.X, places),
		Y: roundTo(pt.Y, places),
	}
}

// ApproxEqual reports whether both coordinates of pt and o differ by at most
// eps.
func (pt Point) ApproxEqual(o Point, eps float64) bool {
	return math.Abs(pt.X-o.X) <= eps && math.Abs(pt.Y-o.Y) <= eps
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

func roundTo(f float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	r := math.Round(f*scale) / scale
	if r == 0 {
		// -0 → 0
		return 0
	}
	return r
}
