package squircle

import (
	"iter"
	"math"

	"deedles.dev/xiter"
)

// Superellipse returns the point at angle th on the superellipse
//
//	|x/r|ⁿ + |y/r|ⁿ = 1
//
// centered at c. The angle is measured like [Rotate] measures angles: in a
// y-down space, it increases clockwise from the positive x axis.
//
// The point is computed as
//
//	x = cx + r·cos θ / (|cos θ|ⁿ + |sin θ|ⁿ)^(1/n)
//	y = cy + r·sin θ / (|cos θ|ⁿ + |sin θ|ⁿ)^(1/n)
//
// with the denominator scaled by max(|cos θ|, |sin θ|) so that neither power
// underflows for large exponents.
func Superellipse(c Point, r, n, th float64) Point {
	sin, cos := math.Sincos(th)
	ac, as := math.Abs(cos), math.Abs(sin)
	// sin² + cos² = 1, so m ≥ √2/2.
	m := max(ac, as)
	d := m * math.Pow(math.Pow(ac/m, n)+math.Pow(as/m, n), 1/n)
	return Point{
		X: c.X + r*cos/d,
		Y: c.Y + r*sin/d,
	}
}

// cornerGeometry describes the quarter turn a corner's arc covers.
type cornerGeometry struct {
	center Point
	start  float64
	// first and last are the exact tangent points on the adjacent edges.
	first, last Point
}

func geometryOf(sz Size, c Corner, r float64) cornerGeometry {
	w, h := sz.Width, sz.Height
	switch c {
	case TopRight:
		return cornerGeometry{Pt(w-r, r), -math.Pi / 2, Pt(w-r, 0), Pt(w, r)}
	case BottomRight:
		return cornerGeometry{Pt(w-r, h-r), 0, Pt(w, h-r), Pt(w-r, h)}
	case BottomLeft:
		return cornerGeometry{Pt(r, h-r), math.Pi / 2, Pt(r, h), Pt(0, h-r)}
	case TopLeft:
		return cornerGeometry{Pt(r, r), math.Pi, Pt(0, r), Pt(r, 0)}
	default:
		panic("unreachable")
	}
}

// cornerSamples yields count points evenly spaced in angle along the corner's
// quarter turn, in clockwise order.
func cornerSamples(g cornerGeometry, r, n float64, count int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		step := (math.Pi / 2) / float64(count-1)
		for i := range count {
			var pt Point
			switch i {
			case 0:
				pt = g.first
			case count - 1:
				pt = g.last
			default:
				pt = Superellipse(g.center, r, n, g.start+step*float64(i))
			}
			if !yield(pt) {
				return
			}
		}
	}
}

// thinned returns the indices of the samples dropped from an arc of count
// samples. Dropped samples are odd, so no two neighbours are ever dropped,
// and they are spread evenly over the arc. The first and last samples are
// never dropped.
func thinned(count int) map[int]bool {
	k := thinCount(count)
	if k == 0 {
		return nil
	}
	// Odd interior indices are 1, 3, …, 2m−1, all below count−1.
	m := (count - 1) / 2
	drop := make(map[int]bool, k)
	for s := range k {
		j := (2*s + 1) * m / (2 * k)
		drop[2*j+1] = true
	}
	return drop
}

// cornerArc returns the unrounded points of the arc for corner c, after
// thinning. A corner without radius is a single point.
func cornerArc(sz Size, c Corner, r float64, p Profile) []Point {
	g := geometryOf(sz, c, r)
	if r == 0 {
		return []Point{g.first}
	}

	drop := thinned(p.PointsPerCorner)
	out := make([]Point, 0, p.PointsPerCorner-len(drop))
	for i, pt := range xiter.Enumerate(cornerSamples(g, r, p.Exponent, p.PointsPerCorner)) {
		if drop[i] {
			continue
		}
		out = append(out, pt)
	}
	return out
}
