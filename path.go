package squircle

import (
	"fmt"
	"iter"
)

// Path is a closed polygon approximating a squircle, as produced by
// [Generate].
//
// Points trace the outline in order, and the last point repeats the first.
// Runs partition the outline into straight edges and corner arcs.
//
// Paths are values derived from their inputs. They may be shared and cached,
// but their slices must not be modified.
type Path struct {
	Points []Point
	Runs   []Run
}

// IsEmpty reports whether the path has no points. This is the result of
// generating a path for a degenerate size.
func (p Path) IsEmpty() bool {
	return len(p.Points) == 0
}

// Len returns the number of distinct points on the outline, not counting the
// repeated closing point.
func (p Path) Len() int {
	if len(p.Points) > 1 && p.closed() {
		return len(p.Points) - 1
	}
	return len(p.Points)
}

// closed reports whether the last point repeats the first.
func (p Path) closed() bool {
	return len(p.Points) > 0 && p.Points[0] == p.Points[len(p.Points)-1]
}

// Start returns the first point of the outline.
func (p Path) Start() (Point, bool) {
	if p.IsEmpty() {
		return Point{}, false
	}
	return p.Points[0], true
}

// Corner returns the points of the arc of corner c, in traversal order. A
// corner without radius consists of a single point.
func (p Path) Corner(c Corner) []Point {
	for _, r := range p.Runs {
		if r.Kind == CornerRun && r.Corner == c {
			return p.Points[r.From : r.To+1]
		}
	}
	return nil
}

// Edges returns the runs of the straight edges that have a positive length.
func (p Path) Edges() []Run {
	var out []Run
	for _, r := range p.Runs {
		if r.Kind == EdgeRun {
			out = append(out, r)
		}
	}
	return out
}

// segments yields the polygon's edges as pairs of points, including the
// closing edge if the last point doesn't repeat the first.
func (p Path) segments() iter.Seq2[Point, Point] {
	return func(yield func(Point, Point) bool) {
		n := len(p.Points)
		if n < 2 {
			return
		}
		for i := range n - 1 {
			if !yield(p.Points[i], p.Points[i+1]) {
				return
			}
		}
		if !p.closed() {
			yield(p.Points[n-1], p.Points[0])
		}
	}
}

// PathElements returns an iterator over path elements describing the outline
// as a "move to", a series of "line to" and a "close path".
func (p Path) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if p.IsEmpty() {
			return
		}
		if !yield(MoveTo(p.Points[0])) {
			return
		}
		for _, pt := range p.Points[1:p.Len()] {
			if !yield(LineTo(pt)) {
				return
			}
		}
		yield(ClosePath())
	}
}

// Area returns the signed area of the outline.
//
// The convention for positive area is that of a clockwise contour in a y-down
// space, which is how [Generate] traces outlines.
func (p Path) Area() float64 {
	var sum float64
	for a, b := range p.segments() {
		sum += a.X*b.Y - b.X*a.Y
	}
	return 0.5 * sum
}

// Perimeter returns the length of the outline.
func (p Path) Perimeter() float64 {
	var sum float64
	for a, b := range p.segments() {
		sum += a.Distance(b)
	}
	return sum
}

// BoundingBox returns the smallest rectangle that encloses the outline. It is
// the zero rectangle for an empty path.
func (p Path) BoundingBox() Rect {
	if p.IsEmpty() {
		return Rect{}
	}
	bbox := NewRectFromPoints(p.Points[0], p.Points[0])
	for _, pt := range p.Points[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

// Winding returns the [winding number] of a point.
//
// The sign of the winding number is consistent with that of [Path.Area]: it
// is +1 for points inside outlines produced by [Generate].
//
// [winding number]: https://en.wikipedia.org/wiki/Winding_number
func (p Path) Winding(pt Point) int {
	var w int
	for a, b := range p.segments() {
		side := b.Sub(a).Cross(pt.Sub(a))
		if a.Y <= pt.Y {
			if b.Y > pt.Y && side > 0 {
				w++
			}
		} else if b.Y <= pt.Y && side < 0 {
			w--
		}
	}
	return w
}

// Contains reports whether pt lies inside the outline.
func (p Path) Contains(pt Point) bool {
	return p.Winding(pt) != 0
}

// Transform returns a new path with every point mapped through aff. Runs are
// shared with p. Coordinates are not rounded again.
func (p Path) Transform(aff Affine) Path {
	if p.IsEmpty() {
		return p
	}
	pts := make([]Point, len(p.Points))
	for i, pt := range p.Points {
		pts[i] = pt.Transform(aff)
	}
	return Path{
		Points: pts,
		Runs:   p.Runs,
	}
}

func (p Path) String() string {
	return fmt.Sprintf("Path(%d points, %d runs)", p.Len(), len(p.Runs))
}
