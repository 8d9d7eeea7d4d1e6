package squircle

import "fmt"

// Side identifies one of the four sides of a box.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

func (s Side) String() string {
	switch s {
	case Top:
		return "Top"
	case Right:
		return "Right"
	case Bottom:
		return "Bottom"
	case Left:
		return "Left"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

type RunKind int

const (
	// An EdgeRun is a straight segment along one side of the box.
	EdgeRun RunKind = iota + 1
	// A CornerRun is the sampled superellipse arc of one corner.
	CornerRun
)

// Run describes a contiguous part of a [Path]. From and To are inclusive
// indices into the path's points. Neighbouring runs share their boundary
// point.
type Run struct {
	Kind RunKind
	// Side is set for edge runs.
	Side Side
	// Corner is set for corner runs.
	Corner Corner
	From   int
	To     int
}

func (r Run) String() string {
	if r.Kind == EdgeRun {
		return fmt.Sprintf("Edge(%s, %d–%d)", r.Side, r.From, r.To)
	}
	return fmt.Sprintf("Corner(%s, %d–%d)", r.Corner, r.From, r.To)
}

// Generate computes the outline of a squircle filling a box of size sz, with
// its top left corner at the origin.
//
// The outline is traced clockwise (in a y-down space), starting at the point
// where the top edge meets the top left corner, (r, 0). It visits the top
// edge, the top right corner, the right edge, the bottom right corner, the
// bottom edge, the bottom left corner, the left edge and the top left corner,
// and ends where it started.
//
// Radii are resolved and clamped with [CornerRadii.Resolve] and the profile is
// normalized with [Profile.Normalize]. Edges whose corners meet are omitted,
// which turns the shape into a pill or a superellipse.
//
// All coordinates are rounded to [Precision] decimal places and lie inside the
// box. A degenerate size (see [Size.IsDegenerate]) yields an empty path. No
// input causes Generate to fail; callers should treat an empty path as a
// reason to draw a fallback, such as a plain rounded rectangle.
//
// Generate is a pure function. It is safe for concurrent use, and identical
// inputs produce identical outputs.
func Generate(sz Size, radii CornerRadii, profile Profile) Path {
	if sz.IsDegenerate() {
		return Path{}
	}
	return generate(sz, radii.Resolve(sz), profile.Normalize())
}

func generate(sz Size, r Radii, p Profile) Path {
	b := pathBuilder{bounds: NewRectFromSize(sz)}
	b.push(Pt(r.TopLeft, 0))

	// Each side leads into the corner that follows it clockwise.
	corners := [...]Corner{TopRight, BottomRight, BottomLeft, TopLeft}
	for i, c := range corners {
		arc := cornerArc(sz, c, r.Corner(c), p)
		b.edge(Side(i), arc[0])
		b.arc(c, arc[1:])
	}
	return Path{
		Points: b.points,
		Runs:   b.runs,
	}
}

type pathBuilder struct {
	bounds Rect
	points []Point
	runs   []Run
}

// push rounds and appends pt, merging it with the previous point if they
// coincide. It returns the index of pt in the path.
func (b *pathBuilder) push(pt Point) int {
	pt = pt.RoundTo(Precision)
	pt.X = min(max(pt.X, b.bounds.X0), b.bounds.X1)
	pt.Y = min(max(pt.Y, b.bounds.Y0), b.bounds.Y1)
	if n := len(b.points); n > 0 && b.points[n-1] == pt {
		return n - 1
	}
	b.points = append(b.points, pt)
	return len(b.points) - 1
}

// edge draws a straight line on side s to pt, unless pt coincides with the
// current point.
func (b *pathBuilder) edge(s Side, pt Point) {
	from := len(b.points) - 1
	if to := b.push(pt); to > from {
		b.runs = append(b.runs, Run{Kind: EdgeRun, Side: s, From: from, To: to})
	}
}

// arc continues the current point along the remaining points of corner c's
// arc.
func (b *pathBuilder) arc(c Corner, pts []Point) {
	from := len(b.points) - 1
	for _, pt := range pts {
		b.push(pt)
	}
	b.runs = append(b.runs, Run{Kind: CornerRun, Corner: c, From: from, To: len(b.points) - 1})
}
