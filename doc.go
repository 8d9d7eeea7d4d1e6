// Package squircle generates outlines of squircles: rectangles whose corners
// follow a superellipse instead of a circular arc. Where a circular corner
// meets a straight edge, curvature jumps from zero to 1/r. A superellipse
// corner eases into the edge instead, which is what gives iOS-style interface
// elements their continuous look.
//
// # Generating outlines
//
// [Generate] maps a [Size], [CornerRadii] and a [Profile] to a [Path]. The
// path is a closed polygon: superellipse corners generally can't be expressed
// exactly as circular arcs or cubic Béziers, so they are always sampled.
//
//	p := squircle.Generate(squircle.Sz(100, 100), squircle.Uniform(20), squircle.Profile{
//		Exponent:        5,
//		PointsPerCorner: 12,
//	})
//	fmt.Println(p.SVG(squircle.SVGOptions{}))
//
// Generation never fails. Radii are clamped to half the shorter side, the
// profile is normalized into a valid range, and a box that has no area yet
// produces an empty path. Coordinates are rounded to two decimal places, so
// that repeated layout passes produce identical output.
//
// # Corner radii
//
// [CornerRadii] holds a default radius and optional overrides for individual
// corners:
//
//	radii := squircle.Uniform(16).With(squircle.BottomLeft, 0)
//
// # Consuming paths
//
// A [Path] holds its points, as well as runs that describe which points belong
// to which edge or corner. Paths can be serialized as SVG path strings (see
// [Path.SVG]), iterated as drawing commands (see [Path.PathElements]),
// transformed (see [Path.Transform]) and queried for area, perimeter, bounding
// box and containment. The raster subpackage turns paths into alpha masks.
//
// # Resizing
//
// Paths depend on the size of the element they shape. [Cache] memoizes
// generated paths by their normalized inputs, and [Observer] coalesces bursts
// of size notifications so that paths are regenerated at most once per frame.
package squircle
