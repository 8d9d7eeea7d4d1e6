package squircle

import (
	"fmt"
	"math"
)

// Corner identifies one of the four corners of a box.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	case BottomRight:
		return "BottomRight"
	case BottomLeft:
		return "BottomLeft"
	default:
		return fmt.Sprintf("Corner(%d)", int(c))
	}
}

// Override is an optional per-corner radius. The zero value is unset.
type Override struct {
	Value float64
	Set   bool
}

// Some returns an Override that is set to r.
func Some(r float64) Override {
	return Override{Value: r, Set: true}
}

// CornerRadii describes the requested corner radii of a squircle: a Default
// that applies to every corner and optional overrides for individual corners.
//
// Requested radii are only a wish. See [CornerRadii.Resolve] for how they are
// turned into the radii that are actually used.
type CornerRadii struct {
	Default     float64
	TopLeft     Override
	TopRight    Override
	BottomRight Override
	BottomLeft  Override
}

// Uniform returns radii that use r for all four corners.
func Uniform(r float64) CornerRadii {
	return CornerRadii{Default: r}
}

// PerCorner returns radii that override every corner individually.
func PerCorner(tl, tr, br, bl float64) CornerRadii {
	return CornerRadii{
		TopLeft:     Some(tl),
		TopRight:    Some(tr),
		BottomRight: Some(br),
		BottomLeft:  Some(bl),
	}
}

// With returns a copy of cr with the radius of corner c overridden by r.
func (cr CornerRadii) With(c Corner, r float64) CornerRadii {
	switch c {
	case TopLeft:
		cr.TopLeft = Some(r)
	case TopRight:
		cr.TopRight = Some(r)
	case BottomRight:
		cr.BottomRight = Some(r)
	case BottomLeft:
		cr.BottomLeft = Some(r)
	}
	return cr
}

// Get returns the requested radius of corner c, before clamping.
func (cr CornerRadii) Get(c Corner) float64 {
	var o Override
	switch c {
	case TopLeft:
		o = cr.TopLeft
	case TopRight:
		o = cr.TopRight
	case BottomRight:
		o = cr.BottomRight
	case BottomLeft:
		o = cr.BottomLeft
	}
	if o.Set {
		return o.Value
	}
	return cr.Default
}

// Resolve returns the effective radii for a box of size sz. Each corner uses
// its override if set and the default otherwise, and is then clamped to
// [0, min(width, height) / 2] so that opposing corners can touch but never
// overlap. NaN radii resolve to zero.
func (cr CornerRadii) Resolve(sz Size) Radii {
	limit := max(sz.MinSide()/2, 0)
	if math.IsNaN(limit) {
		limit = 0
	}
	return Radii{
		TopLeft:     cr.Get(TopLeft),
		TopRight:    cr.Get(TopRight),
		BottomRight: cr.Get(BottomRight),
		BottomLeft:  cr.Get(BottomLeft),
	}.Clamp(limit)
}

// Radii are resolved corner radii, as used by the generator.
type Radii struct {
	TopLeft     float64
	TopRight    float64
	BottomRight float64
	BottomLeft  float64
}

// Corner returns the radius of corner c.
func (r Radii) Corner(c Corner) float64 {
	switch c {
	case TopLeft:
		return r.TopLeft
	case TopRight:
		return r.TopRight
	case BottomRight:
		return r.BottomRight
	case BottomLeft:
		return r.BottomLeft
	default:
		return 0
	}
}

// Clamp limits every radius to [0, max]. NaN becomes 0.
func (r Radii) Clamp(max float64) Radii {
	clamp := func(v float64) float64 {
		if !(v > 0) {
			return 0
		}
		return min(v, max)
	}
	return Radii{
		TopLeft:     clamp(r.TopLeft),
		TopRight:    clamp(r.TopRight),
		BottomRight: clamp(r.BottomRight),
		BottomLeft:  clamp(r.BottomLeft),
	}
}

func (r Radii) IsNaN() bool {
	return math.IsNaN(r.TopLeft) ||
		math.IsNaN(r.TopRight) ||
		math.IsNaN(r.BottomRight) ||
		math.IsNaN(r.BottomLeft)
}
