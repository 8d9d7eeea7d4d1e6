package squircle

import (
	"fmt"
	"math"
)

const (
	// DefaultExponent is the superellipse exponent used when a Profile
	// doesn't specify a valid one. It produces corners close to the
	// continuous-curvature corners of iOS-style interfaces.
	DefaultExponent = 5

	// DefaultPointsPerCorner is the sampling density used when a Profile
	// leaves PointsPerCorner at zero.
	DefaultPointsPerCorner = 12

	// MinPointsPerCorner is the lowest sampling density. Below it, corners
	// look faceted.
	MinPointsPerCorner = 4

	// MaxPointsPerCorner is the highest sampling density. More samples have
	// no visible effect at any practical size.
	MaxPointsPerCorner = 70

	// ThinningThreshold is the sampling density above which alternating
	// samples get dropped to bound the size of the output.
	ThinningThreshold = 24

	// Precision is the number of decimal places generated coordinates are
	// rounded to.
	Precision = 2
)

// Profile controls the shape and quality of squircle corners.
//
// The zero value is ready to use and selects [DefaultExponent] and
// [DefaultPointsPerCorner].
type Profile struct {
	// Exponent is the superellipse exponent n. Higher values produce
	// squarer corners, 2 produces circular arcs, and values below 2 pull
	// the corner inwards. Must be positive.
	Exponent float64

	// PointsPerCorner is the number of samples per corner arc, before
	// thinning.
	PointsPerCorner int
}

// DefaultProfile returns the profile used by the zero value.
func DefaultProfile() Profile {
	return Profile{
		Exponent:        DefaultExponent,
		PointsPerCorner: DefaultPointsPerCorner,
	}
}

func (p Profile) String() string {
	return fmt.Sprintf("n=%g, points=%d", p.Exponent, p.PointsPerCorner)
}

// Normalize returns the effective profile. Invalid exponents (zero,
// negative, infinite or NaN) are replaced by [DefaultExponent]. A zero density
// selects [DefaultPointsPerCorner], other densities are clamped to
// [MinPointsPerCorner, MaxPointsPerCorner].
func (p Profile) Normalize() Profile {
	if !(p.Exponent > 0) || math.IsInf(p.Exponent, 0) {
		p.Exponent = DefaultExponent
	}
	switch {
	case p.PointsPerCorner == 0:
		p.PointsPerCorner = DefaultPointsPerCorner
	case p.PointsPerCorner < MinPointsPerCorner:
		p.PointsPerCorner = MinPointsPerCorner
	case p.PointsPerCorner > MaxPointsPerCorner:
		p.PointsPerCorner = MaxPointsPerCorner
	}
	return p
}

// EmittedPointsPerCorner returns the number of points a corner with a
// positive radius contributes to a path, after thinning.
//
// The count never decreases as PointsPerCorner grows: past
// [ThinningThreshold], only half of the excess samples are dropped.
func (p Profile) EmittedPointsPerCorner() int {
	n := p.Normalize().PointsPerCorner
	return n - thinCount(n)
}

// thinCount returns the number of samples dropped from an arc of n samples.
func thinCount(n int) int {
	if n <= ThinningThreshold {
		return 0
	}
	return (n - ThinningThreshold + 1) / 2
}
