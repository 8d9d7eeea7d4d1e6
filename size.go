package squircle

import (
	"fmt"
	"math"
)

// Size is the width and height of the box being shaped, in device-independent
// units.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) MinSide() float64 {
	return min(sz.Width, sz.Height)
}

// IsDegenerate reports whether sz cannot be shaped: either side is zero,
// negative, infinite or NaN. This is the normal state of a container that
// hasn't been laid out yet.
func (sz Size) IsDegenerate() bool {
	return !(sz.Width > 0 && sz.Height > 0) || sz.IsInf()
}

// IsInf reports whether at least one of width and height is infinite.
func (sz Size) IsInf() bool {
	return math.IsInf(sz.Width, 0) || math.IsInf(sz.Height, 0)
}

// IsNaN reports whether at least one of width and height is NaN.
func (sz Size) IsNaN() bool {
	return math.IsNaN(sz.Width) || math.IsNaN(sz.Height)
}

// Differs reports whether width or height of sz and o differ by more than
// threshold.
func (sz Size) Differs(o Size, threshold float64) bool {
	return !(math.Abs(sz.Width-o.Width) <= threshold) ||
		!(math.Abs(sz.Height-o.Height) <= threshold)
}
