// Package raster turns squircle outlines into pixel coverage, for targets that
// clip with masks instead of vector paths.
package raster

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"honnef.co/go/squircle"
)

// Mask returns an alpha mask of the given bounds in which the pixels covered
// by p are opaque, with anti-aliased edges. Path coordinates are relative to
// bounds.Min. An empty path produces a fully transparent mask.
func Mask(p squircle.Path, bounds image.Rectangle) *image.Alpha {
	mask := image.NewAlpha(bounds)
	if p.IsEmpty() || bounds.Empty() {
		return mask
	}
	ras := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	ToRasterizer(p, ras)
	ras.Draw(mask, bounds, image.Opaque, image.Point{})
	return mask
}

// Bounds returns the smallest image rectangle anchored at the origin that
// covers p. It is empty for an empty path.
func Bounds(p squircle.Path) image.Rectangle {
	if p.IsEmpty() {
		return image.Rectangle{}
	}
	r := p.BoundingBox().Expand()
	return image.Rect(0, 0, int(max(r.X1, 0)), int(max(r.Y1, 0)))
}

// Fill composites src onto dst through the outline p, placed at dst's bounds
// origin. src is aligned with dst.
func Fill(dst draw.Image, p squircle.Path, src image.Image) {
	b := dst.Bounds()
	mask := Mask(p, b)
	draw.DrawMask(dst, b, src, b.Min, mask, b.Min, draw.Over)
}

// ToRasterizer adds the outline p to ras.
func ToRasterizer(p squircle.Path, ras *vector.Rasterizer) {
	for el := range p.PathElements() {
		switch el.Kind {
		case squircle.MoveToKind:
			ras.MoveTo(float32(el.P0.X), float32(el.P0.Y))
		case squircle.LineToKind:
			ras.LineTo(float32(el.P0.X), float32(el.P0.Y))
		case squircle.ClosePathKind:
			ras.ClosePath()
		}
	}
}
