package dynago

import "math"

// Bounds is a rectangular region of the complex plane.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// CenteredSquare returns a square region of half-side r centered at the
// origin.
func CenteredSquare(r float64) Bounds {
	return Bounds{MinX: -r, MaxX: r, MinY: -r, MaxY: r}
}

// RangeX is the width of the region.
func (b Bounds) RangeX() float64 { return b.MaxX - b.MinX }

// RangeY is the height of the region.
func (b Bounds) RangeY() float64 { return b.MaxY - b.MinY }

// Center is the midpoint of the region.
func (b Bounds) Center() complex128 {
	return complex((b.MinX+b.MaxX)/2, (b.MinY+b.MaxY)/2)
}

// AspectRatio is height over width.
func (b Bounds) AspectRatio() float64 { return b.RangeY() / b.RangeX() }

// Contains reports whether the point lies inside the region.
func (b Bounds) Contains(z complex128) bool {
	return real(z) >= b.MinX && real(z) <= b.MaxX &&
		imag(z) >= b.MinY && imag(z) <= b.MaxY
}

// IsNaN reports whether any edge of the region is NaN.
func (b Bounds) IsNaN() bool {
	return math.IsNaN(b.MinX) || math.IsNaN(b.MaxX) ||
		math.IsNaN(b.MinY) || math.IsNaN(b.MaxY)
}

// Zoomed returns the region scaled by factor around a fixed point.
func (b Bounds) Zoomed(factor float64, center complex128) Bounds {
	cx, cy := real(center), imag(center)
	return Bounds{
		MinX: cx + (b.MinX-cx)*factor,
		MaxX: cx + (b.MaxX-cx)*factor,
		MinY: cy + (b.MinY-cy)*factor,
		MaxY: cy + (b.MaxY-cy)*factor,
	}
}

// Translated returns the region shifted by an offset.
func (b Bounds) Translated(offset complex128) Bounds {
	return Bounds{
		MinX: b.MinX + real(offset),
		MaxX: b.MaxX + real(offset),
		MinY: b.MinY + imag(offset),
		MaxY: b.MaxY + imag(offset),
	}
}

// PointGrid is a pixel lattice laid over a region of the plane. Pixel
// (0,0) maps to the bottom-left corner, so the imaginary axis points up.
type PointGrid struct {
	ResX, ResY int
	Bounds     Bounds
}

// NewGridByResX builds a grid with the given horizontal resolution; the
// vertical resolution follows from the aspect ratio of the region.
func NewGridByResX(resX int, b Bounds) PointGrid {
	resY := int(math.Round(float64(resX) * b.AspectRatio()))
	if resY < 1 {
		resY = 1
	}
	return PointGrid{ResX: resX, ResY: resY, Bounds: b}
}

// NewGridByResY builds a grid with the given vertical resolution; the
// horizontal resolution follows from the aspect ratio of the region.
func NewGridByResY(resY int, b Bounds) PointGrid {
	resX := int(math.Round(float64(resY) / b.AspectRatio()))
	if resX < 1 {
		resX = 1
	}
	return PointGrid{ResX: resX, ResY: resY, Bounds: b}
}

// PixelWidth is the plane distance between horizontally adjacent pixels.
func (g PointGrid) PixelWidth() float64 {
	return g.Bounds.RangeX() / float64(g.ResX)
}

// PixelHeight is the plane distance between vertically adjacent pixels.
func (g PointGrid) PixelHeight() float64 {
	return g.Bounds.RangeY() / float64(g.ResY)
}

// MapPixel converts pixel coordinates to a plane point.
func (g PointGrid) MapPixel(x, y int) complex128 {
	re := g.Bounds.MinX + float64(x)*g.PixelWidth()
	im := g.Bounds.MinY + float64(y)*g.PixelHeight()
	return complex(re, im)
}

// LocatePoint converts a plane point to fractional pixel coordinates.
// Points outside the region map outside [0,Res).
func (g PointGrid) LocatePoint(z complex128) (x, y float64) {
	x = (real(z) - g.Bounds.MinX) / g.PixelWidth()
	y = (imag(z) - g.Bounds.MinY) / g.PixelHeight()
	return x, y
}

// WithResX returns the grid resampled to a new horizontal resolution.
func (g PointGrid) WithResX(resX int) PointGrid {
	return NewGridByResX(resX, g.Bounds)
}

// WithBounds returns a grid over new bounds at the same horizontal
// resolution.
func (g PointGrid) WithBounds(b Bounds) PointGrid {
	return NewGridByResX(g.ResX, b)
}
