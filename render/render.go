// Package render turns classified planes into images. Continuous classes
// are colored by potential through an HSV sweep; discrete classes get one
// hue per class id.
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/marben/dynago"
	"github.com/marben/dynago/plane"
)

// Palette maps classifications to colors.
type Palette struct {
	// PotentialScale stretches the potential before the hue sweep.
	PotentialScale float64

	// HueShift rotates the whole sweep.
	HueShift float64

	// Interior colors bounded and periodic points without a known
	// potential.
	Interior color.RGBA
}

// DefaultPalette matches the classic escape-time look: black interior,
// full-saturation hue sweep outside.
func DefaultPalette() Palette {
	return Palette{
		PotentialScale: 0.02,
		Interior:       color.RGBA{A: 255},
	}
}

// Color maps one classified point to a color.
func (p Palette) Color(info dynago.PointInfo) color.RGBA {
	switch info.Class {
	case dynago.ClassEscaping, dynago.ClassPeriodicKnownPotential:
		if math.IsNaN(info.Potential) {
			return p.Interior
		}
		hue := math.Mod(info.Potential*p.PotentialScale+p.HueShift, 1.0)
		if hue < 0 {
			hue++
		}
		return hsv(hue, 1, 1)
	case dynago.ClassPeriodic:
		// Dim by period so different basins stay distinguishable.
		v := 0.5 + 0.5/float64(info.Cycle.Period+1)
		return hsv(math.Mod(float64(info.Cycle.Period)*0.618033988749895, 1), 0.4, v)
	case dynago.ClassMarkedPoint:
		return hsv(math.Mod(float64(info.ClassID)/float64(dynago.NumPointClasses), 1), 0.9, 0.9)
	default:
		return p.Interior
	}
}

// Image renders a classified plane. The vertical axis is flipped so that
// the positive imaginary direction points up in the image.
func Image(pl *plane.IterPlane, pal Palette) *image.RGBA {
	w, h := pl.Grid.ResX, pl.Grid.ResY
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := pl.Row(y)
		for x := 0; x < w; x++ {
			img.SetRGBA(x, h-1-y, pal.Color(row[x]))
		}
	}
	return img
}

// WritePNG renders a plane and encodes it as PNG.
func WritePNG(w io.Writer, pl *plane.IterPlane, pal Palette) error {
	return png.Encode(w, Image(pl, pal))
}

// Simple HSV → RGB
func hsv(h, s, v float64) color.RGBA {
	h = math.Mod(h, 1)
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}
