package dynago_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marben/dynago"
)

func TestBounds(t *testing.T) {
	b := dynago.Bounds{MinX: -2, MaxX: 2, MinY: -1, MaxY: 1}
	assert.Equal(t, 4.0, b.RangeX())
	assert.Equal(t, 2.0, b.RangeY())
	assert.Equal(t, complex(0, 0), b.Center())
	assert.True(t, b.Contains(complex(1, 0.5)))
	assert.False(t, b.Contains(complex(3, 0)))
	assert.False(t, b.IsNaN())

	bad := dynago.Bounds{MinX: math.NaN(), MaxX: 1, MinY: 0, MaxY: 1}
	assert.True(t, bad.IsNaN())
}

func TestBoundsZoomed(t *testing.T) {
	b := dynago.CenteredSquare(2)
	z := b.Zoomed(0.5, complex(1, 1))
	assert.InDelta(t, -0.5, z.MinX, 1e-15)
	assert.InDelta(t, 1.5, z.MaxX, 1e-15)
	assert.InDelta(t, -0.5, z.MinY, 1e-15)
	assert.InDelta(t, 1.5, z.MaxY, 1e-15)
}

func TestGridResolutionInference(t *testing.T) {
	b := dynago.Bounds{MinX: 0, MaxX: 4, MinY: 0, MaxY: 2}

	g := dynago.NewGridByResX(400, b)
	assert.Equal(t, 400, g.ResX)
	assert.Equal(t, 200, g.ResY)

	h := dynago.NewGridByResY(100, b)
	assert.Equal(t, 200, h.ResX)
	assert.Equal(t, 100, h.ResY)
}

func TestGridPixelMapping(t *testing.T) {
	b := dynago.Bounds{MinX: -2, MaxX: 2, MinY: -1, MaxY: 1}
	g := dynago.PointGrid{ResX: 400, ResY: 200, Bounds: b}

	require.InDelta(t, 0.01, g.PixelWidth(), 1e-15)
	require.InDelta(t, 0.01, g.PixelHeight(), 1e-15)

	// Pixel (0,0) is the bottom-left corner.
	assert.Equal(t, complex(-2, -1), g.MapPixel(0, 0))
	assert.Equal(t, complex(0, 0), g.MapPixel(200, 100))

	x, y := g.LocatePoint(complex(0, 0))
	assert.InDelta(t, 200, x, 1e-9)
	assert.InDelta(t, 100, y, 1e-9)
}
