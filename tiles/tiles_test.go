package tiles

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marben/dynago/render"
)

func TestSplitCoversImage(t *testing.T) {
	tcs := []struct {
		name          string
		w, h          int
		tileW, tileH  int
		tiles, pixels int
	}{
		{name: "exact fit", w: 128, h: 64, tileW: 64, tileH: 64, tiles: 2, pixels: 128 * 64},
		{name: "ragged edges", w: 100, h: 70, tileW: 64, tileH: 64, tiles: 4, pixels: 100 * 70},
		{name: "single tile", w: 10, h: 10, tileW: 64, tileH: 64, tiles: 1, pixels: 100},
		{name: "empty image", w: 0, h: 0, tileW: 64, tileH: 64, tiles: 0, pixels: 0},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			tiles := Split(tc.w, tc.h, tc.tileW, tc.tileH)
			assert.Len(t, tiles, tc.tiles)

			area := 0
			bounds := image.Rect(0, 0, tc.w, tc.h)
			for _, tile := range tiles {
				area += tile.W * tile.H
				assert.True(t, tile.Rect().In(bounds), "%v outside image", tile)
			}
			assert.Equal(t, tc.pixels, area)
		})
	}
}

func TestSplitPanicsOnBadTileSize(t *testing.T) {
	assert.Panics(t, func() { Split(100, 100, 0, 64) })
	assert.Panics(t, func() { Split(100, 100, 64, -1) })
}

func TestJobNewFamily(t *testing.T) {
	fam, err := Job{Family: "mandelbrot", MaxIter: 10}.NewFamily()
	require.NoError(t, err)
	assert.Equal(t, "Mandelbrot", fam.Name())

	// An empty name keeps the default family, so stale clients still work.
	fam, err = Job{MaxIter: 10}.NewFamily()
	require.NoError(t, err)
	assert.Equal(t, "Mandelbrot", fam.Name())

	fam, err = Job{Family: "unicritical", Degree: 1, MaxIter: 10}.NewFamily()
	require.NoError(t, err)
	assert.Equal(t, "Unicritical deg 2", fam.Name())

	fam, err = Job{Family: "julia", C: [2]float64{-1, 0}, MaxIter: 10}.NewFamily()
	require.NoError(t, err)
	assert.Contains(t, fam.Name(), "Julia")

	_, err = Job{Family: "nova", MaxIter: 10}.NewFamily()
	assert.Error(t, err)
}

func TestTileResultImage(t *testing.T) {
	tile := Tile{X0: 8, Y0: 16, W: 2, H: 3}

	_, err := TileResult{Tile: tile, Pix: make([]byte, 7)}.Image()
	assert.Error(t, err)

	img, err := TileResult{Tile: tile, Pix: make([]byte, 2*3*4)}.Image()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(8, 16, 10, 19), img.Bounds())
	assert.Equal(t, 8, img.Stride)
}

func TestRenderTile(t *testing.T) {
	job := Job{
		Family: "mandelbrot", MaxIter: 100,
		MinX: -2.1, MaxX: 0.55, MinY: -1.25, MaxY: 1.25,
		Width: 64, Height: 64,
	}
	tile := Tile{X0: 16, Y0: 0, W: 16, H: 8}

	res, err := Render(job, tile, render.DefaultPalette())
	require.NoError(t, err)
	assert.Equal(t, tile, res.Tile)
	assert.Len(t, res.Pix, 16*8*4)

	// Rendering is deterministic, so retrying a tile gives identical bytes.
	again, err := Render(job, tile, render.DefaultPalette())
	require.NoError(t, err)
	assert.Equal(t, res.Pix, again.Pix)
}

func TestRenderUnknownFamily(t *testing.T) {
	job := Job{Family: "nova", MaxIter: 10, Width: 8, Height: 8, MaxX: 1, MaxY: 1}
	_, err := Render(job, Tile{W: 8, H: 8}, render.DefaultPalette())
	assert.Error(t, err)
}
