package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marben/dynago"
	"github.com/marben/dynago/plane"
)

func TestColorByClass(t *testing.T) {
	pal := DefaultPalette()

	black := color.RGBA{A: 255}
	assert.Equal(t, black, pal.Color(dynago.PointInfo{Class: dynago.ClassBounded}))
	assert.Equal(t, black, pal.Color(dynago.PointInfo{Class: dynago.ClassUnknown}))
	assert.Equal(t, black, pal.Color(dynago.PointInfo{Class: dynago.ClassNaN}))

	escaping := pal.Color(dynago.PointInfo{Class: dynago.ClassEscaping, Potential: 12})
	assert.NotEqual(t, black, escaping)
	assert.EqualValues(t, 255, escaping.A)

	// Nearby potentials land on nearby hues, far ones on different ones.
	step := pal.Color(dynago.PointInfo{Class: dynago.ClassEscaping, Potential: 37})
	assert.NotEqual(t, escaping, step)

	periodic := pal.Color(dynago.PointInfo{Class: dynago.ClassPeriodic, Cycle: dynago.CycleData{Period: 3}})
	assert.NotEqual(t, black, periodic)
}

func TestImageFlipsVertically(t *testing.T) {
	g := dynago.PointGrid{ResX: 2, ResY: 2, Bounds: dynago.CenteredSquare(1)}
	pl := plane.NewIterPlane(g)

	// Mark only the bottom-left cell of the plane.
	pl.Set(0, 0, dynago.PointInfo{Class: dynago.ClassEscaping, Potential: 10})

	img := Image(pl, DefaultPalette())
	require.Equal(t, 2, img.Bounds().Dx())

	marked := DefaultPalette().Color(dynago.PointInfo{Class: dynago.ClassEscaping, Potential: 10})
	assert.Equal(t, marked, img.RGBAAt(0, 1))
	assert.NotEqual(t, marked, img.RGBAAt(0, 0))
}

func TestWritePNG(t *testing.T) {
	g := dynago.PointGrid{ResX: 4, ResY: 3, Bounds: dynago.CenteredSquare(1)}
	pl := plane.NewIterPlane(g)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, pl, DefaultPalette()))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 4, decoded.Bounds().Dx())
	assert.Equal(t, 3, decoded.Bounds().Dy())
}
