// Package tiles is the wire protocol and tile arithmetic of the
// distributed renderer. The server splits an image into tiles and hands
// them to websocket workers; each worker classifies and colors its tile
// locally and sends back raw pixels.
package tiles

import (
	"fmt"
	"image"

	"github.com/marben/dynago"
	"github.com/marben/dynago/orbit"
	"github.com/marben/dynago/plane"
	"github.com/marben/dynago/profiles"
	"github.com/marben/dynago/render"
)

// Job describes one full image: the family to iterate, the region of its
// plane, and the output resolution.
type Job struct {
	// Family selects the dynamical family: "mandelbrot", "unicritical" or
	// "julia".
	Family string `json:"family"`

	// Degree applies to the unicritical family.
	Degree int `json:"degree,omitempty"`

	// C seeds the julia family, as (re, im).
	C [2]float64 `json:"c,omitempty"`

	MaxIter int `json:"max_iter"`

	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinY float64 `json:"min_y"`
	MaxY float64 `json:"max_y"`

	Width  int `json:"width"`
	Height int `json:"height"`
}

// Bounds is the plane region of the whole job.
func (j Job) Bounds() dynago.Bounds {
	return dynago.Bounds{MinX: j.MinX, MaxX: j.MaxX, MinY: j.MinY, MaxY: j.MaxY}
}

// NewFamily constructs the family a job asks for.
func (j Job) NewFamily() (dynago.Family, error) {
	switch j.Family {
	case "mandelbrot", "":
		return profiles.NewMandelbrot(j.MaxIter), nil
	case "unicritical":
		deg := j.Degree
		if deg < 2 {
			deg = 2
		}
		return profiles.NewUnicritical(deg, j.MaxIter), nil
	case "julia":
		base := profiles.NewMandelbrot(j.MaxIter)
		return profiles.NewJuliaSet(base, complex(j.C[0], j.C[1]), j.MaxIter), nil
	}
	return nil, fmt.Errorf("tiles: unknown family %q", j.Family)
}

// Tile is one rectangular piece of the output image, in global pixel
// coordinates.
type Tile struct {
	X0 int `json:"x0"`
	Y0 int `json:"y0"`
	W  int `json:"w"`
	H  int `json:"h"`
}

// Rect is the tile as an image rectangle.
func (t Tile) Rect() image.Rectangle {
	return image.Rect(t.X0, t.Y0, t.X0+t.W, t.Y0+t.H)
}

func (t Tile) String() string {
	return fmt.Sprintf("tile(%d,%d %dx%d)", t.X0, t.Y0, t.W, t.H)
}

// Split cuts a w×h image into tiles of at most tileW×tileH pixels. Tiles
// at the right and bottom edges are smaller if the image is not
// divisible.
func Split(w, h, tileW, tileH int) []Tile {
	if tileW <= 0 || tileH <= 0 {
		panic("tile dimensions must be positive")
	}
	var out []Tile
	for oy := 0; oy < h; oy += tileH {
		th := tileH
		if oy+th > h {
			th = h - oy
		}
		for ox := 0; ox < w; ox += tileW {
			tw := tileW
			if ox+tw > w {
				tw = w - ox
			}
			out = append(out, Tile{X0: ox, Y0: oy, W: tw, H: th})
		}
	}
	return out
}

// TileRequest is sent server → worker.
type TileRequest struct {
	Job  Job  `json:"job"`
	Tile Tile `json:"tile"`
}

// TileResult is sent worker → server. Pix is the tile's RGBA buffer, row
// major, 4 bytes per pixel, in image coordinates (top row first).
type TileResult struct {
	Tile Tile   `json:"tile"`
	Pix  []byte `json:"pix"`
}

// Image reassembles the result into a positioned RGBA image.
func (r TileResult) Image() (*image.RGBA, error) {
	want := r.Tile.W * r.Tile.H * 4
	if len(r.Pix) != want {
		return nil, fmt.Errorf("tiles: result has %d pixel bytes, want %d", len(r.Pix), want)
	}
	return &image.RGBA{
		Pix:    r.Pix,
		Stride: r.Tile.W * 4,
		Rect:   r.Tile.Rect(),
	}, nil
}

// Render classifies and colors one tile of a job.
//
// The tile's plane region is carved out of the job bounds. Image rows run
// top down while grid rows run bottom up, so the sub-bounds flip the
// vertical axis.
func Render(job Job, t Tile, pal render.Palette) (TileResult, error) {
	fam, err := job.NewFamily()
	if err != nil {
		return TileResult{}, err
	}

	px := job.Bounds().RangeX() / float64(job.Width)
	py := job.Bounds().RangeY() / float64(job.Height)

	sub := dynago.Bounds{
		MinX: job.MinX + float64(t.X0)*px,
		MaxX: job.MinX + float64(t.X0+t.W)*px,
		MinY: job.MaxY - float64(t.Y0+t.H)*py,
		MaxY: job.MaxY - float64(t.Y0)*py,
	}

	g := dynago.PointGrid{ResX: t.W, ResY: t.H, Bounds: sub}
	pl := plane.NewIterPlane(g)
	plane.ComputeInto(fam, orbit.ParamsFor(fam), pl)

	img := render.Image(pl, pal)
	return TileResult{Tile: t, Pix: img.Pix}, nil
}
