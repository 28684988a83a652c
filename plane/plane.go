// Package plane computes classification grids: it tiles a pixel lattice
// across worker goroutines and runs the orbit engine on every pixel.
package plane

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/marben/dynago"
	"github.com/marben/dynago/orbit"
)

// IterPlane is a grid of classified points together with its pixel to
// coordinate mapping. Cells are stored row-major from the bottom-left.
type IterPlane struct {
	Grid  dynago.PointGrid
	Cells []dynago.PointInfo
}

// NewIterPlane allocates an empty plane over a grid.
func NewIterPlane(g dynago.PointGrid) *IterPlane {
	return &IterPlane{
		Grid:  g,
		Cells: make([]dynago.PointInfo, g.ResX*g.ResY),
	}
}

// At returns the classification of pixel (x, y).
func (p *IterPlane) At(x, y int) dynago.PointInfo {
	return p.Cells[y*p.Grid.ResX+x]
}

// Set stores the classification of pixel (x, y).
func (p *IterPlane) Set(x, y int, info dynago.PointInfo) {
	p.Cells[y*p.Grid.ResX+x] = info
}

// Row returns the cells of one pixel row.
func (p *IterPlane) Row(y int) []dynago.PointInfo {
	return p.Cells[y*p.Grid.ResX : (y+1)*p.Grid.ResX]
}

// Compute classifies every pixel of a grid under a family, with the
// family's default iteration parameters.
func Compute(f dynago.Family, g dynago.PointGrid) *IterPlane {
	p := NewIterPlane(g)
	ComputeInto(f, orbit.ParamsFor(f), p)
	return p
}

// ComputeInto fills an existing plane in place. Rows are split into
// contiguous chunks, one per worker; each worker owns a single reusable
// engine and writes only into its own rows. Degenerate bounds make the
// call a no-op.
func ComputeInto(f dynago.Family, params orbit.Params, plane *IterPlane) {
	g := plane.Grid
	if g.Bounds.IsNaN() || g.ResX <= 0 || g.ResY <= 0 {
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > g.ResY {
		workers = g.ResY
	}
	chunk := (g.ResY + workers - 1) / workers

	var eg errgroup.Group
	for start := 0; start < g.ResY; start += chunk {
		start := start
		end := start + chunk
		if end > g.ResY {
			end = g.ResY
		}
		eg.Go(func() error {
			eng := orbit.NewEngineParams(f, params)
			for y := start; y < end; y++ {
				row := plane.Row(y)
				for x := 0; x < g.ResX; x++ {
					eng.ResetPoint(g.MapPixel(x, y))
					res := eng.Run()
					row[x] = dynago.EncodeEscapeResult(f, res, eng.Param())
				}
			}
			return nil
		})
	}
	// Workers never fail; Wait is only a join.
	_ = eg.Wait()
}

// RunPoint classifies a single plane coordinate.
func RunPoint(f dynago.Family, point complex128) dynago.PointInfo {
	eng := orbit.NewEngine(f)
	eng.ResetPoint(point)
	res := eng.Run()
	return dynago.EncodeEscapeResult(f, res, eng.Param())
}

// TracePoint returns the full orbit of a plane coordinate together with
// its classification, for interactive inspection.
func TracePoint(f dynago.Family, point complex128) ([]complex128, dynago.PointInfo) {
	eng := orbit.NewEngine(f)
	eng.ResetPoint(point)
	traj, res := eng.Trace()
	return traj, dynago.EncodeEscapeResult(f, res, eng.Param())
}
