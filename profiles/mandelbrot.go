// Package profiles has the concrete dynamical families: the quadratic
// parameter plane, its unicritical generalization and dynamical (Julia)
// planes. Each family only supplies formulas; all iteration and
// classification machinery lives in the sibling packages.
package profiles

import (
	"math"
	"math/cmplx"

	"github.com/marben/dynago"
)

// Mandelbrot is the parameter plane of z ↦ z² + c, iterated from the free
// critical point 0.
type Mandelbrot struct {
	MaxIters int

	// Tol is the periodicity tolerance; zero disables cycle detection.
	Tol float64
}

// NewMandelbrot builds the family with the default tolerance, scaled to
// the area of the default view.
func NewMandelbrot(maxIters int) *Mandelbrot {
	m := &Mandelbrot{MaxIters: maxIters}
	b := m.DefaultBounds()
	m.Tol = b.RangeX() * b.RangeY() * 1e-14
	return m
}

func (m *Mandelbrot) Name() string { return "Mandelbrot" }

func (m *Mandelbrot) Map(z, c complex128) complex128 { return z*z + c }

func (m *Mandelbrot) MapAndMultiplier(z, c complex128) (complex128, complex128) {
	return z*z + c, 2 * z
}

func (m *Mandelbrot) Gradient(z, c complex128) (complex128, complex128, complex128) {
	return z*z + c, 2 * z, 1
}

func (m *Mandelbrot) StartPoint(point, c complex128) complex128 { return 0 }

func (m *Mandelbrot) StartPointD(point, c complex128) (complex128, complex128, complex128) {
	return 0, 0, 0
}

func (m *Mandelbrot) ParamMap(point complex128) complex128 { return point }

func (m *Mandelbrot) ParamMapD(point complex128) (complex128, complex128) {
	return point, 1
}

func (m *Mandelbrot) EscapeRadius() float64         { return 1e26 }
func (m *Mandelbrot) PeriodicityTolerance() float64 { return m.Tol }
func (m *Mandelbrot) MinIter() int                  { return 0 }
func (m *Mandelbrot) MaxIter() int                  { return m.MaxIters }

func (m *Mandelbrot) DefaultBounds() dynago.Bounds {
	return dynago.Bounds{MinX: -2.1, MaxX: 0.55, MinY: -1.25, MaxY: 1.25}
}

func (m *Mandelbrot) Degree() int         { return 2 }
func (m *Mandelbrot) DegreeReal() float64 { return 2 }
func (m *Mandelbrot) EscapingPeriod() int { return 1 }
func (m *Mandelbrot) EscapingPhase() int  { return 1 }

func (m *Mandelbrot) AngleMapLargeParam(angle dynago.RationalAngle) dynago.RationalAngle {
	return angle
}

func (m *Mandelbrot) EscapeCoeff(c complex128) complex128 { return 1 }

// EarlyBailout classifies parameters inside the main cardioid and the
// period-2 bulb analytically, skipping iteration. The potential is a
// convergence-time analogue: the number of iterations needed for the
// critical orbit to approach the attracting cycle within the periodicity
// tolerance, estimated from the cycle's multiplier.
func (m *Mandelbrot) EarlyBailout(z, c complex128) (dynago.EscapeResult, bool) {
	// Main cardioid
	fourC := 4 * c
	y2 := imag(fourC) * imag(fourC)
	temp := real(fourC) - 1
	muNorm2 := temp*temp + y2
	a := muNorm2 * (muNorm2*0.25 + temp)

	if a < y2 {
		multiplier := 1 - cmplx.Sqrt(1-fourC)
		multNorm2 := real(multiplier)*real(multiplier) + imag(multiplier)*imag(multiplier)
		fixedPoint := 0.5 * multiplier
		d := c - fixedPoint
		initDist := real(d)*real(d) + imag(d)*imag(d)
		potential := -2 * math.Log(initDist/m.Tol) / math.Log(multNorm2)
		return dynago.EscapeResult{
			State:          dynago.StatePeriodic,
			Potential:      potential,
			KnownPotential: true,
			Cycle: dynago.CycleData{
				Period:     1,
				Multiplier: multiplier,
			},
		}, true
	}

	// Basilica bulb
	mu2 := fourC + 4
	multNorm2 := real(mu2)*real(mu2) + imag(mu2)*imag(mu2)
	if multNorm2 < 1 {
		fixedPoint := -0.5 - 0.5*cmplx.Sqrt(-fourC-3)
		d := c - fixedPoint
		initDist := real(d)*real(d) + imag(d)*imag(d)
		potential := -4 * math.Log(initDist/m.Tol) / math.Log(multNorm2)
		return dynago.EscapeResult{
			State:          dynago.StatePeriodic,
			Potential:      potential,
			KnownPotential: true,
			Cycle: dynago.CycleData{
				Period:     2,
				Multiplier: mu2,
			},
		}, true
	}

	return dynago.EscapeResult{}, false
}

// MarkedCycleCurve exposes the locus of parameters with a marked cycle of
// the given period as its own plane, via a rational covering of the
// parameter plane. Supported periods: 1 and 3.
func (m *Mandelbrot) MarkedCycleCurve(period int) (*dynago.CoveringMap, bool) {
	switch period {
	case 1:
		cover := func(t complex128) (complex128, complex128) {
			return 0.25 - t*t, -2 * t
		}
		bounds := dynago.Bounds{MinX: -1.8, MaxX: 1.8, MinY: -1.0, MaxY: 1.0}
		return dynago.NewCoveringMap(m, cover, bounds, "Mandelbrot marked cycle 1"), true
	case 3:
		cover := func(t complex128) (complex128, complex128) {
			return -0.25 * (t*t + 7), -0.5 * t
		}
		bounds := dynago.Bounds{MinX: -2.1, MaxX: 2.1, MinY: -3.5, MaxY: 3.5}
		return dynago.NewCoveringMap(m, cover, bounds, "Mandelbrot marked cycle 3"), true
	}
	return nil, false
}
