package profiles

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/marben/dynago"
)

// JuliaSet is the dynamical plane of a base family at a fixed parameter:
// the plane coordinate seeds the orbit directly and the parameter never
// varies.
//
// It deliberately does not expose the base family through Unwrap. The
// base's early bailout and marked points are statements about its
// parameter plane and do not transfer to a dynamical plane.
type JuliaSet struct {
	Base dynago.Family
	C    complex128

	MaxIters int
	Tol      float64
}

// NewJuliaSet builds the dynamical plane of the base family at parameter
// c, pinned to the base parameter via the base's own parameter map.
func NewJuliaSet(base dynago.Family, point complex128, maxIters int) *JuliaSet {
	j := &JuliaSet{Base: base, C: base.ParamMap(point), MaxIters: maxIters}
	b := j.DefaultBounds()
	j.Tol = b.RangeX() * b.RangeY() * 1e-14
	return j
}

func (j *JuliaSet) Name() string {
	return fmt.Sprintf("Julia(%s, c=%v)", j.Base.Name(), j.C)
}

func (j *JuliaSet) Map(z, c complex128) complex128 { return j.Base.Map(z, c) }

func (j *JuliaSet) MapAndMultiplier(z, c complex128) (complex128, complex128) {
	return j.Base.MapAndMultiplier(z, c)
}

// Gradient on a dynamical plane has no parameter dependence; the second
// partial is zero.
func (j *JuliaSet) Gradient(z, c complex128) (complex128, complex128, complex128) {
	fz, dfdz := j.Base.MapAndMultiplier(z, c)
	return fz, dfdz, 0
}

func (j *JuliaSet) StartPoint(point, c complex128) complex128 { return point }

func (j *JuliaSet) StartPointD(point, c complex128) (complex128, complex128, complex128) {
	return point, 1, 0
}

func (j *JuliaSet) ParamMap(point complex128) complex128 { return j.C }

func (j *JuliaSet) ParamMapD(point complex128) (complex128, complex128) {
	return j.C, 0
}

func (j *JuliaSet) EscapeRadius() float64         { return j.Base.EscapeRadius() }
func (j *JuliaSet) PeriodicityTolerance() float64 { return j.Tol }
func (j *JuliaSet) MinIter() int                  { return j.Base.MinIter() }
func (j *JuliaSet) MaxIter() int                  { return j.MaxIters }

func (j *JuliaSet) DefaultBounds() dynago.Bounds {
	return dynago.CenteredSquare(2.2)
}

// Degree delegates to the base's behavior at infinity where available.
// On a dynamical plane the map is applied from iteration zero, so the
// escaping phase is 0.

func (j *JuliaSet) Degree() int {
	if ifr, ok := dynago.AsInfinityFirstReturn(j.Base); ok {
		return ifr.Degree()
	}
	return 0
}

func (j *JuliaSet) DegreeReal() float64 {
	if ifr, ok := dynago.AsInfinityFirstReturn(j.Base); ok {
		return ifr.DegreeReal()
	}
	return math.NaN()
}

func (j *JuliaSet) EscapingPeriod() int {
	if ifr, ok := dynago.AsInfinityFirstReturn(j.Base); ok {
		return ifr.EscapingPeriod()
	}
	return 1
}

func (j *JuliaSet) EscapingPhase() int { return 0 }

func (j *JuliaSet) AngleMapLargeParam(angle dynago.RationalAngle) dynago.RationalAngle {
	return angle
}

func (j *JuliaSet) EscapeCoeff(c complex128) complex128 {
	if ifr, ok := dynago.AsInfinityFirstReturn(j.Base); ok {
		return ifr.EscapeCoeff(c)
	}
	return 1
}

// MarkedPoints lists the fixed points of z² + c when the base is
// quadratic, so dynamical planes can color which fixed point a periodic
// orbit lands on.
func (j *JuliaSet) MarkedPoints(c complex128) []dynago.MarkedPoint {
	if ifr, ok := dynago.AsInfinityFirstReturn(j.Base); !ok || ifr.Degree() != 2 {
		return nil
	}
	root := cmplx.Sqrt(1 - 4*c)
	return []dynago.MarkedPoint{
		{Point: (1 + root) / 2, Class: 0},
		{Point: (1 - root) / 2, Class: 1},
	}
}

func (j *JuliaSet) MarkedPointTolerance() float64 { return j.Tol }
