// Package trace draws the two classic overlay curves of a parameter or
// dynamical plane: external rays, continued inward from far outside the
// escape locus, and equipotentials, continued around a base point at
// constant potential. Both work by Newton continuation of iterated-map
// targets.
package trace

import (
	"math"
	"math/cmplx"

	"github.com/marben/dynago"
	"github.com/marben/dynago/newton"
	"github.com/marben/dynago/orbit"
)

const (
	// RayDepth is the number of outer continuation rounds in a ray trace.
	// Each round adds one first-return cycle of map applications.
	RayDepth = 200

	// RaySharpness is the number of continuation steps per round.
	RaySharpness = 25
)

// ExternalRay traces the external ray at a rational angle, from far
// outside the escape locus inward. The grid supplies the stopping
// resolution: tracing ends when consecutive points land within a fraction
// of a pixel. Returns ok == false when the family has no usable degree at
// infinity. Only valid when the first-return map at infinity is monic up
// to its leading coefficient.
func ExternalRay(f dynago.Family, g dynago.PointGrid, angle dynago.RationalAngle) ([]complex128, bool) {
	ray, ok := rayHelper(f, g, angle)
	if !ok {
		return nil, false
	}
	return trimRay(ray), true
}

func rayHelper(f dynago.Family, g dynago.PointGrid, angle dynago.RationalAngle) ([]complex128, bool) {
	ifr, ok := dynago.AsInfinityFirstReturn(f)
	if !ok {
		return nil, false
	}
	degReal := math.Abs(ifr.DegreeReal())
	if math.IsNaN(degReal) {
		return nil, false
	}

	const r = 16.0
	escapeRadiusLog := math.Log(r) * degReal

	pixelWidth := g.PixelWidth() * 0.03
	errTol := float64(g.ResX) * 1e-8

	// Starting guess far enough out to be safely escaping.
	basePoint := 65.0 * angle.ToCircle()
	var tList []complex128

	deg := ifr.Degree()
	targetAngle := ifr.AngleMapLargeParam(angle)

	factor := math.Exp2(-math.Log2(degReal) / RaySharpness)

	// The escape coefficient is assumed constant across the plane.
	a := cmplx.Log(ifr.EscapeCoeff(f.ParamMap(1)))
	targetShift := a / RaySharpness

	for k := 0; k < RayDepth; k++ {
		numIters := k*ifr.EscapingPeriod() + ifr.EscapingPhase()

		fkAndDfk := func(t complex128) (complex128, complex128) {
			c, dcdt := f.ParamMapD(t)
			z, dzdt, dzdc := f.StartPointD(t, c)
			dzdt += dzdc * dcdt
			for i := 0; i < numIters; i++ {
				fz, dfdz, dfdc := f.Gradient(z, c)
				dzdt = dzdt*dfdz + dfdc*dcdt
				z = fz
			}
			return z, dzdt
		}

		u := escapeRadiusLog
		v := targetAngle.Radians()
		tCurr := basePoint
		if len(tList) > 0 {
			tCurr = tList[len(tList)-1]
		}

		for j := 0; j < RaySharpness; j++ {
			target := cmplx.Exp(complex(u, v))
			sol, tk, dk, err := newton.FindTargetErrD(fkAndDfk, tCurr, target, errTol)
			switch err {
			case nil:
				tCurr = sol
				if cmplx.IsNaN(tCurr) {
					return tList, true
				}
				tList = append(tList, tCurr)

				// Distance estimate to the escape locus; once it drops
				// below the pixel resolution the ray has landed.
				tkNorm := cmplx.Abs(tk)
				dist := 2 * tkNorm * (math.Log(tkNorm) / math.Log(degReal)) / cmplx.Abs(dk)
				if dist < pixelWidth {
					return tList, true
				}
			case newton.ErrNaN:
				return tList, true
			}
			u *= factor
			u -= real(targetShift)
			v -= imag(targetShift)
		}
		targetAngle = targetAngle.MulInt(deg)
	}

	return tList, true
}

// trimRay drops trailing points whose spacing has started growing again.
// The continuation degrades numerically near the landing point, and the
// bad points are exactly the ones that stop getting closer together.
// l1 distances preserve precision better than norms here.
func trimRay(tList []complex128) []complex128 {
	for len(tList) >= 3 {
		n := len(tList)
		dist0 := l1Dist(tList[n-1], tList[n-2])
		dist1 := l1Dist(tList[n-2], tList[n-3])
		if dist0 <= dist1 {
			break
		}
		tList = tList[:n-1]
	}
	return tList
}

func l1Dist(a, b complex128) float64 {
	d := a - b
	return math.Abs(real(d)) + math.Abs(imag(d))
}

// Equipotential traces the curve of constant potential through a base
// coordinate, by rotating an escaped target value in small angular steps
// and Newton-solving for each preimage. Returns ok == false when the base
// point does not provably escape within a small iteration cap.
func Equipotential(f dynago.Family, t0 complex128) ([]complex128, bool) {
	ifr, ok := dynago.AsInfinityFirstReturn(f)
	if !ok {
		return nil, false
	}

	c0 := f.ParamMap(t0)
	z0 := f.StartPoint(t0, c0)

	// Point count is exponential in the iteration count, so keep the cap
	// small.
	const (
		maxIter      = 13
		escapeRadius = 30.0
		theta0       = 0.02
	)

	res := orbit.Simple(f, z0, c0, maxIter, escapeRadius)
	if res.State != dynago.StateEscaped {
		return nil, false
	}
	iters := res.Iters
	target := res.FinalValue

	compute := func(t complex128) (complex128, complex128) {
		c, dcdt := f.ParamMapD(t)
		z, dzdt, dzdc := f.StartPointD(t, c)
		dzdt += dcdt * dzdc
		for i := 0; i < iters; i++ {
			fz, dfdz, dfdc := f.Gradient(z, c)
			dzdt = dzdt*dfdz + dfdc*dcdt
			z = fz
		}
		return z, dzdt
	}

	numPoints := int(math.Pow(ifr.DegreeReal(), float64(iters)) / theta0)
	rotate := cmplx.Exp(complex(0, 2*math.Pi*theta0))

	result := make([]complex128, 0, numPoints+1)
	result = append(result, t0)
	t := t0
	for i := 0; i < numPoints; i++ {
		target *= rotate
		if sol, err := newton.FindTargetRelative(compute, t, target); err == nil {
			t = sol
		}
		result = append(result, t)
	}
	return result, true
}
