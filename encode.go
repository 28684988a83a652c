package dynago

import (
	"math"
	"math/cmplx"
)

// SmoothPotential evaluates a continuous escape-time value from the raw
// iteration count and the final orbit value. The fractional correction
// measures how far past the escape radius the orbit actually landed, in
// units of one first-return cycle at infinity.
func SmoothPotential(f Family, iters int, z complex128, c complex128) float64 {
	ifr, ok := AsInfinityFirstReturn(f)
	if !ok {
		return float64(iters)
	}
	u := math.Log(f.EscapeRadius())
	v := math.Log(real(z)*real(z) + imag(z)*imag(z))
	q := math.Log(cmplx.Abs(ifr.EscapeCoeff(c)))
	residual := math.Log((u+q)/(v+q)) / math.Log(ifr.DegreeReal())
	return float64(iters) + residual*float64(ifr.EscapingPeriod())
}

// EncodeEscapeResult turns a raw orbit outcome into a classified point.
// Escaping orbits get a continuous potential; periodic orbits are matched
// against the family's marked points before being passed through.
func EncodeEscapeResult(f Family, res EscapeResult, c complex128) PointInfo {
	switch res.State {
	case StateEscaped:
		return encodeEscapingPoint(f, res.Iters, res.FinalValue, c)
	case StatePeriodic:
		if res.KnownPotential {
			return PointInfo{
				Class:     ClassPeriodicKnownPotential,
				Potential: res.Potential,
				Cycle:     res.Cycle,
			}
		}
		return identifyMarkedPoints(f, res.FinalValue, c, res.Cycle)
	case StateNaN:
		return encodeEscapingPoint(f, res.Iters, res.FinalValue, c)
	case StateBounded:
		return PointInfo{Class: ClassBounded}
	}
	return PointInfo{Class: ClassUnknown}
}

func encodeEscapingPoint(f Family, iters int, z complex128, c complex128) PointInfo {
	if cmplx.IsNaN(z) || cmplx.IsInf(z) {
		return PointInfo{Class: ClassEscaping, Potential: float64(iters) - 1}
	}
	return PointInfo{Class: ClassEscaping, Potential: SmoothPotential(f, iters, z, c)}
}

func identifyMarkedPoints(f Family, z complex128, c complex128, cycle CycleData) PointInfo {
	if mp, ok := AsMarkedPoints(f); ok {
		tol := mp.MarkedPointTolerance()
		for _, m := range mp.MarkedPoints(c) {
			d := z - m.Point
			if real(d)*real(d)+imag(d)*imag(d) < tol {
				return PointInfo{
					Class:   ClassMarkedPoint,
					Cycle:   cycle,
					ClassID: m.Class,
				}
			}
		}
	}
	return PointInfo{Class: ClassPeriodic, Cycle: cycle}
}
