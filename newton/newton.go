// Package newton is a small scalar Newton solver used by the point
// locator and the curve tracers. Every solver takes the function as a
// closure returning (value, derivative) at a guess, so callers can chain
// arbitrarily many map applications behind it.
package newton

import (
	"errors"
	"math/cmplx"
)

const (
	// MaxIters caps every solve.
	MaxIters = 16

	// MinErr is the squared step size below which a solve terminates
	// early as converged.
	MinErr = 1e-12

	// MaxErr is the squared step size still accepted as converged once
	// the iteration cap is reached.
	MaxErr = 1e-5
)

var (
	// ErrNotConverged reports that the iteration cap was reached with the
	// last step still above the acceptance threshold. The last iterate is
	// returned alongside it.
	ErrNotConverged = errors.New("newton: failed to converge")

	// ErrNaN reports that the iteration produced a non-finite guess.
	ErrNaN = errors.New("newton: non-finite value encountered")
)

// Func evaluates the target function and its derivative at a guess.
type Func func(z complex128) (f, df complex128)

func distSqr(a, b complex128) float64 {
	d := a - b
	return real(d)*real(d) + imag(d)*imag(d)
}

// FindRoot solves f(z) = 0 starting from a guess. On error the returned
// value is the last iterate.
func FindRoot(f Func, start complex128) (complex128, error) {
	z, _, _, err := FindRootD(f, start)
	return z, err
}

// FindRootD is FindRoot, additionally returning the function value and
// derivative at the solution.
func FindRootD(f Func, start complex128) (z, fz, dfz complex128, err error) {
	z = start
	zOld := start
	for i := 0; i < MaxIters; i++ {
		zOld = z
		fz, dfz = f(z)
		z -= fz / dfz
		if distSqr(z, zOld) < MinErr {
			return z, fz, dfz, nil
		}
		if cmplx.IsNaN(z) {
			return z, fz, dfz, ErrNaN
		}
	}
	if distSqr(z, zOld) < MaxErr {
		return z, fz, dfz, nil
	}
	return z, fz, dfz, ErrNotConverged
}

// FindTarget solves f(z) = target with the default acceptance threshold.
func FindTarget(f Func, start, target complex128) (complex128, error) {
	z, _, _, err := FindTargetErrD(f, start, target, MaxErr)
	return z, err
}

// FindTargetErrD solves f(z) = target, accepting a final squared step up
// to maxErr once the iteration cap is reached. It returns the solution
// together with the function value and derivative there.
func FindTargetErrD(f Func, start, target complex128, maxErr float64) (z, fz, dfz complex128, err error) {
	z = start
	zOld := start
	for i := 0; i < MaxIters; i++ {
		zOld = z
		fz, dfz = f(z)
		z += (target - fz) / dfz
		if distSqr(z, zOld) < MinErr {
			return z, fz, dfz, nil
		}
		if cmplx.IsNaN(z) {
			return z, fz, dfz, ErrNaN
		}
	}
	if distSqr(z, zOld) < maxErr {
		return z, fz, dfz, nil
	}
	return z, fz, dfz, ErrNotConverged
}

// FindTargetRelative solves f(z) = target, measuring convergence by the
// relative residual f(z)/target against 1. Preferred when the target's
// magnitude varies over many orders, as along an equipotential.
func FindTargetRelative(f Func, start, target complex128) (complex128, error) {
	z := start
	var fz, dfz complex128
	for i := 0; i < MaxIters; i++ {
		fz, dfz = f(z)
		if distSqr(fz/target, 1) < MinErr {
			return z, nil
		}
		z += (target - fz) / dfz
		if cmplx.IsNaN(z) {
			return z, ErrNaN
		}
	}
	if distSqr(fz/target, 1) < MaxErr {
		return z, nil
	}
	return z, ErrNotConverged
}
