// Package locate finds plane coordinates whose orbit has an exactly
// prescribed combinatorial shape, by Newton iteration on a dynatomic-style
// polynomial in the plane coordinate.
package locate

import (
	"errors"

	"github.com/marben/dynago"
	"github.com/marben/dynago/arith"
	"github.com/marben/dynago/newton"
)

// ErrZeroPeriod rejects a schema with period zero, which has no meaning.
var ErrZeroPeriod = errors.New("locate: schema period is zero")

// Preperiodic refines an approximate coordinate to a nearby one whose
// orbit has exactly the given schema (preperiod k, period n).
//
// The target function is the product over divisors m of n of
// (f^{m+k} - f^k)^μ(n/m), which cancels every root whose true period
// properly divides n. For k > 0 the product is additionally divided by
// (f^{k+n-1} - f^{k-1}) to remove roots that enter the cycle early.
// Values and derivatives with respect to the plane coordinate are carried
// together through every map application.
func Preperiodic(f dynago.Family, start complex128, schema dynago.OrbitSchema) (complex128, error) {
	n := schema.Period
	k := schema.Preperiod
	if n == 0 {
		return start, ErrZeroPeriod
	}

	// Möbius weight of each proper divisor of n, by iteration index.
	weights := make(map[int]int)
	for _, m := range arith.Divisors(n) {
		if m < n {
			weights[m] = arith.Moebius(n / m)
		}
	}

	diff := func(t complex128) (complex128, complex128) {
		c, dcdt := f.ParamMapD(t)
		z, dzdt, dzdc := f.StartPointD(t, c)
		dzdt += dcdt * dzdc

		var values, derivs []complex128

		// f^{k-1} and its derivative, for the early-cycle correction.
		var zk1, zk1dt complex128

		if k > 0 {
			for i := 0; i < k-1; i++ {
				fz, dfdz, dfdc := f.Gradient(z, c)
				dzdt = dzdt*dfdz + dfdc*dcdt
				z = fz
			}
			zk1, zk1dt = z, dzdt
			fz, dfdz, dfdc := f.Gradient(z, c)
			dzdt = dzdt*dfdz + dfdc*dcdt
			z = fz
		}

		w, dwdt := z, dzdt
		for i := 1; i < n; i++ {
			fw, dfdz, dfdc := f.Gradient(w, c)
			dwdt = dwdt*dfdz + dfdc*dcdt
			w = fw

			switch weights[i] {
			case 1:
				values = append(values, w-z)
				derivs = append(derivs, dwdt-dzdt)
			case -1:
				val := 1 / (w - z)
				values = append(values, val)
				derivs = append(derivs, (dzdt-dwdt)*val*val)
			}
		}

		// After k+n-1 iterations the early-cycle term is available.
		u, du := complex(1, 0), complex(0, 0)
		if k > 0 {
			u = 1 / (w - zk1)
			du = u * u * (zk1dt - dwdt)
		}

		fw, dfdz, dfdc := f.Gradient(w, c)
		dwdt = dwdt*dfdz + dfdc*dcdt
		w = fw

		values = append(values, w-z)
		derivs = append(derivs, dwdt-dzdt)

		for i := range values {
			u, du = u*values[i], u*derivs[i]+values[i]*du
		}
		return u, du
	}

	return newton.FindRoot(diff, start)
}
