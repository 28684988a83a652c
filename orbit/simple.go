package orbit

import (
	"math/cmplx"

	"github.com/marben/dynago"
)

// Simple iterates an orbit with only the escape and budget checks, no
// cycle detection. Iters counts map applications. Used where the caller
// needs the exact escape iterate, as when seeding an equipotential.
func Simple(f dynago.Family, z0, c complex128, maxIter int, escapeRadius float64) dynago.EscapeResult {
	z := z0
	for i := 1; i <= maxIter; i++ {
		z = f.Map(z, c)
		r := real(z)*real(z) + imag(z)*imag(z)
		if r > escapeRadius || cmplx.IsNaN(z) {
			return dynago.EscapeResult{
				State:      dynago.StateEscaped,
				Iters:      i,
				FinalValue: z,
			}
		}
	}
	return dynago.EscapeResult{
		State:      dynago.StateBounded,
		Iters:      maxIter,
		FinalValue: z,
	}
}
