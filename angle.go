package dynago

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/marben/dynago/arith"
)

// RationalAngle is a fraction of a full turn, kept reduced and in [0, 1).
type RationalAngle struct {
	num, den int64
}

// NewRationalAngle builds the reduced angle num/den mod 1. A zero
// denominator yields the zero angle.
func NewRationalAngle(num, den int64) RationalAngle {
	if den == 0 {
		return RationalAngle{0, 1}
	}
	if den < 0 {
		num, den = -num, -den
	}
	num %= den
	if num < 0 {
		num += den
	}
	g := arith.GCD(num, den)
	return RationalAngle{num / g, den / g}
}

// Num is the reduced numerator.
func (a RationalAngle) Num() int64 { return a.num }

// Den is the reduced denominator.
func (a RationalAngle) Den() int64 { return a.den }

// MulInt returns the angle multiplied by an integer, mod 1. This is how a
// degree-d map acts on external angles.
func (a RationalAngle) MulInt(k int) RationalAngle {
	return NewRationalAngle(a.num*int64(k), a.den)
}

// Float is the angle as a fraction of a full turn.
func (a RationalAngle) Float() float64 {
	if a.den == 0 {
		return 0
	}
	return float64(a.num) / float64(a.den)
}

// Radians is the angle in radians.
func (a RationalAngle) Radians() float64 { return 2 * math.Pi * a.Float() }

// ToCircle is the unit-modulus complex number at the angle.
func (a RationalAngle) ToCircle() complex128 {
	return cmplx.Exp(complex(0, a.Radians()))
}

func (a RationalAngle) String() string {
	return fmt.Sprintf("%d/%d", a.num, a.den)
}
