package profiles

import (
	"fmt"

	"github.com/marben/dynago"
)

// Unicritical is the parameter plane of z ↦ z^d + c for an integer degree
// d ≥ 2, iterated from the critical point 0. It carries no analytic
// shortcuts, so every orbit is actually iterated.
type Unicritical struct {
	Deg      int
	MaxIters int

	// Tol is the periodicity tolerance; zero disables cycle detection.
	Tol float64

	// MinIters delays every stop condition except the budget.
	MinIters int
}

// NewUnicritical builds the degree-d family with the default tolerance.
func NewUnicritical(degree, maxIters int) *Unicritical {
	u := &Unicritical{Deg: degree, MaxIters: maxIters}
	b := u.DefaultBounds()
	u.Tol = b.RangeX() * b.RangeY() * 1e-14
	return u
}

func (u *Unicritical) Name() string { return fmt.Sprintf("Unicritical deg %d", u.Deg) }

func (u *Unicritical) Map(z, c complex128) complex128 {
	return upow(z, u.Deg) + c
}

func (u *Unicritical) MapAndMultiplier(z, c complex128) (complex128, complex128) {
	w := upow(z, u.Deg-1)
	return w*z + c, complex(float64(u.Deg), 0) * w
}

func (u *Unicritical) Gradient(z, c complex128) (complex128, complex128, complex128) {
	fz, dfdz := u.MapAndMultiplier(z, c)
	return fz, dfdz, 1
}

func (u *Unicritical) StartPoint(point, c complex128) complex128 { return 0 }

func (u *Unicritical) StartPointD(point, c complex128) (complex128, complex128, complex128) {
	return 0, 0, 0
}

func (u *Unicritical) ParamMap(point complex128) complex128 { return point }

func (u *Unicritical) ParamMapD(point complex128) (complex128, complex128) {
	return point, 1
}

func (u *Unicritical) EscapeRadius() float64         { return 1e26 }
func (u *Unicritical) PeriodicityTolerance() float64 { return u.Tol }
func (u *Unicritical) MinIter() int                  { return u.MinIters }
func (u *Unicritical) MaxIter() int                  { return u.MaxIters }

func (u *Unicritical) DefaultBounds() dynago.Bounds {
	return dynago.CenteredSquare(1.4)
}

func (u *Unicritical) Degree() int         { return u.Deg }
func (u *Unicritical) DegreeReal() float64 { return float64(u.Deg) }
func (u *Unicritical) EscapingPeriod() int { return 1 }
func (u *Unicritical) EscapingPhase() int  { return 1 }

func (u *Unicritical) AngleMapLargeParam(angle dynago.RationalAngle) dynago.RationalAngle {
	return angle
}

func (u *Unicritical) EscapeCoeff(c complex128) complex128 { return 1 }

// upow is exponentiation by squaring for small positive integer powers,
// cheaper and more accurate than cmplx.Pow on the hot path.
func upow(z complex128, n int) complex128 {
	if n <= 0 {
		return 1
	}
	acc := complex(1, 0)
	for n > 1 {
		if n%2 == 1 {
			acc *= z
		}
		z *= z
		n /= 2
	}
	return acc * z
}
