// Package dynago is the core of a complex-dynamics explorer: it classifies
// the asymptotic behavior of orbits z, f(z,c), f(f(z,c),c), ... for
// families of iterated maps, and exposes the numeric machinery (cycle
// detection, Newton continuation, covering maps) shared by every concrete
// family.
//
// The package itself holds only the data model and the family abstraction.
// The iteration engine lives in the orbit package, parallel plane
// computation in plane, point location in locate and curve tracing in
// trace.
package dynago

// Family is the abstraction every concrete dynamical family implements.
// The dynamical variable, the parameter and the derivative are all
// complex128; a family that conceptually carries extra parameters closes
// over them.
//
// Methods must be safe for concurrent use: the plane computer calls them
// from several workers at once.
type Family interface {
	Name() string

	// Map applies the dynamical map once.
	Map(z, c complex128) complex128

	// MapAndMultiplier returns f(z,c) together with df/dz, the local
	// multiplier. This is the hot path of cycle detection.
	MapAndMultiplier(z, c complex128) (fz, dfdz complex128)

	// Gradient returns f(z,c) with both partial derivatives df/dz and
	// df/dc. Used wherever a derivative with respect to the plane
	// coordinate is forward-accumulated (point location, ray tracing).
	Gradient(z, c complex128) (fz, dfdz, dfdc complex128)

	// StartPoint maps a plane coordinate and its parameter to the initial
	// value of the dynamical variable. Parameter planes typically ignore
	// the coordinate and return a critical point; dynamical planes return
	// the coordinate itself.
	StartPoint(point, c complex128) complex128

	// StartPointD is StartPoint together with its partial derivatives
	// with respect to the plane coordinate and the parameter.
	StartPointD(point, c complex128) (z, dzdt, dzdc complex128)

	// ParamMap converts a plane coordinate into a map parameter. The
	// identity for ordinary parameter planes; covering maps override it.
	ParamMap(point complex128) complex128

	// ParamMapD is ParamMap together with its derivative.
	ParamMapD(point complex128) (c, dcdt complex128)

	// EscapeRadius is the bound on |z|^2 beyond which an orbit counts as
	// escaped.
	EscapeRadius() float64

	// PeriodicityTolerance is the squared distance below which the fast
	// and slow orbits are considered to have collided. Zero disables
	// cycle detection.
	PeriodicityTolerance() float64

	// MinIter is the number of iterations before any stop condition other
	// than the iteration budget may fire. Nonzero for families with many
	// parabolic systems, where orbits stay near-periodic for a long time
	// even if they eventually escape.
	MinIter() int

	// MaxIter is the iteration budget for a single orbit.
	MaxIter() int

	// DefaultBounds is the view on the plane in which the family is
	// usually displayed.
	DefaultBounds() Bounds
}

// EarlyBailer is implemented by families with analytically known loci
// (e.g. the main cardioid of the Mandelbrot set) for which classification
// can skip iteration entirely.
type EarlyBailer interface {
	// EarlyBailout returns a precomputed escape result for the given
	// start point and parameter, or ok == false if the orbit must be
	// iterated.
	EarlyBailout(z, c complex128) (res EscapeResult, ok bool)
}

// MarkedPoint is a distinguished attracting point with a discrete class
// id, used for discrete coloring (e.g. which root a Newton method
// converges to).
type MarkedPoint struct {
	Point complex128
	Class int
}

// MarkedPoints is implemented by families that distinguish special
// periodic points on their plane.
type MarkedPoints interface {
	// MarkedPoints lists the marked points for a parameter.
	MarkedPoints(c complex128) []MarkedPoint

	// MarkedPointTolerance is the squared distance below which a periodic
	// orbit is considered to have landed on a marked point.
	MarkedPointTolerance() float64
}

// InfinityFirstReturn describes the behavior of a family near infinity:
// the order of vanishing of the first-return map of 1/f(1/z) at 0 and its
// leading coefficient. Families without this capability cannot encode a
// continuous escape potential precisely and do not support external rays.
type InfinityFirstReturn interface {
	// Degree is the integer degree of the first-return map at infinity.
	Degree() int

	// DegreeReal is the degree as a float; NaN if f has an essential
	// singularity at infinity or infinity is not periodic.
	DegreeReal() float64

	// EscapingPeriod is the period of infinity under f.
	EscapingPeriod() int

	// EscapingPhase is the number of iterations before a very large
	// parameter produces a very large variable value. Almost always 0 or 1.
	EscapingPhase() int

	// AngleMapLargeParam is the argument of the EscapingPhase-th iterate
	// of the start point, for a very large parameter with a given argument.
	AngleMapLargeParam(angle RationalAngle) RationalAngle

	// EscapeCoeff is the leading coefficient of the first-return map at
	// infinity for a given parameter.
	EscapeCoeff(c complex128) complex128
}

// Unwrapper is implemented by families that delegate to an underlying
// family, such as covering maps. Capability lookups walk the chain.
type Unwrapper interface {
	Unwrap() Family
}

// AsEarlyBailer reports the innermost EarlyBailer in a family chain.
func AsEarlyBailer(f Family) (EarlyBailer, bool) {
	for {
		if eb, ok := f.(EarlyBailer); ok {
			return eb, true
		}
		u, ok := f.(Unwrapper)
		if !ok {
			return nil, false
		}
		f = u.Unwrap()
	}
}

// AsMarkedPoints reports the innermost MarkedPoints in a family chain.
func AsMarkedPoints(f Family) (MarkedPoints, bool) {
	for {
		if mp, ok := f.(MarkedPoints); ok {
			return mp, true
		}
		u, ok := f.(Unwrapper)
		if !ok {
			return nil, false
		}
		f = u.Unwrap()
	}
}

// AsInfinityFirstReturn reports the innermost InfinityFirstReturn in a
// family chain.
func AsInfinityFirstReturn(f Family) (InfinityFirstReturn, bool) {
	for {
		if ifr, ok := f.(InfinityFirstReturn); ok {
			return ifr, true
		}
		u, ok := f.(Unwrapper)
		if !ok {
			return nil, false
		}
		f = u.Unwrap()
	}
}
