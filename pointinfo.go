package dynago

import (
	"fmt"
	"math"
)

// EscapeState is the raw outcome of iterating a single orbit.
type EscapeState int

const (
	// StateBounded means the iteration budget ran out without any other
	// stop condition firing.
	StateBounded EscapeState = iota

	// StateEscaped means the orbit left the escape radius.
	StateEscaped

	// StatePeriodic means the orbit was caught in a (numerically) exact
	// cycle.
	StatePeriodic

	// StateNaN means the iteration produced a non-finite value.
	StateNaN

	// StateUnknown is the zero-information state, used for pixels outside
	// a masked region.
	StateUnknown
)

func (s EscapeState) String() string {
	switch s {
	case StateBounded:
		return "bounded"
	case StateEscaped:
		return "escaped"
	case StatePeriodic:
		return "periodic"
	case StateNaN:
		return "nan"
	case StateUnknown:
		return "unknown"
	}
	return fmt.Sprintf("EscapeState(%d)", int(s))
}

// CycleData describes a numerically detected cycle.
type CycleData struct {
	// Preperiod is the number of iterations before the orbit enters the
	// cycle.
	Preperiod int

	// Period is the length of the cycle.
	Period int

	// Multiplier is the derivative of the return map along the cycle.
	Multiplier complex128

	// FinalError is the squared distance at which the cycle was
	// confirmed.
	FinalError float64
}

// EscapeResult is the raw outcome of iterating one orbit, before any
// potential encoding.
type EscapeResult struct {
	State EscapeState

	// Iters is the number of map applications performed.
	Iters int

	// FinalValue is the last orbit value, meaningful for StateEscaped.
	FinalValue complex128

	// Cycle is set for StatePeriodic.
	Cycle CycleData

	// Potential is set for results produced analytically by an early
	// bailout, bypassing iteration.
	Potential float64

	// KnownPotential marks results whose Potential field is authoritative.
	KnownPotential bool
}

// PointClass is the classified asymptotic behavior of an orbit.
type PointClass int

const (
	ClassUnknown PointClass = iota
	ClassBounded
	ClassEscaping
	ClassPeriodic
	ClassPeriodicKnownPotential
	ClassMarkedPoint
	ClassNaN
)

func (c PointClass) String() string {
	switch c {
	case ClassUnknown:
		return "unknown"
	case ClassBounded:
		return "bounded"
	case ClassEscaping:
		return "escaping"
	case ClassPeriodic:
		return "periodic"
	case ClassPeriodicKnownPotential:
		return "periodic-known-potential"
	case ClassMarkedPoint:
		return "marked-point"
	case ClassNaN:
		return "nan"
	}
	return fmt.Sprintf("PointClass(%d)", int(c))
}

// PointInfo is the classified, display-ready description of one plane
// point.
type PointInfo struct {
	Class PointClass

	// Potential is a continuous coloring value. For escaping points it is
	// the smooth iteration count; for periodic points with a known
	// attracting rate it is a convergence-time analogue.
	Potential float64

	// Cycle is set for the periodic classes.
	Cycle CycleData

	// ClassID is the discrete class for ClassMarkedPoint.
	ClassID int
}

// NumPointClasses is the number of discrete point classes, for palette
// sizing.
const NumPointClasses = 7

// IsNaN reports whether the point carries no usable potential.
func (p PointInfo) IsNaN() bool {
	return p.Class == ClassNaN || math.IsNaN(p.Potential)
}

// OrbitSchema is the combinatorial shape of a preperiodic orbit: Preperiod
// iterations of approach followed by a cycle of length Period.
type OrbitSchema struct {
	Preperiod int
	Period    int
}

func (s OrbitSchema) String() string {
	return fmt.Sprintf("(%d, %d)", s.Preperiod, s.Period)
}
