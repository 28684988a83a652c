package orbit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marben/dynago"
	"github.com/marben/dynago/profiles"
)

func TestEscapeIterationCount(t *testing.T) {
	// For c = 3 the critical orbit 0, 3, 12, 147, ... first exceeds the
	// escape radius 1e26 (on the squared norm) at the sixth application.
	fam := profiles.NewUnicritical(2, 1000)
	eng := NewEngine(fam)
	eng.ResetPoint(complex(3, 0))

	res := eng.Run()
	require.Equal(t, dynago.StateEscaped, res.State)
	assert.Equal(t, 6, res.Iters)
	assert.Greater(t, real(res.FinalValue)*real(res.FinalValue), fam.EscapeRadius())
}

func TestAttractingFixedPoint(t *testing.T) {
	// c = -0.1 has an attracting fixed point z* = (1-sqrt(1.4))/2 with
	// multiplier 2z* of modulus below one.
	fam := profiles.NewUnicritical(2, 10000)
	eng := NewEngine(fam)
	eng.ResetPoint(complex(-0.1, 0))

	res := eng.Run()
	require.Equal(t, dynago.StatePeriodic, res.State)
	assert.Equal(t, 1, res.Cycle.Period)
	assert.InDelta(t, -0.18321595661992318, real(res.Cycle.Multiplier), 1e-10)
	assert.InDelta(t, 0, imag(res.Cycle.Multiplier), 1e-10)
	assert.Less(t, res.Cycle.FinalError, fam.PeriodicityTolerance())
	assert.Less(t, res.Cycle.Preperiod, res.Iters)

	// Seeding right next to the fixed point converges the same way, with
	// the multiplier matching the analytic derivative 2z*.
	zStar := complex(-0.09160797830996159, 0)
	eng.Reset(zStar+1e-4, complex(-0.1, 0))
	res = eng.Run()
	require.Equal(t, dynago.StatePeriodic, res.State)
	assert.Equal(t, 1, res.Cycle.Period)
	assert.InDelta(t, 2*real(zStar), real(res.Cycle.Multiplier), 1e-8)
}

func TestSuperattractingTwoCycle(t *testing.T) {
	// c = -1: the critical orbit is exactly 0, -1, 0, -1, ...
	fam := profiles.NewUnicritical(2, 50)
	fam.Tol = 1e-10

	eng := NewEngine(fam)
	eng.ResetPoint(complex(-1, 0))

	res := eng.Run()
	require.Equal(t, dynago.StatePeriodic, res.State)
	assert.Equal(t, 0, res.Cycle.Preperiod)
	assert.Equal(t, 2, res.Cycle.Period)
	assert.Equal(t, complex(0, 0), res.Cycle.Multiplier)
	assert.InDelta(t, 0, res.Cycle.FinalError, 1e-20)
}

// constFamily maps everything to its parameter, so the tortoise and hare
// collide as soon as both have moved.
type constFamily struct {
	minIter int
	tol     float64
}

func (f *constFamily) Name() string                   { return "const" }
func (f *constFamily) Map(z, c complex128) complex128 { return c }

func (f *constFamily) MapAndMultiplier(z, c complex128) (complex128, complex128) {
	return c, 0
}

func (f *constFamily) Gradient(z, c complex128) (complex128, complex128, complex128) {
	return c, 0, 1
}

func (f *constFamily) StartPoint(point, c complex128) complex128 { return 0 }

func (f *constFamily) StartPointD(point, c complex128) (complex128, complex128, complex128) {
	return 0, 0, 0
}

func (f *constFamily) ParamMap(point complex128) complex128 { return point }

func (f *constFamily) ParamMapD(point complex128) (complex128, complex128) {
	return point, 1
}

func (f *constFamily) EscapeRadius() float64         { return 1e8 }
func (f *constFamily) PeriodicityTolerance() float64 { return f.tol }
func (f *constFamily) MinIter() int                  { return f.minIter }
func (f *constFamily) MaxIter() int                  { return 100 }
func (f *constFamily) DefaultBounds() dynago.Bounds  { return dynago.CenteredSquare(1) }

func TestMinIterDelaysPeriodicity(t *testing.T) {
	fam := &constFamily{minIter: 5, tol: 1e-10}
	eng := NewEngine(fam)
	eng.ResetPoint(complex(0.5, 0))

	res := eng.Run()
	require.Equal(t, dynago.StatePeriodic, res.State)
	assert.GreaterOrEqual(t, res.Iters, 5)
}

func TestZeroToleranceDisablesDetection(t *testing.T) {
	fam := &constFamily{tol: 0}
	eng := NewEngine(fam)
	eng.ResetPoint(complex(0.5, 0))

	res := eng.Run()
	assert.Equal(t, dynago.StateBounded, res.State)
}

func TestEarlyBailout(t *testing.T) {
	// Inside the main cardioid the Mandelbrot family classifies without
	// iterating.
	fam := profiles.NewMandelbrot(1000)
	eng := NewEngine(fam)
	eng.ResetPoint(complex(-0.1, 0))

	res := eng.Run()
	require.Equal(t, dynago.StatePeriodic, res.State)
	assert.True(t, res.KnownPotential)
	assert.Equal(t, 1, res.Cycle.Period)
	assert.False(t, math.IsNaN(res.Potential))
	assert.Greater(t, res.Potential, 0.0)
}

func TestEngineReset(t *testing.T) {
	fam := profiles.NewUnicritical(2, 1000)
	eng := NewEngine(fam)

	eng.ResetPoint(complex(3, 0))
	first := eng.Run()

	eng.ResetPoint(complex(3, 0))
	second := eng.Run()
	assert.Equal(t, first, second)

	// A reset engine forgets its previous terminal state.
	eng.ResetPoint(complex(-1, 0))
	third := eng.Run()
	assert.Equal(t, dynago.StatePeriodic, third.State)
}

func TestTrace(t *testing.T) {
	fam := profiles.NewUnicritical(2, 1000)
	eng := NewEngine(fam)
	eng.ResetPoint(complex(3, 0))

	traj, res := eng.Trace()
	require.Equal(t, dynago.StateEscaped, res.State)
	assert.Equal(t, complex(0, 0), traj[0])
	assert.Equal(t, complex(3, 0), traj[1])
	assert.Equal(t, res.FinalValue, traj[len(traj)-1])
	assert.Len(t, traj, res.Iters+1)
}

func TestSimple(t *testing.T) {
	fam := profiles.NewMandelbrot(1000)

	t.Run("escapes", func(t *testing.T) {
		res := Simple(fam, 0, complex(0.6, 0), 13, 30)
		require.Equal(t, dynago.StateEscaped, res.State)
		assert.Equal(t, 5, res.Iters)
	})

	t.Run("stays bounded", func(t *testing.T) {
		res := Simple(fam, 0, complex(-1, 0), 13, 30)
		assert.Equal(t, dynago.StateBounded, res.State)
		assert.Equal(t, 13, res.Iters)
	})
}
