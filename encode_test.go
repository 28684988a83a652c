package dynago_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marben/dynago"
	"github.com/marben/dynago/profiles"
)

func TestEncodeEscaping(t *testing.T) {
	fam := profiles.NewMandelbrot(1000)

	t.Run("potential stays near the iteration count", func(t *testing.T) {
		// Final value just past the escape radius: the fractional
		// correction should be small.
		res := dynago.EscapeResult{
			State:      dynago.StateEscaped,
			Iters:      6,
			FinalValue: complex(1.1e13, 0),
		}
		info := dynago.EncodeEscapeResult(fam, res, complex(3, 0))
		require.Equal(t, dynago.ClassEscaping, info.Class)
		assert.InDelta(t, 6.0, info.Potential, 0.5)
	})

	t.Run("deeper overshoot lowers the fraction by one cycle", func(t *testing.T) {
		// |z|^2 equal to the square of the radius costs exactly one
		// first-return cycle of potential.
		res := dynago.EscapeResult{
			State:      dynago.StateEscaped,
			Iters:      6,
			FinalValue: complex(1e26, 0),
		}
		info := dynago.EncodeEscapeResult(fam, res, complex(3, 0))
		assert.InDelta(t, 5.0, info.Potential, 1e-9)
	})

	t.Run("nan final value degrades to iters minus one", func(t *testing.T) {
		res := dynago.EscapeResult{
			State:      dynago.StateEscaped,
			Iters:      9,
			FinalValue: complex(math.NaN(), 0),
		}
		info := dynago.EncodeEscapeResult(fam, res, complex(3, 0))
		require.Equal(t, dynago.ClassEscaping, info.Class)
		assert.Equal(t, 8.0, info.Potential)
	})
}

func TestEncodePeriodic(t *testing.T) {
	base := profiles.NewMandelbrot(1000)

	t.Run("periodic passes cycle data through", func(t *testing.T) {
		res := dynago.EscapeResult{
			State:      dynago.StatePeriodic,
			Iters:      40,
			FinalValue: complex(0.3, 0.1),
			Cycle: dynago.CycleData{
				Preperiod:  2,
				Period:     3,
				Multiplier: complex(0.5, 0),
				FinalError: 1e-15,
			},
		}
		info := dynago.EncodeEscapeResult(base, res, complex(-0.12, 0.74))
		require.Equal(t, dynago.ClassPeriodic, info.Class)
		assert.Equal(t, res.Cycle, info.Cycle)
	})

	t.Run("landing on a marked point reclassifies", func(t *testing.T) {
		// On the dynamical plane of z^2 the fixed points 0 and 1 are
		// marked.
		julia := profiles.NewJuliaSet(base, 0, 1000)
		res := dynago.EscapeResult{
			State:      dynago.StatePeriodic,
			Iters:      20,
			FinalValue: complex(1e-9, 0),
			Cycle:      dynago.CycleData{Period: 1},
		}
		info := dynago.EncodeEscapeResult(julia, res, 0)
		require.Equal(t, dynago.ClassMarkedPoint, info.Class)
		assert.Equal(t, 1, info.ClassID)
	})

	t.Run("known potential is authoritative", func(t *testing.T) {
		res := dynago.EscapeResult{
			State:          dynago.StatePeriodic,
			Potential:      12.5,
			KnownPotential: true,
			Cycle:          dynago.CycleData{Period: 1},
		}
		info := dynago.EncodeEscapeResult(base, res, complex(-0.1, 0))
		require.Equal(t, dynago.ClassPeriodicKnownPotential, info.Class)
		assert.Equal(t, 12.5, info.Potential)
	})
}

func TestEncodeTerminalStates(t *testing.T) {
	fam := profiles.NewMandelbrot(100)

	bounded := dynago.EncodeEscapeResult(fam, dynago.EscapeResult{State: dynago.StateBounded, Iters: 101}, 0)
	assert.Equal(t, dynago.ClassBounded, bounded.Class)

	unknown := dynago.EncodeEscapeResult(fam, dynago.EscapeResult{State: dynago.StateUnknown}, 0)
	assert.Equal(t, dynago.ClassUnknown, unknown.Class)
}
