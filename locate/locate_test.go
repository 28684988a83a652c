package locate

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marben/dynago"
	"github.com/marben/dynago/profiles"
)

func TestZeroPeriod(t *testing.T) {
	fam := profiles.NewMandelbrot(100)
	_, err := Preperiodic(fam, 0, dynago.OrbitSchema{Period: 0})
	assert.ErrorIs(t, err, ErrZeroPeriod)
}

func TestPeriodOneCenter(t *testing.T) {
	// The unique superattracting fixed-point parameter is c = 0.
	fam := profiles.NewMandelbrot(100)
	root, err := Preperiodic(fam, complex(0.04, -0.03), dynago.OrbitSchema{Period: 1})
	require.NoError(t, err)
	assert.InDelta(t, 0, cmplx.Abs(root), 1e-10)
}

func TestPeriodThreeCenter(t *testing.T) {
	// Centers of period 3 are the roots of c^3 + 2c^2 + c + 1. The divisor
	// product must divide out the period-one root near the seed.
	fam := profiles.NewMandelbrot(100)
	want := complex(-0.1225611668766536, 0.7448617666197442)

	root, err := Preperiodic(fam, want+complex(0.05, 0.03), dynago.OrbitSchema{Period: 3})
	require.NoError(t, err)
	assert.InDelta(t, real(want), real(root), 1e-8)
	assert.InDelta(t, imag(want), imag(root), 1e-8)
}

func TestMisiurewiczPoint(t *testing.T) {
	// c = -2 lands on the fixed point 2 after two steps: 0 -> -2 -> 2 -> 2.
	fam := profiles.NewMandelbrot(100)
	root, err := Preperiodic(fam, complex(-1.9, 0), dynago.OrbitSchema{Preperiod: 2, Period: 1})
	require.NoError(t, err)
	assert.InDelta(t, -2, real(root), 1e-10)
	assert.InDelta(t, 0, imag(root), 1e-10)
}

func TestRootHasPrescribedOrbit(t *testing.T) {
	fam := profiles.NewMandelbrot(100)
	root, err := Preperiodic(fam, complex(-1.1, 0.1), dynago.OrbitSchema{Period: 2})
	require.NoError(t, err)

	// The period-two center is c = -1, where the critical orbit alternates
	// 0, -1, 0, -1.
	assert.InDelta(t, -1, real(root), 1e-8)
	z := complex(0, 0)
	z = fam.Map(z, root)
	z = fam.Map(z, root)
	assert.InDelta(t, 0, cmplx.Abs(z), 1e-7)
}

func TestUnicriticalCubic(t *testing.T) {
	// For z^3 + c the fixed-point centers solve c = 0 as well; Newton from a
	// nearby seed must come back to it.
	fam := profiles.NewUnicritical(3, 100)
	root, err := Preperiodic(fam, complex(0.03, 0.02), dynago.OrbitSchema{Period: 1})
	require.NoError(t, err)
	assert.InDelta(t, 0, cmplx.Abs(root), 1e-9)
}

func TestOnCoveringMap(t *testing.T) {
	// Through the period-one curve t -> (0.25 - t^2, -2t) the center c = 0
	// is hit at t = ±0.5. A seed with positive real part lands on +0.5.
	base := profiles.NewMandelbrot(100)
	cover, ok := base.MarkedCycleCurve(1)
	require.True(t, ok)

	root, err := Preperiodic(cover, complex(0.05, 0.02), dynago.OrbitSchema{Period: 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, real(root), 1e-8)
	assert.InDelta(t, 0, imag(root), 1e-8)
	assert.InDelta(t, 0, cmplx.Abs(cover.ParamMap(root)), 1e-7)
}
