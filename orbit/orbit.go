// Package orbit iterates single orbits of a dynamical family and detects
// their terminal behavior: escape, boundedness or convergence to a cycle.
package orbit

import (
	"math"
	"math/cmplx"

	"github.com/marben/dynago"
)

// Params is the immutable iteration budget for one engine. It defaults to
// the family's own settings and is never mutated mid-orbit.
type Params struct {
	MaxIter              int
	MinIter              int
	PeriodicityTolerance float64
	EscapeRadius         float64
}

// ParamsFor reads the default iteration parameters off a family.
func ParamsFor(f dynago.Family) Params {
	return Params{
		MaxIter:              f.MaxIter(),
		MinIter:              f.MinIter(),
		PeriodicityTolerance: f.PeriodicityTolerance(),
		EscapeRadius:         f.EscapeRadius(),
	}
}

// Engine runs Floyd cycle detection on one orbit at a time. An engine is
// reusable: Reset reseeds it without reallocating. It is not safe for
// concurrent use; the plane computer gives each worker its own.
type Engine struct {
	family dynago.Family
	params Params
	bailer dynago.EarlyBailer

	c     complex128
	zInit complex128
	zSlow complex128
	zFast complex128
	iter  int
	res   dynago.EscapeResult
	done  bool
}

// NewEngine builds an engine with the family's default parameters.
func NewEngine(f dynago.Family) *Engine {
	return NewEngineParams(f, ParamsFor(f))
}

// NewEngineParams builds an engine with explicit parameters.
func NewEngineParams(f dynago.Family, p Params) *Engine {
	e := &Engine{family: f, params: p}
	e.bailer, _ = dynago.AsEarlyBailer(f)
	return e
}

// Reset reseeds the engine with a start value and parameter.
func (e *Engine) Reset(z0, c complex128) {
	e.c = c
	e.zInit = z0
	e.zSlow = z0
	e.zFast = z0
	e.iter = 0
	e.res = dynago.EscapeResult{}
	e.done = false
}

// ResetPoint reseeds the engine from a plane coordinate, applying the
// family's parameter and start-point maps.
func (e *Engine) ResetPoint(point complex128) {
	c := e.family.ParamMap(point)
	e.Reset(e.family.StartPoint(point, c), c)
}

// Param is the map parameter of the current orbit.
func (e *Engine) Param() complex128 { return e.c }

// Run iterates the current orbit to its terminal state.
func (e *Engine) Run() dynago.EscapeResult {
	if e.bailer != nil && !e.done {
		if res, ok := e.bailer.EarlyBailout(e.zFast, e.c); ok {
			e.res = res
			e.done = true
		}
	}
	for !e.done {
		e.step()
	}
	return e.res
}

// step advances the hare one map application. Odd steps advance the
// tortoise too and check only the plain stop condition; even steps close a
// round and additionally compare the two cursors.
func (e *Engine) step() {
	e.iter++
	if e.iter%2 == 1 {
		e.zSlow = e.family.Map(e.zSlow, e.c)
		e.zFast = e.family.Map(e.zFast, e.c)
		e.stopCondition()
	} else {
		e.zFast = e.family.Map(e.zFast, e.c)
		e.checkPeriodicity()
	}
}

// stopCondition resolves the budget and escape checks, reporting whether a
// terminal state was reached.
func (e *Engine) stopCondition() bool {
	if e.iter < e.params.MinIter {
		return false
	}
	if e.iter > e.params.MaxIter {
		e.res = dynago.EscapeResult{
			State:      dynago.StateBounded,
			Iters:      e.iter,
			FinalValue: e.zFast,
		}
		e.done = true
		return true
	}
	r := real(e.zFast)*real(e.zFast) + imag(e.zFast)*imag(e.zFast)
	if r > e.params.EscapeRadius || cmplx.IsNaN(e.zFast) {
		e.res = dynago.EscapeResult{
			State:      dynago.StateEscaped,
			Iters:      e.iter,
			FinalValue: e.zFast,
		}
		e.done = true
		return true
	}
	return false
}

func (e *Engine) checkPeriodicity() {
	if e.stopCondition() {
		return
	}
	tol := e.params.PeriodicityTolerance
	if tol <= 0 || e.iter < e.params.MinIter {
		return
	}
	d := e.zFast - e.zSlow
	errSqr := real(d)*real(d) + imag(d)*imag(d)
	if errSqr >= tol {
		return
	}
	// A near-collision of the two cursors only bounds the period. Confirm
	// it with a relaxed re-walk from the hare, which also yields the
	// chained multiplier, then strip the approach from the front of the
	// orbit to find the true preperiod.
	relaxed := math.Pow(tol, 0.75)
	period, mult, ok := e.confirmPeriod(relaxed, e.iter)
	if !ok {
		return
	}
	preperiod := e.reducePreperiod(period, relaxed)
	e.res = dynago.EscapeResult{
		State:      dynago.StatePeriodic,
		Iters:      e.iter,
		FinalValue: e.zFast,
		Cycle: dynago.CycleData{
			Preperiod:  preperiod,
			Period:     period,
			Multiplier: mult,
			FinalError: errSqr,
		},
	}
	e.done = true
}

// confirmPeriod walks forward from the hare until it returns to itself,
// chaining the per-step derivatives into the cycle multiplier.
func (e *Engine) confirmPeriod(tolerance float64, patience int) (int, complex128, bool) {
	z := e.zFast
	mult := complex(1, 0)
	for i := 1; i <= patience; i++ {
		fz, dfdz := e.family.MapAndMultiplier(z, e.c)
		z = fz
		mult *= dfdz
		d := z - e.zFast
		if real(d)*real(d)+imag(d)*imag(d) <= tolerance {
			return i, mult, true
		}
	}
	return 0, 0, false
}

// reducePreperiod advances two cursors, one period apart, from the orbit
// seed until they collide. The collision index is the number of
// iterations spent outside the cycle. Falls back to the detection step
// count if the cursors never meet within budget.
func (e *Engine) reducePreperiod(period int, tolerance float64) int {
	lead := e.zInit
	for i := 0; i < period; i++ {
		lead = e.family.Map(lead, e.c)
	}
	follow := e.zInit
	for k := 0; k <= e.iter; k++ {
		d := lead - follow
		if real(d)*real(d)+imag(d)*imag(d) <= tolerance {
			return k
		}
		lead = e.family.Map(lead, e.c)
		follow = e.family.Map(follow, e.c)
	}
	return e.iter
}

// Trace runs the current orbit to completion, recording the hare's value
// before every step. The returned slice starts with the seed.
func (e *Engine) Trace() ([]complex128, dynago.EscapeResult) {
	traj := []complex128{e.zFast}
	if e.bailer != nil && !e.done {
		if res, ok := e.bailer.EarlyBailout(e.zFast, e.c); ok {
			e.res = res
			e.done = true
		}
	}
	for !e.done {
		e.step()
		traj = append(traj, e.zFast)
	}
	return traj, e.res
}
