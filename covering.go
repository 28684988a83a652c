package dynago

// ParamMapD is a rational reparametrization t ↦ (c(t), dc/dt).
type ParamMapD func(t complex128) (c, dcdt complex128)

// CoveringMap exposes a sub-locus of a family's parameter space as an
// independently explorable plane. It substitutes only the parameter map
// and the bounds; the dynamics, escape encoding and marked points of the
// base family apply unchanged.
type CoveringMap struct {
	base   Family
	cover  ParamMapD
	bounds Bounds
	name   string
}

// NewCoveringMap wraps a base family with a reparametrization of its
// parameter plane.
func NewCoveringMap(base Family, cover ParamMapD, bounds Bounds, name string) *CoveringMap {
	return &CoveringMap{base: base, cover: cover, bounds: bounds, name: name}
}

// Unwrap returns the covered family, for capability lookups.
func (m *CoveringMap) Unwrap() Family { return m.base }

func (m *CoveringMap) Name() string {
	if m.name != "" {
		return m.name
	}
	return m.base.Name() + " (covering)"
}

func (m *CoveringMap) ParamMap(point complex128) complex128 {
	c, _ := m.cover(point)
	return c
}

func (m *CoveringMap) ParamMapD(point complex128) (complex128, complex128) {
	return m.cover(point)
}

func (m *CoveringMap) DefaultBounds() Bounds { return m.bounds }

func (m *CoveringMap) Map(z, c complex128) complex128 { return m.base.Map(z, c) }

func (m *CoveringMap) MapAndMultiplier(z, c complex128) (complex128, complex128) {
	return m.base.MapAndMultiplier(z, c)
}

func (m *CoveringMap) Gradient(z, c complex128) (complex128, complex128, complex128) {
	return m.base.Gradient(z, c)
}

func (m *CoveringMap) StartPoint(point, c complex128) complex128 {
	return m.base.StartPoint(point, c)
}

func (m *CoveringMap) StartPointD(point, c complex128) (complex128, complex128, complex128) {
	return m.base.StartPointD(point, c)
}

func (m *CoveringMap) EscapeRadius() float64         { return m.base.EscapeRadius() }
func (m *CoveringMap) PeriodicityTolerance() float64 { return m.base.PeriodicityTolerance() }
func (m *CoveringMap) MinIter() int                  { return m.base.MinIter() }
func (m *CoveringMap) MaxIter() int                  { return m.base.MaxIter() }
