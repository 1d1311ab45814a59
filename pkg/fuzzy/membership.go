package fuzzy

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// MembershipFunc is a fuzzy set over one universe, stored as the degree of
// membership at every grid point. Shapes are piecewise linear: exactly 1 on
// the peak/plateau, exactly 0 outside the support, linear on the ramps.
type MembershipFunc struct {
	universe *Universe
	degrees  []float64
}

// Triangular builds a triangular membership function with breakpoints
// a <= b <= c: a linear ramp 0→1 over [a,b] and 1→0 over [b,c]. When a == b
// (or b == c) the corresponding ramp degenerates into a shoulder step.
func Triangular(u *Universe, a, b, c float64) (*MembershipFunc, error) {
	return Trapezoidal(u, a, b, b, c)
}

// Trapezoidal builds a trapezoidal membership function with breakpoints
// a <= b <= c <= d: ramp 0→1 over [a,b], plateau at 1 over [b,c], ramp 1→0
// over [c,d]. Coinciding breakpoints collapse the segment they bound.
func Trapezoidal(u *Universe, a, b, c, d float64) (*MembershipFunc, error) {
	if !(a <= b && b <= c && c <= d) {
		return nil, fmt.Errorf("trapezoidal breakpoints must be non-decreasing, got [%g %g %g %g]", a, b, c, d)
	}

	degrees := make([]float64, u.Len())
	for i, x := range u.Points() {
		degrees[i] = trapezoidAt(x, a, b, c, d)
	}
	return &MembershipFunc{universe: u, degrees: degrees}, nil
}

func trapezoidAt(x, a, b, c, d float64) float64 {
	switch {
	case x < a:
		return 0
	case x < b: // implies b > a
		return (x - a) / (b - a)
	case x <= c:
		return 1
	case x < d: // implies d > c
		return (d - x) / (d - c)
	default:
		return 0
	}
}

// Universe returns the universe this function is defined over.
func (m *MembershipFunc) Universe() *Universe {
	return m.universe
}

// Degrees returns the degree array. Callers must not mutate it.
func (m *MembershipFunc) Degrees() []float64 {
	return m.degrees
}

// At returns the degree of membership for an arbitrary crisp value by
// linear interpolation between grid points. Values outside the universe
// clamp to the nearest edge degree.
func (m *MembershipFunc) At(x float64) float64 {
	u := m.universe
	if x <= u.Min() {
		return m.degrees[0]
	}
	if x >= u.Max() {
		return m.degrees[len(m.degrees)-1]
	}

	pos := (x - u.lo) / u.step
	i := int(pos)
	if i >= len(m.degrees)-1 {
		return m.degrees[len(m.degrees)-1]
	}
	frac := pos - float64(i)
	return m.degrees[i] + frac*(m.degrees[i+1]-m.degrees[i])
}

// Clip applies correlation-minimum implication: the pointwise minimum of
// the membership curve and a rule firing strength.
func (m *MembershipFunc) Clip(strength float64) *MembershipFunc {
	clipped := make([]float64, len(m.degrees))
	for i, d := range m.degrees {
		clipped[i] = min(d, strength)
	}
	return &MembershipFunc{universe: m.universe, degrees: clipped}
}

// Peak returns the maximum degree of the curve.
func (m *MembershipFunc) Peak() float64 {
	return floats.Max(m.degrees)
}

// Aggregate combines clipped consequent curves by pointwise maximum into
// one aggregated fuzzy set. All inputs must share one universe.
func Aggregate(ms ...*MembershipFunc) (*MembershipFunc, error) {
	if len(ms) == 0 {
		return nil, fmt.Errorf("aggregate requires at least one membership function")
	}
	u := ms[0].universe
	agg := make([]float64, u.Len())
	copy(agg, ms[0].degrees)
	for _, m := range ms[1:] {
		if m.universe != u {
			return nil, fmt.Errorf("aggregate requires a shared universe")
		}
		for i, d := range m.degrees {
			agg[i] = max(agg[i], d)
		}
	}
	return &MembershipFunc{universe: u, degrees: agg}, nil
}

// Centroid defuzzifies the curve by center of gravity over the grid:
// Σ(x·μ(x)) / Σ(μ(x)). An entirely zero curve has no centroid and returns
// ErrDegenerateAggregate; callers decide the fallback policy.
func (m *MembershipFunc) Centroid() (float64, error) {
	total := floats.Sum(m.degrees)
	if total == 0 {
		return 0, ErrDegenerateAggregate
	}

	weighted := 0.0
	for i, x := range m.universe.Points() {
		weighted += x * m.degrees[i]
	}
	return weighted / total, nil
}
