package fuzzy

import "fmt"

// Universe is an ordered, evenly spaced discretization of a numeric domain.
// Construction follows half-open range semantics: points run from lo up to
// but excluding hi, in increments of step. The grid resolution is part of
// the model contract because centroid output depends on it, so every
// universe in the variable bank pins its step explicitly.
type Universe struct {
	points []float64
	lo     float64
	step   float64
}

// NewUniverse builds a universe covering [lo, hi) with the given step.
func NewUniverse(lo, hi, step float64) (*Universe, error) {
	if step <= 0 {
		return nil, fmt.Errorf("universe step must be positive, got %g", step)
	}
	if hi <= lo {
		return nil, fmt.Errorf("universe bounds invalid: lo=%g hi=%g", lo, hi)
	}

	points := make([]float64, 0, int((hi-lo)/step)+1)
	for i := 0; ; i++ {
		x := lo + float64(i)*step
		if x >= hi-step*1e-9 {
			break
		}
		points = append(points, x)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("universe [%g, %g) step %g has no points", lo, hi, step)
	}

	return &Universe{points: points, lo: lo, step: step}, nil
}

// Len returns the number of grid points.
func (u *Universe) Len() int {
	return len(u.points)
}

// Point returns the grid point at index i.
func (u *Universe) Point(i int) float64 {
	return u.points[i]
}

// Points returns the underlying grid. Callers must not mutate it.
func (u *Universe) Points() []float64 {
	return u.points
}

// Min returns the first grid point.
func (u *Universe) Min() float64 {
	return u.points[0]
}

// Max returns the last grid point.
func (u *Universe) Max() float64 {
	return u.points[len(u.points)-1]
}

// Midpoint returns the center of the covered range. Used as the
// deterministic fallback score when an aggregated curve is entirely zero.
func (u *Universe) Midpoint() float64 {
	return (u.Min() + u.Max()) / 2
}

// Step returns the grid spacing.
func (u *Universe) Step() float64 {
	return u.step
}
