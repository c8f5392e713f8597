package engine

import (
	"sort"

	"github.com/tphakala/go-keyframes/internal/points"
)

// HermiteInterpolator implements cubic Hermite interpolation with
// Catmull-Rom (finite difference) tangents, generalized to uneven key spacing.
// Tangents at the first and last control points are one-sided secants, so
// collinear control points reproduce the line exactly.
type HermiteInterpolator struct {
	modifier  Modifier
	keys      []float64
	originals []float64
}

// NewHermiteInterpolator creates a Catmull-Rom interpolator.
func NewHermiteInterpolator(modifier Modifier) *HermiteInterpolator {
	return &HermiteInterpolator{modifier: modifier}
}

// Fit captures the control points the tangents are derived from.
func (h *HermiteInterpolator) Fit(keys, originals []float64) {
	h.keys = append(h.keys[:0], keys...)
	h.originals = append(h.originals[:0], originals...)
}

// Interpolate returns the Hermite cubic value at key.
func (h *HermiteInterpolator) Interpolate(prev, next *points.Point, key float64) (points.Point, error) {
	p, done, err := bracket(prev, next, key)
	if done {
		return p, err
	}

	i := sort.SearchFloat64s(h.keys, next.Key)
	var raw float64
	if i < 1 || i >= len(h.keys) || h.keys[i] != next.Key || h.keys[i-1] != prev.Key {
		// Not fitted on the points we were handed.
		raw = lerp(*prev, *next, key)
	} else {
		raw = h.evaluate(i-1, key)
	}

	return points.Point{
		Key:      key,
		Value:    h.modifier.Apply(raw),
		Original: raw,
	}, nil
}

// evaluate computes the cubic on segment [keys[i], keys[i+1]].
// Uses the formula: y = ((a*x + b)*x + c)*x + d
// where x is the fractional position within the segment.
func (h *HermiteInterpolator) evaluate(i int, key float64) float64 {
	x1, x2 := h.keys[i], h.keys[i+1]
	y1, y2 := h.originals[i], h.originals[i+1]
	width := x2 - x1

	m1 := h.tangent(i) * width
	m2 := h.tangent(i+1) * width

	coefA := hermiteCoeff2*y1 - hermiteCoeff2*y2 + m1 + m2
	coefB := -hermiteCoeff3*y1 + hermiteCoeff3*y2 - hermiteCoeff2*m1 - m2
	coefC := m1
	coefD := y1

	x := (key - x1) / width
	return ((coefA*x+coefB)*x+coefC)*x + coefD
}

// tangent returns dy/dkey at control point i.
func (h *HermiteInterpolator) tangent(i int) float64 {
	lo, hi := i-1, i+1
	if lo < 0 {
		lo = i
	}
	if hi >= len(h.keys) {
		hi = i
	}
	return (h.originals[hi] - h.originals[lo]) / (h.keys[hi] - h.keys[lo])
}

// Slope returns the secant slope between a and b.
func (h *HermiteInterpolator) Slope(a, b points.Point) (float64, error) {
	return secant(a, b)
}

// Name returns "hermite".
func (h *HermiteInterpolator) Name() string {
	return nameHermite
}
