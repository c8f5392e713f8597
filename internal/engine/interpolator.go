// Package engine implements the curve interpolation kinds.
//
// Every kind shares one contract: Interpolate produces the point at a query
// key from its bracketing control points, and Slope measures the rate of
// change between two points. Kinds that need the whole control-point set
// (splines) additionally implement Fitter.
package engine

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-keyframes/internal/points"
)

// ErrInvalidOrdering indicates interpolation or slope inputs that are not
// ordered by key. It signals a broken neighbor lookup, never bad user input.
var ErrInvalidOrdering = errors.New("control points out of order")

// Modifier maps a raw value to the value handed to consumers.
// It must be pure; a nil Modifier is the identity.
type Modifier func(float64) float64

// Apply returns m(v), or v when m is nil.
func (m Modifier) Apply(v float64) float64 {
	if m == nil {
		return v
	}
	return m(v)
}

// Interpolator is the capability set shared by all interpolation kinds.
type Interpolator interface {
	// Interpolate returns the point at key given its neighbors as reported by
	// points.Store.Neighbors. At least one neighbor must be present.
	Interpolate(prev, next *points.Point, key float64) (points.Point, error)

	// Slope returns the rate of change from a to b. Requires a.Key < b.Key.
	Slope(a, b points.Point) (float64, error)

	// Name returns a short identifier for the kind.
	Name() string
}

// Fitter is implemented by kinds whose interior values depend on every
// control point rather than only the bracketing pair.
type Fitter interface {
	// Fit rebuilds internal state from keys (strictly ascending) and the raw
	// values stored at them.
	Fit(keys, originals []float64)
}

// bracket resolves the shared boundary cases of Interpolate.
// It returns done=true with the result when no blending is needed: flat
// extrapolation on either side, or an exact hit on next.
func bracket(prev, next *points.Point, key float64) (p points.Point, done bool, err error) {
	switch {
	case prev == nil && next == nil:
		return points.Point{}, true, fmt.Errorf("%w: no neighbors for key %v", ErrInvalidOrdering, key)
	case prev == nil:
		return *next, true, nil
	case next == nil:
		return *prev, true, nil
	}

	if prev.Key >= next.Key {
		return points.Point{}, true, fmt.Errorf("%w: prev key %v >= next key %v", ErrInvalidOrdering, prev.Key, next.Key)
	}
	if key < prev.Key || key > next.Key {
		return points.Point{}, true, fmt.Errorf("%w: key %v outside [%v, %v]", ErrInvalidOrdering, key, prev.Key, next.Key)
	}

	// Zero-width case of an exact hit: percent would be 1.
	if key == next.Key {
		return *next, true, nil
	}

	return points.Point{}, false, nil
}

// secant is the slope between two points on their post-modifier values.
func secant(a, b points.Point) (float64, error) {
	if a.Key >= b.Key {
		return 0, fmt.Errorf("%w: slope from key %v to key %v", ErrInvalidOrdering, a.Key, b.Key)
	}
	return (b.Value - a.Value) / (b.Key - a.Key), nil
}
