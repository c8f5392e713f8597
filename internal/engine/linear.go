package engine

import (
	"github.com/tphakala/go-keyframes/internal/points"
)

// LinearInterpolator blends the raw values of the bracketing points and
// applies the modifier once to the blend.
type LinearInterpolator struct {
	modifier Modifier
}

// NewLinearInterpolator creates a linear interpolator.
func NewLinearInterpolator(modifier Modifier) *LinearInterpolator {
	return &LinearInterpolator{modifier: modifier}
}

// Interpolate returns the linear blend at key.
// Blending happens on Original values: the modifier may be non-linear, and
// blending already-modified values would apply it twice.
func (l *LinearInterpolator) Interpolate(prev, next *points.Point, key float64) (points.Point, error) {
	p, done, err := bracket(prev, next, key)
	if done {
		return p, err
	}

	raw := lerp(*prev, *next, key)

	return points.Point{
		Key:      key,
		Value:    l.modifier.Apply(raw),
		Original: raw,
	}, nil
}

// Slope returns the secant slope between a and b.
func (l *LinearInterpolator) Slope(a, b points.Point) (float64, error) {
	return secant(a, b)
}

// Name returns "linear".
func (l *LinearInterpolator) Name() string {
	return nameLinear
}

// lerp blends the raw values of prev and next at key.
// Uses the form y = (1-x)*prev + x*next where x is the fractional position.
func lerp(prev, next points.Point, key float64) float64 {
	percent := (key - prev.Key) / (next.Key - prev.Key)
	return prev.Original*(1-percent) + next.Original*percent
}

// StepInterpolator holds the previous control point's value until the next
// key is reached.
type StepInterpolator struct{}

// NewStepInterpolator creates a step (sample-and-hold) interpolator.
func NewStepInterpolator() *StepInterpolator {
	return &StepInterpolator{}
}

// Interpolate returns prev's value re-keyed at key.
// The held value is already modified, so the modifier is not re-applied.
func (s *StepInterpolator) Interpolate(prev, next *points.Point, key float64) (points.Point, error) {
	p, done, err := bracket(prev, next, key)
	if done {
		return p, err
	}

	return points.Point{
		Key:      key,
		Value:    prev.Value,
		Original: prev.Original,
	}, nil
}

// Slope is zero everywhere a step curve is differentiable.
func (s *StepInterpolator) Slope(a, b points.Point) (float64, error) {
	if _, err := secant(a, b); err != nil {
		return 0, err
	}
	return 0, nil
}

// Name returns "step".
func (s *StepInterpolator) Name() string {
	return nameStep
}
