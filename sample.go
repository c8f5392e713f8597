package keyframes

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-keyframes/internal/simdops"
)

// EvaluateMany evaluates the curve at each key.
func (c *Curve) EvaluateMany(keys []float64) ([]float64, error) {
	if c.store.Len() == 0 {
		return nil, ErrEmptyCurve
	}

	values := make([]float64, len(keys))
	for i, k := range keys {
		v, err := c.Evaluate(k)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", i, err)
		}
		values[i] = v
	}

	return values, nil
}

// Sample evaluates the curve on n evenly spaced keys spanning [from, to],
// both endpoints included.
func (c *Curve) Sample(from, to float64, n int) (keys, values []float64, err error) {
	if err := validateRange(from, to, n); err != nil {
		return nil, nil, err
	}

	keys = floats.Span(make([]float64, n), from, to)

	values, err = c.EvaluateMany(keys)
	if err != nil {
		return nil, nil, err
	}

	return keys, values, nil
}

// Average returns the mean value of the curve over [from, to], approximated
// with the trapezoidal rule on n samples.
func (c *Curve) Average(from, to float64, n int) (float64, error) {
	_, values, err := c.Sample(from, to, n)
	if err != nil {
		return 0, err
	}

	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1
	}
	weights[0] = trapezoidEnd
	weights[n-1] = trapezoidEnd

	return simdops.Weighted(values, weights), nil
}

// Render fills dst with len(dst) evenly spaced samples of the curve over
// [from, to], multiplied by gain.
func (c *Curve) Render(dst []float64, from, to, gain float64) error {
	_, values, err := c.Sample(from, to, len(dst))
	if err != nil {
		return err
	}

	simdops.For[float64]().Scale(dst, values, gain)

	return nil
}

// RenderFloat32 is like Render but writes float32 samples.
// Evaluation runs in float64; only the output is narrowed.
func (c *Curve) RenderFloat32(dst []float32, from, to float64, gain float32) error {
	_, values, err := c.Sample(from, to, len(dst))
	if err != nil {
		return err
	}

	for i, v := range values {
		dst[i] = float32(v)
	}
	simdops.For[float32]().Scale(dst, dst, gain)

	return nil
}

func validateRange(from, to float64, n int) error {
	if n < minSampleCount {
		return fmt.Errorf("%w: need at least %d samples, got %d", ErrInvalidRange, minSampleCount, n)
	}

	if math.IsNaN(from) || math.IsNaN(to) || math.IsInf(from, 0) || math.IsInf(to, 0) {
		return fmt.Errorf("%w: bounds must be finite", ErrInvalidRange)
	}

	if from >= to {
		return fmt.Errorf("%w: from %v must be less than to %v", ErrInvalidRange, from, to)
	}

	return nil
}
