package keyframes

import (
	"fmt"
	"math"
)

// NewLinear creates an empty linear curve with an optional modifier.
// This is the most common configuration.
func NewLinear(modifier Modifier) *Curve {
	c, _ := New(&Config{Kind: KindLinear, Modifier: modifier})
	return c
}

// NewStep creates an empty step (sample-and-hold) curve.
func NewStep(modifier Modifier) *Curve {
	c, _ := New(&Config{Kind: KindStep, Modifier: modifier})
	return c
}

// FromPoints creates a curve of the given kind from parallel key and value
// slices. Keys need not be sorted but must be unique.
func FromPoints(kind Kind, keys, values []float64, modifier Modifier) (*Curve, error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: %d keys but %d values", ErrInvalidConfig, len(keys), len(values))
	}

	c, err := New(&Config{Kind: kind, Modifier: modifier, Capacity: len(keys)})
	if err != nil {
		return nil, err
	}

	for i := range keys {
		if err := c.AddPoint(keys[i], values[i]); err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
	}

	return c, nil
}

// MustFromPoints is like FromPoints but panics on error.
// Intended for package-level curve tables.
func MustFromPoints(kind Kind, keys, values []float64, modifier Modifier) *Curve {
	c, err := FromPoints(kind, keys, values, modifier)
	if err != nil {
		panic(err)
	}
	return c
}

// DecibelsToGain is a modifier mapping amplitude decibels to linear gain.
// Automation envelopes keyed in dB interpolate perceptually this way.
func DecibelsToGain(db float64) float64 {
	return math.Pow(10, db/decibelsPerDecade)
}

// Clamp returns a modifier limiting values to [lo, hi].
func Clamp(lo, hi float64) Modifier {
	return func(v float64) float64 {
		return math.Max(lo, math.Min(hi, v))
	}
}

// Chain returns a modifier applying mods in order. Nil entries are skipped.
func Chain(mods ...Modifier) Modifier {
	return func(v float64) float64 {
		for _, m := range mods {
			v = m.Apply(v)
		}
		return v
	}
}
