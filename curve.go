package keyframes

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tphakala/go-keyframes/internal/engine"
	"github.com/tphakala/go-keyframes/internal/points"
)

// Point is an immutable control point. Value is the post-modifier value,
// Original the raw value the point was created from.
type Point = points.Point

// Modifier maps a raw value to the value handed to consumers.
// It must be pure: it is called once per stored point and once per
// interpolated interior point, never again on stored points.
type Modifier = engine.Modifier

// Kind enumerates the interpolation kinds.
type Kind int

const (
	// KindLinear blends the bracketing control points linearly.
	KindLinear Kind = iota

	// KindStep holds the previous control point's value until the next key.
	KindStep

	// KindHermite uses cubic Hermite segments with Catmull-Rom tangents.
	// Each segment depends on the two control points on either side.
	KindHermite

	// KindAkima uses an Akima spline through all control points.
	KindAkima

	// KindMonotoneCubic uses a Fritsch-Butland monotone cubic, which never
	// overshoots between monotone control points.
	KindMonotoneCubic

	// KindNaturalCubic uses a natural cubic spline.
	KindNaturalCubic

	kindCount
)

var kindNames = [kindCount]string{
	KindLinear:        "linear",
	KindStep:          "step",
	KindHermite:       "hermite",
	KindAkima:         "akima",
	KindMonotoneCubic: "monotone",
	KindNaturalCubic:  "natural",
}

// String returns the kind's short name.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a short name ("linear", "step", "hermite", "akima",
// "monotone", "natural") to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown interpolation kind %q", ErrInvalidConfig, s)
}

// Config holds curve configuration.
type Config struct {
	// Kind selects the interpolation algorithm. The zero value is KindLinear.
	Kind Kind

	// Modifier is applied to raw values. Nil means identity.
	Modifier Modifier

	// Capacity hints at the number of control points to preallocate.
	Capacity int
}

// Common errors returned by curves.
var (
	// ErrEmptyCurve indicates a query against a curve with no control points.
	ErrEmptyCurve = errors.New("curve has no control points")

	// ErrDuplicateKey indicates an insert with a key already on the curve.
	ErrDuplicateKey = points.ErrDuplicateKey

	// ErrInvalidKey indicates a NaN key.
	ErrInvalidKey = points.ErrInvalidKey

	// ErrInvalidOrdering indicates an internal ordering invariant was broken.
	// Correct neighbor lookup never produces it.
	ErrInvalidOrdering = engine.ErrInvalidOrdering

	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid curve configuration")

	// ErrInvalidRange indicates invalid sampling arguments.
	ErrInvalidRange = errors.New("invalid sampling range")
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Kind < 0 || c.Kind >= kindCount {
		return fmt.Errorf("%w: unknown interpolation kind %d", ErrInvalidConfig, int(c.Kind))
	}

	if c.Capacity < 0 || c.Capacity > maxCapacityHint {
		return fmt.Errorf("%w: capacity must be 0-%d", ErrInvalidConfig, maxCapacityHint)
	}

	return nil
}

// Curve is a piecewise curve through a set of control points.
//
// A Curve is not safe for concurrent mutation: callers must serialize
// AddPoint against every other call. Concurrent evaluations without
// intervening inserts are safe.
type Curve struct {
	kind     Kind
	modifier Modifier
	store    *points.Store
	interp   engine.Interpolator
}

// New creates an empty curve.
func New(config *Config) (*Curve, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	capacity := config.Capacity
	if capacity == 0 {
		capacity = defaultCapacity
	}

	return &Curve{
		kind:     config.Kind,
		modifier: config.Modifier,
		store:    points.NewStore(capacity),
		interp:   newInterpolator(config.Kind, config.Modifier),
	}, nil
}

// newInterpolator maps a validated Kind to its engine implementation.
func newInterpolator(kind Kind, modifier Modifier) engine.Interpolator {
	switch kind {
	case KindStep:
		return engine.NewStepInterpolator()
	case KindHermite:
		return engine.NewHermiteInterpolator(modifier)
	case KindAkima:
		return engine.NewSplineInterpolator(engine.SplineAkima, modifier)
	case KindMonotoneCubic:
		return engine.NewSplineInterpolator(engine.SplineMonotone, modifier)
	case KindNaturalCubic:
		return engine.NewSplineInterpolator(engine.SplineNatural, modifier)
	default:
		return engine.NewLinearInterpolator(modifier)
	}
}

// AddPoint adds a control point. The stored Value is Modifier(value) and
// Original is value. Fails with ErrDuplicateKey if key is already present,
// leaving the curve unchanged.
func (c *Curve) AddPoint(key, value float64) error {
	p := Point{
		Key:      key,
		Value:    c.modifier.Apply(value),
		Original: value,
	}

	if err := c.store.Add(p); err != nil {
		return err
	}

	if f, ok := c.interp.(engine.Fitter); ok {
		f.Fit(c.store.Keys(), c.store.Originals())
	}

	return nil
}

// Evaluate returns the curve value at key.
// Keys outside the control-point range evaluate to the nearest boundary value.
func (c *Curve) Evaluate(key float64) (float64, error) {
	p, err := c.EvaluatePoint(key)
	if err != nil {
		return 0, err
	}
	return p.Value, nil
}

// EvaluatePoint returns the full point at key, including the raw
// pre-modifier value the result was derived from.
func (c *Curve) EvaluatePoint(key float64) (Point, error) {
	p, _, _, err := c.locate(key)
	return p, err
}

// EvaluateWithSlopes returns the value at key and the incoming and outgoing
// slopes there.
//
// Outside the control-point range both slopes are 0. At a control point the
// slopes are one-sided differences to its stored predecessor and successor
// (0 where there is none). Between control points they are measured from the
// bracketing points to the interpolated point.
func (c *Curve) EvaluateWithSlopes(key float64) (value, inSlope, outSlope float64, err error) {
	p, prev, next, err := c.locate(key)
	if err != nil {
		return 0, 0, 0, err
	}

	inSlope, outSlope, err = c.slopes(prev, p, next)
	if err != nil {
		return 0, 0, 0, err
	}

	return p.Value, inSlope, outSlope, nil
}

// locate finds the neighbors of key and interpolates between them.
func (c *Curve) locate(key float64) (p Point, prev, next *Point, err error) {
	if c.store.Len() == 0 {
		return Point{}, nil, nil, ErrEmptyCurve
	}

	if math.IsNaN(key) {
		return Point{}, nil, nil, fmt.Errorf("%w: query key is NaN", ErrInvalidKey)
	}

	prev, next = c.store.Neighbors(key)

	p, err = c.interp.Interpolate(prev, next, key)
	if err != nil {
		return Point{}, nil, nil, fmt.Errorf("%s interpolate at %v: %w", c.interp.Name(), key, err)
	}

	return p, prev, next, nil
}

// slopes computes the in/out slopes at p given the neighbors it was
// interpolated from.
func (c *Curve) slopes(prev *Point, p Point, next *Point) (in, out float64, err error) {
	// Exact hit: Neighbors reports the matched point as next.
	if next != nil && next.Key == p.Key {
		if prev != nil {
			if in, err = c.interp.Slope(*prev, p); err != nil {
				return 0, 0, err
			}
		}

		_, _, after := c.store.Around(p.Key)
		if after != nil {
			if out, err = c.interp.Slope(p, *after); err != nil {
				return 0, 0, err
			}
		}

		return in, out, nil
	}

	// Flat extrapolation: p is the boundary point itself.
	if prev == nil || next == nil {
		return 0, 0, nil
	}

	if in, err = c.interp.Slope(*prev, p); err != nil {
		return 0, 0, err
	}
	if out, err = c.interp.Slope(p, *next); err != nil {
		return 0, 0, err
	}

	return in, out, nil
}

// Len returns the number of control points.
func (c *Curve) Len() int {
	return c.store.Len()
}

// Points returns a copy of the control points in key order.
func (c *Curve) Points() []Point {
	return c.store.Points()
}

// Bounds returns the minimum and maximum control-point keys.
// ok is false for an empty curve.
func (c *Curve) Bounds() (minKey, maxKey float64, ok bool) {
	first, ok := c.store.First()
	if !ok {
		return 0, 0, false
	}
	last, _ := c.store.Last()
	return first.Key, last.Key, true
}

// Kind returns the curve's interpolation kind.
func (c *Curve) Kind() Kind {
	return c.kind
}
