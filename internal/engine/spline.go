package engine

import (
	"gonum.org/v1/gonum/interp"

	"github.com/tphakala/go-keyframes/internal/points"
)

// SplineKind selects the gonum spline used by SplineInterpolator.
type SplineKind int

const (
	// SplineAkima uses Akima's local spline, resistant to overshoot near outliers.
	SplineAkima SplineKind = iota

	// SplineMonotone uses the Fritsch-Butland monotone cubic, which never
	// overshoots between monotone control points.
	SplineMonotone

	// SplineNatural uses a natural cubic spline (zero second derivative at the ends).
	SplineNatural
)

// fittablePredictor is the subset of gonum's interp API the spline kinds share.
type fittablePredictor interface {
	Fit(xs, ys []float64) error
	Predict(x float64) float64
}

// SplineInterpolator evaluates a cubic spline fitted on the raw values of all
// control points. Until a fit succeeds (too few points for the chosen spline)
// it falls back to the linear blend.
type SplineInterpolator struct {
	kind      SplineKind
	modifier  Modifier
	predictor fittablePredictor
	fitted    bool
}

// NewSplineInterpolator creates a spline interpolator of the given kind.
func NewSplineInterpolator(kind SplineKind, modifier Modifier) *SplineInterpolator {
	return &SplineInterpolator{
		kind:      kind,
		modifier:  modifier,
		predictor: newPredictor(kind),
	}
}

func newPredictor(kind SplineKind) fittablePredictor {
	switch kind {
	case SplineMonotone:
		return &interp.FritschButland{}
	case SplineNatural:
		return &interp.NaturalCubic{}
	default:
		return &interp.AkimaSpline{}
	}
}

// Fit refits the spline on the current control points.
func (s *SplineInterpolator) Fit(keys, originals []float64) {
	if len(keys) < minSplinePoints {
		s.fitted = false
		return
	}

	// gonum keeps references to the slices it is given.
	xs := append([]float64(nil), keys...)
	ys := append([]float64(nil), originals...)

	p := newPredictor(s.kind)
	if err := p.Fit(xs, ys); err != nil {
		s.fitted = false
		return
	}
	s.predictor = p
	s.fitted = true
}

// Fitted reports whether the spline (rather than the linear fallback) is in use.
func (s *SplineInterpolator) Fitted() bool {
	return s.fitted
}

// Interpolate returns the spline value at key with the modifier applied once.
func (s *SplineInterpolator) Interpolate(prev, next *points.Point, key float64) (points.Point, error) {
	p, done, err := bracket(prev, next, key)
	if done {
		return p, err
	}

	var raw float64
	if s.fitted {
		raw = s.predictor.Predict(key)
	} else {
		raw = lerp(*prev, *next, key)
	}

	return points.Point{
		Key:      key,
		Value:    s.modifier.Apply(raw),
		Original: raw,
	}, nil
}

// Slope returns the secant slope between a and b.
func (s *SplineInterpolator) Slope(a, b points.Point) (float64, error) {
	return secant(a, b)
}

// Name returns the spline kind's identifier.
func (s *SplineInterpolator) Name() string {
	switch s.kind {
	case SplineMonotone:
		return nameMonotone
	case SplineNatural:
		return nameNatural
	default:
		return nameAkima
	}
}
