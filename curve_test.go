package keyframes

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-keyframes/internal/engine"
	"github.com/tphakala/go-keyframes/internal/points"
	"github.com/tphakala/go-keyframes/internal/testutil"
)

func newTwoPointCurve(t *testing.T) *Curve {
	t.Helper()
	c := NewLinear(nil)
	require.NoError(t, c.AddPoint(1.0, 1.0))
	require.NoError(t, c.AddPoint(2.0, 2.0))
	return c
}

// TestCurve_TwoPointScenario covers the reference two-point curve.
func TestCurve_TwoPointScenario(t *testing.T) {
	c := newTwoPointCurve(t)

	tests := []struct {
		name    string
		key     float64
		value   float64
		inSlope float64
		outSlop float64
	}{
		{"Below range", 0.0, 1.0, 0.0, 0.0},
		{"Above range", 3.0, 2.0, 0.0, 0.0},
		{"Midpoint", 1.5, 1.5, 1.0, 1.0},
		{"Exact minimum", 1.0, 1.0, 0.0, 1.0},
		{"Exact maximum", 2.0, 2.0, 1.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, in, out, err := c.EvaluateWithSlopes(tt.key)
			require.NoError(t, err)
			testutil.AssertEvaluation(t, tt.value, tt.inSlope, tt.outSlop, v, in, out, 1e-5)
		})
	}
}

func TestCurve_EmptyCurve(t *testing.T) {
	c := NewLinear(nil)

	_, err := c.Evaluate(1)
	require.ErrorIs(t, err, ErrEmptyCurve)

	_, _, _, err = c.EvaluateWithSlopes(1)
	require.ErrorIs(t, err, ErrEmptyCurve)

	_, err = c.EvaluatePoint(1)
	require.ErrorIs(t, err, ErrEmptyCurve)

	_, _, ok := c.Bounds()
	assert.False(t, ok)
}

func TestCurve_ExtrapolationIsFlat(t *testing.T) {
	c, err := FromPoints(KindLinear, []float64{-1, 0, 4}, []float64{3, -2, 8}, nil)
	require.NoError(t, err)

	for _, key := range []float64{-1e9, -100, -1.000001, math.Inf(-1)} {
		v, in, out, err := c.EvaluateWithSlopes(key)
		require.NoError(t, err)
		testutil.AssertEvaluation(t, 3, 0, 0, v, in, out, 0, "key=%v", key)
	}

	for _, key := range []float64{4.000001, 100, 1e9, math.Inf(1)} {
		v, in, out, err := c.EvaluateWithSlopes(key)
		require.NoError(t, err)
		testutil.AssertEvaluation(t, 8, 0, 0, v, in, out, 0, "key=%v", key)
	}
}

func TestCurve_InteriorSlopesEqualSegmentSlope(t *testing.T) {
	k1, v1, k2, v2 := 0.5, -3.0, 4.5, 5.0
	c, err := FromPoints(KindLinear, []float64{k1, k2}, []float64{v1, v2}, nil)
	require.NoError(t, err)

	slope := (v2 - v1) / (k2 - k1)
	for key := 0.6; key < k2; key += 0.3 {
		v, in, out, err := c.EvaluateWithSlopes(key)
		require.NoError(t, err)

		percent := (key - k1) / (k2 - k1)
		want := v1*(1-percent) + v2*percent
		testutil.AssertEvaluation(t, want, slope, slope, v, in, out, testutil.SlopeTolerance, "key=%v", key)
	}
}

func TestCurve_ExactHitsUseStoredNeighbors(t *testing.T) {
	c, err := FromPoints(KindLinear, []float64{0, 1, 3}, []float64{0, 2, 0}, nil)
	require.NoError(t, err)

	v, in, out, err := c.EvaluateWithSlopes(1)
	require.NoError(t, err)
	testutil.AssertEvaluation(t, 2, 2, -1, v, in, out, testutil.SlopeTolerance)

	v, in, out, err = c.EvaluateWithSlopes(0)
	require.NoError(t, err)
	testutil.AssertEvaluation(t, 0, 0, 2, v, in, out, testutil.SlopeTolerance)

	v, in, out, err = c.EvaluateWithSlopes(3)
	require.NoError(t, err)
	testutil.AssertEvaluation(t, 0, -1, 0, v, in, out, testutil.SlopeTolerance)
}

func TestCurve_SinglePoint(t *testing.T) {
	c := NewLinear(nil)
	require.NoError(t, c.AddPoint(2, 7))

	for _, key := range []float64{-5, 2, 9} {
		v, in, out, err := c.EvaluateWithSlopes(key)
		require.NoError(t, err)
		testutil.AssertEvaluation(t, 7, 0, 0, v, in, out, 0, "key=%v", key)
	}
}

func TestCurve_Idempotent(t *testing.T) {
	c, err := FromPoints(KindLinear, []float64{0, 1, 2, 5}, []float64{1, -1, 4, 4}, Clamp(-0.5, 3))
	require.NoError(t, err)

	for _, key := range []float64{-1, 0, 0.3, 1, 1.7, 2, 4, 6} {
		v1, in1, out1, err := c.EvaluateWithSlopes(key)
		require.NoError(t, err)
		v2, in2, out2, err := c.EvaluateWithSlopes(key)
		require.NoError(t, err)

		assert.Equal(t, v1, v2)
		assert.Equal(t, in1, in2)
		assert.Equal(t, out1, out2)

		v3, err := c.Evaluate(key)
		require.NoError(t, err)
		assert.Equal(t, v1, v3)
	}
}

func TestCurve_IdentityModifierRoundTrip(t *testing.T) {
	c, err := FromPoints(KindLinear, []float64{3, 1, 2}, []float64{0.25, -8, 1e6}, nil)
	require.NoError(t, err)

	for _, p := range c.Points() {
		assert.Equal(t, p.Original, p.Value, "key=%v", p.Key)
	}
}

func TestCurve_ModifierStoredValues(t *testing.T) {
	calls := 0
	double := func(v float64) float64 {
		calls++
		return 2 * v
	}

	c := NewLinear(double)
	require.NoError(t, c.AddPoint(0, 1))
	require.NoError(t, c.AddPoint(1, 3))
	assert.Equal(t, 2, calls, "modifier runs once per stored point")

	for _, p := range c.Points() {
		assert.InDelta(t, 2*p.Original, p.Value, 0)
	}

	// Exact hits and extrapolation return stored points without re-modifying.
	for _, key := range []float64{-1, 0, 1, 2} {
		_, err := c.Evaluate(key)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, calls)

	// Interior points are modified once from the raw blend.
	p, err := c.EvaluatePoint(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, p.Original, 1e-12)
	assert.InDelta(t, 4.0, p.Value, 1e-12)
	assert.Equal(t, 3, calls)
}

func TestCurve_NonLinearModifierBlendsOriginals(t *testing.T) {
	c := NewLinear(DecibelsToGain)
	require.NoError(t, c.AddPoint(0, -40))
	require.NoError(t, c.AddPoint(1, 0))

	v, in, out, err := c.EvaluateWithSlopes(0.5)
	require.NoError(t, err)

	// -20 dB, not the average of 0.01 and 1.0.
	assert.InDelta(t, 0.1, v, 1e-12)

	// Slopes are measured on modified values.
	assert.InDelta(t, (0.1-0.01)/0.5, in, 1e-12)
	assert.InDelta(t, (1.0-0.1)/0.5, out, 1e-12)
}

func TestCurve_DuplicateKey(t *testing.T) {
	c := newTwoPointCurve(t)
	before := c.Points()

	err := c.AddPoint(2.0, 100)
	require.ErrorIs(t, err, ErrDuplicateKey)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, before, c.Points())

	v, err := c.Evaluate(2.0)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v, 0)
}

func TestCurve_NaNKeys(t *testing.T) {
	c := newTwoPointCurve(t)

	require.ErrorIs(t, c.AddPoint(math.NaN(), 1), ErrInvalidKey)
	assert.Equal(t, 2, c.Len())

	_, err := c.Evaluate(math.NaN())
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestCurve_OutOfOrderInsert(t *testing.T) {
	c := NewLinear(nil)
	for _, k := range []float64{5, 1, 3, 2, 4} {
		require.NoError(t, c.AddPoint(k, k*k))
	}

	keys := make([]float64, 0, c.Len())
	for _, p := range c.Points() {
		keys = append(keys, p.Key)
	}
	testutil.AssertStrictlyIncreasing(t, keys)

	v, err := c.Evaluate(2.5)
	require.NoError(t, err)
	assert.InDelta(t, 6.5, v, 1e-12)

	minKey, maxKey, ok := c.Bounds()
	require.True(t, ok)
	assert.InDelta(t, 1.0, minKey, 0)
	assert.InDelta(t, 5.0, maxKey, 0)
}

func TestCurve_StepKind(t *testing.T) {
	c, err := FromPoints(KindStep, []float64{0, 1, 2}, []float64{10, 20, 30}, nil)
	require.NoError(t, err)

	tests := []struct {
		key   float64
		value float64
	}{
		{-1, 10}, {0, 10}, {0.99, 10}, {1, 20}, {1.5, 20}, {2, 30}, {3, 30},
	}

	for _, tt := range tests {
		v, in, out, err := c.EvaluateWithSlopes(tt.key)
		require.NoError(t, err)
		testutil.AssertEvaluation(t, tt.value, 0, 0, v, in, out, 0, "key=%v", tt.key)
	}
}

func TestCurve_SplineKinds(t *testing.T) {
	keys := []float64{0, 1, 2, 3, 4}
	values := []float64{0, 1, 0, 1, 0}

	for _, kind := range []Kind{KindHermite, KindAkima, KindMonotoneCubic, KindNaturalCubic} {
		t.Run(kind.String(), func(t *testing.T) {
			c, err := FromPoints(kind, keys, values, nil)
			require.NoError(t, err)
			assert.Equal(t, kind, c.Kind())

			for i, k := range keys {
				v, err := c.Evaluate(k)
				require.NoError(t, err)
				assert.InDelta(t, values[i], v, 1e-12, "control point %v", k)
			}

			v, in, out, err := c.EvaluateWithSlopes(-3)
			require.NoError(t, err)
			testutil.AssertEvaluation(t, 0, 0, 0, v, in, out, 0)

			v, in, out, err = c.EvaluateWithSlopes(10)
			require.NoError(t, err)
			testutil.AssertEvaluation(t, 0, 0, 0, v, in, out, 0)

			_, samples, err := c.Sample(0, 4, 81)
			require.NoError(t, err)
			testutil.AssertNoNaNOrInf(t, samples)
		})
	}
}

func TestCurve_SplineTwoPointsBehavesLinear(t *testing.T) {
	lin := newTwoPointCurve(t)

	for _, kind := range []Kind{KindHermite, KindAkima, KindMonotoneCubic, KindNaturalCubic} {
		c, err := FromPoints(kind, []float64{1, 2}, []float64{1, 2}, nil)
		require.NoError(t, err)

		for _, key := range []float64{0, 1, 1.25, 1.5, 2, 3} {
			want, wantIn, wantOut, err := lin.EvaluateWithSlopes(key)
			require.NoError(t, err)
			v, in, out, err := c.EvaluateWithSlopes(key)
			require.NoError(t, err)
			testutil.AssertEvaluation(t, want, wantIn, wantOut, v, in, out, testutil.DefaultTolerance, "%s key=%v", kind, key)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(&Config{Kind: Kind(42)})
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(&Config{Capacity: -1})
	require.ErrorIs(t, err, ErrInvalidConfig)

	c, err := New(&Config{})
	require.NoError(t, err)
	assert.Equal(t, KindLinear, c.Kind())
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"linear", KindLinear},
		{"Step", KindStep},
		{"hermite", KindHermite},
		{" akima ", KindAkima},
		{"monotone", KindMonotoneCubic},
		{"NATURAL", KindNaturalCubic},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, got, mustParse(t, got.String()))
	}

	_, err := ParseKind("bezier")
	require.ErrorIs(t, err, ErrInvalidConfig)

	assert.Equal(t, "Kind(9)", Kind(9).String())
	assert.Equal(t, "Kind(-1)", Kind(-1).String())
}

func mustParse(t *testing.T, s string) Kind {
	t.Helper()
	k, err := ParseKind(s)
	require.NoError(t, err)
	return k
}

func BenchmarkCurve_EvaluateWithSlopes(b *testing.B) {
	c := NewLinear(nil)
	for i := range 256 {
		_ = c.AddPoint(float64(i), math.Sin(float64(i)))
	}
	for b.Loop() {
		_, _, _, _ = c.EvaluateWithSlopes(127.5)
	}
}

// brokenInterpolator reports an ordering failure for every interior key.
type brokenInterpolator struct{ engine.Interpolator }

func (brokenInterpolator) Interpolate(_, _ *points.Point, key float64) (points.Point, error) {
	return points.Point{}, engine.ErrInvalidOrdering
}

func (brokenInterpolator) Name() string { return "broken" }

func TestCurve_InterpolateErrorNamesKind(t *testing.T) {
	c := newTwoPointCurve(t)
	c.interp = brokenInterpolator{c.interp}

	_, err := c.Evaluate(1.5)
	require.ErrorIs(t, err, ErrInvalidOrdering)
	assert.Contains(t, err.Error(), "broken interpolate at 1.5")
	assert.False(t, errors.Is(err, ErrEmptyCurve))
}
