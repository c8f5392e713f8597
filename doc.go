// Package keyframes evaluates piecewise curves defined by sparse key/value
// control points, such as animation parameters or automation envelopes.
//
// A curve returns an interpolated value for any query key, along with the
// incoming and outgoing slopes at that key for tangent and derivative
// consumers. Keys outside the control-point range extrapolate flat to the
// nearest boundary point.
//
// # Quick Start
//
//	c := keyframes.NewLinear(nil)
//	_ = c.AddPoint(1.0, 1.0)
//	_ = c.AddPoint(2.0, 2.0)
//
//	v, in, out, err := c.EvaluateWithSlopes(1.5) // 1.5, 1.0, 1.0
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Modifiers
//
// A [Modifier] maps raw control values to the values consumers see. It is
// applied once when a point is added and once to each interpolated blend.
// Interpolation always blends the raw values, so a non-linear modifier such
// as [DecibelsToGain] shapes the whole segment instead of only its ends:
//
//	gain := keyframes.NewLinear(keyframes.DecibelsToGain)
//	_ = gain.AddPoint(0, -60) // silence
//	_ = gain.AddPoint(2, 0)   // unity
//
// Slopes are measured on modified values.
//
// # Interpolation Kinds
//
//   - [KindLinear]: linear blend of the bracketing control points.
//   - [KindStep]: holds the previous value until the next key.
//   - [KindHermite]: cubic Hermite segments with Catmull-Rom tangents.
//   - [KindAkima], [KindMonotoneCubic], [KindNaturalCubic]: cubic splines
//     through all control points, backed by gonum's interp package. With
//     fewer than three points they behave like [KindLinear].
//
// Every kind shares the same boundary rules: flat extrapolation, exact
// control-point hits return the stored point, and slopes are secants.
//
// # Slopes
//
// [Curve.EvaluateWithSlopes] reports (value, in, out):
//
//   - outside the range both slopes are 0;
//   - at a control point, in and out are the slopes to the stored
//     predecessor and successor, 0 where there is none;
//   - between control points they are the slopes from the bracketing points
//     to the interpolated point.
//
// # Sampling
//
// [Curve.Sample], [Curve.Average] and [Curve.Render] evaluate on evenly
// spaced grids; reductions and gain use SIMD kernels from
// github.com/tphakala/simd when available.
//
// # Concurrency
//
// Curves carry no locks. Serialize [Curve.AddPoint] against all other calls;
// evaluations with no concurrent insert may run in parallel.
package keyframes
