package engine

// Interpolation kind identifiers reported by Name.
const (
	nameLinear   = "linear"
	nameStep     = "step"
	nameHermite  = "hermite"
	nameAkima    = "akima"
	nameMonotone = "monotone"
	nameNatural  = "natural"
)

// Hermite basis coefficients for y = ((a*x + b)*x + c)*x + d:
// a = 2*y1 - 2*y2 + m1 + m2, b = -3*y1 + 3*y2 - 2*m1 - m2
const (
	hermiteCoeff2 = 2.0
	hermiteCoeff3 = 3.0
)

// Cubic splines need more than a single segment to be meaningful; with two
// points every kind degenerates to the linear blend anyway.
const minSplinePoints = 3
