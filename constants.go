package keyframes

// Control-point storage
const (
	defaultCapacity = 16      // Preallocated control points when Config.Capacity is 0
	maxCapacityHint = 1 << 24 // Upper bound on Config.Capacity
)

// Sampling
const (
	minSampleCount = 2 // A sampling grid needs both endpoints
	trapezoidEnd   = 0.5
)

// Modifier constants
const (
	decibelsPerDecade = 20.0 // Amplitude decibels: gain = 10^(dB/20)
)
