package main

// Default command-line flag values
const (
	defaultPoints   = "1:1,2:2" // Two-point ramp
	defaultKind     = "linear"
	defaultModifier = "none"
	defaultSamples  = 11 // Sweep resolution when -from/-to are given
)

// Output formatting
const (
	outputPrecision = 6 // Digits after the decimal point
)

// Plot size in inches
const (
	plotWidth  = 8
	plotHeight = 4
)
