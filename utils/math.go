// Package utils contains small numeric helpers shared across packages.
package utils

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Float64AlmostEqual compares two floats within epsilon.
func Float64AlmostEqual(a, b, epsilon float64) bool {
	return floats.EqualWithinAbs(a, b, epsilon)
}

// IsFinite returns false for NaN and both infinities.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
