// Package mathx adds physical constants and ordered comparisons.
package mathx

import "cmp"

const (
	// StandardGravity is standard acceleration due to gravity, in m/s².
	StandardGravity = 9.80665
	// SpeedOfLight is the speed of light in vacuum, in m/s.
	SpeedOfLight = 2.99792458e8
	// StandardAtmosphere is standard atmospheric pressure, in Pa.
	StandardAtmosphere = 101325.0
)

// Smaller returns the lesser of a and b, or b when they are equal.
func Smaller[T cmp.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Larger returns the greater of a and b, or b when they are equal.
func Larger[T cmp.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
