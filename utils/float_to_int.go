// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// ClampFloat64 limits x to the closed range [lo, hi].
// NaN is not ordered against either bound and is returned unchanged.
func ClampFloat64(x, lo, hi float64) float64 {
	if x > hi {
		return hi
	} else if x < lo {
		return lo
	}

	return x
}

// RoundHalfEven rounds x to the nearest integer, ties to even.
func RoundHalfEven(x float64) int {
	return int(math.RoundToEven(x))
}
