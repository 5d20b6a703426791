// SPDX-License-Identifier: EPL-2.0

package q15

import (
	"fmt"
	"math"

	"github.com/ik5/q15/utils"
)

const (
	// Scale maps a code c to the real value c / Scale.
	Scale = 32768.0
	// Step is the distance between two adjacent codes.
	Step = 1.0 / Scale

	// MaxInput is the largest value encoded without clamping (≈ 32767/32768).
	MaxInput = 0.999969
	// MinInput is the smallest value encoded without clamping.
	MinInput = -1.0

	MaxCode = 32767
	MinCode = -32768

	// Mask selects the 16-bit storage pattern of a signed code.
	Mask = 0xFFFF
)

// Clamp limits x to [MinInput, MaxInput].
func Clamp(x float64) float64 {
	return utils.ClampFloat64(x, MinInput, MaxInput)
}

// FromFloat encodes x as a signed Q1.15 code in [MinCode, MaxCode].
//
// Values above MaxInput or below MinInput are clamped first, then the
// product x * Scale is rounded to the nearest integer with ties to even.
// NaN and ±Inf return ErrInvalidInput.
//
// The result is signed; mask it with Mask (or use ToCode) before storing
// it as 16 bits.
func FromFloat(x float64) (int, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, x)
	}

	return utils.RoundHalfEven(Clamp(x) * Scale), nil
}

// MustFromFloat is like FromFloat but panics on non-finite input.
func MustFromFloat(x float64) int {
	q, err := FromFloat(x)
	if err != nil {
		panic(err)
	}

	return q
}

// ToFloat decodes a 16-bit pattern v (0..65535) to its real value.
// Patterns with the sign bit set are negative. Any v outside 0..65535
// returns ErrOutOfRange.
func ToFloat(v int) (float64, error) {
	if v < 0 || v > Mask {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, v)
	}

	return Code(v).Float64(), nil
}
