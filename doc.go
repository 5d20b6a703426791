// SPDX-License-Identifier: EPL-2.0

// Package q15 converts between float64 values and the signed Q1.15
// fixed-point format.
//
// A Q1.15 value occupies 16 bits: one sign bit and 15 fractional bits. The
// integer code c represents the real value c / 32768, so the format covers
// [-1.0, 32767/32768] in steps of 1/32768. This is the same layout as a
// 16-bit PCM audio sample.
//
// # Encoding
//
// FromFloat clamps its input to [-1.0, 0.999969], scales it by 32768 and
// rounds to the nearest integer with ties to even:
//
//	q, err := q15.FromFloat(0.1) // q == 3277
//	code := q15.ToCode(q)        // code == 0x0CCD
//
// The returned code is signed. Mask it with q15.Mask (or use ToCode) before
// storing or transmitting the 16-bit pattern. Encode does both steps:
//
//	code, _ := q15.Encode(-0.25) // 0xE000
//
// NaN and ±Inf are rejected with ErrInvalidInput.
//
// # Decoding
//
// ToFloat takes a 16-bit pattern held in an int, sign extends it and divides
// by 32768:
//
//	v, err := q15.ToFloat(0xE000) // v == -0.25
//
// Values outside 0..65535 are rejected with ErrOutOfRange. A typed Code is
// always in range, so Code.Float64 never fails.
//
// # Precision
//
// For every input in [-1.0, 0.999969] the decoded value differs from the
// input by at most half a step (1/65536). Values of the form k/32768 round
// trip exactly.
//
// All functions are pure and safe for concurrent use.
package q15
