// SPDX-License-Identifier: EPL-2.0

package q15

import (
	"errors"
	"math"
	"testing"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   float64
		want    Code
		decoded float64
	}{
		{name: "zero", input: 0.0, want: 0x0000, decoded: 0.0},
		{name: "tenth", input: 0.1, want: 0x0CCD, decoded: 0.100006103515625},
		{name: "half", input: 0.5, want: 0x4000, decoded: 0.5},
		{name: "nine tenths", input: 0.9, want: 0x7333, decoded: 0.899993896484375},
		{name: "negative quarter", input: -0.25, want: 0xE000, decoded: -0.25},
		{name: "clamp high", input: 1.0, want: 0x7FFF, decoded: 32767.0 / 32768.0},
		{name: "clamp low", input: -1.5, want: 0x8000, decoded: -1.0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Encode(tt.input)
			if err != nil {
				t.Fatalf("Encode(%v) error = %v", tt.input, err)
			}

			if got != tt.want {
				t.Errorf("Encode(%v) = %v, want %v", tt.input, got, tt.want)
			}

			if d := got.Float64(); d != tt.decoded {
				t.Errorf("Encode(%v).Float64() = %v, want %v", tt.input, d, tt.decoded)
			}
		})
	}
}

func TestEncodeNaN(t *testing.T) {
	t.Parallel()

	if _, err := Encode(math.NaN()); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Encode(NaN) error = %v, want %v", err, ErrInvalidInput)
	}
}

func TestToCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input int
		want  Code
	}{
		{input: 0, want: 0x0000},
		{input: 1, want: 0x0001},
		{input: -1, want: 0xFFFF},
		{input: MaxCode, want: 0x7FFF},
		{input: MinCode, want: 0x8000},
		{input: -8192, want: 0xE000},
	}

	for _, tt := range tests {
		tt := tt
		if got := ToCode(tt.input); got != tt.want {
			t.Errorf("ToCode(%d) = %v, want %v", tt.input, got, tt.want)
		}

		if got := ToCode(tt.input).Int(); got != tt.input {
			t.Errorf("ToCode(%d).Int() = %d", tt.input, got)
		}
	}
}

func TestCodeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input Code
		want  string
	}{
		{input: 0x0000, want: "0x0000"},
		{input: 0x0CCD, want: "0x0CCD"},
		{input: 0x7333, want: "0x7333"},
		{input: 0xE000, want: "0xE000"},
		{input: 0xFFFF, want: "0xFFFF"},
	}

	for _, tt := range tests {
		tt := tt
		if got := tt.input.String(); got != tt.want {
			t.Errorf("Code(%d).String() = %q, want %q", uint16(tt.input), got, tt.want)
		}
	}
}

// TestCodeFloat64MatchesToFloat checks the typed decoder against ToFloat
// for every pattern
func TestCodeFloat64MatchesToFloat(t *testing.T) {
	t.Parallel()

	for v := 0; v < Mask+1; v++ {
		want, err := ToFloat(v)
		if err != nil {
			t.Fatalf("ToFloat(%#04x) error = %v", v, err)
		}

		if got := Code(v).Float64(); got != want {
			t.Fatalf("Code(%#04x).Float64() = %v, want %v", v, got, want)
		}
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input float64
		want  float64
	}{
		{input: 0.25, want: 0.25},
		{input: 1.0, want: MaxInput},
		{input: 0.99997, want: MaxInput},
		{input: -1.0, want: -1.0},
		{input: -1.0001, want: -1.0},
	}

	for _, tt := range tests {
		tt := tt
		if got := Clamp(tt.input); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
