// SPDX-License-Identifier: EPL-2.0

package q15

import (
	"fmt"

	"github.com/ik5/q15/utils"
)

// Code is the 16-bit storage pattern of a Q1.15 value.
type Code uint16

// ToCode masks a signed code to its 16-bit pattern.
func ToCode(q int) Code {
	return Code(q & Mask)
}

// Encode is FromFloat followed by ToCode.
func Encode(x float64) (Code, error) {
	q, err := FromFloat(x)
	if err != nil {
		return 0, err
	}

	return ToCode(q), nil
}

// Int returns the signed code the pattern holds.
func (c Code) Int() int {
	return utils.SignExtend16(uint16(c))
}

// Float64 returns the real value the pattern represents.
func (c Code) Float64() float64 {
	return float64(c.Int()) / Scale
}

func (c Code) String() string {
	return fmt.Sprintf("0x%04X", uint16(c))
}
