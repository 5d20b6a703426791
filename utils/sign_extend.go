// SPDX-License-Identifier: EPL-2.0

package utils

// SignExtend16 reinterprets a 16-bit pattern as a two's-complement integer.
func SignExtend16(v uint16) int {
	n := int(v)
	if n&0x8000 != 0 {
		n -= 0x10000
	}

	return n
}
