// SPDX-License-Identifier: EPL-2.0

package q15

import "errors"

var (
	ErrInvalidInput = errors.New("input must be a finite number")
	ErrOutOfRange   = errors.New("code must be within 0..65535")
)
