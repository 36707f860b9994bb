// SPDX-License-Identifier: MIT

package lpio

import "errors"

var (
	// ErrUnsupportedFormat is returned for a format or file extension lpio does not know.
	ErrUnsupportedFormat = errors.New("lpio: unsupported format")

	// ErrMalformedInput wraps every decoding failure of an input record.
	ErrMalformedInput = errors.New("lpio: malformed input")
)
