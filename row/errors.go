// SPDX-License-Identifier: MIT

package row

import "errors"

// Sentinel errors for row arithmetic. Messages are prefixed with "row: ".
// Callers match them with errors.Is; facades wrap them with an operation tag.
var (
	// ErrLengthMismatch is returned when two rows combined by Reduce do not
	// have the same number of coefficients.
	ErrLengthMismatch = errors.New("row: rows do not have the same length")

	// ErrColumnOutOfRange indicates a column index outside [0, Len()).
	ErrColumnOutOfRange = errors.New("row: column index out of range")

	// ErrZeroPivot is returned when the pivot entry is exactly zero and the
	// elimination (or normalization) is undefined.
	ErrZeroPivot = errors.New("row: zero pivot")
)
