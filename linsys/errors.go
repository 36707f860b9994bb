// SPDX-License-Identifier: MIT

package linsys

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lexsimplex/row"
)

var (
	// ErrEmptySystem is returned when Solve receives no rows.
	ErrEmptySystem = errors.New("linsys: system has no rows")

	// ErrNoPivot is returned when some rows remain unassigned and no unused
	// column carries a non-zero entry in any of them.
	ErrNoPivot = errors.New("linsys: no pivot available for the remaining rows")

	// ErrLengthMismatch aliases row.ErrLengthMismatch.
	ErrLengthMismatch = row.ErrLengthMismatch
)

// linsysErrorf wraps err with an operation tag.
func linsysErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
