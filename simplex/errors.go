// SPDX-License-Identifier: MIT
// Package simplex: sentinel error set.
//
// All admission checks and engine failures return (possibly wrapped) sentinels
// from this file; tests match them with errors.Is. The row-arithmetic
// sentinels are re-exported so callers need a single import.
//
// ADMISSION ORDER (documented, enforced in tests):
// row lengths -> shape -> identity basis -> feasibility -> basic -> basis/RHS.

package simplex

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lexsimplex/row"
)

var (
	// ErrLengthMismatch: tableau rows, costs, relative costs or solution disagree in width.
	ErrLengthMismatch = row.ErrLengthMismatch

	// ErrColumnOutOfRange: a column index passed to a row operation is ≥ the row width.
	ErrColumnOutOfRange = row.ErrColumnOutOfRange

	// ErrZeroPivot: elimination attempted against a pivot entry of exactly 0.
	ErrZeroPivot = row.ErrZeroPivot
)

var (
	// ErrTooManyColumns is returned when the tableau has more rows than columns.
	// The name follows the "rows ≤ columns" constraint it guards.
	ErrTooManyColumns = errors.New("simplex: tableau has more rows than columns")

	// ErrMissingIdentityBasis is returned when the first M columns are not the identity.
	ErrMissingIdentityBasis = errors.New("simplex: tableau does not start with an identity")

	// ErrInfeasible is returned when the supplied solution has a negative entry.
	ErrInfeasible = errors.New("simplex: solution is not feasible")

	// ErrNotBasic is returned when a solution entry past the first M is non-zero.
	ErrNotBasic = errors.New("simplex: solution is not basic")

	// ErrBasisMismatch is returned when solution[i] differs from tableau[i].Constant.
	ErrBasisMismatch = errors.New("simplex: solution and right-hand side do not align")

	// ErrLinearlyDependentRows is returned when the lexicographic comparison of
	// two rows finds no differing position.
	ErrLinearlyDependentRows = errors.New("simplex: rows are linearly dependent")

	// ErrAmbiguousBasicColumn is returned when several rows hold the unit entry of
	// a zero-relative-cost column during extraction.
	ErrAmbiguousBasicColumn = errors.New("simplex: basic column claimed by more than one row")

	// ErrNoEligibleRow reports that a column has no row with a strictly positive entry.
	// The engine turns it into the Unbound state once every candidate column fails.
	ErrNoEligibleRow = errors.New("simplex: no eligible pivot row")

	// ErrIterationLimit is returned by Run when the pivot budget is exhausted.
	ErrIterationLimit = errors.New("simplex: iteration limit reached")
)

// Operation tags for wrapping.
const (
	opNew     = "New"
	opStep    = "Step"
	opRun     = "Run"
	opPivot   = "Pivot"
	opExtract = "ExtractSolution"
	opLexMin  = "LexicographicallySmallestRow"
)

// simplexErrorf wraps err with an operation tag. err must be non-nil.
func simplexErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Stable error kind codes reported by KindOf.
const (
	KindLengthMismatch        = "LengthMismatch"
	KindColumnOutOfRange      = "ColumnOutOfRange"
	KindZeroPivot             = "ZeroPivot"
	KindTooManyColumns        = "TooManyColumns"
	KindMissingIdentityBasis  = "MissingIdentityBasis"
	KindInfeasible            = "Infeasible"
	KindNotBasic              = "NotBasic"
	KindBasisMismatch         = "BasisMismatch"
	KindLinearlyDependentRows = "LinearlyDependentRows"
	KindAmbiguousBasicColumn  = "AmbiguousBasicColumn"
	KindIterationLimit        = "IterationLimit"
	KindCanceled              = "Canceled"
	KindUnknown               = "Unknown"
)

var kinds = []struct {
	err  error
	kind string
}{
	{ErrLengthMismatch, KindLengthMismatch},
	{ErrColumnOutOfRange, KindColumnOutOfRange},
	{ErrZeroPivot, KindZeroPivot},
	{ErrTooManyColumns, KindTooManyColumns},
	{ErrMissingIdentityBasis, KindMissingIdentityBasis},
	{ErrInfeasible, KindInfeasible},
	{ErrNotBasic, KindNotBasic},
	{ErrBasisMismatch, KindBasisMismatch},
	{ErrLinearlyDependentRows, KindLinearlyDependentRows},
	{ErrAmbiguousBasicColumn, KindAmbiguousBasicColumn},
	{ErrIterationLimit, KindIterationLimit},
	{context.Canceled, KindCanceled},
	{context.DeadlineExceeded, KindCanceled},
}

// KindOf maps err to its stable kind code. A nil error yields "".
func KindOf(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}

	return KindUnknown
}
