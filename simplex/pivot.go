// SPDX-License-Identifier: MIT
// Package simplex: pivot selection with the lexicographic anti-cycling rule.
//
// Determinism:
//   - Candidate columns are tried in ascending index order.
//   - Rows are ranked by the vector (b_i, a_i0, a_i1, ...) / a_ic compared
//     position by position; row indices never break ties. Because the first
//     M columns start as the identity, two rows of a well-posed tableau always
//     differ somewhere in that block, which rules out cycling among
//     degenerate bases.

package simplex

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lexsimplex/row"
)

// NegativeColumns returns, in ascending order, every column whose relative
// cost is strictly below -tol.
// Complexity: O(N).
func NegativeColumns(relativeCosts row.Row, tol float64) []int {
	var cols []int
	for j, c := range relativeCosts.Coefficients {
		if c < -tol {
			cols = append(cols, j)
		}
	}

	return cols
}

// LexicographicallySmallestRow returns the pivot row for column.
//
// Stage 1 (Filter): only rows whose entry in column is > tol are eligible.
// Stage 2 (Rank): keep a running winner; a challenger replaces it when the
// winner compares strictly larger (see compareRows).
//
// Errors:
//   - ErrColumnOutOfRange when column is outside the tableau width.
//   - ErrNoEligibleRow when no row is eligible (the column is unbounded).
//   - ErrLinearlyDependentRows when two compared rows never differ.
//
// Complexity: O(M·N) worst case, O(M) when ratios differ.
func LexicographicallySmallestRow(tableau []row.Row, column int, tol float64) (int, error) {
	best := -1
	for i, r := range tableau {
		if column < 0 || column >= r.Len() {
			return -1, simplexErrorf(opLexMin, fmt.Errorf("row %d: %w", i, ErrColumnOutOfRange))
		}
		if r.Coefficients[column] <= tol {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		c, err := compareRows(tableau[best], r, column)
		if err != nil {
			return -1, simplexErrorf(opLexMin, fmt.Errorf("rows %d and %d: %w", best, i, err))
		}
		if c > 0 {
			best = i
		}
	}
	if best < 0 {
		return -1, simplexErrorf(opLexMin, fmt.Errorf("column %d: %w", column, ErrNoEligibleRow))
	}

	return best, nil
}

// compareRows orders two eligible rows for the given pivot column:
// -1 when a precedes b, +1 when b precedes a.
//
// The first key is the minimum-ratio test b/a_c. On an exact tie the keys
// a_k/a_c for k = 0, 1, ... are compared until one differs. Position column
// is skipped since both ratios are 1 there. Exhausting every position means
// the rows are proportional and yields ErrLinearlyDependentRows.
func compareRows(a, b row.Row, column int) (int, error) {
	pa, pb := a.Coefficients[column], b.Coefficients[column]
	if c := compareFloat(a.Constant/pa, b.Constant/pb); c != 0 {
		return c, nil
	}
	for k := range a.Coefficients {
		if k == column {
			continue
		}
		if c := compareFloat(a.Coefficients[k]/pa, b.Coefficients[k]/pb); c != 0 {
			return c, nil
		}
	}

	return 0, ErrLinearlyDependentRows
}

// compareFloat returns -1, 0 or +1. Unordered (NaN) pairs compare equal.
func compareFloat(x, y float64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// SelectPivot scans the negative columns in ascending order and returns the
// first (row, column) pair that admits a pivot row. ok is false when every
// candidate column is unbounded (or there is no candidate at all).
// Errors other than ErrNoEligibleRow abort the scan.
func SelectPivot(tableau []row.Row, relativeCosts row.Row, tol float64) (p Pivot, ok bool, err error) {
	for _, col := range NegativeColumns(relativeCosts, tol) {
		r, err := LexicographicallySmallestRow(tableau, col, tol)
		if err == nil {
			return Pivot{Row: r, Column: col}, true, nil
		}
		if !errors.Is(err, ErrNoEligibleRow) {
			return Pivot{}, false, err
		}
	}

	return Pivot{}, false, nil
}
