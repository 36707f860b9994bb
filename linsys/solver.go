// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lexsimplex/row"
)

const (
	opSolve = "Solve"
	opPivot = "Pivot"
)

// Solution is the result of a successful Solve.
//
//   - Values: one entry per column; pivot columns hold their row's constant,
//     free columns hold 0.
//   - PivotColumns: PivotColumns[i] is the column pivoted in row i.
//   - Unique: true when every column is a pivot column.
//   - Reduced: the rows after elimination (reduced row echelon form up to
//     row order).
type Solution struct {
	Values       []float64
	PivotColumns []int
	Unique       bool
	Reduced      []row.Row
}

// Solve runs Gauss-Jordan elimination over a copy of rows.
//
// Stage 1 (Validate): at least one row, all rows of equal width.
// Stage 2 (Eliminate): repeat until every row owns a pivot: pick the first
// (row, column) in row-major order whose row has no pivot yet, whose column
// is unused, and whose entry is non-zero (|a| > tol); normalize the row on
// that column and reduce every other row against a snapshot of it.
// Stage 3 (Read): Values[PivotColumns[i]] = Reduced[i].Constant.
//
// Errors: ErrEmptySystem, ErrLengthMismatch, ErrNoPivot.
func Solve(rows []row.Row, opts ...Option) (*Solution, error) {
	o := gatherOptions(opts...)
	if len(rows) == 0 {
		return nil, linsysErrorf(opSolve, ErrEmptySystem)
	}
	n := rows[0].Len()
	work := make([]row.Row, len(rows))
	for i, r := range rows {
		if r.Len() != n {
			return nil, linsysErrorf(opSolve, fmt.Errorf("row %d: %w", i, ErrLengthMismatch))
		}
		work[i] = r.Clone()
	}

	pivotCol := make([]int, len(work))
	for i := range pivotCol {
		pivotCol[i] = -1
	}
	usedCol := make([]bool, n)

	for assigned := 0; assigned < len(work); assigned++ {
		i, j, ok := nextPivot(work, pivotCol, usedCol, o.tolerance)
		if !ok {
			return nil, linsysErrorf(opSolve, fmt.Errorf("%d of %d rows assigned: %w", assigned, len(work), ErrNoPivot))
		}
		if err := eliminate(work, i, j); err != nil {
			return nil, linsysErrorf(opSolve, err)
		}
		pivotCol[i] = j
		usedCol[j] = true
		o.logger.V(1).Info("pivot", "row", i, "column", j)
	}

	values := make([]float64, n)
	for i, j := range pivotCol {
		values[j] = work[i].Constant
	}

	return &Solution{
		Values:       values,
		PivotColumns: pivotCol,
		Unique:       len(work) == n,
		Reduced:      work,
	}, nil
}

// nextPivot scans rows then columns for the first usable entry.
func nextPivot(rows []row.Row, pivotCol []int, usedCol []bool, tol float64) (int, int, bool) {
	for i, r := range rows {
		if pivotCol[i] >= 0 {
			continue
		}
		for j, a := range r.Coefficients {
			if !usedCol[j] && math.Abs(a) > tol {
				return i, j, true
			}
		}
	}

	return -1, -1, false
}

// eliminate normalizes rows[pr] on column and clears that column elsewhere.
func eliminate(rows []row.Row, pr, column int) error {
	if err := rows[pr].NormalizeToUnit(column); err != nil {
		return linsysErrorf(opPivot, err)
	}
	src := rows[pr].Clone()
	for i := range rows {
		if i == pr {
			continue
		}
		if err := rows[i].Reduce(src, column); err != nil {
			return linsysErrorf(opPivot, fmt.Errorf("row %d: %w", i, err))
		}
	}

	return nil
}
