// SPDX-License-Identifier: MIT

package row

import (
	"fmt"
	"strings"
)

// Operation tags used when wrapping sentinels.
const (
	opReduce    = "Reduce"
	opNormalize = "NormalizeToUnit"
)

// Row is a dense coefficient vector with its right-hand side.
// Coefficients are column-indexed; all rows of one tableau share the same width.
type Row struct {
	Coefficients []float64 `json:"coefficients" yaml:"coefficients"`
	Constant     float64   `json:"constant" yaml:"constant"`
}

// rowErrorf wraps err with an operation tag and the offending column.
func rowErrorf(op string, column int, err error) error {
	return fmt.Errorf("%s(column=%d): %w", op, column, err)
}

// New returns a Row holding a copy of coefficients.
func New(coefficients []float64, constant float64) Row {
	c := make([]float64, len(coefficients))
	copy(c, coefficients)

	return Row{Coefficients: c, Constant: constant}
}

// Len returns the number of coefficients.
func (r Row) Len() int {
	return len(r.Coefficients)
}

// Clone returns a deep copy of r. The copy shares no storage with r.
// Complexity: O(N).
func (r Row) Clone() Row {
	return New(r.Coefficients, r.Constant)
}

// Reduce eliminates column from r using pivot as the pivot row.
//
// Stage 1 (Validate): equal widths, column in range, pivot entry non-zero.
// Stage 2 (Execute): multiplier m = -(r[column] / pivot[column]);
// r[k] += m*pivot[k] for every k != column, r.Constant += m*pivot.Constant.
// Stage 3 (Finalize): r[column] is written as exactly 0.
//
// pivot is read only. When pivot aliases a row that is being reduced in the
// same pass, pass a Clone instead.
// Complexity: O(N).
func (r *Row) Reduce(pivot Row, column int) error {
	if len(r.Coefficients) != len(pivot.Coefficients) {
		return rowErrorf(opReduce, column, ErrLengthMismatch)
	}
	if column < 0 || column >= len(r.Coefficients) {
		return rowErrorf(opReduce, column, ErrColumnOutOfRange)
	}
	p := pivot.Coefficients[column]
	if p == 0 {
		return rowErrorf(opReduce, column, ErrZeroPivot)
	}

	multiplier := -(r.Coefficients[column] / p)
	if multiplier == 0 {
		// nothing to eliminate; the column is already zero
		r.Coefficients[column] = 0
		return nil
	}
	for k, v := range pivot.Coefficients {
		if k == column {
			continue
		}
		r.Coefficients[k] += multiplier * v
	}
	r.Coefficients[column] = 0
	r.Constant += multiplier * pivot.Constant

	return nil
}

// NormalizeToUnit scales r (including Constant) by 1/r[column] so that
// r[column] becomes exactly 1.
// Complexity: O(N).
func (r *Row) NormalizeToUnit(column int) error {
	if column < 0 || column >= len(r.Coefficients) {
		return rowErrorf(opNormalize, column, ErrColumnOutOfRange)
	}
	p := r.Coefficients[column]
	if p == 0 {
		return rowErrorf(opNormalize, column, ErrZeroPivot)
	}
	if p == 1 {
		return nil
	}

	scale := 1 / p
	for k := range r.Coefficients {
		r.Coefficients[k] *= scale
	}
	r.Coefficients[column] = 1
	r.Constant *= scale

	return nil
}

// String implements fmt.Stringer as "[a0, a1, ...] | b".
func (r Row) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for k, v := range r.Coefficients {
		if k > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", v)
	}
	fmt.Fprintf(&sb, "] | %g", r.Constant)

	return sb.String()
}
