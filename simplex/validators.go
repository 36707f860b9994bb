// SPDX-License-Identifier: MIT
// Package: simplex
//
// Purpose:
//   - Admission predicates establishing the preconditions of the engine.
//   - Each check is pure, allocates nothing and returns a wrapped sentinel.
//
// Note:
//   - Validate runs the checks in a fixed order and reports only the first
//     failure; the order is part of the observable contract.
//   - Each single check assumes the checks before it passed (e.g.
//     ValidateIdentityBasis assumes every row has width ≥ M).

package simplex

import (
	"fmt"
)

// validatorErrorf tags err with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Validate runs every admission check in order and returns the first failure.
// Complexity: O(M·N).
func Validate(p Problem) error {
	checks := [...]func(Problem) error{
		ValidateRowLengths,
		ValidateShape,
		ValidateIdentityBasis,
		ValidateFeasible,
		ValidateBasic,
		ValidateBasisAlignment,
	}
	for _, check := range checks {
		if err := check(p); err != nil {
			return err
		}
	}

	return nil
}

// ValidateRowLengths ensures N = len(Costs) is positive and every tableau row
// and the solution have width N. A non-empty RelativeCosts row must have width N as well;
// an empty one is accepted because admission rebuilds it.
//
// Errors: ErrLengthMismatch.
func ValidateRowLengths(p Problem) error {
	n := p.Cols()
	if n == 0 {
		return validatorErrorf("ValidateRowLengths: costs", ErrLengthMismatch)
	}
	for i, r := range p.Tableau {
		if r.Len() != n {
			return validatorErrorf(fmt.Sprintf("ValidateRowLengths: row %d", i), ErrLengthMismatch)
		}
	}
	if rc := p.RelativeCosts.Len(); rc != 0 && rc != n {
		return validatorErrorf("ValidateRowLengths: relative costs", ErrLengthMismatch)
	}
	if len(p.Solution) != n {
		return validatorErrorf("ValidateRowLengths: solution", ErrLengthMismatch)
	}

	return nil
}

// ValidateShape ensures M ≤ N.
//
// Errors: ErrTooManyColumns.
func ValidateShape(p Problem) error {
	if p.Rows() > p.Cols() {
		return validatorErrorf("ValidateShape", ErrTooManyColumns)
	}

	return nil
}

// ValidateIdentityBasis ensures the first M columns form the M×M identity:
// column i is the unit vector with 1 at row i. Comparison is exact.
//
// Errors: ErrMissingIdentityBasis.
func ValidateIdentityBasis(p Problem) error {
	m := p.Rows()
	var want float64
	for i, r := range p.Tableau {
		for j := 0; j < m; j++ {
			want = 0
			if i == j {
				want = 1
			}
			if r.Coefficients[j] != want {
				return validatorErrorf(fmt.Sprintf("ValidateIdentityBasis: (%d,%d)", i, j), ErrMissingIdentityBasis)
			}
		}
	}

	return nil
}

// ValidateFeasible ensures every solution entry is ≥ 0. NaN is rejected.
//
// Errors: ErrInfeasible.
func ValidateFeasible(p Problem) error {
	for k, x := range p.Solution {
		if !(x >= 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFeasible: entry %d", k), ErrInfeasible)
		}
	}

	return nil
}

// ValidateBasic ensures only the first M solution entries may be non-zero.
// Basic entries themselves may be 0 (degenerate start).
//
// Errors: ErrNotBasic.
func ValidateBasic(p Problem) error {
	for k := p.Rows(); k < len(p.Solution); k++ {
		if p.Solution[k] != 0 {
			return validatorErrorf(fmt.Sprintf("ValidateBasic: entry %d", k), ErrNotBasic)
		}
	}

	return nil
}

// ValidateBasisAlignment ensures Solution[i] == Tableau[i].Constant for i < M.
//
// Errors: ErrBasisMismatch.
func ValidateBasisAlignment(p Problem) error {
	for i, r := range p.Tableau {
		if p.Solution[i] != r.Constant {
			return validatorErrorf(fmt.Sprintf("ValidateBasisAlignment: row %d", i), ErrBasisMismatch)
		}
	}

	return nil
}
