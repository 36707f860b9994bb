// Package row provides the dense row primitive shared by the simplex engine
// and the Gauss-Jordan solver.
//
// What:
//
//   - Row holds N column-indexed coefficients plus a right-hand-side Constant.
//   - Reduce eliminates one column of a row against a pivot row.
//   - NormalizeToUnit scales a row so that a chosen column becomes exactly 1.
//
// Why:
//
//	Both tableau pivoting and linear-system reduction are built from the same
//	two elementary row operations. Keeping them in one place gives a single
//	numeric contract: eliminated entries are written as exact 0 and
//	normalized entries as exact 1, so later structural checks (basic columns,
//	identity blocks) can compare without tolerances.
//
// Ownership:
//
//	A Row owns its coefficient slice. Use Clone to snapshot a pivot row before
//	eliminating other rows against it.
//
// Complexity:
//
//   - Reduce, NormalizeToUnit, Clone: O(N) time.
//
// Errors:
//
//   - ErrLengthMismatch: rows of different width combined.
//   - ErrColumnOutOfRange: column index ≥ Len().
//   - ErrZeroPivot: pivot entry is exactly 0.
package row
