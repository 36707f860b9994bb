// Package linsys solves A·x = b by Gauss-Jordan elimination on row.Row
// values, with no objective.
//
// Each input row is one equation: Coefficients hold A's row and Constant
// holds b. Solve assigns exactly one pivot column per row, taking the first
// usable (row, column) pair in row-major order, and eliminates that column
// from every other row with row.Reduce.
//
// When every row receives a pivot the system is consistent. Pivot columns
// take the value of their row's constant and free columns are 0; the
// solution is unique exactly when the number of rows equals the number of
// columns. A system with a redundant or contradictory row fails with
// ErrNoPivot.
//
// Complexity: O(M²·N) time, O(M·N) memory. Inputs are never mutated.
package linsys
