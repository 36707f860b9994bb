// Package simplex solves standard-form linear programs with the primal
// tableau simplex method and a lexicographic pivot-row rule.
//
// 🚀 What is it?
//
//	Given a tableau already in canonical form (the first M columns are the
//	identity, so rows 0..M-1 own the initial basis), the engine maximizes
//	costs·x subject to the tableau rows and x ≥ 0. It reports one of three
//	outcomes: Finished (optimal), Unbound, or Failed with a typed error.
//
// ✨ Key features:
//   - admission checks run in a fixed order; the first failure is reported
//   - lexicographic row selection (no index tie-breaking), which keeps the
//     method from cycling among degenerate bases
//   - an exposed Step function, so callers can impose their own budgets
//   - Run honours context cancellation and an iteration cap of C(N, M)
//
// ⚙️ Usage:
//
//	p := simplex.Problem{
//		Tableau: []row.Row{
//			row.New([]float64{1, 0, 1, 1}, 1),
//			row.New([]float64{0, 1, 2, 1}, 1),
//		},
//		Costs:    []float64{0, 0, 1, 2},
//		Solution: []float64{1, 1, 0, 0},
//	}
//	res, err := simplex.Solve(ctx, p)
//	// res.State == simplex.Finished, res.Objective == 2
//
// Step-wise driving:
//
//	lp, err := simplex.New(p, simplex.WithLogger(logger))
//	for {
//		st, err := lp.Step()
//		if st != simplex.IterationComplete {
//			break
//		}
//	}
//
// Errors:
//   - admission: ErrLengthMismatch, ErrTooManyColumns, ErrMissingIdentityBasis,
//     ErrInfeasible, ErrNotBasic, ErrBasisMismatch
//   - engine: ErrZeroPivot, ErrColumnOutOfRange, ErrLinearlyDependentRows,
//     ErrAmbiguousBasicColumn, ErrIterationLimit
//
// KindOf maps any of them to a stable code string.
//
// Concurrency:
//
//	A LinearProgram is owned by one goroutine. New copies its input, so
//	parallel solves only need one program each.
//
// Complexity: O(M·N) per pivot, at most C(N, M) pivots.
package simplex
