// SPDX-License-Identifier: MIT

package simplex

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lexsimplex/row"
)

// New admits p and returns a LinearProgram ready to run.
//
// Stage 1 (Validate): Validate(p); the first failing check is returned.
// Stage 2 (Copy): tableau, costs and solution are deep-copied, so the
// returned program never aliases the caller's record.
// Stage 3 (Costs): the relative-cost row is rebuilt with BuildRelativeCosts;
// any RelativeCosts on input is discarded.
//
// Complexity: O(M·N).
func New(p Problem, opts ...Option) (*LinearProgram, error) {
	o := gatherOptions(opts...)
	if err := Validate(p); err != nil {
		o.logger.V(debugLevel).Info("linear program rejected", "kind", KindOf(err), "reason", err.Error())
		return nil, simplexErrorf(opNew, err)
	}

	tableau := make([]row.Row, len(p.Tableau))
	for i, r := range p.Tableau {
		tableau[i] = r.Clone()
	}
	costs := make([]float64, len(p.Costs))
	copy(costs, p.Costs)
	solution := make([]float64, len(p.Solution))
	copy(solution, p.Solution)

	lp := &LinearProgram{
		tableau:       tableau,
		costs:         costs,
		relativeCosts: BuildRelativeCosts(costs, len(tableau)),
		solution:      solution,
		state:         Running,
		opts:          o,
	}
	o.logger.V(debugLevel).Info("linear program admitted", "rows", lp.Rows(), "cols", lp.Cols())

	return lp, nil
}

// Rows returns M.
func (lp *LinearProgram) Rows() int { return len(lp.tableau) }

// Cols returns N.
func (lp *LinearProgram) Cols() int { return len(lp.costs) }

// State returns the current engine state (Running until terminal).
func (lp *LinearProgram) State() State { return lp.state }

// Err returns the error that moved the program to Failed, or nil.
func (lp *LinearProgram) Err() error { return lp.err }

// Iterations returns the number of pivots performed so far.
func (lp *LinearProgram) Iterations() int { return lp.iterations }

// Objective returns the current relative-cost constant.
func (lp *LinearProgram) Objective() float64 { return lp.relativeCosts.Constant }

// Tableau returns a deep copy of the current constraint rows.
func (lp *LinearProgram) Tableau() []row.Row {
	out := make([]row.Row, len(lp.tableau))
	for i, r := range lp.tableau {
		out[i] = r.Clone()
	}

	return out
}

// RelativeCosts returns a copy of the current relative-cost row.
func (lp *LinearProgram) RelativeCosts() row.Row { return lp.relativeCosts.Clone() }

// Solution returns a copy of the solution vector. Before Finished it holds
// the admitted starting solution.
func (lp *LinearProgram) Solution() []float64 {
	out := make([]float64, len(lp.solution))
	copy(out, lp.solution)

	return out
}

// fail records err and moves the program to Failed.
func (lp *LinearProgram) fail(err error) (State, error) {
	lp.state = Failed
	lp.err = err
	lp.opts.logger.V(debugLevel).Info("simplex failed", "iteration", lp.iterations, "kind", KindOf(err), "reason", err.Error())

	return Failed, err
}

// Step performs one transition of the engine.
//
//  1. No negative relative cost → extract the solution, Finished.
//  2. No candidate column admits a pivot row → Unbound.
//  3. Normalize the pivot row, snapshot it, eliminate the pivot column from
//     every other row and from the relative-cost row → IterationComplete.
//
// Any failure moves the program to Failed and returns the wrapped error.
// Terminal states are sticky: further calls return the same state and error.
// Complexity: O(M·N) per call.
func (lp *LinearProgram) Step() (State, error) {
	if lp.state.Terminal() {
		return lp.state, lp.err
	}
	tol := lp.opts.tolerance

	if len(NegativeColumns(lp.relativeCosts, tol)) == 0 {
		if err := lp.ExtractSolution(); err != nil {
			return lp.fail(simplexErrorf(opStep, err))
		}
		lp.state = Finished
		lp.opts.logger.V(debugLevel).Info("simplex finished", "iterations", lp.iterations, "objective", lp.Objective())

		return Finished, nil
	}

	p, ok, err := SelectPivot(lp.tableau, lp.relativeCosts, tol)
	if err != nil {
		return lp.fail(simplexErrorf(opStep, err))
	}
	if !ok {
		lp.state = Unbound
		lp.opts.logger.V(debugLevel).Info("simplex unbound", "iterations", lp.iterations)

		return Unbound, nil
	}

	if err = lp.pivot(p); err != nil {
		return lp.fail(simplexErrorf(opStep, err))
	}
	lp.iterations++
	lp.opts.logger.V(debugLevel).Info("pivot",
		"iteration", lp.iterations,
		"row", p.Row,
		"column", p.Column,
		"objective", lp.Objective())

	return IterationComplete, nil
}

// pivot normalizes row p.Row on p.Column and eliminates that column from
// every other tableau row and from the relative-cost row. The elimination
// source is a snapshot of the normalized pivot row.
func (lp *LinearProgram) pivot(p Pivot) error {
	if err := lp.tableau[p.Row].NormalizeToUnit(p.Column); err != nil {
		return simplexErrorf(opPivot, err)
	}
	src := lp.tableau[p.Row].Clone()

	for i := range lp.tableau {
		if i == p.Row {
			continue
		}
		if err := lp.tableau[i].Reduce(src, p.Column); err != nil {
			return simplexErrorf(opPivot, fmt.Errorf("row %d: %w", i, err))
		}
	}
	if err := lp.relativeCosts.Reduce(src, p.Column); err != nil {
		return simplexErrorf(opPivot, fmt.Errorf("relative costs: %w", err))
	}

	return nil
}

// iterationLimit resolves the configured pivot budget.
func (lp *LinearProgram) iterationLimit() int {
	if lp.opts.maxIterations > 0 {
		return lp.opts.maxIterations
	}

	return BasisBound(lp.Cols(), lp.Rows())
}

// pivotPending reports whether the next Step would pivot rather than stop.
func (lp *LinearProgram) pivotPending() bool {
	_, ok, _ := SelectPivot(lp.tableau, lp.relativeCosts, lp.opts.tolerance)
	return ok
}

// Run drives Step until a terminal state.
//
// ctx is checked before every pivot; on cancellation Run returns the context
// error and leaves the program in its current (resumable) state. Once the
// pivot budget is spent and another pivot is still required, the program
// fails with ErrIterationLimit.
//
// Returns a Result for Finished and Unbound, and a nil Result with the error
// for Failed.
func (lp *LinearProgram) Run(ctx context.Context) (*Result, error) {
	limit := lp.iterationLimit()

	for {
		if !lp.state.Terminal() {
			if err := ctx.Err(); err != nil {
				return nil, simplexErrorf(opRun, err)
			}
		}
		if !lp.state.Terminal() && lp.iterations >= limit && lp.pivotPending() {
			_, err := lp.fail(simplexErrorf(opRun, fmt.Errorf("%d pivots: %w", lp.iterations, ErrIterationLimit)))
			return nil, err
		}

		state, err := lp.Step()
		switch state {
		case IterationComplete:
			continue
		case Finished:
			return &Result{
				State:      Finished,
				Solution:   lp.Solution(),
				Objective:  lp.Objective(),
				Iterations: lp.iterations,
			}, nil
		case Unbound:
			return &Result{
				State:      Unbound,
				Objective:  lp.Objective(),
				Iterations: lp.iterations,
			}, nil
		default:
			return nil, err
		}
	}
}

// Solve admits p and runs it to completion.
func Solve(ctx context.Context, p Problem, opts ...Option) (*Result, error) {
	lp, err := New(p, opts...)
	if err != nil {
		return nil, err
	}

	return lp.Run(ctx)
}
