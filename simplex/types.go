// Package simplex: domain types (input record, admitted program, engine
// states, results).

package simplex

import (
	"github.com/katalvlaran/lexsimplex/row"
)

// Problem is the external input record. Field names are the public wire
// contract shared by the JSON and YAML codecs.
//
//   - Tableau: M constraint rows, row i owns basic slot i.
//   - Costs: N raw objective coefficients.
//   - RelativeCosts: ignored on input, rebuilt at admission (may be omitted).
//   - Solution: the caller's initial basic feasible solution, used only by
//     the admission checks.
type Problem struct {
	Tableau       []row.Row `json:"tableau" yaml:"tableau"`
	Costs         []float64 `json:"costs" yaml:"costs"`
	RelativeCosts row.Row   `json:"relative_costs" yaml:"relative_costs"`
	Solution      []float64 `json:"solution" yaml:"solution"`
}

// Rows returns M, the number of constraint rows.
func (p Problem) Rows() int { return len(p.Tableau) }

// Cols returns N, the declared number of columns (len(Costs)).
func (p Problem) Cols() int { return len(p.Costs) }

// State is the engine state.
type State int

const (
	// Running: admitted, not yet terminal.
	Running State = iota
	// IterationComplete: one pivot was performed; returned by Step only.
	IterationComplete
	// Finished: no negative relative cost remains; solution extracted.
	Finished
	// Unbound: every improving column lacks a pivot row.
	Unbound
	// Failed: an arithmetic or structural error stopped the engine.
	Failed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case IterationComplete:
		return "IterationComplete"
	case Finished:
		return "Finished"
	case Unbound:
		return "Unbound"
	case Failed:
		return "Failed"
	default:
		return "State(?)"
	}
}

// Terminal reports whether no further Step can change the state.
func (s State) Terminal() bool {
	return s == Finished || s == Unbound || s == Failed
}

// Pivot identifies the (row, column) pair of one elimination step.
type Pivot struct {
	Row    int
	Column int
}

// LinearProgram is an admitted program owned by a single solving goroutine.
// It is built only by New; every invariant of the admission checks holds on
// return. The engine mutates it in place.
type LinearProgram struct {
	tableau       []row.Row
	costs         []float64
	relativeCosts row.Row
	solution      []float64

	state      State
	err        error
	iterations int
	opts       Options
}

// Result is the outcome of a solve that did not fail.
//
//   - State is Finished or Unbound.
//   - Solution is the dense primal solution (nil when Unbound).
//   - Objective is the final relative-cost constant (the optimal value when Finished).
//   - Iterations counts performed pivots.
type Result struct {
	State      State
	Solution   []float64
	Objective  float64
	Iterations int
}

// Row renders the success shape {coefficients: solution, constant: objective}.
func (r *Result) Row() row.Row {
	return row.New(r.Solution, r.Objective)
}
