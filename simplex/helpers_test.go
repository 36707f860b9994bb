package simplex_test

import (
	"github.com/katalvlaran/lexsimplex/row"
	"github.com/katalvlaran/lexsimplex/simplex"
)

// boundedProblem is the two-row program with optimum 2 at x = (0, 0, 0, 1).
// Its second pivot has tied ratios and is resolved lexicographically.
func boundedProblem() simplex.Problem {
	return simplex.Problem{
		Tableau: []row.Row{
			row.New([]float64{1, 0, 1, 1}, 1),
			row.New([]float64{0, 1, 2, 1}, 1),
		},
		Costs:    []float64{0, 0, 1, 2},
		Solution: []float64{1, 1, 0, 0},
	}
}

// unboundedProblem has a zero column (x2) with a negative relative cost.
func unboundedProblem() simplex.Problem {
	return simplex.Problem{
		Tableau: []row.Row{
			row.New([]float64{1, 0, 0, 1}, 1),
			row.New([]float64{0, 1, 0, 1}, 1),
		},
		Costs:    []float64{0, 0, 1, 2},
		Solution: []float64{1, 1, 0, 0},
	}
}

// bealeProblem is Beale's cycling example written as a maximization.
// Optimum 5/4 at x = (3/4, 0, 0, 1, 0, 1, 0).
func bealeProblem() simplex.Problem {
	return simplex.Problem{
		Tableau: []row.Row{
			row.New([]float64{1, 0, 0, 0.25, -8, -1, 9}, 0),
			row.New([]float64{0, 1, 0, 0.5, -12, -0.5, 3}, 0),
			row.New([]float64{0, 0, 1, 0, 0, 1, 0}, 1),
		},
		Costs:    []float64{0, 0, 0, 0.75, -20, 0.5, -6},
		Solution: []float64{0, 0, 1, 0, 0, 0, 0},
	}
}

// withSolution returns p with its solution replaced.
func withSolution(p simplex.Problem, sol ...float64) simplex.Problem {
	p.Solution = sol
	return p
}

// residual returns max_i |tableau_i · x - b_i| for the original rows of p.
func residual(p simplex.Problem, x []float64) float64 {
	worst := 0.0
	for _, r := range p.Tableau {
		s := -r.Constant
		for j, a := range r.Coefficients {
			s += a * x[j]
		}
		if s < 0 {
			s = -s
		}
		if s > worst {
			worst = s
		}
	}

	return worst
}
